package service

import (
	"strings"

	"Voyage-App/internal/domain/helper"
	"Voyage-App/internal/domain/model"
	"Voyage-App/internal/domain/strategy"
)

// RestaurantParser 食事ノードのブロックを解析する
type RestaurantParser struct {
	titleStrategy strategy.SubItemTitleStrategy
}

func NewRestaurantParser(titleStrategy strategy.SubItemTitleStrategy) *RestaurantParser {
	return &RestaurantParser{titleStrategy: titleStrategy}
}

// Parse はブロックから食事ペイロードを取り出す。
// 店名は「餐厅名称：」の明示行を優先し、無ければ開始行の本文から導出する。
func (p *RestaurantParser) Parse(block NodeBlock) *model.RestaurantPayload {
	payload := &model.RestaurantPayload{
		Name:  deriveRestaurantName(block),
		Notes: strPtr(block.HeaderText),
	}

	lines := block.BodyLines

	for _, line := range lines {
		if v, ok := stripLabelPrefix(line, model.RestaurantAddressLabels); ok && payload.Address == nil {
			payload.Address = strPtr(v)
			continue
		}
		if v, ok := stripLabelPrefix(line, model.RestaurantAvgCostLabels); ok && payload.AvgCost == nil {
			payload.AvgCost = helper.ParseLeadingNumber(v)
			continue
		}
		if _, ok := stripLabelPrefix(line, model.RestaurantRatingLabels); ok && payload.MustEatRating == nil {
			payload.MustEatRating = countRatingGlyphs(line)
			continue
		}
		if v, ok := stripLabelPrefix(line, model.RestaurantQueueLabels); ok && payload.QueueStatus == nil {
			payload.QueueStatus = strPtr(v)
			continue
		}
		if v, ok := stripLabelPrefix(line, model.RestaurantHoursLabels); ok && payload.BusinessHours == nil {
			payload.BusinessHours = strPtr(v)
			continue
		}
		if payload.Phone == nil && helper.HasAnyKeyword(line, model.RestaurantPhoneWords) {
			payload.Phone = extractAfterFinalKeyword(line, model.RestaurantPhoneWords)
		}
	}

	payload.Background = collectSectionText(lines, model.RestaurantIntroLabels,
		[][]string{model.RestaurantDishesLabels})

	if dishesStart := indexOfLabelLine(lines, model.RestaurantDishesLabels); dishesStart >= 0 {
		payload.RecommendedDishes = scanSubItems(lines[dishesStart+1:], p.titleStrategy)
	}

	return payload
}

// deriveRestaurantName は店名を決める。
// 明示の「餐厅名称：」行が最優先。無ければ開始行本文から
// 先頭の「ラベル：」（午餐：などの食事種別）を剥がし、それも無ければ本文全体を使う。
func deriveRestaurantName(block NodeBlock) string {
	for _, line := range block.BodyLines {
		if v, ok := stripLabelPrefix(line, model.RestaurantNameLabels); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}

	header := strings.TrimSpace(block.HeaderText)
	if idx := strings.IndexAny(header, ":："); idx >= 0 {
		if rest := trimColonPrefix(header[idx:]); rest != "" {
			return rest
		}
	}
	return header
}

// countRatingGlyphs は星グリフの合計数を数える。
// ゼロ個はnil（「評価なし」と区別できない書式なので、観測された挙動を維持する）。
func countRatingGlyphs(line string) *int {
	total := 0
	for _, glyph := range model.RatingGlyphs {
		if n := helper.CountGlyph(line, glyph); n != nil {
			total += *n
		}
	}
	if total == 0 {
		return nil
	}
	return &total
}

// extractAfterFinalKeyword はキーワードの最後の出現位置より後ろのテキストを返す
func extractAfterFinalKeyword(line string, keywords []string) *string {
	lower := strings.ToLower(line)
	best := -1
	width := 0
	for _, kw := range keywords {
		if idx := strings.LastIndex(lower, strings.ToLower(kw)); idx > best {
			best = idx
			width = len(kw)
		}
	}
	if best < 0 {
		return nil
	}
	return strPtr(trimColonPrefix(line[best+width:]))
}
