package service

import (
	"strings"

	"Voyage-App/internal/domain/model"
	"Voyage-App/internal/domain/strategy"
)

// AttractionParser 観光ノードのブロックを解析する
type AttractionParser struct {
	titleStrategy strategy.SubItemTitleStrategy
}

func NewAttractionParser(titleStrategy strategy.SubItemTitleStrategy) *AttractionParser {
	return &AttractionParser{titleStrategy: titleStrategy}
}

// 固定ラベルの単値フィールド定義（評価順は独立なので順序に意味はない）
type labeledField struct {
	labels []string
	assign func(p *model.AttractionPayload, v *string)
}

var attractionFields = []labeledField{
	{model.AttractionAddressLabels, func(p *model.AttractionPayload, v *string) { p.Address = v }},
	{model.AttractionHoursLabels, func(p *model.AttractionPayload, v *string) { p.OpeningHours = v }},
	{model.AttractionTicketLabels, func(p *model.AttractionPayload, v *string) { p.TicketPrice = v }},
	{model.AttractionDurationLabels, func(p *model.AttractionPayload, v *string) { p.SuggestedDuration = v }},
	{model.AttractionSeasonLabels, func(p *model.AttractionPayload, v *string) { p.BestSeason = v }},
}

// Parse はブロックから観光ペイロードを取り出す。
// 単値フィールドはラベル前置の行マッチ、紹介文はラベル区切りのセクション、
// 游玩亮点はタイトル／本文の積み上げ走査で抽出する。
func (p *AttractionParser) Parse(block NodeBlock) *model.AttractionPayload {
	payload := &model.AttractionPayload{
		Name: strings.TrimSpace(block.HeaderText),
	}

	lines := block.BodyLines
	claimed := make([]bool, len(lines))

	for i, line := range lines {
		for _, f := range attractionFields {
			if v, ok := stripLabelPrefix(line, f.labels); ok {
				f.assign(payload, strPtr(v))
				claimed[i] = true
				break
			}
		}
	}

	// 紹介セクション：開始ラベルから、亮点系ラベルかブロック末尾の近い方まで
	introStart := indexOfLabelLine(lines, model.AttractionIntroLabels)
	highlightStart := indexOfLabelLine(lines, model.AttractionHighlightLabels)
	if introStart >= 0 {
		payload.Description = collectSectionText(lines, model.AttractionIntroLabels,
			[][]string{model.AttractionHighlightLabels})
		end := earliestBoundary(lines, introStart, [][]string{model.AttractionHighlightLabels})
		for i := introStart; i < end; i++ {
			claimed[i] = true
		}
	}

	if highlightStart >= 0 {
		payload.Highlights = scanSubItems(lines[highlightStart+1:], p.titleStrategy)
		for i := highlightStart; i < len(lines); i++ {
			claimed[i] = true
		}
	}

	// 既知のラベルに拾われなかったコロン入りの行は備考として順序を保って残す
	var notes []string
	for i, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" || claimed[i] {
			continue
		}
		if strings.ContainsAny(t, ":：") {
			notes = append(notes, t)
		}
	}
	if len(notes) > 0 {
		joined := strings.Join(notes, "\n")
		payload.Notes = &joined
	}

	return payload
}
