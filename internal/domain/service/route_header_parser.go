package service

import (
	"strings"

	"Voyage-App/internal/domain/helper"
	"Voyage-App/internal/domain/model"
)

// RouteHeaderParser はヘッダー領域（最初の日区切りより前）からルートのメタ情報を抜き出す
type RouteHeaderParser struct{}

func NewRouteHeaderParser() *RouteHeaderParser {
	return &RouteHeaderParser{}
}

// ParsedHeader ヘッダー領域の抽出結果
type ParsedHeader struct {
	RouteName      string
	RouteAlias     *string
	Price          *float64
	PriceUnit      *string
	Recommendation *string
	Introduction   *string
	Highlights     []string
}

// Parse はヘッダー領域をラベル走査して各フィールドを取り出す。
// セクション系のフィールドは 推荐理由 → 路线介绍 → 行程亮点 の宣言順に、
// 後続ラベルの最も手前の位置を境界としてスライスする。
func (p *RouteHeaderParser) Parse(headerLines []string) *ParsedHeader {
	h := &ParsedHeader{}

	if v := collectKeyValue(headerLines, model.RouteNameLabels); v != nil {
		h.RouteName = *v
	}
	h.RouteAlias = collectKeyValue(headerLines, model.RouteAliasLabels)

	if v := collectKeyValue(headerLines, model.RoutePriceLabels); v != nil {
		h.Price = helper.ParseLeadingNumber(*v)
		h.PriceUnit = strPtr(strings.TrimLeft(*v, "0123456789. "))
	}

	h.Recommendation = collectSectionText(headerLines, model.RecommendationLabels,
		[][]string{model.IntroductionLabels, model.HighlightsLabels})
	h.Introduction = collectSectionText(headerLines, model.IntroductionLabels,
		[][]string{model.HighlightsLabels})
	h.Highlights = p.collectHighlights(headerLines)

	return h
}

// collectHighlights は行程亮点セクションの箇条書き行だけを拾い、行頭記号を落とす
func (p *RouteHeaderParser) collectHighlights(lines []string) []string {
	start := indexOfLabelLine(lines, model.HighlightsLabels)
	if start < 0 {
		return nil
	}
	end := earliestBoundary(lines, start, [][]string{
		model.RouteNameLabels, model.RouteAliasLabels, model.RoutePriceLabels,
		model.RecommendationLabels, model.IntroductionLabels,
	})

	var items []string
	for _, line := range lines[start+1 : end] {
		t := strings.TrimSpace(line)
		for _, prefix := range model.BulletPrefixes {
			if strings.HasPrefix(t, prefix) {
				item := strings.TrimSpace(strings.TrimPrefix(t, prefix))
				if item != "" {
					items = append(items, item)
				}
				break
			}
		}
	}
	return items
}
