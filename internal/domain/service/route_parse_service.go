package service

import (
	"fmt"
	"strings"

	"Voyage-App/internal/domain/helper"
	"Voyage-App/internal/domain/model"
	"Voyage-App/internal/domain/strategy"
)

// RouteParseService は行程マークダウン1ファイルをRouteDocumentに組み立てる。
// 全段が純粋な同期変換で、途中で失敗しない（取れないフィールドは欠損のまま）。
// 必須項目の検査は永続化直前に model.RouteDocument.Validate で行う。
type RouteParseService struct {
	headerParser     *RouteHeaderParser
	transportParser  *TransportParser
	attractionParser *AttractionParser
	restaurantParser *RestaurantParser
}

// NewRouteParseService は既定のタイトル判定ストラテジーでパーサー一式を組み立てる
func NewRouteParseService() *RouteParseService {
	titleStrategy := strategy.NewPictographicTitleStrategy()
	return &RouteParseService{
		headerParser:     NewRouteHeaderParser(),
		transportParser:  NewTransportParser(),
		attractionParser: NewAttractionParser(titleStrategy),
		restaurantParser: NewRestaurantParser(titleStrategy),
	}
}

// ParseRouteDocument は文書全体をパースする。routeIDはソースファイルのベース名。
func (s *RouteParseService) ParseRouteDocument(routeID, text string) *model.RouteDocument {
	segmented := SegmentRouteDocument(text)
	header := s.headerParser.Parse(segmented.HeaderLines)

	doc := &model.RouteDocument{
		ID:             routeID,
		RouteName:      header.RouteName,
		RouteAlias:     header.RouteAlias,
		Price:          header.Price,
		PriceUnit:      header.PriceUnit,
		Recommendation: header.Recommendation,
		Introduction:   header.Introduction,
		Highlights:     header.Highlights,
	}
	if doc.RouteName == "" {
		doc.RouteName = routeID
	}

	for i, marker := range segmented.Markers {
		region := segmented.DayRegion(i)
		doc.Days = append(doc.Days, s.assembleDay(routeID, marker, region))
	}

	// 日数カラムはNOT NULL・正の値の制約があるので、ゼロにはしない
	doc.TotalDays = len(doc.Days)
	if doc.TotalDays == 0 {
		doc.TotalDays = len(segmented.Markers)
	}
	if doc.TotalDays == 0 {
		doc.TotalDays = 1
	}

	return doc
}

// assembleDay は1日分の領域をRouteDayに組み立てる。
// ノードの連番は日番号の値や飛びに関係なく、その日の中で1始まりの連番。
func (s *RouteParseService) assembleDay(routeID string, marker DayMarker, region []string) model.RouteDay {
	day := model.RouteDay{
		ID:          fmt.Sprintf("%s_d%d", routeID, marker.DayNumber),
		RouteID:     routeID,
		DayNumber:   marker.DayNumber,
		DayTitle:    marker.DayTitle,
		DaySubtitle: daySubtitle(region),
	}

	for idx, block := range ScanDayNodes(region) {
		order := idx + 1
		startMinutes, okStart := helper.ParseClockTime(block.StartClock)
		var startTime *string
		if okStart {
			startTime = helper.FormatClockTime(&startMinutes)
		}

		switch block.Type {
		case model.NodeTypeTransport:
			payload, duration := s.transportParser.Parse(block)
			day.Nodes = append(day.Nodes, model.NewTransportNode(day.ID, order, startTime, duration, payload))
		case model.NodeTypeAttraction:
			duration := helper.DurationBetween(block.StartClock, block.EndClock)
			payload := s.attractionParser.Parse(block)
			day.Nodes = append(day.Nodes, model.NewAttractionNode(day.ID, order, startTime, duration, payload))
		case model.NodeTypeRestaurant:
			duration := helper.DurationBetween(block.StartClock, block.EndClock)
			payload := s.restaurantParser.Parse(block)
			day.Nodes = append(day.Nodes, model.NewRestaurantNode(day.ID, order, startTime, duration, payload))
		}
	}

	return day
}

// daySubtitle は日区切り行の直後の非空行を副題として拾う。
// ノード開始行まで進んでしまったら副題なし。
func daySubtitle(region []string) *string {
	for _, line := range region[1:] {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if IsNodeStartLine(t) {
			return nil
		}
		return &t
	}
	return nil
}
