package model

import "fmt"

// RouteNodeType は旅程ノードの種別
type RouteNodeType string

const (
	NodeTypeTransport  RouteNodeType = "transport"
	NodeTypeAttraction RouteNodeType = "attraction"
	NodeTypeRestaurant RouteNodeType = "restaurant"
)

// RouteDocument 1つの行程マークダウンファイルをパースした結果
type RouteDocument struct {
	ID             string     `json:"id" db:"id"`
	RouteName      string     `json:"routeName" db:"name"`
	RouteAlias     *string    `json:"routeAlias,omitempty" db:"alias"`
	Price          *float64   `json:"price,omitempty" db:"price"`
	PriceUnit      *string    `json:"priceUnit,omitempty" db:"price_unit"`
	Recommendation *string    `json:"recommendation,omitempty" db:"recommendation"`
	Introduction   *string    `json:"introduction,omitempty" db:"introduction"`
	Highlights     []string   `json:"highlights" db:"highlights"`
	TotalDays      int        `json:"totalDays" db:"total_days"`
	Days           []RouteDay `json:"days"`
}

// RouteDay 行程内の1日分のセクション
type RouteDay struct {
	ID          string      `json:"id" db:"id"`
	RouteID     string      `json:"routeId" db:"route_id"`
	DayNumber   int         `json:"dayNumber" db:"day_number"`
	DayTitle    string      `json:"dayTitle" db:"day_title"`
	DaySubtitle *string     `json:"daySubtitle,omitempty" db:"day_subtitle"`
	Nodes       []RouteNode `json:"nodes"`
}

// RouteNode 1日の中の1つの予定（移動・観光・食事のいずれか）
// NodeType に対応するペイロードのみがnon-nilになる。
type RouteNode struct {
	ID              string             `json:"id" db:"id"`
	DayID           string             `json:"dayId" db:"day_id"`
	NodeOrder       int                `json:"nodeOrder" db:"node_order"`
	NodeType        RouteNodeType      `json:"nodeType" db:"node_type"`
	StartTime       *string            `json:"startTime,omitempty" db:"start_time"`
	DurationMinutes *int               `json:"durationMinutes,omitempty" db:"duration_minutes"`
	Transport       *TransportPayload  `json:"transport,omitempty"`
	Attraction      *AttractionPayload `json:"attraction,omitempty"`
	Restaurant      *RestaurantPayload `json:"restaurant,omitempty"`
}

// TransportPayload 移動ノードの詳細
type TransportPayload struct {
	FromLocation    *string  `json:"fromLocation,omitempty" db:"from_location"`
	ToLocation      *string  `json:"toLocation,omitempty" db:"to_location"`
	TransportMethod string   `json:"transportMethod" db:"transport_method"`
	RouteDetail     *string  `json:"routeDetail,omitempty" db:"route_detail"`
	Cost            *float64 `json:"cost,omitempty" db:"cost"`
	Notes           *string  `json:"notes,omitempty" db:"notes"`
}

// AttractionPayload 観光ノードの詳細
type AttractionPayload struct {
	Name              string         `json:"name" db:"name"`
	Address           *string        `json:"address,omitempty" db:"address"`
	OpeningHours      *string        `json:"openingHours,omitempty" db:"opening_hours"`
	TicketPrice       *string        `json:"ticketPrice,omitempty" db:"ticket_price"`
	SuggestedDuration *string        `json:"suggestedDuration,omitempty" db:"suggested_duration"`
	BestSeason        *string        `json:"bestSeason,omitempty" db:"best_season"`
	Description       *string        `json:"description,omitempty" db:"description"`
	Highlights        []RouteSubItem `json:"highlights,omitempty"`
	Notes             *string        `json:"notes,omitempty" db:"notes"`
}

// RestaurantPayload 食事ノードの詳細
type RestaurantPayload struct {
	Name              string         `json:"name" db:"name"`
	Address           *string        `json:"address,omitempty" db:"address"`
	AvgCost           *float64       `json:"avgCost,omitempty" db:"avg_cost"`
	MustEatRating     *int           `json:"mustEatRating,omitempty" db:"must_eat_rating"`
	QueueStatus       *string        `json:"queueStatus,omitempty" db:"queue_status"`
	Phone             *string        `json:"phone,omitempty" db:"phone"`
	BusinessHours     *string        `json:"businessHours,omitempty" db:"business_hours"`
	Background        *string        `json:"background,omitempty" db:"background"`
	RecommendedDishes []RouteSubItem `json:"recommendedDishes,omitempty"`
	Notes             *string        `json:"notes,omitempty" db:"notes"`
}

// RouteSubItem 観光ハイライト・おすすめ料理などのタイトル付きサブ項目
type RouteSubItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewTransportNode は移動ノードを構築する（ペイロードは必ず1つだけ設定される）
func NewTransportNode(dayID string, order int, startTime *string, duration *int, payload *TransportPayload) RouteNode {
	return RouteNode{
		ID:              fmt.Sprintf("%s_n%d", dayID, order),
		DayID:           dayID,
		NodeOrder:       order,
		NodeType:        NodeTypeTransport,
		StartTime:       startTime,
		DurationMinutes: duration,
		Transport:       payload,
	}
}

// NewAttractionNode は観光ノードを構築する
func NewAttractionNode(dayID string, order int, startTime *string, duration *int, payload *AttractionPayload) RouteNode {
	return RouteNode{
		ID:              fmt.Sprintf("%s_n%d", dayID, order),
		DayID:           dayID,
		NodeOrder:       order,
		NodeType:        NodeTypeAttraction,
		StartTime:       startTime,
		DurationMinutes: duration,
		Attraction:      payload,
	}
}

// NewRestaurantNode は食事ノードを構築する
func NewRestaurantNode(dayID string, order int, startTime *string, duration *int, payload *RestaurantPayload) RouteNode {
	return RouteNode{
		ID:              fmt.Sprintf("%s_n%d", dayID, order),
		DayID:           dayID,
		NodeOrder:       order,
		NodeType:        NodeTypeRestaurant,
		StartTime:       startTime,
		DurationMinutes: duration,
		Restaurant:      payload,
	}
}

// Validate は永続化前の必須項目チェックを行う。
// パース段階は常に成功する設計なので、必須項目の欠落はここで初めてエラーになる。
func (d *RouteDocument) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("route.id is required")
	}
	for _, day := range d.Days {
		if day.ID == "" {
			return fmt.Errorf("day.id is required (route=%s, day=%d)", d.ID, day.DayNumber)
		}
		for _, node := range day.Nodes {
			if node.ID == "" {
				return fmt.Errorf("node.id is required (day=%s, order=%d)", day.ID, node.NodeOrder)
			}
			switch node.NodeType {
			case NodeTypeAttraction:
				if node.Attraction == nil || node.Attraction.Name == "" {
					return fmt.Errorf("attraction.name is required (node=%s)", node.ID)
				}
			case NodeTypeRestaurant:
				if node.Restaurant == nil || node.Restaurant.Name == "" {
					return fmt.Errorf("restaurant.name is required (node=%s)", node.ID)
				}
			case NodeTypeTransport:
				if node.Transport == nil {
					return fmt.Errorf("transport payload is required (node=%s)", node.ID)
				}
			}
		}
	}
	return nil
}
