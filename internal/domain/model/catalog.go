package model

import "github.com/paulmach/orb"

// Destination 目的地（都市単位）。景点のCSVから導出する。
type Destination struct {
	ID              string  `json:"id" db:"id"`
	Name            string  `json:"name" db:"name"`
	Description     string  `json:"description" db:"description"`
	LongDescription *string `json:"longDescription,omitempty" db:"long_description"`
	ImageURL        *string `json:"image,omitempty" db:"cover_image_url"`
	TourCount       int     `json:"tourCount" db:"tour_count"`
}

// Attraction 景点。表形式データ（CSV/JSON）から正規化される。
type Attraction struct {
	ID                string     `json:"id" db:"id"`
	DestinationID     string     `json:"destinationId" db:"destination_id"`
	Name              string     `json:"name" db:"name"`
	NameZh            *string    `json:"nameZh,omitempty" db:"name_zh"`
	NameEn            *string    `json:"nameEn,omitempty" db:"name_en"`
	Province          *string    `json:"province,omitempty" db:"province"`
	City              *string    `json:"city,omitempty" db:"city"`
	District          *string    `json:"district,omitempty" db:"district"`
	Region            *string    `json:"region,omitempty" db:"region"`
	Address           *string    `json:"address,omitempty" db:"address"`
	Location          *orb.Point `json:"location,omitempty"`
	Category          *string    `json:"category,omitempty" db:"category"`
	NearbyTransport   *string    `json:"nearbyTransport,omitempty" db:"nearby_transport"`
	OpeningHours      *string    `json:"openingHours,omitempty" db:"opening_hours"`
	TicketPrice       *string    `json:"ticketPrice,omitempty" db:"ticket_price"`
	TicketPurchase    *string    `json:"ticketPurchase,omitempty" db:"ticket_purchase"`
	SuggestedDuration *string    `json:"suggestedDuration,omitempty" db:"suggested_duration"`
	BestVisitDate     *string    `json:"bestVisitDate,omitempty" db:"best_visit_date"`
	Introduction      *string    `json:"introduction,omitempty" db:"introduction"`
	SuitableFor       []string   `json:"suitableFor,omitempty" db:"suitable_for"`
	SellingPoints     []string   `json:"sellingPoints,omitempty" db:"selling_points"`
	Tags              []string   `json:"tags" db:"tags"`
	Photos            []string   `json:"photos,omitempty" db:"photos"`
	ImageURL          *string    `json:"image,omitempty" db:"image_url"`
	Rating            *float64   `json:"rating,omitempty" db:"rating"`
	Reason            *string    `json:"reason,omitempty" db:"reason"`
	TopReview         *string    `json:"topReview,omitempty" db:"top_review"`

	// 正規化時にだけ使う目的地解決キー（= 市）。永続化しない。
	DestinationKey string `json:"-"`
}

// Restaurant 餐厅。表形式データから正規化される。
type Restaurant struct {
	ID                string     `json:"id" db:"id"`
	DestinationID     string     `json:"destinationId" db:"destination_id"`
	Name              string     `json:"name" db:"name"`
	PhotoURL          *string    `json:"photo,omitempty" db:"photo_url"`
	CuisineType       *string    `json:"cuisineType,omitempty" db:"cuisine_type"`
	RecommendedDishes []string   `json:"recommendedDishes,omitempty" db:"recommended_dishes"`
	Address           *string    `json:"address,omitempty" db:"address"`
	Location          *orb.Point `json:"location,omitempty"`
	NearbyTransport   *string    `json:"nearbyTransport,omitempty" db:"nearby_transport"`
	Phone             *string    `json:"phone,omitempty" db:"phone"`
	OpeningHours      *string    `json:"openingHours,omitempty" db:"opening_hours"`
	MustEatIndex      *float64   `json:"mustEatIndex,omitempty" db:"must_eat_index"`
	AvgCost           *string    `json:"avgCost,omitempty" db:"avg_cost"`
	QueueStatus       *string    `json:"queueStatus,omitempty" db:"queue_status"`
	NearbyAttractions []string   `json:"nearbyAttractions,omitempty" db:"nearby_attractions"`
	PriceRange        *string    `json:"priceRange,omitempty" db:"price_range"`
	Rating            *float64   `json:"rating,omitempty" db:"rating"`
	Tags              []string   `json:"tags" db:"tags"`
	ImageURL          *string    `json:"image,omitempty" db:"image_url"`
}

// Food 名物料理。表形式データから正規化される。
type Food struct {
	ID                string     `json:"id" db:"id"`
	DestinationID     string     `json:"destinationId" db:"destination_id"`
	Name              string     `json:"name" db:"name"`
	RestaurantName    *string    `json:"restaurantName,omitempty" db:"restaurant_name"`
	RestaurantAddress *string    `json:"restaurantAddress,omitempty" db:"restaurant_address"`
	Phone             *string    `json:"phone,omitempty" db:"phone"`
	Location          *orb.Point `json:"location,omitempty"`
	NearbyTransport   *string    `json:"nearbyTransport,omitempty" db:"nearby_transport"`
	OpeningHours      *string    `json:"openingHours,omitempty" db:"opening_hours"`
	MustEatIndex      *float64   `json:"mustEatIndex,omitempty" db:"must_eat_index"`
	AvgCost           *string    `json:"avgCost,omitempty" db:"avg_cost"`
	QueueStatus       *string    `json:"queueStatus,omitempty" db:"queue_status"`
	NearbyAttractions []string   `json:"nearbyAttractions,omitempty" db:"nearby_attractions"`
	PriceRange        *string    `json:"priceRange,omitempty" db:"price_range"`
	Reviews           int        `json:"reviews" db:"reviews"`
	Reason            *string    `json:"reason,omitempty" db:"reason"`
	TopReview         *string    `json:"topReview,omitempty" db:"top_review"`
	Tags              []string   `json:"tags" db:"tags"`
	ImageURL          *string    `json:"image,omitempty" db:"image_url"`
}

// Hotel 酒店。JSONデータから読み込む。
type Hotel struct {
	ID            string         `json:"id" db:"id"`
	DestinationID string         `json:"destinationId" db:"destination_id"`
	Name          string         `json:"name" db:"name"`
	Address       *string        `json:"address,omitempty" db:"address"`
	Location      *orb.Point     `json:"location,omitempty"`
	StarLevel     *float64       `json:"starLevel,omitempty" db:"star_level"`
	PriceRange    *string        `json:"priceRange,omitempty" db:"price_range"`
	Rating        *float64       `json:"rating,omitempty" db:"rating"`
	Amenities     map[string]any `json:"amenities,omitempty" db:"amenities"`
	Tags          []string       `json:"tags,omitempty" db:"tags"`
	ImageURL      *string        `json:"image,omitempty" db:"image_url"`
}

// Lat は緯度を返す（orbのPointは [lng, lat] 順）
func Lat(p *orb.Point) *float64 {
	if p == nil {
		return nil
	}
	v := p.Lat()
	return &v
}

// Lng は経度を返す
func Lng(p *orb.Point) *float64 {
	if p == nil {
		return nil
	}
	v := p.Lon()
	return &v
}

// RouteSummary 一覧API用のルート概要
type RouteSummary struct {
	ID         string   `json:"id"`
	RouteName  string   `json:"routeName"`
	RouteAlias *string  `json:"routeAlias,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	PriceUnit  *string  `json:"priceUnit,omitempty"`
	TotalDays  int      `json:"totalDays"`
	Highlights []string `json:"highlights"`
}
