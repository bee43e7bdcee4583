package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/paulmach/orb"

	"Voyage-App/internal/database"
	"Voyage-App/internal/domain/model"
	"Voyage-App/internal/domain/repository"
)

// SupabaseCatalogRepository PostgREST経由の読み出し側実装。
// 行はカラム名そのままのJSONで返るため、中間の行構造体で受けてモデルへ詰め替える。
type SupabaseCatalogRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseCatalogRepository(client *database.SupabaseClient) repository.CatalogReadRepository {
	return &SupabaseCatalogRepository{client: client}
}

type destinationRow struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	LongDescription *string `json:"long_description"`
	CoverImageURL   *string `json:"cover_image_url"`
	TourCount       int     `json:"tour_count"`
}

func (row destinationRow) toModel() model.Destination {
	return model.Destination{
		ID:              row.ID,
		Name:            row.Name,
		Description:     row.Description,
		LongDescription: row.LongDescription,
		ImageURL:        row.CoverImageURL,
		TourCount:       row.TourCount,
	}
}

func (r *SupabaseCatalogRepository) ListDestinations(ctx context.Context) ([]model.Destination, error) {
	var rows []destinationRow
	data, count, err := r.client.GetClient().From("destinations").
		Select("*", "exact", false).
		Order("name", nil).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("目的地データの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("目的地データのJSONアンマーシャル失敗: %w", err)
	}

	var out []model.Destination
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

func (r *SupabaseCatalogRepository) GetDestination(ctx context.Context, id string) (*model.Destination, error) {
	var rows []destinationRow
	data, count, err := r.client.GetClient().From("destinations").
		Select("*", "exact", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("目的地データの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("目的地データのJSONアンマーシャル失敗: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("目的地 %s が見つかりません", id)
	}

	d := rows[0].toModel()
	return &d, nil
}

type attractionRow struct {
	ID                string   `json:"id"`
	DestinationID     string   `json:"destination_id"`
	Name              string   `json:"name"`
	NameZh            *string  `json:"name_zh"`
	NameEn            *string  `json:"name_en"`
	Region            *string  `json:"region"`
	Address           *string  `json:"address"`
	Lat               *float64 `json:"lat"`
	Lng               *float64 `json:"lng"`
	Category          *string  `json:"category"`
	OpeningHours      *string  `json:"opening_hours"`
	TicketPrice       *string  `json:"ticket_price"`
	SuggestedDuration *string  `json:"suggested_duration"`
	Introduction      *string  `json:"introduction"`
	Tags              []string `json:"tags"`
	Photos            []string `json:"photos"`
	ImageURL          *string  `json:"image_url"`
	Rating            *float64 `json:"rating"`
	Reason            *string  `json:"reason"`
}

func (r *SupabaseCatalogRepository) ListAttractions(ctx context.Context, destinationID string, limit, offset int) ([]model.Attraction, error) {
	query := r.client.GetClient().From("attractions").Select("*", "exact", false)
	if destinationID != "" {
		query = query.Eq("destination_id", destinationID)
	}
	data, count, err := query.Order("name", nil).Range(offset, offset+limit-1, "").Execute()
	if err != nil {
		return nil, fmt.Errorf("景点データの取得失敗: %w", err)
	}
	_ = count

	var rows []attractionRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("景点データのJSONアンマーシャル失敗: %w", err)
	}

	var out []model.Attraction
	for _, row := range rows {
		out = append(out, model.Attraction{
			ID:                row.ID,
			DestinationID:     row.DestinationID,
			Name:              row.Name,
			NameZh:            row.NameZh,
			NameEn:            row.NameEn,
			Region:            row.Region,
			Address:           row.Address,
			Location:          pointFromLngLat(row.Lng, row.Lat),
			Category:          row.Category,
			OpeningHours:      row.OpeningHours,
			TicketPrice:       row.TicketPrice,
			SuggestedDuration: row.SuggestedDuration,
			Introduction:      row.Introduction,
			Tags:              row.Tags,
			Photos:            row.Photos,
			ImageURL:          row.ImageURL,
			Rating:            row.Rating,
			Reason:            row.Reason,
		})
	}
	return out, nil
}

// NearbyAttractions は境界ボックスの範囲絞り込みで周辺景点を探す。
// PostgRESTにはgeography列が無いので、orbで作った箱のlat/lng範囲をそのまま条件にする。
func (r *SupabaseCatalogRepository) NearbyAttractions(ctx context.Context, lat, lng float64, radiusMeters int) ([]model.Attraction, error) {
	bound := searchBound(lat, lng, radiusMeters)

	data, count, err := r.client.GetClient().From("attractions").
		Select("*", "exact", false).
		Gte("lat", strconv.FormatFloat(bound.Min.Lat(), 'f', -1, 64)).
		Lte("lat", strconv.FormatFloat(bound.Max.Lat(), 'f', -1, 64)).
		Gte("lng", strconv.FormatFloat(bound.Min.Lon(), 'f', -1, 64)).
		Lte("lng", strconv.FormatFloat(bound.Max.Lon(), 'f', -1, 64)).
		Limit(50, "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("周辺景点データの取得失敗: %w", err)
	}
	_ = count

	var rows []attractionRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("景点データのJSONアンマーシャル失敗: %w", err)
	}

	var out []model.Attraction
	for _, row := range rows {
		out = append(out, model.Attraction{
			ID:            row.ID,
			DestinationID: row.DestinationID,
			Name:          row.Name,
			NameZh:        row.NameZh,
			NameEn:        row.NameEn,
			Region:        row.Region,
			Address:       row.Address,
			Location:      pointFromLngLat(row.Lng, row.Lat),
			Category:      row.Category,
			Introduction:  row.Introduction,
			Tags:          row.Tags,
			Photos:        row.Photos,
			ImageURL:      row.ImageURL,
			Rating:        row.Rating,
			Reason:        row.Reason,
		})
	}
	return out, nil
}

type restaurantRow struct {
	ID                string   `json:"id"`
	DestinationID     string   `json:"destination_id"`
	Name              string   `json:"name"`
	PhotoURL          *string  `json:"photo_url"`
	CuisineType       *string  `json:"cuisine_type"`
	RecommendedDishes []string `json:"recommended_dishes"`
	Address           *string  `json:"address"`
	Lat               *float64 `json:"lat"`
	Lng               *float64 `json:"lng"`
	Phone             *string  `json:"phone"`
	OpeningHours      *string  `json:"opening_hours"`
	MustEatIndex      *float64 `json:"must_eat_index"`
	AvgCost           *string  `json:"avg_cost"`
	QueueStatus       *string  `json:"queue_status"`
	PriceRange        *string  `json:"price_range"`
	Rating            *float64 `json:"rating"`
	Tags              []string `json:"tags"`
	ImageURL          *string  `json:"image_url"`
}

func (r *SupabaseCatalogRepository) ListRestaurants(ctx context.Context, destinationID string, limit, offset int) ([]model.Restaurant, error) {
	query := r.client.GetClient().From("restaurants").Select("*", "exact", false)
	if destinationID != "" {
		query = query.Eq("destination_id", destinationID)
	}
	data, count, err := query.Order("name", nil).Range(offset, offset+limit-1, "").Execute()
	if err != nil {
		return nil, fmt.Errorf("餐厅データの取得失敗: %w", err)
	}
	_ = count

	var rows []restaurantRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("餐厅データのJSONアンマーシャル失敗: %w", err)
	}

	var out []model.Restaurant
	for _, row := range rows {
		out = append(out, model.Restaurant{
			ID:                row.ID,
			DestinationID:     row.DestinationID,
			Name:              row.Name,
			PhotoURL:          row.PhotoURL,
			CuisineType:       row.CuisineType,
			RecommendedDishes: row.RecommendedDishes,
			Address:           row.Address,
			Location:          pointFromLngLat(row.Lng, row.Lat),
			Phone:             row.Phone,
			OpeningHours:      row.OpeningHours,
			MustEatIndex:      row.MustEatIndex,
			AvgCost:           row.AvgCost,
			QueueStatus:       row.QueueStatus,
			PriceRange:        row.PriceRange,
			Rating:            row.Rating,
			Tags:              row.Tags,
			ImageURL:          row.ImageURL,
		})
	}
	return out, nil
}

type foodRow struct {
	ID                string   `json:"id"`
	DestinationID     string   `json:"destination_id"`
	Name              string   `json:"name"`
	RestaurantName    *string  `json:"restaurant_name"`
	RestaurantAddress *string  `json:"restaurant_address"`
	Phone             *string  `json:"phone"`
	Lat               *float64 `json:"lat"`
	Lng               *float64 `json:"lng"`
	MustEatIndex      *float64 `json:"must_eat_index"`
	AvgCost           *string  `json:"avg_cost"`
	PriceRange        *string  `json:"price_range"`
	Reviews           int      `json:"reviews"`
	Reason            *string  `json:"reason"`
	TopReview         *string  `json:"top_review"`
	Tags              []string `json:"tags"`
	ImageURL          *string  `json:"image_url"`
}

func (r *SupabaseCatalogRepository) ListFoods(ctx context.Context, destinationID string, limit, offset int) ([]model.Food, error) {
	query := r.client.GetClient().From("foods").Select("*", "exact", false)
	if destinationID != "" {
		query = query.Eq("destination_id", destinationID)
	}
	data, count, err := query.Order("name", nil).Range(offset, offset+limit-1, "").Execute()
	if err != nil {
		return nil, fmt.Errorf("菜品データの取得失敗: %w", err)
	}
	_ = count

	var rows []foodRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("菜品データのJSONアンマーシャル失敗: %w", err)
	}

	var out []model.Food
	for _, row := range rows {
		out = append(out, model.Food{
			ID:                row.ID,
			DestinationID:     row.DestinationID,
			Name:              row.Name,
			RestaurantName:    row.RestaurantName,
			RestaurantAddress: row.RestaurantAddress,
			Phone:             row.Phone,
			Location:          pointFromLngLat(row.Lng, row.Lat),
			MustEatIndex:      row.MustEatIndex,
			AvgCost:           row.AvgCost,
			PriceRange:        row.PriceRange,
			Reviews:           row.Reviews,
			Reason:            row.Reason,
			TopReview:         row.TopReview,
			Tags:              row.Tags,
			ImageURL:          row.ImageURL,
		})
	}
	return out, nil
}

type hotelRow struct {
	ID            string         `json:"id"`
	DestinationID string         `json:"destination_id"`
	Name          string         `json:"name"`
	Address       *string        `json:"address"`
	Lat           *float64       `json:"lat"`
	Lng           *float64       `json:"lng"`
	StarLevel     *float64       `json:"star_level"`
	PriceRange    *string        `json:"price_range"`
	Rating        *float64       `json:"rating"`
	Amenities     map[string]any `json:"amenities"`
	Tags          []string       `json:"tags"`
	ImageURL      *string        `json:"image_url"`
}

func (r *SupabaseCatalogRepository) ListHotels(ctx context.Context, destinationID string, limit, offset int) ([]model.Hotel, error) {
	query := r.client.GetClient().From("hotels").Select("*", "exact", false)
	if destinationID != "" {
		query = query.Eq("destination_id", destinationID)
	}
	data, count, err := query.Order("name", nil).Range(offset, offset+limit-1, "").Execute()
	if err != nil {
		return nil, fmt.Errorf("酒店データの取得失敗: %w", err)
	}
	_ = count

	var rows []hotelRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("酒店データのJSONアンマーシャル失敗: %w", err)
	}

	var out []model.Hotel
	for _, row := range rows {
		out = append(out, model.Hotel{
			ID:            row.ID,
			DestinationID: row.DestinationID,
			Name:          row.Name,
			Address:       row.Address,
			Location:      pointFromLngLat(row.Lng, row.Lat),
			StarLevel:     row.StarLevel,
			PriceRange:    row.PriceRange,
			Rating:        row.Rating,
			Amenities:     row.Amenities,
			Tags:          row.Tags,
			ImageURL:      row.ImageURL,
		})
	}
	return out, nil
}

func pointFromLngLat(lng, lat *float64) *orb.Point {
	if lng == nil || lat == nil {
		return nil
	}
	p := orb.Point{*lng, *lat}
	return &p
}
