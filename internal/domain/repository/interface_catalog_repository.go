package repository

import (
	"context"

	"Voyage-App/internal/domain/model"
)

// CatalogWriteRepository シード処理が使う書き込み側。すべてUPSERT。
type CatalogWriteRepository interface {
	UpsertDestination(ctx context.Context, d *model.Destination) error
	UpsertAttraction(ctx context.Context, a *model.Attraction) error
	UpsertRestaurant(ctx context.Context, r *model.Restaurant) error
	UpsertFood(ctx context.Context, f *model.Food) error
	UpsertHotel(ctx context.Context, h *model.Hotel) error
}

// CatalogReadRepository 閲覧APIが使う読み出し側。
// Postgres直結とSupabase(PostgREST)の2実装がある。
type CatalogReadRepository interface {
	ListDestinations(ctx context.Context) ([]model.Destination, error)
	GetDestination(ctx context.Context, id string) (*model.Destination, error)
	ListAttractions(ctx context.Context, destinationID string, limit, offset int) ([]model.Attraction, error)
	NearbyAttractions(ctx context.Context, lat, lng float64, radiusMeters int) ([]model.Attraction, error)
	ListRestaurants(ctx context.Context, destinationID string, limit, offset int) ([]model.Restaurant, error)
	ListFoods(ctx context.Context, destinationID string, limit, offset int) ([]model.Food, error)
	ListHotels(ctx context.Context, destinationID string, limit, offset int) ([]model.Hotel, error)
}
