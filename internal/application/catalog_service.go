package application

import (
	"context"
	"fmt"

	"Voyage-App/internal/domain/model"
	"Voyage-App/internal/domain/repository"
)

// CatalogService 目的地・景点・餐厅・菜品・酒店の閲覧サービス
type CatalogService interface {
	ListDestinations(ctx context.Context) ([]model.Destination, error)
	GetDestination(ctx context.Context, id string) (*model.Destination, error)
	ListAttractions(ctx context.Context, destinationID string, limit, offset int) ([]model.Attraction, error)
	NearbyAttractions(ctx context.Context, lat, lng float64, radiusMeters int) ([]model.Attraction, error)
	ListRestaurants(ctx context.Context, destinationID string, limit, offset int) ([]model.Restaurant, error)
	ListFoods(ctx context.Context, destinationID string, limit, offset int) ([]model.Food, error)
	ListHotels(ctx context.Context, destinationID string, limit, offset int) ([]model.Hotel, error)
}

type catalogServiceImpl struct {
	catalogRepo repository.CatalogReadRepository
}

// NewCatalogService CatalogServiceの新しいインスタンスを作成
func NewCatalogService(catalogRepo repository.CatalogReadRepository) CatalogService {
	return &catalogServiceImpl{
		catalogRepo: catalogRepo,
	}
}

func (s *catalogServiceImpl) ListDestinations(ctx context.Context) ([]model.Destination, error) {
	destinations, err := s.catalogRepo.ListDestinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("目的地一覧の取得失敗: %w", err)
	}
	return destinations, nil
}

func (s *catalogServiceImpl) GetDestination(ctx context.Context, id string) (*model.Destination, error) {
	if id == "" {
		return nil, fmt.Errorf("目的地IDは必須です")
	}
	return s.catalogRepo.GetDestination(ctx, id)
}

func (s *catalogServiceImpl) ListAttractions(ctx context.Context, destinationID string, limit, offset int) ([]model.Attraction, error) {
	limit, offset = normalizePage(limit, offset)
	attractions, err := s.catalogRepo.ListAttractions(ctx, destinationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("景点一覧の取得失敗: %w", err)
	}
	return attractions, nil
}

func (s *catalogServiceImpl) NearbyAttractions(ctx context.Context, lat, lng float64, radiusMeters int) ([]model.Attraction, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("緯度は-90から90の範囲内である必要があります")
	}
	if lng < -180 || lng > 180 {
		return nil, fmt.Errorf("経度は-180から180の範囲内である必要があります")
	}
	if radiusMeters <= 0 {
		radiusMeters = 3000
	}

	attractions, err := s.catalogRepo.NearbyAttractions(ctx, lat, lng, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("周辺景点の取得失敗: %w", err)
	}
	return attractions, nil
}

func (s *catalogServiceImpl) ListRestaurants(ctx context.Context, destinationID string, limit, offset int) ([]model.Restaurant, error) {
	limit, offset = normalizePage(limit, offset)
	restaurants, err := s.catalogRepo.ListRestaurants(ctx, destinationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("餐厅一覧の取得失敗: %w", err)
	}
	return restaurants, nil
}

func (s *catalogServiceImpl) ListFoods(ctx context.Context, destinationID string, limit, offset int) ([]model.Food, error) {
	limit, offset = normalizePage(limit, offset)
	foods, err := s.catalogRepo.ListFoods(ctx, destinationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("菜品一覧の取得失敗: %w", err)
	}
	return foods, nil
}

func (s *catalogServiceImpl) ListHotels(ctx context.Context, destinationID string, limit, offset int) ([]model.Hotel, error) {
	limit, offset = normalizePage(limit, offset)
	hotels, err := s.catalogRepo.ListHotels(ctx, destinationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("酒店一覧の取得失敗: %w", err)
	}
	return hotels, nil
}
