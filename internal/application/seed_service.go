package application

import (
	"context"
	"fmt"
	"log"

	"Voyage-App/internal/domain/model"
	"Voyage-App/internal/domain/service"
	"Voyage-App/internal/infrastructure/database"
	"Voyage-App/internal/infrastructure/dataset"
	"Voyage-App/internal/repository"
)

// SeedService データセット一式をPostgreSQLへ流し込むシード処理
type SeedService interface {
	// Run はカタログの正規化・ルート文書の解析・永続化を1トランザクションで実行する
	Run(ctx context.Context) (*SeedSummary, error)
}

// SeedSummary シード処理の投入件数
type SeedSummary struct {
	Destinations int
	Attractions  int
	Restaurants  int
	Foods        int
	Hotels       int
	Routes       int
}

type seedServiceImpl struct {
	dbClient *database.PostgreSQLClient
	loader   *dataset.Loader
	parser   *service.RouteParseService
}

// NewSeedService SeedServiceの新しいインスタンスを作成
func NewSeedService(dbClient *database.PostgreSQLClient, loader *dataset.Loader) SeedService {
	return &seedServiceImpl{
		dbClient: dbClient,
		loader:   loader,
		parser:   service.NewRouteParseService(),
	}
}

func (s *seedServiceImpl) Run(ctx context.Context) (*SeedSummary, error) {
	// 1. 表形式データの読み込みと正規化
	attractions, restaurants, foods, hotels, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}

	// 2. 景点から目的地を導出し、餐厅・菜品に目的地を割り当てる
	resolver := service.NewDestinationResolver(attractions)
	resolver.AssignDestinations(restaurants, foods)
	destinations := resolver.Destinations()

	// 3. ルート文書の解析。検証エラーは投入前に全件止める
	routes, err := s.parseRoutes()
	if err != nil {
		return nil, err
	}

	// 4. 1トランザクションで全件投入
	tx, err := s.dbClient.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("トランザクションの開始失敗: %w", err)
	}
	defer tx.Rollback()

	catalogRepo := repository.NewPostgresCatalogRepository(s.dbClient).WithTx(tx)
	routesRepo := repository.NewPostgresRoutesRepository(s.dbClient).WithTx(tx)

	for i := range destinations {
		if err := catalogRepo.UpsertDestination(ctx, &destinations[i]); err != nil {
			return nil, err
		}
	}
	for i := range attractions {
		if err := catalogRepo.UpsertAttraction(ctx, &attractions[i]); err != nil {
			return nil, err
		}
	}
	for i := range restaurants {
		if err := catalogRepo.UpsertRestaurant(ctx, &restaurants[i]); err != nil {
			return nil, err
		}
	}
	for i := range foods {
		if err := catalogRepo.UpsertFood(ctx, &foods[i]); err != nil {
			return nil, err
		}
	}
	for i := range hotels {
		// ホテルはIDと目的地IDが必須（欠落したままDBへ流さない）
		if hotels[i].ID == "" {
			return nil, fmt.Errorf("ホテルのIDが未設定です (name=%s)", hotels[i].Name)
		}
		if hotels[i].DestinationID == "" {
			return nil, fmt.Errorf("ホテルの目的地IDが未設定です (id=%s)", hotels[i].ID)
		}
		if err := catalogRepo.UpsertHotel(ctx, &hotels[i]); err != nil {
			return nil, err
		}
	}
	for _, doc := range routes {
		if err := routesRepo.ReplaceRoute(ctx, doc); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("トランザクションのコミット失敗: %w", err)
	}

	summary := &SeedSummary{
		Destinations: len(destinations),
		Attractions:  len(attractions),
		Restaurants:  len(restaurants),
		Foods:        len(foods),
		Hotels:       len(hotels),
		Routes:       len(routes),
	}
	log.Printf("✅ Seed completed: destinations=%d attractions=%d restaurants=%d foods=%d hotels=%d routes=%d",
		summary.Destinations, summary.Attractions, summary.Restaurants, summary.Foods, summary.Hotels, summary.Routes)
	return summary, nil
}

func (s *seedServiceImpl) loadCatalog() ([]model.Attraction, []model.Restaurant, []model.Food, []model.Hotel, error) {
	attractionRows, err := s.loader.LoadTableOptional("attractions")
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("景点データの読み込み失敗: %w", err)
	}
	restaurantRows, err := s.loader.LoadTableOptional("restaurants")
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("餐厅データの読み込み失敗: %w", err)
	}
	foodRows, err := s.loader.LoadTableOptional("foods")
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("菜品データの読み込み失敗: %w", err)
	}
	hotelRows, err := s.loader.LoadTableOptional("hotels")
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("酒店データの読み込み失敗: %w", err)
	}

	attractions := service.NormalizeAttractions(attractionRows)
	restaurants := service.MergeDuplicateRestaurants(service.NormalizeRestaurants(restaurantRows))
	foods := service.NormalizeFoods(foodRows)
	hotels := service.NormalizeHotels(hotelRows)

	log.Printf("✅ Catalog loaded: attractions=%d restaurants=%d foods=%d hotels=%d",
		len(attractions), len(restaurants), len(foods), len(hotels))
	return attractions, restaurants, foods, hotels, nil
}

func (s *seedServiceImpl) parseRoutes() ([]*model.RouteDocument, error) {
	files, err := s.loader.LoadRouteFiles()
	if err != nil {
		return nil, fmt.Errorf("ルート文書の読み込み失敗: %w", err)
	}

	var docs []*model.RouteDocument
	for _, f := range files {
		doc := s.parser.ParseRouteDocument(f.ID, f.Text)
		if err := doc.Validate(); err != nil {
			return nil, fmt.Errorf("ルート %s の検証失敗: %w", f.ID, err)
		}
		docs = append(docs, doc)
	}
	log.Printf("✅ Routes parsed: %d", len(docs))
	return docs, nil
}
