package application

import (
	"context"
	"fmt"

	"Voyage-App/internal/domain/model"
	"Voyage-App/internal/domain/repository"
)

// RoutesService 行程ルートの閲覧に関するビジネスロジックを提供するサービス
type RoutesService interface {
	// ListRoutes ルート概要の一覧を取得
	ListRoutes(ctx context.Context, limit, offset int) ([]model.RouteSummary, error)

	// GetRouteDetail ルートの詳細（日・ノード・種別別ペイロード）を取得
	GetRouteDetail(ctx context.Context, id string) (*model.RouteDocument, error)
}

type routesServiceImpl struct {
	routesRepo repository.RoutesRepository
}

// NewRoutesService RoutesServiceの新しいインスタンスを作成
func NewRoutesService(routesRepo repository.RoutesRepository) RoutesService {
	return &routesServiceImpl{
		routesRepo: routesRepo,
	}
}

func (s *routesServiceImpl) ListRoutes(ctx context.Context, limit, offset int) ([]model.RouteSummary, error) {
	limit, offset = normalizePage(limit, offset)

	summaries, err := s.routesRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ルート一覧の取得失敗: %w", err)
	}
	return summaries, nil
}

func (s *routesServiceImpl) GetRouteDetail(ctx context.Context, id string) (*model.RouteDocument, error) {
	if id == "" {
		return nil, fmt.Errorf("ルートIDは必須です")
	}

	doc, err := s.routesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ルート詳細の取得失敗: %w", err)
	}
	return doc, nil
}

// normalizePage ページングの既定値と上限
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
