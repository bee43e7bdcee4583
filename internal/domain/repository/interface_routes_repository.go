package repository

import (
	"context"

	"Voyage-App/internal/domain/model"
)

// RoutesRepository 行程ルートの永続化と読み出し
type RoutesRepository interface {
	// ReplaceRoute は該当ルートの既存行をすべて消してから入れ直す。
	// 部分更新はしない（中途半端な日・ノード行を残さないため）。
	ReplaceRoute(ctx context.Context, doc *model.RouteDocument) error

	// GetByID はルート1件を日・ノード・種別別ペイロードまで組み立てて返す
	GetByID(ctx context.Context, id string) (*model.RouteDocument, error)

	// List はルート概要の一覧を返す
	List(ctx context.Context, limit, offset int) ([]model.RouteSummary, error)
}
