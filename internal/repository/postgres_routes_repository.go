package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"Voyage-App/internal/domain/model"
	"Voyage-App/internal/domain/repository"
	"Voyage-App/internal/infrastructure/database"
)

// PostgresRoutesRepository 行程ルートのPostgres永続化。
// 書き込みはルート単位のdelete-and-reinsertで、呼び出し側のトランザクション内で実行する前提。
type PostgresRoutesRepository struct {
	db sqlRunner
}

func NewPostgresRoutesRepository(client *database.PostgreSQLClient) *PostgresRoutesRepository {
	return &PostgresRoutesRepository{db: client.DB}
}

// WithTx はトランザクションに紐付けたコピーを返す
func (r *PostgresRoutesRepository) WithTx(tx *sql.Tx) *PostgresRoutesRepository {
	return &PostgresRoutesRepository{db: tx}
}

var _ repository.RoutesRepository = (*PostgresRoutesRepository)(nil)

// ReplaceRoute は該当ルートの行をすべて消してから入れ直す
func (r *PostgresRoutesRepository) ReplaceRoute(ctx context.Context, doc *model.RouteDocument) error {
	deletes := []string{
		`DELETE FROM route_transports WHERE node_id IN (SELECT id FROM route_nodes WHERE route_id = $1)`,
		`DELETE FROM route_attractions WHERE node_id IN (SELECT id FROM route_nodes WHERE route_id = $1)`,
		`DELETE FROM route_restaurants WHERE node_id IN (SELECT id FROM route_nodes WHERE route_id = $1)`,
		`DELETE FROM route_nodes WHERE route_id = $1`,
		`DELETE FROM route_days WHERE route_id = $1`,
		`DELETE FROM routes WHERE id = $1`,
	}
	for _, q := range deletes {
		if _, err := r.db.ExecContext(ctx, q, doc.ID); err != nil {
			return fmt.Errorf("ルート既存行の削除失敗 (route=%s): %w", doc.ID, err)
		}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO routes (id, name, alias, price, price_unit, recommendation, introduction, highlights, total_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, doc.ID, doc.RouteName, doc.RouteAlias, doc.Price, doc.PriceUnit,
		doc.Recommendation, doc.Introduction, pq.Array(doc.Highlights), doc.TotalDays)
	if err != nil {
		return fmt.Errorf("ルート行の挿入失敗 (route=%s): %w", doc.ID, err)
	}

	for pos, day := range doc.Days {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO route_days (id, route_id, day_number, day_title, day_subtitle, position)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, day.ID, doc.ID, day.DayNumber, day.DayTitle, day.DaySubtitle, pos+1)
		if err != nil {
			return fmt.Errorf("日行の挿入失敗 (day=%s): %w", day.ID, err)
		}

		for _, node := range day.Nodes {
			if err := r.insertNode(ctx, doc.ID, day.ID, node); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *PostgresRoutesRepository) insertNode(ctx context.Context, routeID, dayID string, node model.RouteNode) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO route_nodes (id, day_id, route_id, node_order, node_type, start_time, duration_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, node.ID, dayID, routeID, node.NodeOrder, string(node.NodeType), node.StartTime, node.DurationMinutes)
	if err != nil {
		return fmt.Errorf("ノード行の挿入失敗 (node=%s): %w", node.ID, err)
	}

	switch node.NodeType {
	case model.NodeTypeTransport:
		t := node.Transport
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO route_transports (node_id, from_location, to_location, transport_method, route_detail, cost, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, node.ID, t.FromLocation, t.ToLocation, t.TransportMethod, t.RouteDetail, t.Cost, t.Notes)
	case model.NodeTypeAttraction:
		a := node.Attraction
		highlights, jerr := subItemsJSON(a.Highlights)
		if jerr != nil {
			return fmt.Errorf("亮点のJSONエンコード失敗 (node=%s): %w", node.ID, jerr)
		}
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO route_attractions (node_id, name, address, opening_hours, ticket_price, suggested_duration, best_season, description, highlights, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, node.ID, a.Name, a.Address, a.OpeningHours, a.TicketPrice, a.SuggestedDuration, a.BestSeason, a.Description, highlights, a.Notes)
	case model.NodeTypeRestaurant:
		rest := node.Restaurant
		dishes, jerr := subItemsJSON(rest.RecommendedDishes)
		if jerr != nil {
			return fmt.Errorf("推荐菜品のJSONエンコード失敗 (node=%s): %w", node.ID, jerr)
		}
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO route_restaurants (node_id, name, address, avg_cost, must_eat_rating, queue_status, phone, business_hours, background, recommended_dishes, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, node.ID, rest.Name, rest.Address, rest.AvgCost, rest.MustEatRating, rest.QueueStatus,
			rest.Phone, rest.BusinessHours, rest.Background, dishes, rest.Notes)
	}
	if err != nil {
		return fmt.Errorf("ノード詳細行の挿入失敗 (node=%s, type=%s): %w", node.ID, node.NodeType, err)
	}
	return nil
}

// subItemsJSON はサブ項目列をjsonb用の文字列にする（空ならNULL）
func subItemsJSON(items []model.RouteSubItem) (any, error) {
	if len(items) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// List はルート概要を名前順で返す
func (r *PostgresRoutesRepository) List(ctx context.Context, limit, offset int) ([]model.RouteSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, alias, price, price_unit, total_days, highlights
		FROM routes ORDER BY name LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ルート一覧の取得失敗: %w", err)
	}
	defer rows.Close()

	var out []model.RouteSummary
	for rows.Next() {
		var s model.RouteSummary
		var alias, unit sql.NullString
		var price sql.NullFloat64
		if err := rows.Scan(&s.ID, &s.RouteName, &alias, &price, &unit, &s.TotalDays, pq.Array(&s.Highlights)); err != nil {
			return nil, fmt.Errorf("ルート行のスキャン失敗: %w", err)
		}
		s.RouteAlias = nsPtr(alias)
		s.Price = nfPtr(price)
		s.PriceUnit = nsPtr(unit)
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID はルート1件を日・ノード・ペイロードまで組み立てて返す
func (r *PostgresRoutesRepository) GetByID(ctx context.Context, id string) (*model.RouteDocument, error) {
	doc := &model.RouteDocument{}
	var alias, unit, recommendation, introduction sql.NullString
	var price sql.NullFloat64
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, alias, price, price_unit, recommendation, introduction, highlights, total_days
		FROM routes WHERE id = $1
	`, id).Scan(&doc.ID, &doc.RouteName, &alias, &price, &unit,
		&recommendation, &introduction, pq.Array(&doc.Highlights), &doc.TotalDays)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("ルート %s が見つかりません", id)
		}
		return nil, fmt.Errorf("ルートの取得失敗 (route=%s): %w", id, err)
	}
	doc.RouteAlias = nsPtr(alias)
	doc.Price = nfPtr(price)
	doc.PriceUnit = nsPtr(unit)
	doc.Recommendation = nsPtr(recommendation)
	doc.Introduction = nsPtr(introduction)

	days, err := r.loadDays(ctx, id)
	if err != nil {
		return nil, err
	}
	doc.Days = days
	return doc, nil
}

func (r *PostgresRoutesRepository) loadDays(ctx context.Context, routeID string) ([]model.RouteDay, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, day_number, day_title, day_subtitle
		FROM route_days WHERE route_id = $1 ORDER BY position
	`, routeID)
	if err != nil {
		return nil, fmt.Errorf("日一覧の取得失敗 (route=%s): %w", routeID, err)
	}
	defer rows.Close()

	var days []model.RouteDay
	for rows.Next() {
		day := model.RouteDay{RouteID: routeID}
		var subtitle sql.NullString
		if err := rows.Scan(&day.ID, &day.DayNumber, &day.DayTitle, &subtitle); err != nil {
			return nil, fmt.Errorf("日行のスキャン失敗: %w", err)
		}
		day.DaySubtitle = nsPtr(subtitle)
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range days {
		nodes, err := r.loadNodes(ctx, days[i].ID)
		if err != nil {
			return nil, err
		}
		days[i].Nodes = nodes
	}
	return days, nil
}

func (r *PostgresRoutesRepository) loadNodes(ctx context.Context, dayID string) ([]model.RouteNode, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, node_order, node_type, start_time, duration_minutes
		FROM route_nodes WHERE day_id = $1 ORDER BY node_order
	`, dayID)
	if err != nil {
		return nil, fmt.Errorf("ノード一覧の取得失敗 (day=%s): %w", dayID, err)
	}
	defer rows.Close()

	var nodes []model.RouteNode
	for rows.Next() {
		node := model.RouteNode{DayID: dayID}
		var nodeType string
		var startTime sql.NullString
		var duration sql.NullInt64
		if err := rows.Scan(&node.ID, &node.NodeOrder, &nodeType, &startTime, &duration); err != nil {
			return nil, fmt.Errorf("ノード行のスキャン失敗: %w", err)
		}
		node.NodeType = model.RouteNodeType(nodeType)
		node.StartTime = nsPtr(startTime)
		node.DurationMinutes = niPtr(duration)
		nodes = append(nodes, node)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range nodes {
		if err := r.loadNodePayload(ctx, &nodes[i]); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (r *PostgresRoutesRepository) loadNodePayload(ctx context.Context, node *model.RouteNode) error {
	switch node.NodeType {
	case model.NodeTypeTransport:
		t := &model.TransportPayload{}
		var from, to, detail, notes sql.NullString
		var cost sql.NullFloat64
		err := r.db.QueryRowContext(ctx, `
			SELECT from_location, to_location, transport_method, route_detail, cost, notes
			FROM route_transports WHERE node_id = $1
		`, node.ID).Scan(&from, &to, &t.TransportMethod, &detail, &cost, &notes)
		if err != nil {
			return fmt.Errorf("移動詳細の取得失敗 (node=%s): %w", node.ID, err)
		}
		t.FromLocation, t.ToLocation, t.RouteDetail, t.Cost, t.Notes = nsPtr(from), nsPtr(to), nsPtr(detail), nfPtr(cost), nsPtr(notes)
		node.Transport = t
	case model.NodeTypeAttraction:
		a := &model.AttractionPayload{}
		var address, hours, ticket, duration, season, description, highlights, notes sql.NullString
		err := r.db.QueryRowContext(ctx, `
			SELECT name, address, opening_hours, ticket_price, suggested_duration, best_season, description, highlights, notes
			FROM route_attractions WHERE node_id = $1
		`, node.ID).Scan(&a.Name, &address, &hours, &ticket, &duration, &season, &description, &highlights, &notes)
		if err != nil {
			return fmt.Errorf("観光詳細の取得失敗 (node=%s): %w", node.ID, err)
		}
		a.Address, a.OpeningHours, a.TicketPrice = nsPtr(address), nsPtr(hours), nsPtr(ticket)
		a.SuggestedDuration, a.BestSeason, a.Description, a.Notes = nsPtr(duration), nsPtr(season), nsPtr(description), nsPtr(notes)
		if highlights.Valid {
			if err := json.Unmarshal([]byte(highlights.String), &a.Highlights); err != nil {
				return fmt.Errorf("亮点のJSONデコード失敗 (node=%s): %w", node.ID, err)
			}
		}
		node.Attraction = a
	case model.NodeTypeRestaurant:
		rest := &model.RestaurantPayload{}
		var address, queue, phone, hours, background, dishes, notes sql.NullString
		var avgCost sql.NullFloat64
		var rating sql.NullInt64
		err := r.db.QueryRowContext(ctx, `
			SELECT name, address, avg_cost, must_eat_rating, queue_status, phone, business_hours, background, recommended_dishes, notes
			FROM route_restaurants WHERE node_id = $1
		`, node.ID).Scan(&rest.Name, &address, &avgCost, &rating, &queue, &phone, &hours, &background, &dishes, &notes)
		if err != nil {
			return fmt.Errorf("食事詳細の取得失敗 (node=%s): %w", node.ID, err)
		}
		rest.Address, rest.AvgCost, rest.MustEatRating = nsPtr(address), nfPtr(avgCost), niPtr(rating)
		rest.QueueStatus, rest.Phone, rest.BusinessHours, rest.Background, rest.Notes = nsPtr(queue), nsPtr(phone), nsPtr(hours), nsPtr(background), nsPtr(notes)
		if dishes.Valid {
			if err := json.Unmarshal([]byte(dishes.String), &rest.RecommendedDishes); err != nil {
				return fmt.Errorf("推荐菜品のJSONデコード失敗 (node=%s): %w", node.ID, err)
			}
		}
		node.Restaurant = rest
	}
	return nil
}
