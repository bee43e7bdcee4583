package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"github.com/paulmach/orb"

	"Voyage-App/internal/domain/model"
	"Voyage-App/internal/domain/repository"
	"Voyage-App/internal/infrastructure/database"
)

// PostgresCatalogRepository 目的地・景点・餐厅・菜品・酒店のPostgres永続化。
// 書き込みはすべてID衝突時上書きのUPSERT。
type PostgresCatalogRepository struct {
	db sqlRunner
}

func NewPostgresCatalogRepository(client *database.PostgreSQLClient) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: client.DB}
}

// WithTx はトランザクションに紐付けたコピーを返す
func (r *PostgresCatalogRepository) WithTx(tx *sql.Tx) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: tx}
}

var (
	_ repository.CatalogWriteRepository = (*PostgresCatalogRepository)(nil)
	_ repository.CatalogReadRepository  = (*PostgresCatalogRepository)(nil)
)

func (r *PostgresCatalogRepository) UpsertDestination(ctx context.Context, d *model.Destination) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO destinations (id, name, description, long_description, cover_image_url, tour_count)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			long_description = EXCLUDED.long_description,
			cover_image_url = EXCLUDED.cover_image_url,
			tour_count = EXCLUDED.tour_count,
			updated_at = NOW()
	`, d.ID, d.Name, d.Description, d.LongDescription, d.ImageURL, d.TourCount)
	if err != nil {
		return fmt.Errorf("目的地のUPSERT失敗 (id=%s): %w", d.ID, err)
	}
	return nil
}

func (r *PostgresCatalogRepository) UpsertAttraction(ctx context.Context, a *model.Attraction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attractions (
			id, destination_id, name, name_zh, name_en, province, city, district, region, address, lat, lng,
			category, nearby_transport, opening_hours, ticket_price, ticket_purchase, suggested_duration,
			best_visit_date, introduction, suitable_for, selling_points, tags, photos, image_url, rating, reason, top_review
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,
			$13,$14,$15,$16,$17,$18,
			$19,$20,$21,$22,$23,$24,$25,$26,$27,$28
		)
		ON CONFLICT (id) DO UPDATE SET
			destination_id = EXCLUDED.destination_id,
			name = EXCLUDED.name,
			name_zh = EXCLUDED.name_zh,
			name_en = EXCLUDED.name_en,
			province = EXCLUDED.province,
			city = EXCLUDED.city,
			district = EXCLUDED.district,
			region = EXCLUDED.region,
			address = EXCLUDED.address,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			category = EXCLUDED.category,
			nearby_transport = EXCLUDED.nearby_transport,
			opening_hours = EXCLUDED.opening_hours,
			ticket_price = EXCLUDED.ticket_price,
			ticket_purchase = EXCLUDED.ticket_purchase,
			suggested_duration = EXCLUDED.suggested_duration,
			best_visit_date = EXCLUDED.best_visit_date,
			introduction = EXCLUDED.introduction,
			suitable_for = EXCLUDED.suitable_for,
			selling_points = EXCLUDED.selling_points,
			tags = EXCLUDED.tags,
			photos = EXCLUDED.photos,
			image_url = EXCLUDED.image_url,
			rating = EXCLUDED.rating,
			reason = EXCLUDED.reason,
			top_review = EXCLUDED.top_review,
			updated_at = NOW()
	`, a.ID, a.DestinationID, a.Name, a.NameZh, a.NameEn, a.Province, a.City, a.District, a.Region, a.Address,
		model.Lat(a.Location), model.Lng(a.Location),
		a.Category, a.NearbyTransport, a.OpeningHours, a.TicketPrice, a.TicketPurchase, a.SuggestedDuration,
		a.BestVisitDate, a.Introduction, pq.Array(a.SuitableFor), pq.Array(a.SellingPoints), pq.Array(a.Tags),
		pq.Array(a.Photos), a.ImageURL, a.Rating, a.Reason, a.TopReview)
	if err != nil {
		return fmt.Errorf("景点のUPSERT失敗 (id=%s): %w", a.ID, err)
	}
	return nil
}

func (r *PostgresCatalogRepository) UpsertRestaurant(ctx context.Context, rest *model.Restaurant) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO restaurants (
			id, destination_id, name, photo_url, cuisine_type, recommended_dishes,
			address, lat, lng, nearby_transport, phone, opening_hours,
			must_eat_index, avg_cost, queue_status, nearby_attractions,
			price_range, rating, tags, image_url
		) VALUES (
			$1,$2,$3,$4,$5,$6,
			$7,$8,$9,$10,$11,$12,
			$13,$14,$15,$16,
			$17,$18,$19,$20
		)
		ON CONFLICT (id) DO UPDATE SET
			destination_id = EXCLUDED.destination_id,
			name = EXCLUDED.name,
			photo_url = EXCLUDED.photo_url,
			cuisine_type = EXCLUDED.cuisine_type,
			recommended_dishes = EXCLUDED.recommended_dishes,
			address = EXCLUDED.address,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			nearby_transport = EXCLUDED.nearby_transport,
			phone = EXCLUDED.phone,
			opening_hours = EXCLUDED.opening_hours,
			must_eat_index = EXCLUDED.must_eat_index,
			avg_cost = EXCLUDED.avg_cost,
			queue_status = EXCLUDED.queue_status,
			nearby_attractions = EXCLUDED.nearby_attractions,
			price_range = EXCLUDED.price_range,
			rating = EXCLUDED.rating,
			tags = EXCLUDED.tags,
			image_url = EXCLUDED.image_url,
			updated_at = NOW()
	`, rest.ID, rest.DestinationID, rest.Name, rest.PhotoURL, rest.CuisineType, pq.Array(rest.RecommendedDishes),
		rest.Address, model.Lat(rest.Location), model.Lng(rest.Location), rest.NearbyTransport, rest.Phone, rest.OpeningHours,
		rest.MustEatIndex, rest.AvgCost, rest.QueueStatus, pq.Array(rest.NearbyAttractions),
		rest.PriceRange, rest.Rating, pq.Array(rest.Tags), rest.ImageURL)
	if err != nil {
		return fmt.Errorf("餐厅のUPSERT失敗 (id=%s): %w", rest.ID, err)
	}
	return nil
}

func (r *PostgresCatalogRepository) UpsertFood(ctx context.Context, f *model.Food) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO foods (
			id, destination_id, name,
			restaurant_name, restaurant_address, phone, lat, lng, nearby_transport, opening_hours,
			must_eat_index, avg_cost, queue_status, nearby_attractions,
			price_range, reviews, reason, top_review, tags, image_url
		) VALUES (
			$1,$2,$3,
			$4,$5,$6,$7,$8,$9,$10,
			$11,$12,$13,$14,
			$15,$16,$17,$18,$19,$20
		)
		ON CONFLICT (id) DO UPDATE SET
			destination_id = EXCLUDED.destination_id,
			name = EXCLUDED.name,
			restaurant_name = EXCLUDED.restaurant_name,
			restaurant_address = EXCLUDED.restaurant_address,
			phone = EXCLUDED.phone,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			nearby_transport = EXCLUDED.nearby_transport,
			opening_hours = EXCLUDED.opening_hours,
			must_eat_index = EXCLUDED.must_eat_index,
			avg_cost = EXCLUDED.avg_cost,
			queue_status = EXCLUDED.queue_status,
			nearby_attractions = EXCLUDED.nearby_attractions,
			price_range = EXCLUDED.price_range,
			reviews = EXCLUDED.reviews,
			reason = EXCLUDED.reason,
			top_review = EXCLUDED.top_review,
			tags = EXCLUDED.tags,
			image_url = EXCLUDED.image_url,
			updated_at = NOW()
	`, f.ID, f.DestinationID, f.Name,
		f.RestaurantName, f.RestaurantAddress, f.Phone, model.Lat(f.Location), model.Lng(f.Location), f.NearbyTransport, f.OpeningHours,
		f.MustEatIndex, f.AvgCost, f.QueueStatus, pq.Array(f.NearbyAttractions),
		f.PriceRange, f.Reviews, f.Reason, f.TopReview, pq.Array(f.Tags), f.ImageURL)
	if err != nil {
		return fmt.Errorf("菜品のUPSERT失敗 (id=%s): %w", f.ID, err)
	}
	return nil
}

func (r *PostgresCatalogRepository) UpsertHotel(ctx context.Context, h *model.Hotel) error {
	var amenities any
	if h.Amenities != nil {
		b, err := json.Marshal(h.Amenities)
		if err != nil {
			return fmt.Errorf("設備のJSONエンコード失敗 (id=%s): %w", h.ID, err)
		}
		amenities = string(b)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO hotels (id, destination_id, name, address, lat, lng, star_level, price_range, rating, amenities, tags, image_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE SET
			destination_id = EXCLUDED.destination_id,
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			star_level = EXCLUDED.star_level,
			price_range = EXCLUDED.price_range,
			rating = EXCLUDED.rating,
			amenities = EXCLUDED.amenities,
			tags = EXCLUDED.tags,
			image_url = EXCLUDED.image_url,
			updated_at = NOW()
	`, h.ID, h.DestinationID, h.Name, h.Address, model.Lat(h.Location), model.Lng(h.Location),
		h.StarLevel, h.PriceRange, h.Rating, amenities, pq.Array(h.Tags), h.ImageURL)
	if err != nil {
		return fmt.Errorf("酒店のUPSERT失敗 (id=%s): %w", h.ID, err)
	}
	return nil
}

func (r *PostgresCatalogRepository) ListDestinations(ctx context.Context) ([]model.Destination, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, long_description, cover_image_url, tour_count
		FROM destinations ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("目的地一覧の取得失敗: %w", err)
	}
	defer rows.Close()

	var out []model.Destination
	for rows.Next() {
		var d model.Destination
		var longDesc, image sql.NullString
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &longDesc, &image, &d.TourCount); err != nil {
			return nil, fmt.Errorf("目的地行のスキャン失敗: %w", err)
		}
		d.LongDescription = nsPtr(longDesc)
		d.ImageURL = nsPtr(image)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PostgresCatalogRepository) GetDestination(ctx context.Context, id string) (*model.Destination, error) {
	var d model.Destination
	var longDesc, image sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, long_description, cover_image_url, tour_count
		FROM destinations WHERE id = $1
	`, id).Scan(&d.ID, &d.Name, &d.Description, &longDesc, &image, &d.TourCount)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("目的地 %s が見つかりません", id)
		}
		return nil, fmt.Errorf("目的地の取得失敗 (id=%s): %w", id, err)
	}
	d.LongDescription = nsPtr(longDesc)
	d.ImageURL = nsPtr(image)
	return &d, nil
}

// destinationFilter は destination_id の絞り込み付きのWHERE句を組み立てる
func destinationFilter(destinationID string) (string, []any) {
	if destinationID == "" {
		return "", nil
	}
	return " WHERE destination_id = $3", []any{destinationID}
}

const attractionColumns = `id, destination_id, name, name_zh, name_en, region, address, lat, lng, category,
			opening_hours, ticket_price, suggested_duration, introduction, tags, photos, image_url, rating, reason`

func scanAttractions(rows *sql.Rows) ([]model.Attraction, error) {
	var out []model.Attraction
	for rows.Next() {
		var a model.Attraction
		var nameZh, nameEn, region, address, category, hours, ticket, duration, intro, image, reason sql.NullString
		var lat, lng, rating sql.NullFloat64
		if err := rows.Scan(&a.ID, &a.DestinationID, &a.Name, &nameZh, &nameEn, &region, &address, &lat, &lng, &category,
			&hours, &ticket, &duration, &intro, pq.Array(&a.Tags), pq.Array(&a.Photos), &image, &rating, &reason); err != nil {
			return nil, fmt.Errorf("景点行のスキャン失敗: %w", err)
		}
		a.NameZh, a.NameEn, a.Region, a.Address, a.Category = nsPtr(nameZh), nsPtr(nameEn), nsPtr(region), nsPtr(address), nsPtr(category)
		a.OpeningHours, a.TicketPrice, a.SuggestedDuration = nsPtr(hours), nsPtr(ticket), nsPtr(duration)
		a.Introduction, a.ImageURL, a.Rating, a.Reason = nsPtr(intro), nsPtr(image), nfPtr(rating), nsPtr(reason)
		a.Location = pointFromNull(lng, lat)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresCatalogRepository) ListAttractions(ctx context.Context, destinationID string, limit, offset int) ([]model.Attraction, error) {
	where, extra := destinationFilter(destinationID)
	args := append([]any{limit, offset}, extra...)
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+attractionColumns+`
		FROM attractions`+where+` ORDER BY name LIMIT $1 OFFSET $2
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("景点一覧の取得失敗: %w", err)
	}
	defer rows.Close()
	return scanAttractions(rows)
}

// NearbyAttractions は指定地点から半径radiusMeters以内の景点を近い順に返す。
// 緯度経度はスカラー列なので、その場でgeographyを組み立ててST_DWithinにかける。
func (r *PostgresCatalogRepository) NearbyAttractions(ctx context.Context, lat, lng float64, radiusMeters int) ([]model.Attraction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+attractionColumns+`
		FROM attractions
		WHERE lat IS NOT NULL AND lng IS NOT NULL
			AND ST_DWithin(
				ST_GeogFromText($1),
				ST_GeogFromText('POINT(' || lng || ' ' || lat || ')'),
				$2
			)
		ORDER BY ST_Distance(
			ST_GeogFromText($1),
			ST_GeogFromText('POINT(' || lng || ' ' || lat || ')')
		)
		LIMIT 50
	`, pointWKT(lat, lng), radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("周辺景点の取得失敗: %w", err)
	}
	defer rows.Close()
	return scanAttractions(rows)
}

func (r *PostgresCatalogRepository) ListRestaurants(ctx context.Context, destinationID string, limit, offset int) ([]model.Restaurant, error) {
	where, extra := destinationFilter(destinationID)
	args := append([]any{limit, offset}, extra...)
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, destination_id, name, photo_url, cuisine_type, recommended_dishes, address, lat, lng,
			phone, opening_hours, must_eat_index, avg_cost, queue_status, price_range, rating, tags, image_url
		FROM restaurants`+where+` ORDER BY name LIMIT $1 OFFSET $2
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("餐厅一覧の取得失敗: %w", err)
	}
	defer rows.Close()

	var out []model.Restaurant
	for rows.Next() {
		var rest model.Restaurant
		var photo, cuisine, address, phone, hours, avgCost, queue, priceRange, image sql.NullString
		var lat, lng, mustEat, rating sql.NullFloat64
		if err := rows.Scan(&rest.ID, &rest.DestinationID, &rest.Name, &photo, &cuisine, pq.Array(&rest.RecommendedDishes),
			&address, &lat, &lng, &phone, &hours, &mustEat, &avgCost, &queue, &priceRange, &rating,
			pq.Array(&rest.Tags), &image); err != nil {
			return nil, fmt.Errorf("餐厅行のスキャン失敗: %w", err)
		}
		rest.PhotoURL, rest.CuisineType, rest.Address, rest.Phone = nsPtr(photo), nsPtr(cuisine), nsPtr(address), nsPtr(phone)
		rest.OpeningHours, rest.AvgCost, rest.QueueStatus, rest.PriceRange, rest.ImageURL = nsPtr(hours), nsPtr(avgCost), nsPtr(queue), nsPtr(priceRange), nsPtr(image)
		rest.MustEatIndex, rest.Rating = nfPtr(mustEat), nfPtr(rating)
		rest.Location = pointFromNull(lng, lat)
		out = append(out, rest)
	}
	return out, rows.Err()
}

func (r *PostgresCatalogRepository) ListFoods(ctx context.Context, destinationID string, limit, offset int) ([]model.Food, error) {
	where, extra := destinationFilter(destinationID)
	args := append([]any{limit, offset}, extra...)
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, destination_id, name, restaurant_name, restaurant_address, phone, lat, lng,
			must_eat_index, avg_cost, price_range, reviews, reason, top_review, tags, image_url
		FROM foods`+where+` ORDER BY name LIMIT $1 OFFSET $2
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("菜品一覧の取得失敗: %w", err)
	}
	defer rows.Close()

	var out []model.Food
	for rows.Next() {
		var f model.Food
		var restName, restAddr, phone, avgCost, priceRange, reason, topReview, image sql.NullString
		var lat, lng, mustEat sql.NullFloat64
		if err := rows.Scan(&f.ID, &f.DestinationID, &f.Name, &restName, &restAddr, &phone, &lat, &lng,
			&mustEat, &avgCost, &priceRange, &f.Reviews, &reason, &topReview, pq.Array(&f.Tags), &image); err != nil {
			return nil, fmt.Errorf("菜品行のスキャン失敗: %w", err)
		}
		f.RestaurantName, f.RestaurantAddress, f.Phone = nsPtr(restName), nsPtr(restAddr), nsPtr(phone)
		f.AvgCost, f.PriceRange, f.Reason, f.TopReview, f.ImageURL = nsPtr(avgCost), nsPtr(priceRange), nsPtr(reason), nsPtr(topReview), nsPtr(image)
		f.MustEatIndex = nfPtr(mustEat)
		f.Location = pointFromNull(lng, lat)
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *PostgresCatalogRepository) ListHotels(ctx context.Context, destinationID string, limit, offset int) ([]model.Hotel, error) {
	where, extra := destinationFilter(destinationID)
	args := append([]any{limit, offset}, extra...)
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, destination_id, name, address, lat, lng, star_level, price_range, rating, amenities, tags, image_url
		FROM hotels`+where+` ORDER BY name LIMIT $1 OFFSET $2
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("酒店一覧の取得失敗: %w", err)
	}
	defer rows.Close()

	var out []model.Hotel
	for rows.Next() {
		var h model.Hotel
		var address, priceRange, amenities, image sql.NullString
		var lat, lng, star, rating sql.NullFloat64
		if err := rows.Scan(&h.ID, &h.DestinationID, &h.Name, &address, &lat, &lng, &star, &priceRange,
			&rating, &amenities, pq.Array(&h.Tags), &image); err != nil {
			return nil, fmt.Errorf("酒店行のスキャン失敗: %w", err)
		}
		h.Address, h.PriceRange, h.ImageURL = nsPtr(address), nsPtr(priceRange), nsPtr(image)
		h.StarLevel, h.Rating = nfPtr(star), nfPtr(rating)
		h.Location = pointFromNull(lng, lat)
		if amenities.Valid {
			if err := json.Unmarshal([]byte(amenities.String), &h.Amenities); err != nil {
				return nil, fmt.Errorf("設備のJSONデコード失敗 (id=%s): %w", h.ID, err)
			}
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func pointFromNull(lng, lat sql.NullFloat64) *orb.Point {
	if !lng.Valid || !lat.Valid {
		return nil
	}
	p := orb.Point{lng.Float64, lat.Float64}
	return &p
}
