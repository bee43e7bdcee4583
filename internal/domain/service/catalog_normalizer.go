package service

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/paulmach/orb"

	"Voyage-App/internal/domain/helper"
	"Voyage-App/internal/domain/model"
)

// DataRow 表形式データ（CSV/JSON）の1行。値は文字列か配列のどちらか。
type DataRow map[string]any

func (r DataRow) str(keys ...string) string {
	// 同義の列名（表記ゆれ）を先頭から順に試す
	for _, key := range keys {
		if v, ok := r[key]; ok && v != nil {
			if s := strings.TrimSpace(fmt.Sprintf("%v", v)); s != "" {
				return s
			}
		}
	}
	return ""
}

func (r DataRow) multi(keys ...string) []string {
	for _, key := range keys {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		if arr, ok := v.([]any); ok {
			var out []string
			for _, item := range arr {
				if s := strings.TrimSpace(fmt.Sprintf("%v", item)); s != "" {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
			continue
		}
		if parts := helper.SplitMultiValue(fmt.Sprintf("%v", v)); parts != nil {
			return parts
		}
	}
	return nil
}

func (r DataRow) point(lngKey, latKey string) *orb.Point {
	lng := helper.ParseLeadingNumber(r.str(lngKey))
	lat := helper.ParseLeadingNumber(r.str(latKey))
	if lng == nil || lat == nil {
		return nil
	}
	p := orb.Point{*lng, *lat}
	return &p
}

// MakeStableID は接頭辞と安定キーから決定的なIDを作る（prefix_sha1先頭12桁）
func MakeStableID(prefix, stableKey string) string {
	sum := sha1.Sum([]byte(prefix + ":" + stableKey))
	return prefix + "_" + hex.EncodeToString(sum[:])[:12]
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, sep)
}

// NormalizeAttractions は景点CSV/JSONの行を正規化する
func NormalizeAttractions(rows []DataRow) []model.Attraction {
	var out []model.Attraction
	for _, row := range rows {
		nameZh := row.str("景点名称（中文）")
		nameEn := row.str("景点名称（英文）")
		province := row.str("省")
		city := row.str("市")
		district := row.str("区")
		address := row.str("地址")

		name := nameZh
		if name == "" {
			name = nameEn
		}
		if name == "" {
			continue
		}

		stableKey := joinNonEmpty("|", nameZh, address, province, city, district)
		if stableKey == "" {
			stableKey = name
		}

		region := strPtr(joinNonEmpty(" · ", province, city, district))
		photos := row.multi("景点照片")
		intro := row.str("景区介绍")

		a := model.Attraction{
			ID:                MakeStableID("attr", stableKey),
			DestinationKey:    city,
			Name:              name,
			NameZh:            strPtr(nameZh),
			NameEn:            strPtr(nameEn),
			Province:          strPtr(province),
			City:              strPtr(city),
			District:          strPtr(district),
			Region:            region,
			Address:           strPtr(address),
			Location:          row.point("经度", "纬度"),
			Category:          strPtr(row.str("景区分类")),
			NearbyTransport:   strPtr(row.str("附近交通")),
			OpeningHours:      strPtr(row.str("开放时间")),
			TicketPrice:       strPtr(row.str("门票价格")),
			TicketPurchase:    strPtr(row.str("购票方式")),
			SuggestedDuration: strPtr(row.str("建议游览时长")),
			BestVisitDate:     strPtr(row.str("最佳游览日期")),
			Introduction:      strPtr(intro),
			SuitableFor:       row.multi("适合人群"),
			SellingPoints:     row.multi("景区卖点"),
			Tags:              []string{},
			Photos:            photos,
			Reason:            strPtr(intro),
		}
		if len(photos) > 0 {
			a.ImageURL = strPtr(photos[0])
		}
		out = append(out, a)
	}
	return out
}

// NormalizeRestaurants は餐厅CSV/JSONの行を正規化する。店名が無い行は捨てる。
func NormalizeRestaurants(rows []DataRow) []model.Restaurant {
	var out []model.Restaurant
	for _, row := range rows {
		name := row.str("餐厅名称")
		if name == "" {
			continue
		}
		// 「餐厅照片」と「餐厅图片」のどちらの列名も受け付ける
		photo := row.str("餐厅照片", "餐厅图片")
		cuisine := row.str("菜品类型")
		avgCost := row.str("人均消费")
		mustEat := helper.ParseLeadingNumber(row.str("必吃指数"))

		stableKey := joinNonEmpty("|", name, row.str("餐厅地址"), row.str("餐厅电话"))
		if stableKey == "" {
			stableKey = name
		}

		tags := helper.SplitMultiValue(cuisine)
		if tags == nil {
			tags = []string{}
		}

		out = append(out, model.Restaurant{
			ID:                MakeStableID("rest", stableKey),
			Name:              name,
			PhotoURL:          strPtr(photo),
			CuisineType:       strPtr(cuisine),
			RecommendedDishes: row.multi("推荐菜品"),
			Address:           strPtr(row.str("餐厅地址")),
			Location:          row.point("经度", "纬度"),
			NearbyTransport:   strPtr(row.str("附近交通")),
			Phone:             strPtr(row.str("餐厅电话")),
			OpeningHours:      strPtr(row.str("开放时间")),
			MustEatIndex:      mustEat,
			AvgCost:           strPtr(avgCost),
			QueueStatus:       strPtr(row.str("排队情况")),
			NearbyAttractions: row.multi("附近景点"),
			PriceRange:        strPtr(avgCost),
			Rating:            mustEat,
			Tags:              tags,
			ImageURL:          strPtr(photo),
		})
	}
	return out
}

// NormalizeFoods は菜品CSV/JSONの行を正規化する。料理名が無い行は捨てる。
func NormalizeFoods(rows []DataRow) []model.Food {
	var out []model.Food
	for _, row := range rows {
		name := row.str("菜品名称")
		if name == "" {
			continue
		}
		// 「菜品简介／餐品简介」「推荐餐厅名称／推荐餐厅」の列名ゆれを受け付ける
		reason := row.str("菜品简介", "餐品简介")
		restaurantName := row.str("推荐餐厅名称", "推荐餐厅")
		avgCost := row.str("人均消费")

		stableKey := joinNonEmpty("|", name, restaurantName, row.str("餐厅地址"))
		if stableKey == "" {
			stableKey = name
		}

		f := model.Food{
			ID:                MakeStableID("food", stableKey),
			Name:              name,
			ImageURL:          strPtr(row.str("菜品照片")),
			Tags:              []string{},
			PriceRange:        strPtr(avgCost),
			Reviews:           0,
			Reason:            strPtr(reason),
			RestaurantName:    strPtr(restaurantName),
			RestaurantAddress: strPtr(row.str("餐厅地址")),
			Phone:             strPtr(row.str("联系电话")),
			Location:          row.point("经度", "纬度"),
			NearbyTransport:   strPtr(row.str("附近交通")),
			OpeningHours:      strPtr(row.str("开放时间")),
			MustEatIndex:      helper.ParseLeadingNumber(row.str("必吃指数")),
			AvgCost:           strPtr(avgCost),
			QueueStatus:       strPtr(row.str("排队情况")),
			NearbyAttractions: row.multi("附近景点"),
		}
		if restaurantName != "" {
			f.TopReview = strPtr("Recommended at: " + restaurantName)
		}
		out = append(out, f)
	}
	return out
}

// NormalizeHotels は酒店JSONの行を正規化する
func NormalizeHotels(rows []DataRow) []model.Hotel {
	var out []model.Hotel
	for _, row := range rows {
		name := row.str("name", "酒店名称")
		if name == "" {
			continue
		}
		var amenities map[string]any
		if v, ok := row["amenities"].(map[string]any); ok {
			amenities = v
		}
		out = append(out, model.Hotel{
			ID:            row.str("id"),
			DestinationID: row.str("destinationId", "目的地ID"),
			Name:          name,
			Address:       strPtr(row.str("address", "地址")),
			Location:      row.point("lng", "lat"),
			StarLevel:     helper.ParseLeadingNumber(row.str("starLevel", "星级")),
			PriceRange:    strPtr(row.str("priceRange", "价格区间")),
			Rating:        helper.ParseLeadingNumber(row.str("rating", "评分")),
			Amenities:     amenities,
			Tags:          row.multi("tags"),
			ImageURL:      strPtr(row.str("image")),
		})
	}
	return out
}

// MergeDuplicateRestaurants は複数の表から来た同名店を1件に畳み込む。
// スカラー項目は先に値が入っていたものを優先し、必吃指数だけは最大値を採る。
func MergeDuplicateRestaurants(restaurants []model.Restaurant) []model.Restaurant {
	var out []model.Restaurant
	index := make(map[string]int)
	for _, r := range restaurants {
		key := strings.ToLower(r.Name)
		pos, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, r)
			continue
		}
		out[pos] = mergeRestaurant(out[pos], r)
	}
	return out
}

func mergeRestaurant(base, other model.Restaurant) model.Restaurant {
	base.PhotoURL = firstNonNil(base.PhotoURL, other.PhotoURL)
	base.CuisineType = firstNonNil(base.CuisineType, other.CuisineType)
	base.Address = firstNonNil(base.Address, other.Address)
	base.Phone = firstNonNil(base.Phone, other.Phone)
	base.OpeningHours = firstNonNil(base.OpeningHours, other.OpeningHours)
	base.AvgCost = firstNonNil(base.AvgCost, other.AvgCost)
	base.QueueStatus = firstNonNil(base.QueueStatus, other.QueueStatus)
	base.PriceRange = firstNonNil(base.PriceRange, other.PriceRange)
	base.ImageURL = firstNonNil(base.ImageURL, other.ImageURL)
	if base.Location == nil {
		base.Location = other.Location
	}
	if len(base.RecommendedDishes) == 0 {
		base.RecommendedDishes = other.RecommendedDishes
	}
	if len(base.NearbyAttractions) == 0 {
		base.NearbyAttractions = other.NearbyAttractions
	}
	if other.MustEatIndex != nil && (base.MustEatIndex == nil || *other.MustEatIndex > *base.MustEatIndex) {
		base.MustEatIndex = other.MustEatIndex
		base.Rating = other.MustEatIndex
	}
	return base
}

func firstNonNil(a, b *string) *string {
	if a != nil && strings.TrimSpace(*a) != "" {
		return a
	}
	return b
}
