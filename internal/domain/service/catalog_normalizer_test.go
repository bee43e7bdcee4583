package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"Voyage-App/internal/domain/model"
)

func TestMakeStableID(t *testing.T) {
	id := MakeStableID("attr", "老寺庙|Main St 1号")

	// 決定的で、prefix_ + 短縮ハッシュの形
	assert.Equal(t, id, MakeStableID("attr", "老寺庙|Main St 1号"))
	assert.True(t, strings.HasPrefix(id, "attr_"))
	assert.Len(t, id, len("attr_")+12)

	// キーが違えばIDも変わる
	assert.NotEqual(t, id, MakeStableID("attr", "老寺庙|Main St 2号"))
	assert.NotEqual(t, id, MakeStableID("rest", "老寺庙|Main St 1号"))
}

func TestNormalizeAttractions(t *testing.T) {
	rows := []DataRow{
		{
			"景点名称（中文）": "老寺庙",
			"景点名称（英文）": "Old Temple",
			"省":        "示例省",
			"市":        "示例市",
			"区":        "老城区",
			"地址":       "Main St 1号",
			"经度":       "120.15",
			"纬度":       "30.25",
			"景区介绍":     "城里最古老的寺庙。",
			"景点照片":     "a.jpg|b.jpg",
			"适合人群":     "家庭，情侣",
		},
		{"景点名称（中文）": ""}, // 名前の無い行は捨てる
	}

	attractions := NormalizeAttractions(rows)
	assert.Len(t, attractions, 1)

	a := attractions[0]
	assert.True(t, strings.HasPrefix(a.ID, "attr_"))
	assert.Equal(t, "老寺庙", a.Name)
	assert.Equal(t, "Old Temple", *a.NameEn)
	assert.Equal(t, "示例市", a.DestinationKey)
	assert.Equal(t, "示例省 · 示例市 · 老城区", *a.Region)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, a.Photos)
	assert.Equal(t, "a.jpg", *a.ImageURL)
	assert.Equal(t, []string{"家庭", "情侣"}, a.SuitableFor)
	assert.Equal(t, "城里最古老的寺庙。", *a.Introduction)

	assert.NotNil(t, a.Location)
	assert.Equal(t, 120.15, a.Location.Lon())
	assert.Equal(t, 30.25, a.Location.Lat())
}

func TestNormalizeRestaurants(t *testing.T) {
	rows := []DataRow{
		{
			"餐厅名称": "老字号面馆",
			"餐厅照片": "noodle.jpg",
			"菜品类型": "小吃，面食",
			"人均消费": "45元",
			"必吃指数": "4.5",
			"餐厅地址": "Food Ave 2号",
			"附近景点": "老寺庙、市集",
		},
		{
			// 別の表では「餐厅图片」の列名になっている
			"餐厅名称": "夜市烧烤",
			"餐厅图片": "bbq.jpg",
		},
		{"餐厅名称": ""},
	}

	restaurants := NormalizeRestaurants(rows)
	assert.Len(t, restaurants, 2)

	r := restaurants[0]
	assert.Equal(t, "老字号面馆", r.Name)
	assert.Equal(t, "noodle.jpg", *r.PhotoURL)
	assert.Equal(t, []string{"小吃", "面食"}, r.Tags)
	assert.Equal(t, 4.5, *r.MustEatIndex)
	assert.Equal(t, 4.5, *r.Rating)
	assert.Equal(t, "45元", *r.AvgCost)
	assert.Equal(t, []string{"老寺庙", "市集"}, r.NearbyAttractions)

	assert.Equal(t, "bbq.jpg", *restaurants[1].PhotoURL)
	assert.Equal(t, []string{}, restaurants[1].Tags)
}

func TestNormalizeFoods(t *testing.T) {
	rows := []DataRow{
		{
			"菜品名称":   "招牌面",
			"菜品简介":   "汤头浓郁。",
			"推荐餐厅名称": "老字号面馆",
			"人均消费":   "45元",
		},
		{
			// 列名ゆれ：餐品简介／推荐餐厅
			"菜品名称": "烤串",
			"餐品简介": "炭火现烤。",
			"推荐餐厅": "夜市烧烤",
		},
	}

	foods := NormalizeFoods(rows)
	assert.Len(t, foods, 2)

	assert.Equal(t, "汤头浓郁。", *foods[0].Reason)
	assert.Equal(t, "老字号面馆", *foods[0].RestaurantName)
	assert.Equal(t, "Recommended at: 老字号面馆", *foods[0].TopReview)

	assert.Equal(t, "炭火现烤。", *foods[1].Reason)
	assert.Equal(t, "夜市烧烤", *foods[1].RestaurantName)
}

func TestNormalizeHotels(t *testing.T) {
	rows := []DataRow{
		{
			"id":            "hotel_lakeside",
			"destinationId": "dest_abc123",
			"name":          "湖畔酒店",
			"starLevel":     "5",
			"amenities":     map[string]any{"wifi": true},
		},
		{
			// 列名ゆれ：中国語の列名でも目的地が紐付くこと
			"id":    "hotel_hill",
			"目的地ID": "dest_def456",
			"酒店名称":  "山景酒店",
		},
	}

	hotels := NormalizeHotels(rows)
	assert.Len(t, hotels, 2)

	assert.Equal(t, "hotel_lakeside", hotels[0].ID)
	assert.Equal(t, "dest_abc123", hotels[0].DestinationID)
	assert.Equal(t, "湖畔酒店", hotels[0].Name)
	assert.Equal(t, 5.0, *hotels[0].StarLevel)
	assert.Equal(t, map[string]any{"wifi": true}, hotels[0].Amenities)

	assert.Equal(t, "dest_def456", hotels[1].DestinationID)
	assert.Equal(t, "山景酒店", hotels[1].Name)
}

func TestMergeDuplicateRestaurants(t *testing.T) {
	addr := "Food Ave 2号"
	low := 3.0
	high := 4.5
	restaurants := []model.Restaurant{
		{Name: "老字号面馆", Address: &addr, MustEatIndex: &low, Rating: &low},
		{Name: "老字号面馆", MustEatIndex: &high, Rating: &high, RecommendedDishes: []string{"招牌面"}},
		{Name: "别家店"},
	}

	merged := MergeDuplicateRestaurants(restaurants)
	assert.Len(t, merged, 2)

	// スカラーは先勝ち、必吃指数だけは最大値
	r := merged[0]
	assert.Equal(t, "老字号面馆", r.Name)
	assert.Equal(t, addr, *r.Address)
	assert.Equal(t, 4.5, *r.MustEatIndex)
	assert.Equal(t, 4.5, *r.Rating)
	assert.Equal(t, []string{"招牌面"}, r.RecommendedDishes)
}

func TestDestinationResolver(t *testing.T) {
	rows := []DataRow{
		{"景点名称（中文）": "老寺庙", "景点名称（英文）": "Old Temple", "市": "示例市", "地址": "示例市Main St 1号"},
		{"景点名称（中文）": "湖心亭", "市": "湖城", "地址": "湖城湖畔路"},
	}
	attractions := NormalizeAttractions(rows)
	resolver := NewDestinationResolver(attractions)

	t.Run("景点の市から目的地が導出され、その他が付く", func(t *testing.T) {
		destinations := resolver.Destinations()
		assert.Len(t, destinations, 3) // 示例市・湖城・Other

		names := make(map[string]bool)
		for _, d := range destinations {
			names[d.Name] = true
		}
		assert.True(t, names["示例市"])
		assert.True(t, names["湖城"])
		assert.True(t, names["Other"])
	})

	t.Run("景点自身に目的地IDが確定する", func(t *testing.T) {
		assert.NotEmpty(t, attractions[0].DestinationID)
		assert.NotEqual(t, OtherDestinationID, attractions[0].DestinationID)
		assert.NotEqual(t, attractions[0].DestinationID, attractions[1].DestinationID)
	})

	t.Run("附近景点の名前一致で解決する", func(t *testing.T) {
		destID := resolver.Resolve([]string{"Old Temple"}, nil)
		assert.Equal(t, attractions[0].DestinationID, destID)
	})

	t.Run("名前で当たらなければ住所の部分一致", func(t *testing.T) {
		address := "湖城中心大街9号"
		destID := resolver.Resolve([]string{"不明景点"}, &address)
		assert.Equal(t, attractions[1].DestinationID, destID)
	})

	t.Run("どちらでも当たらなければその他", func(t *testing.T) {
		address := "远方某处"
		assert.Equal(t, OtherDestinationID, resolver.Resolve(nil, &address))
	})

	t.Run("餐厅・菜品へまとめて割り当てる", func(t *testing.T) {
		temple := "老寺庙"
		restaurants := []model.Restaurant{{Name: "面馆", NearbyAttractions: []string{temple}}}
		foods := []model.Food{{Name: "招牌面"}}

		resolver.AssignDestinations(restaurants, foods)
		assert.Equal(t, attractions[0].DestinationID, restaurants[0].DestinationID)
		assert.Equal(t, OtherDestinationID, foods[0].DestinationID)
	})
}
