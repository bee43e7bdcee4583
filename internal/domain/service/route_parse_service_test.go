package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"Voyage-App/internal/domain/model"
	"Voyage-App/internal/domain/strategy"
)

const sampleRouteDocument = `路线名称：
环城精华2日游

路线别名：
精华线

价格：
3999元/人

推荐理由：
一次走完城市精华。

路线介绍：
适合第一次到访的旅行者。

行程亮点：
• 老城晨景
- 深夜食堂体验

📅 Day 1：古城漫步
初访老城

📍 09:00-10:30 | 老寺庙
地址：Main St 1号
开放时间：08:00-17:00
景点介绍：
城里最古老的寺庙。
游玩亮点：
🌅 晨光
在大殿前看日出。

🚇 10:30-10:50 |交通：地铁前往市集
上车点：寺庙东门
车费：3元

🍜 12:00-13:00 | 午餐：老字号面馆
地址：Food Ave 2号
人均：45元
必吃指数：⭐⭐⭐
推荐菜品：
🍜 招牌面
汤头浓郁。

📅 Day 2：博物馆与夜市
`

func TestParseRouteDocument(t *testing.T) {
	svc := NewRouteParseService()
	doc := svc.ParseRouteDocument("demo_route", sampleRouteDocument)

	t.Run("ヘッダー領域からメタ情報を抽出できる", func(t *testing.T) {
		assert.Equal(t, "demo_route", doc.ID)
		assert.Equal(t, "环城精华2日游", doc.RouteName)
		assert.Equal(t, "精华线", *doc.RouteAlias)
		assert.Equal(t, 3999.0, *doc.Price)
		assert.Equal(t, "元/人", *doc.PriceUnit)
		assert.Equal(t, "一次走完城市精华。", *doc.Recommendation)
		assert.Equal(t, "适合第一次到访的旅行者。", *doc.Introduction)
		assert.Equal(t, []string{"老城晨景", "深夜食堂体验"}, doc.Highlights)
	})

	t.Run("日区切りごとに日セクションが組み立てられる", func(t *testing.T) {
		assert.Equal(t, 2, doc.TotalDays)
		assert.Len(t, doc.Days, 2)

		day1 := doc.Days[0]
		assert.Equal(t, "demo_route_d1", day1.ID)
		assert.Equal(t, 1, day1.DayNumber)
		assert.Equal(t, "古城漫步", day1.DayTitle)
		assert.Equal(t, "初访老城", *day1.DaySubtitle)

		day2 := doc.Days[1]
		assert.Equal(t, "demo_route_d2", day2.ID)
		assert.Equal(t, "博物馆与夜市", day2.DayTitle)
		assert.Nil(t, day2.DaySubtitle)
		assert.Empty(t, day2.Nodes)
	})

	t.Run("ノードは出現順に1始まりの連番とID規約を持つ", func(t *testing.T) {
		nodes := doc.Days[0].Nodes
		assert.Len(t, nodes, 3)
		for i, node := range nodes {
			assert.Equal(t, i+1, node.NodeOrder)
			assert.Equal(t, "demo_route_d1", node.DayID)
		}
		assert.Equal(t, "demo_route_d1_n1", nodes[0].ID)
		assert.Equal(t, "demo_route_d1_n3", nodes[2].ID)
	})

	t.Run("観光ノードの詳細を抽出できる", func(t *testing.T) {
		node := doc.Days[0].Nodes[0]
		assert.Equal(t, model.NodeTypeAttraction, node.NodeType)
		assert.Equal(t, "09:00:00", *node.StartTime)
		assert.Equal(t, 90, *node.DurationMinutes)

		attraction := node.Attraction
		assert.NotNil(t, attraction)
		assert.Equal(t, "老寺庙", attraction.Name)
		assert.Equal(t, "Main St 1号", *attraction.Address)
		assert.Equal(t, "08:00-17:00", *attraction.OpeningHours)
		assert.Equal(t, "城里最古老的寺庙。", *attraction.Description)
		assert.Len(t, attraction.Highlights, 1)
		assert.Equal(t, "🌅 晨光", attraction.Highlights[0].Title)
		assert.Equal(t, "在大殿前看日出。", attraction.Highlights[0].Content)
		assert.Nil(t, attraction.Notes)
	})

	t.Run("移動ノードの詳細を抽出できる", func(t *testing.T) {
		node := doc.Days[0].Nodes[1]
		assert.Equal(t, model.NodeTypeTransport, node.NodeType)
		assert.Equal(t, 20, *node.DurationMinutes)

		transport := node.Transport
		assert.NotNil(t, transport)
		assert.Equal(t, model.TransportMethodSubway, transport.TransportMethod)
		assert.Equal(t, "寺庙东门", *transport.FromLocation)
		assert.Equal(t, 3.0, *transport.Cost)
		assert.Equal(t, "地铁前往市集", *transport.Notes)
		assert.Nil(t, transport.RouteDetail)
	})

	t.Run("食事ノードの詳細を抽出できる", func(t *testing.T) {
		node := doc.Days[0].Nodes[2]
		assert.Equal(t, model.NodeTypeRestaurant, node.NodeType)
		assert.Equal(t, 60, *node.DurationMinutes)

		restaurant := node.Restaurant
		assert.NotNil(t, restaurant)
		assert.Equal(t, "老字号面馆", restaurant.Name)
		assert.Equal(t, "Food Ave 2号", *restaurant.Address)
		assert.Equal(t, 45.0, *restaurant.AvgCost)
		assert.Equal(t, 3, *restaurant.MustEatRating)
		assert.Len(t, restaurant.RecommendedDishes, 1)
		assert.Equal(t, "🍜 招牌面", restaurant.RecommendedDishes[0].Title)
		assert.Equal(t, "汤头浓郁。", restaurant.RecommendedDishes[0].Content)
	})

	t.Run("検証を通過する", func(t *testing.T) {
		assert.NoError(t, doc.Validate())
	})

	t.Run("同じ入力からは同じ結果が得られる", func(t *testing.T) {
		again := svc.ParseRouteDocument("demo_route", sampleRouteDocument)
		assert.Equal(t, doc, again)
	})
}

func TestParseRouteDocumentEnglishLabels(t *testing.T) {
	text := strings.Join([]string{
		"Route Title",
		"My Trip",
		"",
		"Price",
		"120 USD per person",
		"",
		"Highlights",
		"• Sunrise walk",
	}, "\n")

	doc := NewRouteParseService().ParseRouteDocument("trip_en", text)

	assert.Equal(t, "My Trip", doc.RouteName)
	assert.Equal(t, 120.0, *doc.Price)
	assert.Equal(t, "USD per person", *doc.PriceUnit)
	assert.Equal(t, []string{"Sunrise walk"}, doc.Highlights)

	// 日区切りの無い文書でも日数は最低1
	assert.Empty(t, doc.Days)
	assert.Equal(t, 1, doc.TotalDays)
}

func TestParseRouteDocumentDayNumberGap(t *testing.T) {
	text := strings.Join([]string{
		"📅 Day 1：到达",
		"📍 09:00-10:00 | 城门",
		"📅 Day 3：返程",
		"📍 10:00-11:00 | 车站广场",
	}, "\n")

	doc := NewRouteParseService().ParseRouteDocument("gap", text)

	// 日番号は文書の表記のまま保持し、詰め直さない
	assert.Len(t, doc.Days, 2)
	assert.Equal(t, 2, doc.TotalDays)
	assert.Equal(t, 1, doc.Days[0].DayNumber)
	assert.Equal(t, 3, doc.Days[1].DayNumber)
	assert.Equal(t, "gap_d1", doc.Days[0].ID)
	assert.Equal(t, "gap_d3", doc.Days[1].ID)

	// ノードの連番は日ごとに1から振り直す
	assert.Equal(t, "gap_d1_n1", doc.Days[0].Nodes[0].ID)
	assert.Equal(t, "gap_d3_n1", doc.Days[1].Nodes[0].ID)
}

func TestParseRouteDocumentFallbackName(t *testing.T) {
	doc := NewRouteParseService().ParseRouteDocument("bare", "自由行の備忘録\n")
	assert.Equal(t, "bare", doc.RouteName)
}

func TestTransportParserApproxFallback(t *testing.T) {
	parser := NewTransportParser()

	t.Run("時刻が読めないときは约N小时表記にフォールバックする", func(t *testing.T) {
		payload, duration := parser.Parse(NodeBlock{
			Type:       model.NodeTypeTransport,
			StartClock: "",
			EndClock:   "",
			HeaderText: "包车前往",
			BodyLines:  []string{"车程约2小时"},
		})
		assert.NotNil(t, duration)
		assert.Equal(t, 120, *duration)
		assert.Equal(t, model.TransportMethodDefault, payload.TransportMethod)
		assert.Equal(t, "车程约2小时", *payload.RouteDetail)
	})

	t.Run("移動手段はルールテーブルの優先順で先勝ち", func(t *testing.T) {
		payload, _ := parser.Parse(NodeBlock{
			Type:       model.NodeTypeTransport,
			StartClock: "08:00",
			EndClock:   "08:30",
			HeaderText: "先步行到地铁站再乘地铁",
		})
		assert.Equal(t, model.TransportMethodWalk, payload.TransportMethod)
	})
}

func TestRestaurantParserRatingGlyphs(t *testing.T) {
	parser := NewRestaurantParser(strategy.NewPictographicTitleStrategy())

	t.Run("必吃指数の行に星が1つも無ければ評価はnil", func(t *testing.T) {
		payload := parser.Parse(NodeBlock{
			Type:       model.NodeTypeRestaurant,
			StartClock: "12:00",
			EndClock:   "13:00",
			HeaderText: "午餐：湖畔食堂",
			BodyLines:  []string{"必吃指数：", "人均：60元"},
		})
		assert.Nil(t, payload.MustEatRating)
		assert.Equal(t, 60.0, *payload.AvgCost)
	})

	t.Run("⭐と★が混在しても合算して数える", func(t *testing.T) {
		payload := parser.Parse(NodeBlock{
			Type:       model.NodeTypeRestaurant,
			StartClock: "18:00",
			EndClock:   "19:00",
			HeaderText: "晚餐：老灶火锅",
			BodyLines:  []string{"必吃指数：⭐⭐★"},
		})
		assert.NotNil(t, payload.MustEatRating)
		assert.Equal(t, 3, *payload.MustEatRating)
	})
}

func TestSegmentRouteDocument(t *testing.T) {
	t.Run("🗓と📅のどちらの日区切りも検出する", func(t *testing.T) {
		segmented := SegmentRouteDocument("标题\n📅 Day 1：A\n🗓 Day 2：B\n")
		assert.Len(t, segmented.Markers, 2)
		assert.Equal(t, []string{"标题"}, segmented.HeaderLines)
		assert.Equal(t, 2, segmented.Markers[1].DayNumber)
		assert.Equal(t, "B", segmented.Markers[1].DayTitle)
	})

	t.Run("CRLFの文書も扱える", func(t *testing.T) {
		segmented := SegmentRouteDocument("路线名称：\r\n测试\r\n📅 Day 1：抵达\r\n")
		assert.Len(t, segmented.Markers, 1)
		assert.Equal(t, "抵达", segmented.Markers[0].DayTitle)
	})

	t.Run("日区切りの無い文書はヘッダーのみ", func(t *testing.T) {
		segmented := SegmentRouteDocument("路线名称：\n测试\n")
		assert.Empty(t, segmented.Markers)
		assert.Len(t, segmented.HeaderLines, 3)
	})
}
