package model

// TransportMethodConstants 移動手段の閉集合
const (
	TransportMethodWalk    = "walk"
	TransportMethodSubway  = "subway"
	TransportMethodBus     = "bus"
	TransportMethodTaxi    = "taxi"
	TransportMethodDefault = "transport"
)

// TransportMethodRule キーワード→移動手段の推論ルール
// 優先順位はデータとして表現する（ネストした条件分岐にしない）。先勝ち。
type TransportMethodRule struct {
	Keywords []string
	Method   string
}

// TransportMethodRules は優先度順の推論テーブル
// 歩き → 地下鉄 → バス → タクシー系、どれにも当たらなければ汎用の "transport"。
var TransportMethodRules = []TransportMethodRule{
	{Keywords: []string{"步行", "walk"}, Method: TransportMethodWalk},
	{Keywords: []string{"地铁", "subway", "metro"}, Method: TransportMethodSubway},
	{Keywords: []string{"公交", "bus"}, Method: TransportMethodBus},
	{Keywords: []string{"打车", "出租", "的士", "滴滴", "taxi", "rideshare"}, Method: TransportMethodTaxi},
}

// ラベル定義。ソース文書は手書きで表記ゆれが多いため、
// 各フィールドに中国語・英語の同義ラベルを複数持たせる。
var (
	// ヘッダー部のラベル
	RouteNameLabels      = []string{"路线名称", "Route Title"}
	RouteAliasLabels     = []string{"路线别名", "Route Alias"}
	RoutePriceLabels     = []string{"价格", "Price"}
	RecommendationLabels = []string{"推荐理由", "Why We Recommend"}
	IntroductionLabels   = []string{"路线介绍", "Introduction"}
	HighlightsLabels     = []string{"行程亮点", "Highlights"}

	// 移動ノードのラベル
	// 「📍出发」は古い文書に残っている出発地の書き方。
	TransportFromLabels = []string{"上车点", "乘车点", "出发点", "📍出发", "boarding point", "departure point"}
	TransportToLabels   = []string{"下车点", "到达点", "alighting point", "arrival point"}
	TransportFareWords  = []string{"车费", "票价", "fare"}

	// 観光ノードのラベル
	AttractionAddressLabels   = []string{"地址", "address"}
	AttractionHoursLabels     = []string{"开放时间", "opening hours"}
	AttractionTicketLabels    = []string{"门票", "ticket price"}
	AttractionDurationLabels  = []string{"建议游玩时长", "建议游览时长", "suggested duration"}
	AttractionSeasonLabels    = []string{"最佳季节", "best season"}
	AttractionIntroLabels     = []string{"景点介绍", "介绍", "introduction"}
	AttractionHighlightLabels = []string{"游玩亮点", "亮点", "看点", "highlights"}

	// 食事ノードのラベル
	RestaurantNameLabels    = []string{"餐厅名称", "restaurant name"}
	RestaurantAddressLabels = []string{"地址", "address"}
	RestaurantAvgCostLabels = []string{"人均", "avg cost"}
	RestaurantRatingLabels  = []string{"必吃指数", "must-eat rating"}
	RestaurantQueueLabels   = []string{"排队情况", "queue status"}
	RestaurantPhoneWords    = []string{"电话", "phone"}
	RestaurantHoursLabels   = []string{"营业时间", "business hours"}
	RestaurantIntroLabels   = []string{"餐厅介绍", "背景", "介绍", "background"}
	RestaurantDishesLabels  = []string{"推荐菜品", "必点菜品", "recommended dishes"}
)

// RatingGlyphs 必吃指数の星として数える文字
var RatingGlyphs = []string{"⭐", "★"}

// BulletPrefixes 行程亮点の箇条書きとして認める行頭記号
var BulletPrefixes = []string{"•", "·", "●", "-", "✨"}
