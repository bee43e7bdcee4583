package repository

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// searchBound は中心点と半径（メートル）から検索用の境界ボックスを作る。
// 緯度1度≒111kmの近似で、経度方向の縮みは考慮しない粗い箱
// （絞り込みの前段として使うだけなので十分）。
func searchBound(lat, lng float64, radiusMeters int) orb.Bound {
	center := orb.Point{lng, lat}
	pad := float64(radiusMeters) / 111320.0
	bound := orb.Bound{Min: center, Max: center}
	return bound.Pad(pad)
}

// pointWKT は緯度経度をPostGISに渡すWKT文字列（POINT(lng lat)）にする
func pointWKT(lat, lng float64) string {
	return wkt.MarshalString(orb.Point{lng, lat})
}
