package service

import (
	"strings"

	"Voyage-App/internal/domain/helper"
	"Voyage-App/internal/domain/model"
)

// TransportParser 移動ノードのブロックを解析する
type TransportParser struct{}

func NewTransportParser() *TransportParser {
	return &TransportParser{}
}

// Parse はブロックから移動ペイロードと所要時間（分）を取り出す。
// 所要時間はまず開始・終了時刻の差から計算し、取れなければ
// 本文中の「约N分钟／约N小时」表記にフォールバックする。
func (p *TransportParser) Parse(block NodeBlock) (*model.TransportPayload, *int) {
	duration := helper.DurationBetween(block.StartClock, block.EndClock)
	if duration == nil {
		for _, line := range block.BodyLines {
			if d := helper.ParseApproxDuration(line); d != nil {
				duration = d
				break
			}
		}
	}

	payload := &model.TransportPayload{
		TransportMethod: inferTransportMethod(block.HeaderText + "\n" + strings.Join(block.BodyLines, "\n")),
		Notes:           strPtr(block.HeaderText),
	}

	consumed := make([]bool, len(block.BodyLines))
	for i, line := range block.BodyLines {
		if v, ok := stripLabelPrefix(line, model.TransportFromLabels); ok {
			if payload.FromLocation == nil {
				payload.FromLocation = strPtr(v)
			}
			consumed[i] = true
			continue
		}
		if v, ok := stripLabelPrefix(line, model.TransportToLabels); ok {
			if payload.ToLocation == nil {
				payload.ToLocation = strPtr(v)
			}
			consumed[i] = true
			continue
		}
		if helper.HasAnyKeyword(line, model.TransportFareWords) {
			if payload.Cost == nil {
				payload.Cost = helper.ParseLeadingNumber(line)
			}
			consumed[i] = true
		}
	}

	// ラベルに使われなかった行は元の順序のまま経路詳細として残す
	var detail []string
	for i, line := range block.BodyLines {
		t := strings.TrimSpace(line)
		if t == "" || consumed[i] {
			continue
		}
		detail = append(detail, t)
	}
	if len(detail) > 0 {
		joined := strings.Join(detail, "\n")
		payload.RouteDetail = &joined
	}

	return payload, duration
}

// inferTransportMethod はキーワードの有無で移動手段を推定する。
// ルールテーブルを優先度順に評価して先勝ち。テキスト内での出現位置は関係ない。
func inferTransportMethod(text string) string {
	for _, rule := range model.TransportMethodRules {
		if helper.HasAnyKeyword(text, rule.Keywords) {
			return rule.Method
		}
	}
	return model.TransportMethodDefault
}
