package service

import (
	"strings"

	"Voyage-App/internal/domain/model"
	"Voyage-App/internal/domain/strategy"
)

// scanSubItems はタイトル／本文の積み上げ走査でサブ項目を切り出す。
// 2状態（タイトル待ち／本文積み上げ中）の小さな状態機械で、
// タイトル判定そのものはストラテジーに委ねる。
// ノード開始行は除外する（壊れた文書で次ノードが混ざった場合の誤検出対策）。
func scanSubItems(lines []string, titleStrategy strategy.SubItemTitleStrategy) []model.RouteSubItem {
	var items []model.RouteSubItem
	var current *model.RouteSubItem
	var body []string

	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.Join(body, "\n")
		items = append(items, *current)
		current = nil
		body = nil
	}

	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if IsNodeStartLine(t) {
			continue
		}
		if titleStrategy.IsTitleLine(t) {
			flush()
			current = &model.RouteSubItem{Title: t}
			continue
		}
		if current != nil {
			body = append(body, t)
		}
	}
	flush()

	return items
}
