package service

import (
	"regexp"
	"strings"

	"Voyage-App/internal/domain/model"
)

// ノード開始行の3パターン。互いに排他で、時刻帯と本文をキャプチャする。
var (
	transportStartRe  = regexp.MustCompile(`^🚇\s*(\d{1,2}:\d{2})\s*[-–]\s*(\d{1,2}:\d{2})\s*[|｜]\s*(?:交通|(?i:transport))\s*[:：]\s*(.*)$`)
	attractionStartRe = regexp.MustCompile(`^📍\s*(\d{1,2}:\d{2})\s*[-–]\s*(\d{1,2}:\d{2})\s*[|｜]\s*(.*)$`)
	restaurantStartRe = regexp.MustCompile(`^(?:🍜|🍴)\s*(\d{1,2}:\d{2})\s*[-–]\s*(\d{1,2}:\d{2})\s*[|｜]\s*(.*)$`)
)

// NodeBlock 1つのノード開始行から次の開始行（または日の末尾）までの塊
type NodeBlock struct {
	Type       model.RouteNodeType
	StartClock string
	EndClock   string
	HeaderText string   // 開始行の「|」より後ろのテキスト
	BodyLines  []string // 開始行より後ろの行（元の順序のまま）
}

// matchNodeStart は行をノード開始の3パターンに順に当てる
func matchNodeStart(line string) (*NodeBlock, bool) {
	t := strings.TrimSpace(line)

	if m := transportStartRe.FindStringSubmatch(t); m != nil {
		return &NodeBlock{Type: model.NodeTypeTransport, StartClock: m[1], EndClock: m[2], HeaderText: strings.TrimSpace(m[3])}, true
	}
	if m := attractionStartRe.FindStringSubmatch(t); m != nil {
		return &NodeBlock{Type: model.NodeTypeAttraction, StartClock: m[1], EndClock: m[2], HeaderText: strings.TrimSpace(m[3])}, true
	}
	if m := restaurantStartRe.FindStringSubmatch(t); m != nil {
		return &NodeBlock{Type: model.NodeTypeRestaurant, StartClock: m[1], EndClock: m[2], HeaderText: strings.TrimSpace(m[3])}, true
	}
	return nil, false
}

// IsNodeStartLine はサブ項目走査が次ノードの行をタイトルと誤認しないための判定
func IsNodeStartLine(line string) bool {
	_, ok := matchNodeStart(line)
	return ok
}

// ScanDayNodes は1日分の行を前方一方向に走査し、ノード開始行ごとにブロックを切り出す。
// 状態は「積み上げ中のブロック」だけで、バックトラックはしない。
// 開始行が1つも無い日はブロックゼロ（エラーではない）。
func ScanDayNodes(dayLines []string) []NodeBlock {
	var blocks []NodeBlock
	var current *NodeBlock

	for _, line := range dayLines {
		if block, ok := matchNodeStart(line); ok {
			if current != nil {
				blocks = append(blocks, *current)
			}
			current = block
			continue
		}
		if current != nil {
			current.BodyLines = append(current.BodyLines, line)
		}
	}
	if current != nil {
		blocks = append(blocks, *current)
	}
	return blocks
}
