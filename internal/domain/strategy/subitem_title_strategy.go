package strategy

import (
	"strings"
	"unicode/utf8"

	"Voyage-App/internal/domain/helper"
)

// SubItemTitleStrategy は、ハイライト／おすすめ料理のサブリスト内で
// どの行を新しいサブ項目のタイトルとみなすかを決めるポリシーのインターフェース。
// この書式にはサブ項目の終端記号が無いので、タイトル検出は行の形だけで判定する。
// 判定ロジックを差し替えられるよう走査ループから切り離してある。
type SubItemTitleStrategy interface {
	// IsTitleLine は行が新しいサブ項目のタイトルかどうかを判定する
	IsTitleLine(line string) bool
}

// PictographicTitleStrategy は既定のタイトル判定。
// コロンを含まず、短く、行頭が絵文字の行をタイトルとみなす。
type PictographicTitleStrategy struct {
	MaxTitleRunes int
}

const defaultMaxTitleRunes = 40

func NewPictographicTitleStrategy() *PictographicTitleStrategy {
	return &PictographicTitleStrategy{MaxTitleRunes: defaultMaxTitleRunes}
}

func (s *PictographicTitleStrategy) IsTitleLine(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" {
		return false
	}
	if strings.ContainsAny(t, ":：") {
		return false
	}
	if utf8.RuneCountInString(t) >= s.MaxTitleRunes {
		return false
	}
	return helper.HasPictographicPrefix(t)
}
