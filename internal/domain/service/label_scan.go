package service

import "strings"

// ラベル走査のユーティリティ。
// ヘッダー部は「ラベル行（単独）＋次の非空行が値」の書式、
// ノードブロック内は「ラベル：値」を同一行に書く書式、の2通りが混在する。

// trimColonPrefix は先頭のコロン（半角・全角どちらでも）を1つ除いてトリムする
func trimColonPrefix(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, ":")
	s = strings.TrimPrefix(s, "：")
	return strings.TrimSpace(s)
}

// matchesLabelLine は行がラベルそのもの（末尾コロンの有無は問わない）かを判定する
func matchesLabelLine(line string, labels []string) bool {
	t := strings.TrimSpace(line)
	t = strings.TrimSuffix(t, ":")
	t = strings.TrimSuffix(t, "：")
	t = strings.TrimSpace(t)
	for _, label := range labels {
		if strings.EqualFold(t, label) {
			return true
		}
	}
	return false
}

// stripLabelPrefix は「ラベル：値」形式の行から値を取り出す。
// ラベルにマッチしない行は ok=false。
func stripLabelPrefix(line string, labels []string) (string, bool) {
	t := strings.TrimSpace(line)
	for _, label := range labels {
		if len(t) < len(label) {
			continue
		}
		if strings.EqualFold(t[:len(label)], label) {
			return trimColonPrefix(t[len(label):]), true
		}
	}
	return "", false
}

// indexOfLabelLine はラベル行の最初の位置を返す（なければ-1）
func indexOfLabelLine(lines []string, labels []string) int {
	for i, line := range lines {
		if matchesLabelLine(line, labels) {
			return i
		}
	}
	return -1
}

// earliestBoundary は開始位置より後で最初に現れる境界ラベルの位置を返す。
// 候補をすべて集めてから最小を取る（チェック順に依存しないため）。
func earliestBoundary(lines []string, after int, boundarySets [][]string) int {
	end := len(lines)
	for _, labels := range boundarySets {
		for i := after + 1; i < len(lines); i++ {
			if matchesLabelLine(lines[i], labels) {
				if i < end {
					end = i
				}
				break
			}
		}
	}
	return end
}

// collectKeyValue はラベル行を探し、その直後の非空行を値として返す
func collectKeyValue(lines []string, labels []string) *string {
	idx := indexOfLabelLine(lines, labels)
	if idx < 0 {
		return nil
	}
	for i := idx + 1; i < len(lines); i++ {
		v := strings.TrimSpace(lines[i])
		if v != "" {
			return &v
		}
	}
	return nil
}

// collectSectionText は開始ラベルから最も近い境界ラベル（または領域末尾）までの
// 非空行を改行で連結して返す。ラベルが無い・本文が空ならnil。
func collectSectionText(lines []string, startLabels []string, boundarySets [][]string) *string {
	start := indexOfLabelLine(lines, startLabels)
	if start < 0 {
		return nil
	}
	end := earliestBoundary(lines, start, boundarySets)

	var body []string
	for _, line := range lines[start+1 : end] {
		t := strings.TrimSpace(line)
		if t != "" {
			body = append(body, t)
		}
	}
	if len(body) == 0 {
		return nil
	}
	joined := strings.Join(body, "\n")
	return &joined
}

func strPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	t := strings.TrimSpace(s)
	return &t
}
