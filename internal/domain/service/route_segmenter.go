package service

import (
	"regexp"
	"strconv"
	"strings"
)

// dayMarkerRe は日区切り行「📅 Day N：タイトル」にマッチする（🗓も許容）
var dayMarkerRe = regexp.MustCompile(`^(?:📅|🗓)\s*(?i:Day)\s*(\d+)\s*[:：]\s*(.*)$`)

// DayMarker 文書内で検出した日区切り
type DayMarker struct {
	LineIndex int
	DayNumber int
	DayTitle  string
}

// SegmentedDocument 文書をヘッダー領域と日領域に分割した結果
type SegmentedDocument struct {
	Lines       []string
	HeaderLines []string
	Markers     []DayMarker
}

// SegmentRouteDocument は全行を走査して日区切りを検出し、
// ヘッダー領域（最初の日区切りより前の全行）と日区切り一覧を返す。
// 日区切りがゼロ件の文書も正常（ヘッダーのみの文書）。
func SegmentRouteDocument(text string) *SegmentedDocument {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var markers []DayMarker
	for i, line := range lines {
		m := dayMarkerRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		dayNumber, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		markers = append(markers, DayMarker{
			LineIndex: i,
			DayNumber: dayNumber,
			DayTitle:  strings.TrimSpace(m[2]),
		})
	}

	headerEnd := len(lines)
	if len(markers) > 0 {
		headerEnd = markers[0].LineIndex
	}

	return &SegmentedDocument{
		Lines:       lines,
		HeaderLines: lines[:headerEnd],
		Markers:     markers,
	}
}

// DayRegion はi番目の日領域（区切り行を含み、次の区切り行の手前まで）を返す
func (d *SegmentedDocument) DayRegion(i int) []string {
	if i < 0 || i >= len(d.Markers) {
		return nil
	}
	start := d.Markers[i].LineIndex
	end := len(d.Lines)
	if i+1 < len(d.Markers) {
		end = d.Markers[i+1].LineIndex
	}
	return d.Lines[start:end]
}

// IsDayMarkerLine は行が日区切りかどうかを判定する
func IsDayMarkerLine(line string) bool {
	return dayMarkerRe.MatchString(strings.TrimSpace(line))
}
