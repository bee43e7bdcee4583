package helper

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const minutesPerDay = 24 * 60

var (
	clockTimeRe     = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*$`)
	approxRe        = regexp.MustCompile(`(?:约|~|approx\.?\s|about\s)\s*(\d+(?:\.\d+)?)\s*(小时|分钟|hours?|hrs?|minutes?|mins?)`)
	leadingNumberRe = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
	multiValueRe    = regexp.MustCompile(`[|\n\r,，;；、]+`)
)

// ParseClockTime は "H:MM" / "HH:MM" を0時からの経過分に変換する。
// それ以外の形はすべて ok=false（欠損扱い、エラーにはしない）。
func ParseClockTime(s string) (int, bool) {
	m := clockTimeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return hour*60 + minute, true
}

// FormatClockTime は経過分を "HH:MM:00" に整形する。時は24でラップする。
func FormatClockTime(totalMinutes *int) *string {
	if totalMinutes == nil {
		return nil
	}
	t := *totalMinutes
	hour := (t / 60) % 24
	minute := t % 60
	s := fmt.Sprintf("%02d:%02d:00", hour, minute)
	return &s
}

// DurationBetween は "HH:MM" 2つの差分（分）を返す。
// 負になる場合は日付をまたいだとみなして1440を足す。どちらかが読めなければnil。
func DurationBetween(start, end string) *int {
	s, okS := ParseClockTime(start)
	e, okE := ParseClockTime(end)
	if !okS || !okE {
		return nil
	}
	d := e - s
	if d < 0 {
		d += minutesPerDay
	}
	return &d
}

// ParseApproxDuration は「约N分钟」「约N小时」(英語表記も可) を分に変換する。
// 小時は小数を許し、最近接の分に丸める。どちらの形でもなければnil。
func ParseApproxDuration(text string) *int {
	m := approxRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	var minutes int
	if strings.HasPrefix(m[2], "小时") || strings.HasPrefix(m[2], "hour") || strings.HasPrefix(m[2], "hr") {
		minutes = int(math.Round(n * 60))
	} else {
		minutes = int(math.Round(n))
	}
	return &minutes
}

// ParseLeadingNumber はテキスト中の最初の数値（小数点可）を取り出す。なければnil。
func ParseLeadingNumber(text string) *float64 {
	m := leadingNumberRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &n
}

// CountGlyph は評価グリフの出現数を数える。
// 一度も現れなければnil（0ではない）。「評価なし」と「星ゼロ」を呼び出し側で区別するため。
func CountGlyph(text, glyph string) *int {
	n := strings.Count(text, glyph)
	if n == 0 {
		return nil
	}
	return &n
}

// SplitMultiValue は複数の区切り記号（| 改行 , ， ; ； 、）を許容して分割する。
// 各要素はトリムし、空要素は捨てる。入力が空白のみ・分割結果ゼロならnilを返す
// （空スライスではなくnil。「データなし」と「空リスト」を区別する）。
func SplitMultiValue(text string) []string {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil
	}
	var parts []string
	for _, p := range multiValueRe.Split(s, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return parts
}

// HasAnyKeyword はキーワードのいずれかが含まれるかを判定する
func HasAnyKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// HasPictographicPrefix は行頭が絵文字・記号類かどうかを判定する。
// サブ項目タイトルの検出に使う（行頭の絵文字がタイトルの目印になる書式のため）。
func HasPictographicPrefix(s string) bool {
	for _, r := range strings.TrimSpace(s) {
		if unicode.Is(unicode.So, r) || unicode.Is(unicode.Sk, r) || (r >= 0x1F000 && r <= 0x1FAFF) || (r >= 0x2600 && r <= 0x27BF) {
			return true
		}
		return false
	}
	return false
}
