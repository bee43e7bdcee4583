package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClockTime(t *testing.T) {
	t.Run("HH:MM形式を分に変換できる", func(t *testing.T) {
		minutes, ok := ParseClockTime("09:05")
		assert.True(t, ok)
		assert.Equal(t, 545, minutes)

		minutes, ok = ParseClockTime("9:05")
		assert.True(t, ok)
		assert.Equal(t, 545, minutes)

		minutes, ok = ParseClockTime(" 23:59 ")
		assert.True(t, ok)
		assert.Equal(t, 1439, minutes)
	})

	t.Run("時刻でない文字列はok=falseになる", func(t *testing.T) {
		_, ok := ParseClockTime("九点")
		assert.False(t, ok)

		_, ok = ParseClockTime("09:05-10:30")
		assert.False(t, ok)

		_, ok = ParseClockTime("")
		assert.False(t, ok)
	})
}

func TestFormatClockTime(t *testing.T) {
	t.Run("分をHH:MM:SSに整形できる", func(t *testing.T) {
		m := 545
		assert.Equal(t, "09:05:00", *FormatClockTime(&m))
	})

	t.Run("24時間を超えた分は0時からに巻き戻す", func(t *testing.T) {
		m := 24*60 + 45
		assert.Equal(t, "00:45:00", *FormatClockTime(&m))
	})

	t.Run("nilはnilのまま", func(t *testing.T) {
		assert.Nil(t, FormatClockTime(nil))
	})
}

func TestDurationBetween(t *testing.T) {
	t.Run("同じ日の時刻差を分で返す", func(t *testing.T) {
		d := DurationBetween("09:00", "10:30")
		assert.NotNil(t, d)
		assert.Equal(t, 90, *d)
	})

	t.Run("终了が开始より前なら日をまたいだとみなす", func(t *testing.T) {
		d := DurationBetween("23:30", "00:15")
		assert.NotNil(t, d)
		assert.Equal(t, 45, *d)
	})

	t.Run("どちらかが読めなければnil", func(t *testing.T) {
		assert.Nil(t, DurationBetween("朝", "10:00"))
		assert.Nil(t, DurationBetween("09:00", ""))
	})
}

func TestParseApproxDuration(t *testing.T) {
	t.Run("约N分钟を分に変換できる", func(t *testing.T) {
		d := ParseApproxDuration("步行约10分钟即可到达")
		assert.NotNil(t, d)
		assert.Equal(t, 10, *d)
	})

	t.Run("约N小时は小数も分に換算する", func(t *testing.T) {
		d := ParseApproxDuration("车程约1.5小时")
		assert.NotNil(t, d)
		assert.Equal(t, 90, *d)
	})

	t.Run("英語表記も受け付ける", func(t *testing.T) {
		d := ParseApproxDuration("about 2 hours by bus")
		assert.NotNil(t, d)
		assert.Equal(t, 120, *d)
	})

	t.Run("概算表記が無ければnil", func(t *testing.T) {
		assert.Nil(t, ParseApproxDuration("地铁2号线直达"))
	})
}

func TestParseLeadingNumber(t *testing.T) {
	t.Run("テキスト中の最初の数値を取り出す", func(t *testing.T) {
		n := ParseLeadingNumber("人均120元")
		assert.NotNil(t, n)
		assert.Equal(t, 120.0, *n)

		n = ParseLeadingNumber("票价 35.5 元起")
		assert.NotNil(t, n)
		assert.Equal(t, 35.5, *n)
	})

	t.Run("数値が無ければnil", func(t *testing.T) {
		assert.Nil(t, ParseLeadingNumber("免费"))
	})
}

func TestCountGlyph(t *testing.T) {
	t.Run("グリフの出現数を数える", func(t *testing.T) {
		n := CountGlyph("必吃指数：⭐⭐⭐", "⭐")
		assert.NotNil(t, n)
		assert.Equal(t, 3, *n)
	})

	t.Run("ゼロ個は0ではなくnil", func(t *testing.T) {
		assert.Nil(t, CountGlyph("必吃指数：无", "⭐"))
	})
}

func TestSplitMultiValue(t *testing.T) {
	t.Run("複数の区切り記号を同時に受け付ける", func(t *testing.T) {
		assert.Equal(t, []string{"小吃", "面食", "甜品"}, SplitMultiValue("小吃，面食、甜品"))
		assert.Equal(t, []string{"a", "b", "c"}, SplitMultiValue("a|b\nc"))
	})

	t.Run("空要素は捨ててトリムする", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, SplitMultiValue(" a ,, b "))
	})

	t.Run("空入力・区切りのみは空スライスではなくnil", func(t *testing.T) {
		assert.Nil(t, SplitMultiValue(""))
		assert.Nil(t, SplitMultiValue("   "))
		assert.Nil(t, SplitMultiValue(" ,、; "))
	})
}

func TestHasAnyKeyword(t *testing.T) {
	assert.True(t, HasAnyKeyword("乘坐地铁2号线", []string{"地铁", "subway"}))
	assert.True(t, HasAnyKeyword("Take the SUBWAY line 2", []string{"地铁", "subway"}))
	assert.False(t, HasAnyKeyword("步行前往", []string{"地铁", "subway"}))
}

func TestHasPictographicPrefix(t *testing.T) {
	assert.True(t, HasPictographicPrefix("🍜 招牌面"))
	assert.True(t, HasPictographicPrefix("✨ 夜景"))
	assert.False(t, HasPictographicPrefix("地址：中山路1号"))
	assert.False(t, HasPictographicPrefix(""))
}
