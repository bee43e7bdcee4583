package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadTableOptional(t *testing.T) {
	t.Run("CSVをヘッダー付きで読み込む", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "restaurants.csv"),
			"﻿餐厅名称,人均消费\n老字号面馆,45元\n,\n夜市烧烤,\n")

		rows, err := NewLoader(dir).LoadTableOptional("restaurants")
		require.NoError(t, err)

		// 全列が空の行は捨てる
		require.Len(t, rows, 2)
		assert.Equal(t, "老字号面馆", rows[0]["餐厅名称"])
		assert.Equal(t, "45元", rows[0]["人均消费"])
		assert.Equal(t, "夜市烧烤", rows[1]["餐厅名称"])
	})

	t.Run("CSVが無ければJSONにフォールバックする", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "hotels.json"),
			`[{"name": "湖畔酒店", "lat": "30.2", "lng": "120.1"}]`)

		rows, err := NewLoader(dir).LoadTableOptional("hotels")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "湖畔酒店", rows[0]["name"])
	})

	t.Run("どちらのファイルも無ければ空で返す", func(t *testing.T) {
		rows, err := NewLoader(t.TempDir()).LoadTableOptional("foods")
		assert.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestLoadRouteFiles(t *testing.T) {
	t.Run("routes配下の.mdだけを読み込み、IDはファイル名から決まる", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "routes", "city_tour.md"), "路线名称：\n环城游\n")
		writeFile(t, filepath.Join(dir, "routes", "memo.txt"), "not a route")

		files, err := NewLoader(dir).LoadRouteFiles()
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "city_tour", files[0].ID)
		assert.Contains(t, files[0].Text, "环城游")
	})

	t.Run("routesディレクトリが無ければ空で返す", func(t *testing.T) {
		files, err := NewLoader(t.TempDir()).LoadRouteFiles()
		assert.NoError(t, err)
		assert.Empty(t, files)
	})
}
