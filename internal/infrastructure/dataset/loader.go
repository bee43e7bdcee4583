package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"Voyage-App/internal/domain/service"
)

// Loader はシード用データディレクトリからCSV/JSON表と行程マークダウンを読み込む。
// 表はCSVがあればCSVを優先し、無ければJSONにフォールバックする。
type Loader struct {
	dataDir string
}

func NewLoader(dataDir string) *Loader {
	return &Loader{dataDir: dataDir}
}

// LoadTableOptional はbaseName.csv / baseName.jsonのどちらかを読み込む。
// どちらも無い場合は空で返す（エラーにしない）。
func (l *Loader) LoadTableOptional(baseName string) ([]service.DataRow, error) {
	csvPath := filepath.Join(l.dataDir, baseName+".csv")
	if _, err := os.Stat(csvPath); err == nil {
		return l.loadCSV(csvPath)
	}

	jsonPath := filepath.Join(l.dataDir, baseName+".json")
	if _, err := os.Stat(jsonPath); err == nil {
		return l.loadJSON(jsonPath)
	}

	return nil, nil
}

func (l *Loader) loadCSV(path string) ([]service.DataRow, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("CSV読み込み失敗 %s: %w", path, err)
	}

	// Excel由来のファイルは先頭にBOMが付くことがある
	text := strings.TrimPrefix(string(raw), "\uFEFF")

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSVパース失敗 %s: %w", path, err)
	}
	if len(records) < 1 {
		return nil, nil
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []service.DataRow
	for _, record := range records[1:] {
		row := service.DataRow{}
		empty := true
		for i, col := range header {
			if i >= len(record) {
				break
			}
			v := strings.TrimSpace(record[i])
			row[col] = v
			if v != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (l *Loader) loadJSON(path string) ([]service.DataRow, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("JSON読み込み失敗 %s: %w", path, err)
	}

	var rows []service.DataRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("JSONパース失敗 %s（配列である必要があります）: %w", path, err)
	}
	return rows, nil
}

// RouteFile 行程マークダウン1ファイル。IDは拡張子を除いたファイル名。
type RouteFile struct {
	ID   string
	Text string
}

// LoadRouteFiles は<dataDir>/routes/配下の*.mdをすべて読み込む。
// ディレクトリ自体が無い場合は空で返す。
func (l *Loader) LoadRouteFiles() ([]RouteFile, error) {
	routesDir := filepath.Join(l.dataDir, "routes")
	entries, err := os.ReadDir(routesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("行程ディレクトリの読み込み失敗 %s: %w", routesDir, err)
	}

	var files []RouteFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(routesDir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("行程ファイルの読み込み失敗 %s: %w", path, err)
		}
		files = append(files, RouteFile{
			ID:   strings.TrimSuffix(entry.Name(), ".md"),
			Text: string(raw),
		})
	}
	return files, nil
}
