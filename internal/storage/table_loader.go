package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/leengari/datagrid/internal/domain/grid"
)

// LoadGrid builds a grid from a dataset directory holding meta.json and
// an optional data.json (an array of objects keyed by column name).
func LoadGrid(path string) (*grid.Grid, error) {
	metaBytes, err := os.ReadFile(filepath.Join(path, metaFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset meta: %w", err)
	}

	var meta TableMeta
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse dataset meta: %w", err)
	}

	names := make([]string, len(meta.Columns))
	for i, c := range meta.Columns {
		names[i] = c.Name
	}
	g := grid.New(names...)

	dataBytes, err := os.ReadFile(filepath.Join(path, dataFile))
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("dataset loaded", slog.String("name", meta.Name), slog.Int("rows", 0))
		return g, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset data: %w", err)
	}

	var records []map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(dataBytes))
	dec.UseNumber()
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse dataset data: %w", err)
	}

	for i, rec := range records {
		row := make(grid.Row, len(meta.Columns))
		for j, col := range meta.Columns {
			v, err := decodeCell(rec[col.Name], col.Type)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %s: %w", i, col.Name, err)
			}
			row[j] = v
		}
		if err := g.AppendRow(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	slog.Info("dataset loaded",
		slog.String("name", meta.Name),
		slog.String("path", path),
		slog.Int("rows", g.RowCount()),
	)

	return g, nil
}

// decodeCell maps a decoded JSON value to a grid value.
// Missing keys and JSON null both become NULL.
func decodeCell(raw interface{}, colType string) (grid.Value, error) {
	switch v := raw.(type) {
	case nil:
		return grid.Other(nil), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return grid.Int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return grid.Value{}, fmt.Errorf("invalid number %s: %w", v, err)
		}
		return grid.Float(f), nil
	case string:
		if isTemporal(colType) {
			t, err := dateparse.ParseIn(v, time.UTC)
			if err != nil {
				return grid.Value{}, fmt.Errorf("invalid %s value %q: %w", colType, v, err)
			}
			return grid.Instant(t), nil
		}
		return grid.Text(v), nil
	default:
		return grid.Other(v), nil
	}
}

func isTemporal(colType string) bool {
	switch strings.ToUpper(colType) {
	case "DATE", "TIME", "TIMESTAMP", "DATETIME":
		return true
	}
	return false
}
