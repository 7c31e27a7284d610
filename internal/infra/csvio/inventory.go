package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"shopify-reconciler/internal/domain/model"
)

// LoadInventoryRows reads the inventory input table. The header row is
// required; column names are matched case-insensitively and may appear in any
// order. Cell values are passed through untouched so per-row validation can
// report bad cells individually.
func LoadInventoryRows(path string) ([]model.InventoryRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read inventory header: %w", err)
	}
	cols, err := columnIndex(header, "sku", "location_name", "available")
	if err != nil {
		return nil, err
	}

	var rows []model.InventoryRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read inventory row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, model.InventoryRow{
			SKU:          cell(record, cols.get("sku")),
			LocationName: cell(record, cols.get("location_name")),
			Available:    cell(record, cols.get("available")),
		})
	}

	return rows, nil
}

type columns map[string]int

func columnIndex(header []string, required ...string) (columns, error) {
	index := make(columns, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return index, nil
}

// get returns the index of a column or -1 when the header lacks it.
func (c columns) get(name string) int {
	if i, ok := c[name]; ok {
		return i
	}
	return -1
}

func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
