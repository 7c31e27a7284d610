package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"shopify-reconciler/internal/domain/model"
)

// LoadProductRows reads the product input table for the upsert job. The price
// column is decimal; an unparseable price fails the load because the upsert
// job has no per-cell recovery path before Shopify would reject the row anyway.
func LoadProductRows(path string) ([]model.ProductRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open products file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read products header: %w", err)
	}
	cols, err := columnIndex(header, "sku", "title", "price")
	if err != nil {
		return nil, err
	}

	var rows []model.ProductRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read products row %d: %w", len(rows)+2, err)
		}

		row := model.ProductRow{
			SKU:         cell(record, cols.get("sku")),
			Title:       cell(record, cols.get("title")),
			Description: cell(record, cols.get("description_html")),
			Barcode:     cell(record, cols.get("barcode")),
			ImageURL:    cell(record, cols.get("image_url")),
			IsPublished: parseBool(cell(record, cols.get("published"))),
		}

		rawPrice := cell(record, cols.get("price"))
		if rawPrice != "" {
			price, err := decimal.NewFromString(rawPrice)
			if err != nil {
				return nil, fmt.Errorf("bad price %q for sku %s: %w", rawPrice, row.SKU, err)
			}
			row.Price = price
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}
