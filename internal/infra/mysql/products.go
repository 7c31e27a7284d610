package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"shopify-reconciler/internal/domain/model"
)

// ProductSource reads the product table when PRODUCTS_SOURCE=mysql.
type ProductSource struct {
	db *sql.DB
}

func NewProductSource(db *sql.DB) *ProductSource {
	return &ProductSource{db: db}
}

const productQuery = `
SELECT sku, title, COALESCE(description, ''), COALESCE(price, '0'),
       COALESCE(barcode, ''), COALESCE(image_url, ''), is_published
FROM products
ORDER BY sku`

func (s *ProductSource) LoadProducts(ctx context.Context) ([]model.ProductRow, error) {
	rows, err := s.db.QueryContext(ctx, productQuery)
	if err != nil {
		return nil, fmt.Errorf("mysql: query products %w", err)
	}
	defer rows.Close()

	var products []model.ProductRow
	for rows.Next() {
		var (
			row      model.ProductRow
			rawPrice string
		)
		if err := rows.Scan(&row.SKU, &row.Title, &row.Description, &rawPrice, &row.Barcode, &row.ImageURL, &row.IsPublished); err != nil {
			return nil, fmt.Errorf("mysql: scan product %w", err)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(rawPrice))
		if err != nil {
			return nil, fmt.Errorf("mysql: bad price for sku %s: %w", row.SKU, err)
		}
		row.Price = price
		products = append(products, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mysql: iterate products %w", err)
	}

	return products, nil
}
