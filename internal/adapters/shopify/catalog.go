package shopify

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"shopify-reconciler/internal/adapters/shopify/dto"
	"shopify-reconciler/internal/domain/model"
)

const catalogPageSize = 250

// CatalogService resolves SKUs against the product/variant listing.
type CatalogService interface {
	FindVariantBySKU(ctx context.Context, sku string) (model.Variant, error)
}

var _ CatalogService = (*Client)(nil)

// FindVariantBySKU walks the REST product listing page by page and returns
// the first variant whose SKU matches exactly. Duplicate SKUs are not
// disambiguated: first match in listing order wins.
func (c *Client) FindVariantBySKU(ctx context.Context, sku string) (model.Variant, error) {
	if c == nil {
		return model.Variant{}, errors.New("shopify client is nil")
	}
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return model.Variant{}, errors.New("shopify sku is required")
	}

	pageInfo := ""
	for {
		query := url.Values{}
		query.Set("limit", strconv.Itoa(catalogPageSize))
		if pageInfo == "" {
			query.Set("fields", "id,variants")
		} else {
			// Shopify rejects most filters alongside a page_info cursor.
			query.Set("page_info", pageInfo)
		}

		var payload dto.RestProductsPayload
		next, err := c.restGet(ctx, "/products.json", query, &payload)
		if err != nil {
			return model.Variant{}, err
		}

		for _, product := range payload.Products {
			for _, variant := range product.Variants {
				if strings.TrimSpace(variant.SKU) != sku {
					continue
				}
				return model.Variant{
					ID:              variant.ID,
					ProductID:       product.ID,
					SKU:             sku,
					InventoryItemID: variant.InventoryItemID,
				}, nil
			}
		}

		if next == "" {
			break
		}
		pageInfo = next
	}

	return model.Variant{}, &NotFoundError{Resource: "variant", Key: sku}
}
