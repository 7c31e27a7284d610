package shopify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shopify-reconciler/internal/adapters/shopify/dto"
	"shopify-reconciler/internal/domain/model"
)

// ProductService is the surface the product upsert job drives.
type ProductService interface {
	CheckExistProductBySKU(ctx context.Context, sku string) (bool, string, error)
	CreateProduct(ctx context.Context, row model.ProductRow) (string, error)
	UpdateProduct(ctx context.Context, row model.ProductRow, productGID string) error
	EnsureProductImage(ctx context.Context, productGID, imageURL string) error
}

var _ ProductService = (*Client)(nil)

// CheckExistProductBySKU searches variants by SKU and returns the owning
// product's global id when one exists.
func (c *Client) CheckExistProductBySKU(ctx context.Context, sku string) (bool, string, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return false, "", errors.New("shopify sku is required")
	}

	query := `
	query productVariantBySku($first: Int!, $query: String!) {
		productVariants(first: $first, query: $query) {
			nodes {
				id
				sku
				product { id }
			}
		}
	}`

	var data dto.VariantSearchData
	err := c.graphqlRequest(ctx, query, map[string]any{
		"first": 1,
		"query": buildSearchQuery("sku", sku),
	}, &data)
	if err != nil {
		return false, "", err
	}
	if len(data.ProductVariants.Nodes) == 0 {
		return false, "", nil
	}
	gid := strings.TrimSpace(data.ProductVariants.Nodes[0].Product.ID)
	return gid != "", gid, nil
}

func buildSearchQuery(field, value string) string {
	if strings.ContainsAny(value, " \"") {
		value = strings.ReplaceAll(value, `"`, `\"`)
		value = fmt.Sprintf(`"%s"`, value)
	}
	return fmt.Sprintf("%s:%s", field, value)
}

func (c *Client) CreateProduct(ctx context.Context, row model.ProductRow) (string, error) {
	title := strings.TrimSpace(row.Title)
	if title == "" {
		return "", errors.New("shopify product title is required")
	}

	input := map[string]any{
		"title":  title,
		"status": productStatus(row.IsPublished),
	}
	if strings.TrimSpace(row.Description) != "" {
		input["descriptionHtml"] = row.Description
	}

	query := `
	mutation productCreate($input: ProductInput!) {
		productCreate(input: $input) {
			product { id }
			userErrors { field message }
		}
	}`

	var data dto.ProductCreateData
	err := c.graphqlRequest(ctx, query, map[string]any{"input": input}, &data)
	if err != nil {
		return "", err
	}
	if err := userErrorsToError("productCreate", data.ProductCreate.UserErrors); err != nil {
		return "", err
	}
	if data.ProductCreate.Product == nil || strings.TrimSpace(data.ProductCreate.Product.ID) == "" {
		return "", errors.New("shopify product create returned empty product id")
	}
	productGID := data.ProductCreate.Product.ID
	return productGID, c.updatePrimaryVariant(ctx, productGID, row)
}

func (c *Client) UpdateProduct(ctx context.Context, row model.ProductRow, productGID string) error {
	productGID = strings.TrimSpace(productGID)
	if productGID == "" {
		return errors.New("shopify product gid is required")
	}

	input := map[string]any{
		"id":     productGID,
		"status": productStatus(row.IsPublished),
	}
	if title := strings.TrimSpace(row.Title); title != "" {
		input["title"] = title
	}
	if strings.TrimSpace(row.Description) != "" {
		input["descriptionHtml"] = row.Description
	}

	query := `
	mutation productUpdate($input: ProductInput!) {
		productUpdate(input: $input) {
			product { id }
			userErrors { field message }
		}
	}`

	var data dto.ProductUpdateData
	err := c.graphqlRequest(ctx, query, map[string]any{"input": input}, &data)
	if err != nil {
		return err
	}
	if err := userErrorsToError("productUpdate", data.ProductUpdate.UserErrors); err != nil {
		return err
	}

	return c.updatePrimaryVariant(ctx, productGID, row)
}

func (c *Client) getPrimaryVariantID(ctx context.Context, productGID string) (string, error) {
	query := `
	query productVariant($id: ID!) {
		product(id: $id) {
			variants(first: 1) {
				nodes { id }
			}
		}
	}`

	var data dto.VariantLookupData
	err := c.graphqlRequest(ctx, query, map[string]any{"id": productGID}, &data)
	if err != nil {
		return "", err
	}
	if data.Product == nil || len(data.Product.Variants.Nodes) == 0 {
		return "", nil
	}
	return strings.TrimSpace(data.Product.Variants.Nodes[0].ID), nil
}

// updatePrimaryVariant pushes SKU, barcode and price to the product's first
// variant. Single-variant products are the shape this job maintains.
func (c *Client) updatePrimaryVariant(ctx context.Context, productGID string, row model.ProductRow) error {
	sku := strings.TrimSpace(row.SKU)
	barcode := strings.TrimSpace(row.Barcode)
	hasPrice := row.Price.IsPositive()
	if sku == "" && barcode == "" && !hasPrice {
		return nil
	}

	variantID, err := c.getPrimaryVariantID(ctx, productGID)
	if err != nil {
		return err
	}
	if variantID == "" {
		return errors.New("shopify product has no variants to update")
	}

	variantInput := map[string]any{"id": variantID}
	if sku != "" {
		variantInput["inventoryItem"] = map[string]any{"sku": sku}
	}
	if barcode != "" {
		variantInput["barcode"] = barcode
	}
	if hasPrice {
		variantInput["price"] = row.Price.StringFixed(2)
	}

	query := `
	mutation productVariantsBulkUpdate($productId: ID!, $variants: [ProductVariantsBulkInput!]!) {
		productVariantsBulkUpdate(productId: $productId, variants: $variants) {
			productVariants { id }
			userErrors { field message }
		}
	}`

	var data dto.VariantsBulkUpdateData
	err = c.graphqlRequest(ctx, query, map[string]any{
		"productId": productGID,
		"variants":  []map[string]any{variantInput},
	}, &data)
	if err != nil {
		return err
	}
	return userErrorsToError("productVariantsBulkUpdate", data.ProductVariantsBulkUpdate.UserErrors)
}

// EnsureProductImage attaches the image once: a product that already carries
// media is left alone, so re-running the job does not stack duplicates.
func (c *Client) EnsureProductImage(ctx context.Context, productGID, imageURL string) error {
	productGID = strings.TrimSpace(productGID)
	imageURL = strings.TrimSpace(imageURL)
	if productGID == "" || imageURL == "" {
		return nil
	}

	lookup := `
	query productMedia($id: ID!) {
		product(id: $id) {
			media(first: 1) {
				nodes { id }
			}
		}
	}`

	var existing dto.ProductMediaData
	if err := c.graphqlRequest(ctx, lookup, map[string]any{"id": productGID}, &existing); err != nil {
		return err
	}
	if existing.Product != nil && len(existing.Product.Media.Nodes) > 0 {
		return nil
	}

	mutation := `
	mutation productCreateMedia($productId: ID!, $media: [CreateMediaInput!]!) {
		productCreateMedia(productId: $productId, media: $media) {
			media { id }
			mediaUserErrors { field message }
		}
	}`

	var data dto.ProductCreateMediaData
	err := c.graphqlRequest(ctx, mutation, map[string]any{
		"productId": productGID,
		"media": []map[string]any{
			{
				"mediaContentType": "IMAGE",
				"originalSource":   imageURL,
			},
		},
	}, &data)
	if err != nil {
		return err
	}
	return userErrorsToError("productCreateMedia", data.ProductCreateMedia.MediaUserErrors)
}

func productStatus(isPublished bool) string {
	if isPublished {
		return "ACTIVE"
	}
	return "DRAFT"
}
