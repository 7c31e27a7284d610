package shopify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shopify-reconciler/internal/adapters/shopify/dto"
)

// adjustmentReason tags every on-hand correction for the store's audit trail.
const adjustmentReason = "correction"

// InventoryService is the surface the row reconciler drives.
type InventoryService interface {
	CatalogService
	LocationService
	GetInventoryLevel(ctx context.Context, inventoryItemID int64, locationID string) (available int, found bool, err error)
	ConnectInventory(ctx context.Context, inventoryItemID int64, locationID string) error
	SetOnHandQuantity(ctx context.Context, inventoryItemID int64, locationID string, quantity int) error
}

var _ InventoryService = (*Client)(nil)

// inventoryItemGID bridges the numeric REST id to the global id the GraphQL
// surface expects.
func inventoryItemGID(id int64) string {
	return fmt.Sprintf("gid://shopify/InventoryItem/%d", id)
}

// GetInventoryLevel reads the inventory level linking an item to a location.
// found=false with a nil error means no link exists yet.
func (c *Client) GetInventoryLevel(ctx context.Context, inventoryItemID int64, locationID string) (int, bool, error) {
	if c == nil {
		return 0, false, errors.New("shopify client is nil")
	}
	locationID = strings.TrimSpace(locationID)
	if inventoryItemID == 0 || locationID == "" {
		return 0, false, errors.New("shopify inventory item id and location id are required")
	}

	query := `
	query inventoryLevel($itemId: ID!, $locationId: ID!) {
		inventoryItem(id: $itemId) {
			inventoryLevel(locationId: $locationId) {
				id
				quantities(names: ["available"]) { name quantity }
			}
		}
	}`

	var data dto.InventoryLevelQueryData
	err := c.graphqlRequest(ctx, query, map[string]any{
		"itemId":     inventoryItemGID(inventoryItemID),
		"locationId": locationID,
	}, &data)
	if err != nil {
		return 0, false, err
	}
	if data.InventoryItem == nil || data.InventoryItem.InventoryLevel == nil {
		return 0, false, nil
	}
	for _, quantity := range data.InventoryItem.InventoryLevel.Quantities {
		if quantity.Name == "available" {
			return quantity.Quantity, true, nil
		}
	}
	return 0, true, nil
}

// ConnectInventory activates the (item, location) inventory level. Shopify
// reports an already-active pair through userErrors; that case is success
// here, so calling this twice for the same pair never fails the second call.
func (c *Client) ConnectInventory(ctx context.Context, inventoryItemID int64, locationID string) error {
	if c == nil {
		return errors.New("shopify client is nil")
	}
	locationID = strings.TrimSpace(locationID)
	if inventoryItemID == 0 || locationID == "" {
		return errors.New("shopify inventory item id and location id are required")
	}

	query := `
	mutation inventoryActivate($inventoryItemId: ID!, $locationId: ID!) {
		inventoryActivate(inventoryItemId: $inventoryItemId, locationId: $locationId) {
			inventoryLevel { id }
			userErrors { field message }
		}
	}`

	var data dto.InventoryActivateData
	err := c.graphqlRequest(ctx, query, map[string]any{
		"inventoryItemId": inventoryItemGID(inventoryItemID),
		"locationId":      locationID,
	}, &data)
	if err != nil {
		return err
	}
	if err := userErrorsToError("inventoryActivate", data.InventoryActivate.UserErrors); err != nil {
		if isAlreadyConnectedError(err) {
			c.logWarning(fmt.Sprintf("inventory level already active item=%d location=%s", inventoryItemID, locationID))
			return nil
		}
		return err
	}
	return nil
}

func isAlreadyConnectedError(err error) bool {
	userErrs, ok := AsUserErrors(err)
	if !ok {
		return false
	}
	for _, detail := range userErrs.Errors {
		message := strings.ToLower(detail.Message)
		if strings.Contains(message, "already") || strings.Contains(message, "active") {
			return true
		}
	}
	return false
}

// SetOnHandQuantity replaces the on-hand value outright. Deltas are never
// sent; re-running a batch converges on the same state.
func (c *Client) SetOnHandQuantity(ctx context.Context, inventoryItemID int64, locationID string, quantity int) error {
	if c == nil {
		return errors.New("shopify client is nil")
	}
	locationID = strings.TrimSpace(locationID)
	if inventoryItemID == 0 || locationID == "" {
		return errors.New("shopify inventory item id and location id are required")
	}
	if quantity < 0 {
		return fmt.Errorf("shopify on-hand quantity must be non-negative, got %d", quantity)
	}

	query := `
	mutation inventorySetOnHandQuantities($input: InventorySetOnHandQuantitiesInput!) {
		inventorySetOnHandQuantities(input: $input) {
			userErrors { field message }
		}
	}`

	var data dto.InventorySetOnHandQuantitiesData
	err := c.graphqlRequest(ctx, query, map[string]any{
		"input": map[string]any{
			"reason": adjustmentReason,
			"setQuantities": []map[string]any{
				{
					"inventoryItemId": inventoryItemGID(inventoryItemID),
					"locationId":      locationID,
					"quantity":        quantity,
				},
			},
		},
	}, &data)
	if err != nil {
		return err
	}
	return userErrorsToError("inventorySetOnHandQuantities", data.InventorySetOnHandQuantities.UserErrors)
}
