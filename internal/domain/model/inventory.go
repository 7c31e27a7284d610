package model

import "strings"

// InventoryRow is one line of the inventory input table: set the on-hand
// quantity for a SKU at a named location. Available is kept as the raw cell
// value; coercion to a non-negative integer happens at row validation so a bad
// cell fails that row alone instead of the whole load.
type InventoryRow struct {
	SKU          string
	LocationName string
	Available    string
}

// Variant is the inventory-bearing catalog object owning a SKU. IDs are the
// numeric REST ids; InventoryItemID is zero when the variant is not
// inventory-tracked.
type Variant struct {
	ID              int64
	ProductID       int64
	SKU             string
	InventoryItemID int64
}

// Location is a fulfillment location as returned by the Admin GraphQL API.
// ID is the opaque global id. Inactive locations are still valid targets.
type Location struct {
	ID       string
	Name     string
	IsActive bool
}

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// RowOutcome is the per-row report record. Exactly one is produced per input
// row, in input order.
type RowOutcome struct {
	SKU          string
	LocationName string
	Result       string
	Message      string
}

func SuccessOutcome(row InventoryRow, message string) RowOutcome {
	return RowOutcome{
		SKU:          row.SKU,
		LocationName: row.LocationName,
		Result:       ResultSuccess,
		Message:      message,
	}
}

func ErrorOutcome(row InventoryRow, message string) RowOutcome {
	return RowOutcome{
		SKU:          row.SKU,
		LocationName: row.LocationName,
		Result:       ResultError,
		Message:      message,
	}
}

// NormalizeName trims and lowercases a location name for matching.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
