package model

import "github.com/shopspring/decimal"

// ProductRow is one line of the product input table consumed by the upsert job.
type ProductRow struct {
	SKU         string
	Title       string
	Description string
	Price       decimal.Decimal
	Barcode     string
	ImageURL    string
	IsPublished bool
}

// ProductOutcome is the per-row report record for the product upsert job.
type ProductOutcome struct {
	SKU     string
	Result  string
	Message string
}
