package domain

import (
	"github.com/shopspring/decimal"
)

// Product is the typed view of a catalog item. The catalog table is
// schemaless: create accepts arbitrary extra attributes verbatim, only
// price and stock get exact-decimal handling on the way in.
type Product struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     decimal.Decimal `json:"stock"`
}

// UpdateProductRequest carries the three attributes an update writes.
// Fields absent from the request body decode to their zero values and
// are written anyway: update is a destructive overwrite of exactly
// name/price/stock, not a patch.
type UpdateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock decimal.Decimal `json:"stock"`
}
