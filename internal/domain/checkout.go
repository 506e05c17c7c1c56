package domain

import (
	"github.com/shopspring/decimal"
)

// CheckoutRequest is the checkout payload. Quantity and price are
// pointers so a missing field is distinguishable from an explicit zero
// and can be rejected at the boundary.
type CheckoutRequest struct {
	UserID string              `json:"user_id"`
	Items  []CheckoutItemInput `json:"items"`
}

type CheckoutItemInput struct {
	ProductID string           `json:"product_id"`
	Quantity  *int64           `json:"quantity"`
	Price     *decimal.Decimal `json:"price"`
}

// CheckoutItem is a validated cart line. Price is the caller-supplied
// price; the catalog is not consulted during checkout.
type CheckoutItem struct {
	ProductID string
	Quantity  int64
	Price     decimal.Decimal
}

// Order is one checkout: a single Orders row plus one OrderItems row
// per cart line, written in the same transaction.
type Order struct {
	OrderID     int64
	UserID      string
	TotalAmount decimal.Decimal
	Items       []CheckoutItem
}

type CheckoutResponse struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}
