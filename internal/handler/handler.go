package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/johncrouse123/cloud-portfolio/internal/domain"
)

// Catalog is the product side of the API.
type Catalog interface {
	ListProducts(ctx context.Context) ([]map[string]interface{}, error)
	GetProduct(ctx context.Context, id string) (map[string]interface{}, error)
	CreateProduct(ctx context.Context, item map[string]interface{}) error
	UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, id string) error
}

// Checkout is the order side of the API.
type Checkout interface {
	Checkout(ctx context.Context, req domain.CheckoutRequest) (int64, error)
}

// Handler converts API Gateway proxy requests into service calls and
// service outcomes into response envelopes. No failure propagates past
// it.
type Handler struct {
	catalog  Catalog
	checkout Checkout
	logger   *zap.Logger
}

func New(catalog Catalog, checkout Checkout, logger *zap.Logger) *Handler {
	return &Handler{
		catalog:  catalog,
		checkout: checkout,
		logger:   logger,
	}
}
