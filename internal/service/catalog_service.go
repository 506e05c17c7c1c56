package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/johncrouse123/cloud-portfolio/internal/domain"
)

// CatalogStore is the catalog table accessor.
type CatalogStore interface {
	List(ctx context.Context) ([]map[string]interface{}, error)
	Get(ctx context.Context, id string) (map[string]interface{}, error)
	Create(ctx context.Context, item map[string]interface{}) error
	Update(ctx context.Context, id string, req domain.UpdateProductRequest) error
	Delete(ctx context.Context, id string) error
}

type CatalogService struct {
	store  CatalogStore
	logger *zap.Logger
}

func NewCatalogService(store CatalogStore, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]map[string]interface{}, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Fetched products", zap.Int("count", len(items)))
	return items, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (map[string]interface{}, error) {
	return s.store.Get(ctx, id)
}

// CreateProduct stores the payload verbatim apart from price and stock,
// which are coerced to exact decimals from their wire text before the
// write. The item must carry a product_id.
func (s *CatalogService) CreateProduct(ctx context.Context, item map[string]interface{}) error {
	id, ok := item["product_id"].(string)
	if !ok || id == "" {
		return &domain.ValidationError{Field: "product_id", Reason: "is required"}
	}

	for _, k := range []string{"price", "stock"} {
		v, ok := item[k]
		if !ok {
			continue
		}
		d, err := coerceDecimal(v)
		if err != nil {
			return &domain.ValidationError{Field: k, Reason: "must be a number"}
		}
		item[k] = d
	}

	// Remaining json.Number values carry no exactness contract; hand
	// the marshaler plain floats.
	for k, v := range item {
		if n, ok := v.(json.Number); ok {
			f, err := n.Float64()
			if err != nil {
				return &domain.ValidationError{Field: k, Reason: "must be a number"}
			}
			item[k] = f
		}
	}

	if err := s.store.Create(ctx, item); err != nil {
		return err
	}
	s.logger.Info("Created product", zap.String("product_id", id))
	return nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) error {
	if err := s.store.Update(ctx, id, req); err != nil {
		return err
	}
	s.logger.Info("Updated product", zap.String("product_id", id))
	return nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Deleted product", zap.String("product_id", id))
	return nil
}

func coerceDecimal(v interface{}) (decimal.Decimal, error) {
	switch t := v.(type) {
	case json.Number:
		return decimal.NewFromString(t.String())
	case string:
		return decimal.NewFromString(t)
	case float64:
		return decimal.NewFromFloat(t), nil
	case decimal.Decimal:
		return t, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("cannot convert %T to decimal", v)
	}
}
