package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/johncrouse123/cloud-portfolio/internal/domain"
)

// OrderStore persists one checkout.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *domain.Order) (int64, error)
}

type CheckoutService struct {
	orders OrderStore
	logger *zap.Logger
}

func NewCheckoutService(orders OrderStore, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		orders: orders,
		logger: logger,
	}
}

// Checkout validates the cart, computes the total with exact decimal
// arithmetic and writes the order. The total uses the caller-supplied
// price per item; the catalog is never consulted here.
func (s *CheckoutService) Checkout(ctx context.Context, req domain.CheckoutRequest) (int64, error) {
	if req.UserID == "" {
		return 0, &domain.ValidationError{Field: "user_id", Reason: "is required"}
	}
	if len(req.Items) == 0 {
		return 0, &domain.ValidationError{Field: "items", Reason: "is required"}
	}

	order := &domain.Order{
		UserID: req.UserID,
		Items:  make([]domain.CheckoutItem, 0, len(req.Items)),
	}

	total := decimal.Zero
	for i, in := range req.Items {
		if in.Quantity == nil {
			return 0, &domain.ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Reason: "is required"}
		}
		if in.Price == nil {
			return 0, &domain.ValidationError{Field: fmt.Sprintf("items[%d].price", i), Reason: "is required"}
		}

		item := domain.CheckoutItem{
			ProductID: in.ProductID,
			Quantity:  *in.Quantity,
			Price:     *in.Price,
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(item.Quantity)))
		order.Items = append(order.Items, item)
	}
	order.TotalAmount = total

	orderID, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Checkout failed",
			zap.String("user_id", req.UserID),
			zap.Error(err))
		return 0, err
	}

	s.logger.Info("Checkout successful",
		zap.Int64("order_id", orderID),
		zap.String("user_id", req.UserID),
		zap.String("total_amount", total.String()))

	return orderID, nil
}
