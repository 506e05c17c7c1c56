package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johncrouse123/cloud-portfolio/internal/domain"
)

type fakeOrderStore struct {
	order *domain.Order
	id    int64
	err   error
}

func (f *fakeOrderStore) CreateOrder(_ context.Context, order *domain.Order) (int64, error) {
	f.order = order
	if f.err != nil {
		return 0, f.err
	}
	return f.id, nil
}

func itemInput(productID string, quantity int64, price string) domain.CheckoutItemInput {
	p := decimal.RequireFromString(price)
	return domain.CheckoutItemInput{ProductID: productID, Quantity: &quantity, Price: &p}
}

func TestCheckoutComputesExactTotal(t *testing.T) {
	store := &fakeOrderStore{id: 42}
	svc := NewCheckoutService(store, zap.NewNop())

	orderID, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		UserID: "u1",
		Items: []domain.CheckoutItemInput{
			itemInput("p1", 2, "9.99"),
			itemInput("p2", 3, "0.10"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), orderID)

	require.NotNil(t, store.order)
	// 2*9.99 + 3*0.10 must be exactly 20.28, not 20.279999...
	assert.Equal(t, "20.28", store.order.TotalAmount.String())
	assert.Equal(t, "u1", store.order.UserID)
	require.Len(t, store.order.Items, 2)
	assert.Equal(t, "p1", store.order.Items[0].ProductID)
	assert.Equal(t, int64(2), store.order.Items[0].Quantity)
}

func TestCheckoutSingleItemScenario(t *testing.T) {
	store := &fakeOrderStore{id: 7}
	svc := NewCheckoutService(store, zap.NewNop())

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		UserID: "u1",
		Items:  []domain.CheckoutItemInput{itemInput("p1", 2, "9.99")},
	})
	require.NoError(t, err)
	assert.True(t, store.order.TotalAmount.Equal(decimal.RequireFromString("19.98")))
}

func TestCheckoutValidation(t *testing.T) {
	qty := int64(1)
	price := decimal.RequireFromString("1.50")

	tests := []struct {
		name string
		req  domain.CheckoutRequest
	}{
		{"missing user_id", domain.CheckoutRequest{
			Items: []domain.CheckoutItemInput{itemInput("p1", 1, "1.50")},
		}},
		{"missing items", domain.CheckoutRequest{UserID: "u1"}},
		{"item missing quantity", domain.CheckoutRequest{
			UserID: "u1",
			Items:  []domain.CheckoutItemInput{{ProductID: "p1", Price: &price}},
		}},
		{"item missing price", domain.CheckoutRequest{
			UserID: "u1",
			Items:  []domain.CheckoutItemInput{{ProductID: "p1", Quantity: &qty}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeOrderStore{id: 1}
			svc := NewCheckoutService(store, zap.NewNop())

			_, err := svc.Checkout(context.Background(), tt.req)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Nil(t, store.order, "store must not be touched on validation failure")
		})
	}
}

func TestCheckoutPropagatesStoreError(t *testing.T) {
	store := &fakeOrderStore{err: &domain.StoreError{Op: "insert order", Err: errors.New("boom")}}
	svc := NewCheckoutService(store, zap.NewNop())

	_, err := svc.Checkout(context.Background(), domain.CheckoutRequest{
		UserID: "u1",
		Items:  []domain.CheckoutItemInput{itemInput("p1", 1, "1.00")},
	})
	var serr *domain.StoreError
	require.ErrorAs(t, err, &serr)
}
