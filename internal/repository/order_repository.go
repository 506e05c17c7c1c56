package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/johncrouse123/cloud-portfolio/internal/domain"
)

type OrderRepository struct {
	connector Connector
	logger    *zap.Logger
}

func NewOrderRepository(connector Connector, logger *zap.Logger) *OrderRepository {
	return &OrderRepository{
		connector: connector,
		logger:    logger,
	}
}

// CreateOrder inserts one Orders row and one OrderItems row per cart
// line, in input order, inside a single transaction committed at the
// end. The connection is closed on every exit path; a failure before
// commit leaves nothing behind.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (int64, error) {
	db, err := r.connector.Open(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, &domain.StoreError{Op: "begin checkout", Err: err}
	}
	defer tx.Rollback() // no-op once committed

	res, err := tx.ExecContext(ctx,
		"INSERT INTO Orders (user_id, total_amount) VALUES (?, ?)",
		order.UserID, order.TotalAmount,
	)
	if err != nil {
		return 0, &domain.StoreError{Op: "insert order", Err: err}
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return 0, &domain.StoreError{Op: "insert order", Err: err}
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO OrderItems (order_id, product_id, quantity, price) VALUES (?, ?, ?, ?)",
			orderID, item.ProductID, item.Quantity, item.Price,
		); err != nil {
			return 0, &domain.StoreError{Op: "insert order item", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, &domain.StoreError{Op: "commit checkout", Err: err}
	}
	return orderID, nil
}
