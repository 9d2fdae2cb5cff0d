package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler retrieves all orders in one lifecycle stage.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for per-status queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the per-status query.
// Results are ordered oldest first so displays work the queue in FIFO order.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(selectOrderDetailSQL+" WHERE o.status = ? ORDER BY o.created_at", query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details, err := scanOrderDetails(rows)
	if err != nil {
		return nil, err
	}

	if err = attachItems(ctx, h.db, details); err != nil {
		return nil, err
	}

	return details, nil
}
