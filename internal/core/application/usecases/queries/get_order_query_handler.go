package queries

import (
	"context"

	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order's full detail from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the detail query.
// Returns errs.ErrObjectNotFound when no order with the given ID exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return OrderDetail{}, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(selectOrderDetailSQL+" WHERE o.id = ?", query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderDetail{}, err
	}
	defer rows.Close()

	details, err := scanOrderDetails(rows)
	if err != nil {
		return OrderDetail{}, err
	}
	if len(details) == 0 {
		return OrderDetail{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	if err = attachItems(ctx, h.db, details); err != nil {
		return OrderDetail{}, err
	}

	return details[0], nil
}
