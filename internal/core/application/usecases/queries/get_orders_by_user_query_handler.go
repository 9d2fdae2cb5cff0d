package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByUserQueryHandler retrieves one account's order history.
type GetOrdersByUserQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByUserQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByUserQueryHandler(db *gorm.DB) GetOrdersByUserQueryHandler {
	return GetOrdersByUserQueryHandler{db: db}
}

// Handle executes the order history query.
// Results are ordered newest first.
func (h GetOrdersByUserQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByUserQuery,
) ([]OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).
		Raw(selectOrderDetailSQL+" WHERE o.owner_id = ? ORDER BY o.created_at DESC", query.UserID().Bytes()).Rows()
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
