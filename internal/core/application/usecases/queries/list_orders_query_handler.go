package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of order summaries from the database.
// The projection carries an item count instead of the full item list, keeping
// the listing cheap regardless of order size.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// Results are ordered newest first. The response total counts all orders
// matching the filters, not just the returned page.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersResponse{}, err
	}

	where := "1=1"
	args := make([]any, 0, 3)
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}
	if query.Date() != nil {
		y, m, d := query.Date().Date()
		dayStart := time.Date(y, m, d, 0, 0, 0, 0, query.Date().Location())
		where += " AND created_at >= ? AND created_at < ?"
		args = append(args, dayStart, dayStart.AddDate(0, 0, 1))
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return ListOrdersResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.customer_name,
			o.table_number,
			o.status,
			o.total_amount,
			o.estimated_time,
			o.created_at,
			o.updated_at,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count
		FROM orders o
		WHERE `+where+`
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), query.Offset())...).Rows()
	if err != nil {
		return ListOrdersResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0, query.Limit())
	for rows.Next() {
		var summary OrderSummary
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&summary.OrderNumber,
			&summary.CustomerName,
			&summary.TableNumber,
			&summary.Status,
			&summary.TotalAmount,
			&summary.EstimatedTime,
			&summary.CreatedAt,
			&summary.UpdatedAt,
			&summary.ItemCount,
		)
		if err != nil {
			return ListOrdersResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListOrdersResponse{}, idErr
		}
		summary.ID = orderID
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersResponse{}, err
	}

	return ListOrdersResponse{Orders: orders, Total: total}, nil
}
