package queries

import (
	"context"
	"database/sql"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// selectOrderDetailSQL is the shared projection for detail queries. The owner
// columns come from a left join so anonymous orders project with a NULL owner.
const selectOrderDetailSQL = `
	SELECT
		o.id,
		o.order_number,
		o.customer_name,
		o.customer_phone,
		o.table_number,
		o.status,
		o.total_amount,
		o.payment_method,
		o.notes,
		o.estimated_time,
		o.owner_id,
		u.name,
		u.email,
		o.created_at,
		o.updated_at
	FROM orders o
	LEFT JOIN users u ON u.id = o.owner_id
`

// scanOrderDetails drains the rows of a selectOrderDetailSQL query into
// detail projections. Items are not part of the row set and must be attached
// separately with attachItems.
func scanOrderDetails(rows *sql.Rows) ([]OrderDetail, error) {
	details := make([]OrderDetail, 0)

	for rows.Next() {
		var detail OrderDetail
		var id uuid.UUID
		var ownerID uuid.NullUUID
		var ownerName, ownerEmail sql.NullString

		err := rows.Scan(
			&id,
			&detail.OrderNumber,
			&detail.CustomerName,
			&detail.CustomerPhone,
			&detail.TableNumber,
			&detail.Status,
			&detail.TotalAmount,
			&detail.PaymentMethod,
			&detail.Notes,
			&detail.EstimatedTime,
			&ownerID,
			&ownerName,
			&ownerEmail,
			&detail.CreatedAt,
			&detail.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		detail.ID = orderID

		if ownerID.Valid {
			owner, idErr := kernel.UUIDFromBytes(ownerID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			detail.Owner = &OwnerSummary{
				ID:    owner,
				Name:  ownerName.String,
				Email: ownerEmail.String,
			}
		}

		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}

// attachItems loads the lines of every given order in one query and attaches
// them to their details, preserving line creation order.
func attachItems(ctx context.Context, db *gorm.DB, details []OrderDetail) error {
	if len(details) == 0 {
		return nil
	}

	orderIDs := make([]uuid.UUID, 0, len(details))
	byID := make(map[uuid.UUID]*OrderDetail, len(details))
	for i := range details {
		id := details[i].ID.Bytes()
		orderIDs = append(orderIDs, id)
		byID[id] = &details[i]
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.order_id,
			i.product_id,
			p.name,
			i.quantity,
			i.unit_price,
			i.total_price,
			i.notes
		FROM order_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.order_id IN ?
		ORDER BY i.created_at
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item ItemDetail
		var id, orderID, productID uuid.UUID
		var productName sql.NullString

		err = rows.Scan(
			&id,
			&orderID,
			&productID,
			&productName,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
			&item.Notes,
		)
		if err != nil {
			return err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		item.ID = itemID

		productUUID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return idErr
		}
		item.ProductID = productUUID
		item.ProductName = productName.String

		if detail, ok := byID[orderID]; ok {
			detail.Items = append(detail.Items, item)
		}
	}

	return rows.Err()
}
