// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status is stored as its lowercase string so the read side can filter on
// it directly; the order number carries a unique index that backs the
// collision retry in Add.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber   string     `gorm:"type:varchar(20);uniqueIndex"`
	CustomerName  string     `gorm:"type:varchar(100)"`
	CustomerPhone string     `gorm:"type:varchar(20)"`
	TableNumber   *int       `gorm:"type:smallint"`
	Status        string     `gorm:"type:varchar(20);index"`
	TotalAmount   float64    `gorm:"type:decimal(10,2)"`
	PaymentMethod string     `gorm:"type:varchar(10)"`
	Notes         string     `gorm:"type:text"`
	EstimatedTime int        `gorm:"type:smallint"`
	OwnerID       *uuid.UUID `gorm:"type:uuid;index"`
	Items         []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time  `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents a persisted order line. Prices are the snapshot taken at
// intake, not a reference to the catalog.
type ItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	ProductID  uuid.UUID `gorm:"type:uuid;index"`
	Quantity   int       `gorm:"type:smallint"`
	UnitPrice  float64   `gorm:"type:decimal(10,2)"`
	TotalPrice float64   `gorm:"type:decimal(10,2)"`
	Notes      string    `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var ownerID *uuid.UUID
	if id := aggregate.Owner(); id != nil {
		raw := id.Bytes()
		ownerID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    aggregate.ID().Bytes(),
			ProductID:  item.ProductID().Bytes(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Amount(),
			TotalPrice: item.TotalPrice().Amount(),
			Notes:      item.Notes(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OrderNumber:   aggregate.OrderNumber(),
		CustomerName:  aggregate.CustomerName(),
		CustomerPhone: aggregate.CustomerPhone(),
		TableNumber:   aggregate.TableNumber(),
		Status:        aggregate.Status().String(),
		TotalAmount:   aggregate.TotalAmount().Amount(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		Notes:         aggregate.Notes(),
		EstimatedTime: aggregate.EstimatedTime(),
		OwnerID:       ownerID,
		Items:         items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var ownerID *kernel.UUID
	if dto.OwnerID != nil {
		oID, ownerErr := kernel.UUIDFromBytes((*dto.OwnerID)[:])
		if ownerErr != nil {
			return nil, ownerErr
		}

		ownerID = &oID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoneyFromFloat(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		dto.CustomerName,
		dto.CustomerPhone,
		dto.TableNumber,
		status,
		totalAmount,
		paymentMethod,
		dto.Notes,
		dto.EstimatedTime,
		ownerID,
		items,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoneyFromFloat(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	totalPrice, err := kernel.NewMoneyFromFloat(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return order.NewItem(id, productID, dto.Quantity, unitPrice, totalPrice, dto.Notes)
}
