package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

const (
	// MinQuantity is the smallest quantity a single line item may carry.
	MinQuantity = 1

	// MaxQuantity is the largest quantity a single line item may carry.
	MaxQuantity = 50
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line of an order: a product snapshot with a quantity and a price
// captured at order-creation time. Items are immutable after creation; the
// unit price never follows later catalog changes.
//
// Invariants:
//   - quantity is between MinQuantity and MaxQuantity
//   - totalPrice equals unitPrice multiplied by quantity
type Item struct {
	id         kernel.UUID
	productID  kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	totalPrice kernel.Money
	notes      string

	isConstructed bool
}

// NewItem creates a validated order line. The totalPrice must already be the
// exact product of unitPrice and quantity; the pricing service computes it
// explicitly so the invariant stays visible and testable outside storage.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	totalPrice kernel.Money,
	notes string,
) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	if !totalPrice.IsEqual(unitPrice.Mul(quantity)) {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("%s is not %s x %d", totalPrice, unitPrice, quantity))
	}

	return &Item{
		id:            id,
		productID:     productID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		totalPrice:    totalPrice,
		notes:         notes,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the catalog product this line snapshots.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the catalog price captured at order-creation time.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns the line total (unit price times quantity).
func (i *Item) TotalPrice() kernel.Money {
	return i.totalPrice
}

// Notes returns the optional per-line customer note.
func (i *Item) Notes() string {
	return i.notes
}
