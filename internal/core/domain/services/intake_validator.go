package services

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// DefaultPreparationTime is assumed for products whose catalog entry does not
// specify a preparation time, in minutes.
const DefaultPreparationTime = 15

var (
	// ErrProductNotFound is returned when an order line references a product
	// that does not exist in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductInactive is returned when an order line references a product
	// that exists but is not currently available for ordering.
	ErrProductInactive = errors.New("product is not available")
)

// ProductNotFoundError reports which requested product is missing from the catalog.
type ProductNotFoundError struct {
	ProductID kernel.UUID
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrProductNotFound, e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error {
	return ErrProductNotFound
}

// ProductInactiveError reports which product cannot be ordered, by name so the
// message is meaningful to the customer.
type ProductInactiveError struct {
	Name string
}

func (e *ProductInactiveError) Error() string {
	return fmt.Sprintf("%s: %s", ErrProductInactive, e.Name)
}

func (e *ProductInactiveError) Unwrap() error {
	return ErrProductInactive
}

// IntakeLine is a single raw order line as submitted by the customer, before
// catalog resolution.
type IntakeLine struct {
	ProductID kernel.UUID
	Quantity  int
	Notes     string
}

// IntakeValidator is a domain service that turns raw submitted order lines
// into priced ItemQuote values, resolving each line against the catalog.
//
// Business rules:
//   - An order carries between 1 and 20 lines
//   - Each line's quantity is between 1 and 50
//   - Every referenced product must exist and be active
//   - Prices and preparation times are snapshotted from the catalog
//   - Products without a preparation time get DefaultPreparationTime
//
// Structural bounds are checked before any catalog access so a malformed
// request fails fast without touching storage.
type IntakeValidator struct {
	catalog ports.CatalogReader
}

// NewIntakeValidator creates an IntakeValidator backed by the given catalog reader.
func NewIntakeValidator(catalog ports.CatalogReader) (*IntakeValidator, error) {
	if catalog == nil {
		return nil, errs.NewValueIsRequiredError("catalog")
	}
	return &IntakeValidator{catalog: catalog}, nil
}

// Validate resolves the submitted lines into priced quotes.
//
// Returns the quotes in the same order as the input lines, or the first
// validation error encountered. Lines are checked for structural validity
// before any product lookup happens.
func (v *IntakeValidator) Validate(ctx context.Context, lines []IntakeLine) ([]ItemQuote, error) {
	if len(lines) < order.MinItems || len(lines) > order.MaxItems {
		return nil, errs.NewValueIsOutOfRangeError("items", len(lines), order.MinItems, order.MaxItems)
	}
	for _, line := range lines {
		if line.Quantity < order.MinQuantity || line.Quantity > order.MaxQuantity {
			return nil, errs.NewValueIsOutOfRangeError("quantity", line.Quantity, order.MinQuantity, order.MaxQuantity)
		}
	}

	quotes := make([]ItemQuote, 0, len(lines))
	for _, line := range lines {
		p, err := v.catalog.GetProduct(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, &ProductNotFoundError{ProductID: line.ProductID}
			}
			return nil, err
		}

		if !p.IsActive() {
			return nil, &ProductInactiveError{Name: p.Name()}
		}

		prepTime := p.PreparationTime()
		if prepTime == 0 {
			prepTime = DefaultPreparationTime
		}

		quotes = append(quotes, ItemQuote{
			ProductID:       p.ID(),
			ProductName:     p.Name(),
			Quantity:        line.Quantity,
			Notes:           line.Notes,
			UnitPrice:       p.Price(),
			PreparationTime: prepTime,
		})
	}

	return quotes, nil
}
