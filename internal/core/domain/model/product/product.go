package product

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct constructor.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the catalog entry an order line refers to. The catalog is owned
// elsewhere; orders only read it to resolve prices and preparation times, so
// the model carries exactly the fields intake and pricing need.
type Product struct {
	id              kernel.UUID
	name            string
	price           kernel.Money
	isActive        bool
	preparationTime int

	isConstructed bool
}

// NewProduct creates a catalog product. A preparation time of zero means the
// catalog did not specify one; callers substitute their own default.
func NewProduct(id kernel.UUID, name string, price kernel.Money, isActive bool, preparationTime int) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if preparationTime < 0 {
		return nil, errs.NewValueIsInvalidError("preparationTime")
	}

	return &Product{
		id:              id,
		name:            name,
		price:           price,
		isActive:        isActive,
		preparationTime: preparationTime,

		isConstructed: true,
	}, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current catalog price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// IsActive reports whether the product can be ordered.
func (p *Product) IsActive() bool {
	return p.isActive
}

// PreparationTime returns the preparation time in minutes, or zero when the
// catalog does not specify one.
func (p *Product) PreparationTime() int {
	return p.preparationTime
}
