package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"
)

// CatalogReader provides read access to the product catalog. Orders never
// modify the catalog; they only resolve products to snapshot prices and
// preparation times at intake.
type CatalogReader interface {
	// GetProduct retrieves a catalog product by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such product exists.
	GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
