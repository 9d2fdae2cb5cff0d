// Package ports defines repository interfaces for the order domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and age.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its items.
	// The order must be valid and not already exist in the repository.
	// The repository assigns the human-readable order number during Add.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	// Items are immutable after creation and are not touched by Update.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all of its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetStalePending retrieves orders still in Pending status that were
	// created before the cutoff. Used by the stale-order reaper.
	GetStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
