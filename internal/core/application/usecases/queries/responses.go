// Package queries contains read operations that project order state for
// presentation. Implements the query side of the CQRS architecture: handlers
// read the database directly with raw SQL and never load aggregates.
package queries

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
)

// OrderSummary is the compact projection returned by list queries.
// Item details are reduced to a count; amounts are plain decimals ready for
// presentation.
type OrderSummary struct {
	ID            kernel.UUID
	OrderNumber   string
	CustomerName  string
	TableNumber   *int
	Status        string
	TotalAmount   float64
	EstimatedTime int
	ItemCount     int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ItemDetail is a full projection of a single order line. The product name is
// joined from the catalog at read time.
type ItemDetail struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   float64
	TotalPrice  float64
	Notes       string
}

// OwnerSummary identifies the account an order was placed under.
type OwnerSummary struct {
	ID    kernel.UUID
	Name  string
	Email string
}

// OrderDetail is the full projection of an order, including all of its lines
// and the owning account when the order was placed by a registered user.
type OrderDetail struct {
	ID            kernel.UUID
	OrderNumber   string
	CustomerName  string
	CustomerPhone string
	TableNumber   *int
	Status        string
	TotalAmount   float64
	PaymentMethod string
	Notes         string
	EstimatedTime int
	Owner         *OwnerSummary
	Items         []ItemDetail
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
