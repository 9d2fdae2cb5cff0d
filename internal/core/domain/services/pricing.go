package services

import (
	"restaurant/internal/core/domain/model/kernel"
)

const (
	// BatchSize is the number of items the kitchen prepares in parallel.
	BatchSize = 3

	// MinutesPerBatch is the time overhead each kitchen batch adds on top
	// of the slowest item's preparation time.
	MinutesPerBatch = 5
)

// ItemQuote is a priced order line produced by the intake validator. It
// snapshots the catalog price and preparation time at the moment of intake,
// so later catalog changes do not affect already-placed orders.
type ItemQuote struct {
	ProductID       kernel.UUID
	ProductName     string
	Quantity        int
	Notes           string
	UnitPrice       kernel.Money
	PreparationTime int
}

// LineTotal returns the total price of the quote line.
func (q ItemQuote) LineTotal() kernel.Money {
	return q.UnitPrice.Mul(q.Quantity)
}

// PricingService is a domain service that computes order totals and estimated
// preparation times from priced quote lines.
//
// Business rules:
//   - A line total is the unit price times the quantity
//   - The order total is the sum of all line totals
//   - The estimated time is the slowest item's preparation time plus
//     MinutesPerBatch for every started batch of BatchSize items
type PricingService struct{}

// NewPricingService creates a new PricingService instance.
func NewPricingService() PricingService {
	return PricingService{}
}

// OrderTotal returns the sum of all line totals.
func (p PricingService) OrderTotal(quotes []ItemQuote) kernel.Money {
	var total kernel.Money
	for _, q := range quotes {
		total = total.Add(q.LineTotal())
	}
	return total
}

// EstimatedTime returns the estimated preparation time in minutes for the
// given quote lines.
//
// The estimate models a kitchen that prepares items in batches: the longest
// single preparation time dominates, and every started batch of BatchSize
// items adds MinutesPerBatch of overhead.
func (p PricingService) EstimatedTime(quotes []ItemQuote) int {
	maxPrep := 0
	totalQuantity := 0
	for _, q := range quotes {
		if q.PreparationTime > maxPrep {
			maxPrep = q.PreparationTime
		}
		totalQuantity += q.Quantity
	}

	batches := (totalQuantity + BatchSize - 1) / BatchSize
	return maxPrep + batches*MinutesPerBatch
}
