package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves the full detail of every order currently
// in the given status. Used by kitchen and counter displays that work a
// single stage of the pipeline.
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for all orders in one status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	statusQuery := GetOrdersByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := statusQuery.setStatus(status); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return statusQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status to filter by.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

func (q *GetOrdersByStatusQuery) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}
