package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrdersByUserQueryIsNotConstructed = errors.New(
	"GetOrdersByUserQuery must be created via NewGetOrdersByUserQuery constructor",
)

// GetOrdersByUserQuery retrieves the full detail of every order placed by one
// account, newest first. Backs the customer's own order history.
type GetOrdersByUserQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByUserQuery creates a query for one account's order history.
func NewGetOrdersByUserQuery(userID kernel.UUID) (GetOrdersByUserQuery, error) {
	userQuery := GetOrdersByUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := userQuery.setUserID(userID); err != nil {
		return GetOrdersByUserQuery{}, err
	}

	return userQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByUserQueryIsNotConstructed)
}

// UserID returns the identifier of the account whose orders to fetch.
func (q GetOrdersByUserQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetOrdersByUserQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}
