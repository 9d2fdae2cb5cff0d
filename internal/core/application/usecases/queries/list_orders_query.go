package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

const (
	// DefaultPage is used when the caller does not specify a page.
	DefaultPage = 1

	// DefaultLimit is used when the caller does not specify a page size.
	DefaultLimit = 10

	// MaxLimit caps the page size regardless of what the caller asks for.
	MaxLimit = 100
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves a page of order summaries, optionally filtered by
// status and by the calendar day the order was created on.
//
// Example:
//
//	status := order.Pending
//	query, err := NewListOrdersQuery(&status, nil, 1, 20)
//	if err != nil {
//	    return fmt.Errorf("invalid filters: %w", err)
//	}
//
//	handler := NewListOrdersQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status
	date   *time.Time
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a page of order summaries.
// A zero page or limit selects the default; the limit is clamped to MaxLimit.
// The date filter, when present, selects orders created on that calendar day
// in the date's own location.
func NewListOrdersQuery(status *order.Status, date *time.Time, page int, limit int) (ListOrdersQuery, error) {
	listQuery := ListOrdersQuery{
		status: status,
		date:   date,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		listQuery.setPage(page),
		listQuery.setLimit(limit),
		listQuery.validateStatus(status),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Date returns the optional creation-day filter.
func (q ListOrdersQuery) Date() *time.Time {
	return q.date
}

// Page returns the one-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of rows to skip for the requested page.
func (q ListOrdersQuery) Offset() int {
	return (q.page - 1) * q.limit
}

func (q *ListOrdersQuery) setPage(page int) error {
	if page == 0 {
		q.page = DefaultPage
		return nil
	}
	if page < 1 {
		return errs.NewValueIsInvalidError("page")
	}

	q.page = page
	return nil
}

func (q *ListOrdersQuery) setLimit(limit int) error {
	if limit == 0 {
		q.limit = DefaultLimit
		return nil
	}
	if limit < 1 {
		return errs.NewValueIsInvalidError("limit")
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	q.limit = limit
	return nil
}

func (q *ListOrdersQuery) validateStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	return status.Validate()
}

// ListOrdersResponse is a page of order summaries together with the total
// number of orders matching the filters across all pages.
type ListOrdersResponse struct {
	Orders []OrderSummary
	Total  int64
}
