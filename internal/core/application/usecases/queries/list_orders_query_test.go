package queries_test

import (
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(nil, nil, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, queries.DefaultPage, query.Page())
		assert.Equal(t, queries.DefaultLimit, query.Limit())
		assert.Zero(t, query.Offset())
		assert.Nil(t, query.Status())
		assert.Nil(t, query.Date())
	})

	t.Run("clamps the limit", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(nil, nil, 1, 500)

		require.NoError(t, err)
		assert.Equal(t, queries.MaxLimit, query.Limit())
	})

	t.Run("computes the offset from the page", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(nil, nil, 3, 20)

		require.NoError(t, err)
		assert.Equal(t, 40, query.Offset())
	})

	t.Run("rejects a negative page", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(nil, nil, -1, 10)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects a negative limit", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(nil, nil, 1, -10)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects an unknown status filter", func(t *testing.T) {
		status := order.Unknown
		_, err := queries.NewListOrdersQuery(&status, nil, 1, 10)

		require.Error(t, err)
	})

	t.Run("accepts filters", func(t *testing.T) {
		status := order.Pending
		date := time.Now()
		query, err := queries.NewListOrdersQuery(&status, &date, 2, 15)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, *query.Status())
		assert.Equal(t, date, *query.Date())
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.ListOrdersQuery

		assert.Equal(t, queries.ErrListOrdersQueryIsNotConstructed, query.Validate())
	})
}

func TestNewGetOrderQuery_RequiresID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestNewGetOrdersByStatusQuery_RequiresKnownStatus(t *testing.T) {
	_, err := queries.NewGetOrdersByStatusQuery(order.Unknown)

	require.Error(t, err)
}

func TestNewGetOrdersByUserQuery_RequiresID(t *testing.T) {
	_, err := queries.NewGetOrdersByUserQuery(kernel.UUID{})

	require.Error(t, err)
}
