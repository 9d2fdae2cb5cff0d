package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLines() []services.IntakeLine {
	return []services.IntakeLine{
		{ProductID: kernel.NewUUID(), Quantity: 2, Notes: "no basil"},
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		id := kernel.NewUUID()
		table := 7
		owner := kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(id, "Maria Silva", "11 98765-4321", &table,
			order.PaymentPix, "window seat", &owner, validLines())

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, "Maria Silva", cmd.CustomerName())
		assert.Equal(t, "11 98765-4321", cmd.CustomerPhone())
		assert.Equal(t, 7, *cmd.TableNumber())
		assert.Equal(t, order.PaymentPix, cmd.PaymentMethod())
		assert.Equal(t, "window seat", cmd.Notes())
		assert.True(t, cmd.OwnerID().IsEqual(owner))
		assert.Len(t, cmd.Lines(), 1)
	})

	t.Run("should require a customer name", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "  ", "", nil,
			order.PaymentCash, "", nil, validLines())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require at least one line", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Maria Silva", "", nil,
			order.PaymentCash, "", nil, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an unknown payment method", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Maria Silva", "", nil,
			order.PaymentUnknown, "", nil, validLines())

		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		assert.Equal(t, commands.ErrCreateOrderCommandIsNotConstructed, cmd.Validate())
	})
}
