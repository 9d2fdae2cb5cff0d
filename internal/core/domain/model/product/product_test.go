package product_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	price, err := kernel.NewMoneyFromFloat(25.90)
	require.NoError(t, err)

	t.Run("should create a valid product", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.NewProduct(id, "Margherita Pizza", price, true, 20)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Margherita Pizza", p.Name())
		assert.True(t, p.Price().IsEqual(price))
		assert.True(t, p.IsActive())
		assert.Equal(t, 20, p.PreparationTime())
	})

	t.Run("zero preparation time means unspecified", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Soda", price, true, 0)

		require.NoError(t, err)
		assert.Zero(t, p.PreparationTime())
	})

	t.Run("should reject a blank name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "  ", price, true, 20)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a negative preparation time", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Margherita Pizza", price, true, -5)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an empty id", func(t *testing.T) {
		_, err := product.NewProduct(kernel.UUID{}, "Margherita Pizza", price, true, 20)

		require.Error(t, err)
	})
}

func TestProduct_Validate(t *testing.T) {
	var p *product.Product
	assert.Equal(t, product.ErrProductIsNotConstructed, p.Validate())

	var zero product.Product
	assert.Equal(t, product.ErrProductIsNotConstructed, zero.Validate())
}
