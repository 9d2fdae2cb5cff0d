package errs_test

import (
	"errors"
	"testing"

	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "ORD123456789")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "ORD123456789", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: ORD123456789", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("productId", "42", cause)

		assert.Equal(t, "productId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: productId, ID is: 42 (cause: record not found)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("is classified via errors.Is", func(t *testing.T) {
		var err error = errs.NewObjectNotFoundError("orderId", "missing")
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("paymentMethod")

		assert.Equal(t, "paymentMethod", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: paymentMethod", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown method")
		err := errs.NewValueIsInvalidErrorWithCause("paymentMethod", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: paymentMethod (cause: unknown method)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 51, 1, 50)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 51, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 50, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 51 is quantity, min value is 1, max value is 50", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("bounds check failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("tableNumber", 0, 1, 100, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: 0 is tableNumber, min value is 1, max value is 100 (cause: bounds check failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes newlines in values", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerName")

		assert.Equal(t, "customerName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerName", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing field")
		err := errs.NewValueIsRequiredErrorWithCause("customerName", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customerName (cause: missing field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	require.Error(t, errs.ErrObjectNotFound)
	require.Error(t, errs.ErrValueIsInvalid)
	require.Error(t, errs.ErrValueIsOutOfRange)
	require.Error(t, errs.ErrValueIsRequired)
}
