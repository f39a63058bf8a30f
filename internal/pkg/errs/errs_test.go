package errs_test

import (
	"errors"
	"testing"

	"shipconvenient/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("courier", "9b2f")

		assert.Equal(t, "courier", err.ParamName)
		assert.Equal(t, "9b2f", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 9b2f", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("route", "active", cause)

		assert.Equal(t, "route", err.ParamName)
		assert.Equal(t, "active", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: route, ID is: active (cause: connection reset)",
			err.Error())
	})

	t.Run("non string ID keeps fmt verb output", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("parcel", 42)
		assert.Equal(t, "object not found: %!s(int=42)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("direction")

		assert.Equal(t, "direction", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: direction", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown mode")
		err := errs.NewValueIsInvalidErrorWithCause("direction", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: direction (cause: unknown mode)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 91.5, -90, 90)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 91.5, err.Value)
		assert.Equal(t, -90, err.Min)
		assert.Equal(t, 90, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 91.5 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("parse failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("price", -5, 0, 100, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is price, min value is 0, max value is 100 (cause: parse failed)",
			err.Error())
	})

	t.Run("line breaks are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("name", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("profile")

		assert.Equal(t, "profile", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: profile", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("empty")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, "value is required: name (cause: empty)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("courier", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("lon", 200, -180, 180), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("id"), errs.ErrValueIsRequired)
}
