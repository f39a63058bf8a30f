package guard_test

import (
	"errors"
	"testing"

	"shipconvenient/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("query not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardEmbedded shows the guard embedded in a value object the way the
// domain model uses it.
func TestConstructorGuardEmbedded(t *testing.T) {
	type Tolerance struct {
		meters float64
		guard  guard.ConstructorGuard
	}
	errToleranceNotConstructed := errors.New("Tolerance must be created via newTolerance")

	newTolerance := func(meters float64) (Tolerance, error) {
		if meters < 0 {
			return Tolerance{}, errors.New("tolerance cannot be negative")
		}
		return Tolerance{meters: meters, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		tol, err := newTolerance(200)

		require.NoError(t, err)
		require.NoError(t, tol.guard.Validate(errToleranceNotConstructed))
		assert.InDelta(t, 200.0, tol.meters, 0)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var tol Tolerance

		assert.Equal(t, errToleranceNotConstructed, tol.guard.Validate(errToleranceNotConstructed))
	})

	t.Run("constructor_rejects_negative", func(t *testing.T) {
		_, err := newTolerance(-1)

		assert.EqualError(t, err, "tolerance cannot be negative")
	})
}
