package courier_test

import (
	"testing"

	"shipconvenient/internal/core/domain/model/courier"
	"shipconvenient/internal/core/domain/model/kernel"
	"shipconvenient/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidProfile(t *testing.T) courier.Profile {
	t.Helper()
	p, err := courier.NewProfile(kernel.NewUUID(), " Tran Thi B ", "0901234567")
	require.NoError(t, err)
	return p
}

func TestNewCourier(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create courier with profile", func(t *testing.T) {
		profile := createValidProfile(t)

		c, err := courier.NewCourier(validID, "tranthib", &profile)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(validID))
		assert.Equal(t, "tranthib", c.Name())
		assert.True(t, c.HasProfile())

		got, ok := c.Profile()
		require.True(t, ok)
		assert.True(t, got.ID().IsEqual(profile.ID()))
		assert.Equal(t, "Tran Thi B", got.FullName())
	})

	t.Run("should create courier without profile", func(t *testing.T) {
		c, err := courier.NewCourier(validID, "nobody", nil)

		require.NoError(t, err)
		assert.False(t, c.HasProfile())
		_, ok := c.Profile()
		assert.False(t, ok)
	})

	t.Run("should join validation errors", func(t *testing.T) {
		zeroProfile := courier.Profile{}

		c, err := courier.NewCourier(kernel.UUID{}, "  ", &zeroProfile)

		assert.Nil(t, c)
		require.ErrorIs(t, err, courier.ErrNameIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("profile is copied", func(t *testing.T) {
		profile := createValidProfile(t)
		c, err := courier.NewCourier(validID, "copy", &profile)
		require.NoError(t, err)

		profile = courier.Profile{}

		got, ok := c.Profile()
		require.True(t, ok)
		require.NoError(t, got.Validate())
	})
}

func TestCourier_Validate(t *testing.T) {
	var nilCourier *courier.Courier
	assert.Equal(t, courier.ErrCourierIsNotConstructed, nilCourier.Validate())

	zero := &courier.Courier{}
	assert.Equal(t, courier.ErrCourierIsNotConstructed, zero.Validate())
}

func TestCourier_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, err := courier.NewCourier(id, "a", nil)
	require.NoError(t, err)
	b, err := courier.NewCourier(id, "b", nil)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}

func TestNewProfile_RequiresID(t *testing.T) {
	_, err := courier.NewProfile(kernel.UUID{}, "x", "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, courier.ErrProfileIsNotConstructed, courier.Profile{}.Validate())
}
