package kernel_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("valid_address", func(t *testing.T) {
		addr, err := kernel.NewAddress("12 Baker St", "Springfield", "IL", "62704")
		require.NoError(t, err)
		assert.Equal(t, "12 Baker St", addr.Street())
		assert.Equal(t, "Springfield", addr.City())
		assert.Equal(t, "IL", addr.State())
		assert.Equal(t, "62704", addr.PostalCode())
		assert.Nil(t, addr.Location())
		require.NoError(t, addr.Validate())
	})

	t.Run("state_and_postal_code_optional", func(t *testing.T) {
		addr, err := kernel.NewAddress("12 Baker St", "Springfield", "", "")
		require.NoError(t, err)
		require.NoError(t, addr.Validate())
	})

	t.Run("street_required", func(t *testing.T) {
		_, err := kernel.NewAddress("", "Springfield", "IL", "62704")
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrStreetIsRequired)
	})

	t.Run("city_required", func(t *testing.T) {
		_, err := kernel.NewAddress("12 Baker St", "", "IL", "62704")
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrCityIsRequired)
	})
}

func TestNewAddressWithLocation(t *testing.T) {
	t.Run("valid_location", func(t *testing.T) {
		loc, _ := kernel.NewLocation(39.78, -89.65)

		addr, err := kernel.NewAddressWithLocation("12 Baker St", "Springfield", "IL", "62704", loc)
		require.NoError(t, err)
		require.NotNil(t, addr.Location())
		assert.True(t, addr.Location().IsEqual(loc))
	})

	t.Run("unconstructed_location_rejected", func(t *testing.T) {
		var zero kernel.Location

		_, err := kernel.NewAddressWithLocation("12 Baker St", "Springfield", "IL", "62704", zero)
		require.Error(t, err)
	})
}

func TestAddress_Validate_ZeroValue(t *testing.T) {
	var addr kernel.Address

	err := addr.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
}
