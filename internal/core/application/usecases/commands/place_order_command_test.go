package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLine(t *testing.T) commands.OrderLine {
	t.Helper()
	line, err := commands.NewOrderLine(kernel.NewUUID(), 2)
	require.NoError(t, err)
	return line
}

func TestNewOrderLine_ValidInput(t *testing.T) {
	menuItemID := kernel.NewUUID()
	line, err := commands.NewOrderLine(menuItemID, 3)
	require.NoError(t, err)
	assert.Equal(t, menuItemID, line.MenuItemID())
	assert.Equal(t, 3, line.Quantity())
}

func TestNewOrderLine_InvalidQuantity(t *testing.T) {
	_, err := commands.NewOrderLine(kernel.NewUUID(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrLineQuantityIsInvalid)
}

func TestNewOrderLine_InvalidMenuItemID(t *testing.T) {
	_, err := commands.NewOrderLine(kernel.UUID{}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	line := validLine(t)

	cmd, err := commands.NewPlaceOrderCommand(
		orderID, userID, restaurantID,
		[]commands.OrderLine{line},
		"1 Main St", "Springfield", "IL", "62701",
		"leave at the door",
	)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, restaurantID, cmd.RestaurantID())
	assert.Len(t, cmd.Lines(), 1)
	assert.Equal(t, "1 Main St", cmd.Street())
	assert.Equal(t, "Springfield", cmd.City())
	assert.Equal(t, "IL", cmd.State())
	assert.Equal(t, "62701", cmd.PostalCode())
	assert.Equal(t, "leave at the door", cmd.Instructions())
}

func TestNewPlaceOrderCommand_EmptyLines(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		nil,
		"1 Main St", "Springfield", "", "", "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrLinesAreRequired)
}

func TestNewPlaceOrderCommand_UnconstructedLine(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderLine{{}},
		"1 Main St", "Springfield", "", "", "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderLineIsNotConstructed)
}

func TestNewPlaceOrderCommand_EmptyStreet(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderLine{validLine(t)},
		"", "Springfield", "", "", "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStreetIsRequired)
}

func TestNewPlaceOrderCommand_EmptyCity(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderLine{validLine(t)},
		"1 Main St", "", "", "", "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCityIsRequired)
}

func TestNewPlaceOrderCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
		[]commands.OrderLine{validLine(t)},
		"1 Main St", "Springfield", "", "", "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestPlaceOrderCommand_ValidateUnconstructed(t *testing.T) {
	cmd := commands.PlaceOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
}
