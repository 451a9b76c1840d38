package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateDeliveryStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	agentID := kernel.NewUUID()

	for _, target := range []order.Status{
		order.StatusPickedUp, order.StatusOnTheWay, order.StatusDelivered,
	} {
		cmd, err := commands.NewUpdateDeliveryStatusCommand(orderID, agentID, target)
		require.NoError(t, err)
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, agentID, cmd.AgentID())
		assert.Equal(t, target, cmd.Target())
	}
}

func TestNewUpdateDeliveryStatusCommand_InvalidTarget(t *testing.T) {
	for _, target := range []order.Status{
		order.StatusPending, order.StatusAccepted, order.StatusPreparing,
		order.StatusReadyForPickup, order.StatusCancelled, order.Status("bogus"),
	} {
		_, err := commands.NewUpdateDeliveryStatusCommand(kernel.NewUUID(), kernel.NewUUID(), target)
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrDeliveryStatusIsInvalid)
	}
}

func TestNewUpdateDeliveryStatusCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewUpdateDeliveryStatusCommand(kernel.UUID{}, kernel.NewUUID(), order.StatusPickedUp)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUpdateDeliveryStatusCommand_ValidateUnconstructed(t *testing.T) {
	cmd := commands.UpdateDeliveryStatusCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateDeliveryStatusCommandIsNotConstructed)
}
