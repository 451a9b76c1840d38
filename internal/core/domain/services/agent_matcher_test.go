package services_test

import (
	"testing"

	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func agentAt(t *testing.T, name string, lat, lng float64) *agent.DeliveryAgent {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	a, err := agent.NewDeliveryAgent(kernel.NewUUID(), name, "", agent.VehicleBicycle, loc)
	require.NoError(t, err)
	return a
}

func acceptedOrderAt(t *testing.T, lat, lng float64) *order.Order {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	addr, err := kernel.NewAddressWithLocation("12 Baker St", "Springfield", "", "", loc)
	require.NoError(t, err)
	return acceptedOrderWithAddress(t, addr)
}

func acceptedOrderWithAddress(t *testing.T, addr kernel.Address) *order.Order {
	t.Helper()
	unitPrice, err := order.MoneyFromString("10.00")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, unitPrice)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, addr, "")
	require.NoError(t, err)
	require.NoError(t, o.Accept())
	return o
}

func TestAgentMatcher_Match_PicksNearestAgent(t *testing.T) {
	o := acceptedOrderAt(t, 10, 10)
	far := agentAt(t, "Far", 50, 50)
	near := agentAt(t, "Near", 11, 11)

	matched, err := services.NewAgentMatcher().Match(o, []*agent.DeliveryAgent{far, near})
	require.NoError(t, err)

	assert.True(t, matched.IsEqual(near))
	assert.False(t, near.IsAvailable())
	assert.True(t, far.IsAvailable())
	require.NotNil(t, o.Agent())
	assert.True(t, o.Agent().IsEqual(near.ID()))
}

func TestAgentMatcher_Match_FirstAvailableWithoutCoordinates(t *testing.T) {
	addr, err := kernel.NewAddress("12 Baker St", "Springfield", "", "")
	require.NoError(t, err)
	o := acceptedOrderWithAddress(t, addr)

	first := agentAt(t, "First", 1, 1)
	second := agentAt(t, "Second", 2, 2)

	matched, err := services.NewAgentMatcher().Match(o, []*agent.DeliveryAgent{first, second})
	require.NoError(t, err)

	assert.True(t, matched.IsEqual(first))
}

func TestAgentMatcher_Match_SkipsReservedAgents(t *testing.T) {
	o := acceptedOrderAt(t, 10, 10)
	reserved := agentAt(t, "Busy", 10, 10)
	require.NoError(t, reserved.Reserve())
	free := agentAt(t, "Free", 40, 40)

	matched, err := services.NewAgentMatcher().Match(o, []*agent.DeliveryAgent{reserved, free})
	require.NoError(t, err)

	assert.True(t, matched.IsEqual(free))
}

func TestAgentMatcher_Match_NoAgentAvailable(t *testing.T) {
	o := acceptedOrderAt(t, 10, 10)

	t.Run("empty_candidate_set", func(t *testing.T) {
		_, err := services.NewAgentMatcher().Match(o, nil)
		require.ErrorIs(t, err, services.ErrNoAgentAvailable)
	})

	t.Run("all_reserved", func(t *testing.T) {
		busy := agentAt(t, "Busy", 10, 10)
		require.NoError(t, busy.Reserve())

		_, err := services.NewAgentMatcher().Match(o, []*agent.DeliveryAgent{busy})
		require.ErrorIs(t, err, services.ErrNoAgentAvailable)
	})

	t.Run("order_stays_unassigned", func(t *testing.T) {
		_, err := services.NewAgentMatcher().Match(o, nil)
		require.Error(t, err)
		assert.Nil(t, o.Agent())
		assert.Equal(t, order.StatusAccepted, o.Status())
	})
}

func TestAgentMatcher_Match_OrderMustBeAssignable(t *testing.T) {
	o := acceptedOrderAt(t, 10, 10)
	first := agentAt(t, "First", 10, 10)
	require.NoError(t, o.AssignAgent(kernel.NewUUID()))

	_, err := services.NewAgentMatcher().Match(o, []*agent.DeliveryAgent{first})

	require.ErrorIs(t, err, order.ErrAgentAlreadyAssigned)
}
