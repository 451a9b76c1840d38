package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{
		order.StatusPending,
		order.StatusAccepted,
		order.StatusRejected,
		order.StatusPreparing,
		order.StatusReadyForPickup,
		order.StatusPickedUp,
		order.StatusOnTheWay,
		order.StatusDelivered,
		order.StatusCancelled,
	}
	for _, s := range valid {
		require.NoError(t, s.Validate(), "status %q should be valid", s)
	}

	require.Error(t, order.Status("").Validate())
	require.Error(t, order.Status("shipped").Validate())
}

func TestStatus_TransitionTo_ValidChain(t *testing.T) {
	chain := []order.Status{
		order.StatusAccepted,
		order.StatusPreparing,
		order.StatusReadyForPickup,
		order.StatusPickedUp,
		order.StatusOnTheWay,
		order.StatusDelivered,
	}

	current := order.StatusPending
	for _, target := range chain {
		next, err := current.TransitionTo(target)
		require.NoError(t, err, "%s -> %s should be legal", current, target)
		current = next
	}
	assert.Equal(t, order.StatusDelivered, current)
}

func TestStatus_TransitionTo_Illegal(t *testing.T) {
	testCases := []struct {
		name string
		from order.Status
		to   order.Status
	}{
		{"pending_cannot_skip_to_delivered", order.StatusPending, order.StatusDelivered},
		{"pending_cannot_skip_to_preparing", order.StatusPending, order.StatusPreparing},
		{"accepted_cannot_skip_to_ready", order.StatusAccepted, order.StatusReadyForPickup},
		{"preparing_cannot_skip_to_picked_up", order.StatusPreparing, order.StatusPickedUp},
		{"accepted_cannot_be_rejected", order.StatusAccepted, order.StatusRejected},
		{"preparing_cannot_be_cancelled", order.StatusPreparing, order.StatusCancelled},
		{"delivered_is_terminal", order.StatusDelivered, order.StatusOnTheWay},
		{"rejected_is_terminal", order.StatusRejected, order.StatusAccepted},
		{"cancelled_is_terminal", order.StatusCancelled, order.StatusAccepted},
		{"no_self_transition", order.StatusAccepted, order.StatusAccepted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.from.TransitionTo(tc.to)
			require.Error(t, err)
			assert.ErrorIs(t, err, order.ErrIllegalTransition)
		})
	}
}

func TestStatus_TransitionTo_CancellationWindow(t *testing.T) {
	_, err := order.StatusPending.TransitionTo(order.StatusCancelled)
	require.NoError(t, err)

	_, err = order.StatusAccepted.TransitionTo(order.StatusCancelled)
	require.NoError(t, err)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusRejected.IsTerminal())
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())

	assert.False(t, order.StatusPending.IsTerminal())
	assert.False(t, order.StatusAccepted.IsTerminal())
	assert.False(t, order.StatusOnTheWay.IsTerminal())
}

func TestStatus_IsActive(t *testing.T) {
	for _, s := range order.ActiveStatuses() {
		assert.True(t, s.IsActive(), "status %q should be active", s)
	}

	assert.False(t, order.StatusPending.IsActive())
	assert.False(t, order.StatusRejected.IsActive())
	assert.False(t, order.StatusDelivered.IsActive())
	assert.False(t, order.StatusCancelled.IsActive())
}

func TestStatus_ValidateCanHaveAgent(t *testing.T) {
	t.Run("pending_cannot_have_agent", func(t *testing.T) {
		require.Error(t, order.StatusPending.ValidateCanHaveAgent(true))
		require.NoError(t, order.StatusPending.ValidateCanHaveAgent(false))
	})

	t.Run("accepted_may_be_unassigned", func(t *testing.T) {
		require.NoError(t, order.StatusAccepted.ValidateCanHaveAgent(true))
		require.NoError(t, order.StatusAccepted.ValidateCanHaveAgent(false))
	})

	t.Run("picked_up_requires_agent", func(t *testing.T) {
		require.NoError(t, order.StatusPickedUp.ValidateCanHaveAgent(true))
		require.Error(t, order.StatusPickedUp.ValidateCanHaveAgent(false))
	})

	t.Run("cancelled_cannot_have_agent", func(t *testing.T) {
		require.Error(t, order.StatusCancelled.ValidateCanHaveAgent(true))
	})
}
