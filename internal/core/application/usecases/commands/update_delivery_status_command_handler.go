package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// UpdateDeliveryStatusCommandHandler handles delivery progress updates.
// Advances an order through "picked_up", "on_the_way" and "delivered" on
// behalf of the bound agent; delivery frees the agent for new assignments.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory OrderAgentUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// progress updates. Requires an OrderAgentUoWFactory so the final status
// change and the agent release commit atomically.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory OrderAgentUoWFactory,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery status update command.
// Returns ErrActorForbidden when the reporting agent is not the one bound to
// the order. On "delivered" the agent becomes available again in the same
// transaction.
func (h UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryStatusCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	progressedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !progressedOrder.IsAssignedTo(cmd.AgentID()) {
		return ErrActorForbidden
	}

	switch cmd.Target() {
	case order.StatusPickedUp:
		err = progressedOrder.MarkPickedUp()
	case order.StatusOnTheWay:
		err = progressedOrder.MarkOnTheWay()
	case order.StatusDelivered:
		err = progressedOrder.MarkDelivered()
	default:
		err = ErrDeliveryStatusIsInvalid
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, progressedOrder); err != nil {
		return err
	}

	if cmd.Target() == order.StatusDelivered {
		agentRepo := uow.AgentRepository()

		releasedAgent, agentErr := agentRepo.Get(ctx, cmd.AgentID())
		if agentErr != nil {
			return agentErr
		}

		releasedAgent.Release()

		if agentErr = agentRepo.Update(ctx, releasedAgent); agentErr != nil {
			return agentErr
		}
	}

	return uow.Commit(ctx)
}
