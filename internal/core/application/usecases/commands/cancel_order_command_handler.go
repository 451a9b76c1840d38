package commands

import (
	"context"
	"errors"
)

// ErrActorForbidden is returned when the acting user or agent does not own
// the order they try to modify.
var ErrActorForbidden = errors.New("actor is not allowed to modify this order")

// CancelOrderCommandHandler handles the business logic for order cancellation.
// Cancels the order and, when an agent was already reserved for it, releases
// that agent back to the pool in the same transaction.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrActorForbidden):
//	    log.Println("order belongs to another customer")
//	case errors.Is(err, order.ErrIllegalTransition):
//	    log.Println("too late to cancel")
//	case err != nil:
//	    log.Printf("cancellation failed: %v", err)
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderAgentUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderAgentUoWFactory so the status change and the agent release
// commit atomically.
func NewCancelOrderCommandHandler(uowFactory OrderAgentUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel order command.
// Verifies ownership, transitions to "cancelled" and frees the bound agent
// when one exists.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	cancelledOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !cancelledOrder.UserID().IsEqual(cmd.UserID()) {
		return ErrActorForbidden
	}

	boundAgent := cancelledOrder.Agent()

	if err = cancelledOrder.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, cancelledOrder); err != nil {
		return err
	}

	if boundAgent != nil {
		agentRepo := uow.AgentRepository()

		releasedAgent, agentErr := agentRepo.Get(ctx, *boundAgent)
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
