package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/services"
)

// AcceptOrderCommandHandler handles the business logic for accepting orders.
// Moves the order to "accepted" and immediately tries to reserve a delivery
// agent for it. When no agent is free the order stays accepted and unassigned;
// the periodic assignment sweep picks it up later.
//
// Example:
//
//	handler := NewAcceptOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("acceptance failed: %w", err)
//	}
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
// Requires a UoWFactory so the status change, the agent reservation and the
// outbox record share one transaction.
func NewAcceptOrderCommandHandler(uowFactory UoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept order command.
// Running out of free agents is not an error for the caller: the acceptance
// itself still commits and the order waits in the assignment queue.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	acceptedOrder, err := orderRepo.GetForRestaurant(ctx, cmd.OrderID(), cmd.RestaurantID())
	if err != nil {
		return err
	}

	if err = acceptedOrder.Accept(); err != nil {
		return err
	}

	err = assignAgentToOrder(ctx, uow, acceptedOrder)
	if errors.Is(err, services.ErrNoAgentAvailable) {
		if err = orderRepo.Update(ctx, acceptedOrder); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
