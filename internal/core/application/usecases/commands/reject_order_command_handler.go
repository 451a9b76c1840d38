package commands

import (
	"context"
)

// RejectOrderCommandHandler handles the business logic for rejecting orders.
// Only pending orders can be rejected, so there is never an agent to release.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reject order command.
// Loads the order scoped to the acting restaurant, moves it to "rejected"
// and persists the change.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	rejectedOrder, err := orderRepo.GetForRestaurant(ctx, cmd.OrderID(), cmd.RestaurantID())
	if err != nil {
		return err
	}

	if err = rejectedOrder.Reject(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, rejectedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
