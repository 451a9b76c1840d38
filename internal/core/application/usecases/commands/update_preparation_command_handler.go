package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// UpdatePreparationCommandHandler handles kitchen progress updates.
// Advances an order through "preparing" and "ready_for_pickup" on behalf of
// the owning restaurant.
type UpdatePreparationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdatePreparationCommandHandler creates a handler for kitchen progress
// updates.
func NewUpdatePreparationCommandHandler(uowFactory OrderUoWFactory) UpdatePreparationCommandHandler {
	return UpdatePreparationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the preparation update command.
// Loads the order scoped to the acting restaurant and applies the requested
// transition; skipping steps is refused by the aggregate.
func (h UpdatePreparationCommandHandler) Handle(ctx context.Context, cmd UpdatePreparationCommand) error {
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

	progressedOrder, err := orderRepo.GetForRestaurant(ctx, cmd.OrderID(), cmd.RestaurantID())
	if err != nil {
		return err
	}

	switch cmd.Target() {
	case order.StatusPreparing:
		err = progressedOrder.StartPreparing()
	case order.StatusReadyForPickup:
		err = progressedOrder.MarkReady()
	default:
		err = ErrPreparationStatusIsInvalid
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, progressedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
