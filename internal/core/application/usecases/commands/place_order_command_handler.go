package commands

import (
	"context"
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

var (
	ErrMenuItemNotFound        = errors.New("menu item not found")
	ErrMenuItemUnavailable     = errors.New("menu item is not available")
	ErrMenuItemWrongRestaurant = errors.New("menu item belongs to a different restaurant")
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Validates every requested line against the menu catalog, snapshots the
// current prices onto the order items, and persists the order in "pending"
// status.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, menuCatalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now pending and awaiting the restaurant's decision
type PlaceOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	menuCatalog ports.MenuCatalog
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderUoWFactory for transactional persistence and a MenuCatalog
// for line validation and price lookup.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	menuCatalog ports.MenuCatalog,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		menuCatalog: menuCatalog,
	}
}

// Handle processes the place order command.
// Every line must reference an available item of the target restaurant;
// otherwise the whole placement is rejected and nothing is persisted.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := h.buildItems(ctx, cmd)
	if err != nil {
		return err
	}

	address, err := kernel.NewAddress(cmd.Street(), cmd.City(), cmd.State(), cmd.PostalCode())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.RestaurantID(),
		items,
		address,
		cmd.Instructions(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildItems resolves the requested lines against the menu catalog and turns
// them into order items with snapshotted prices.
func (h PlaceOrderCommandHandler) buildItems(
	ctx context.Context,
	cmd PlaceOrderCommand,
) ([]order.Item, error) {
	lines := cmd.Lines()
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.MenuItemID())
	}

	catalog, err := h.menuCatalog.GetItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		entry, ok := catalog[line.MenuItemID()]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMenuItemNotFound, line.MenuItemID())
		}
		if !entry.RestaurantID.IsEqual(cmd.RestaurantID()) {
			return nil, fmt.Errorf("%w: %s", ErrMenuItemWrongRestaurant, line.MenuItemID())
		}
		if !entry.IsAvailable {
			return nil, fmt.Errorf("%w: %s", ErrMenuItemUnavailable, line.MenuItemID())
		}

		item, itemErr := order.NewItem(kernel.NewUUID(), entry.ID, line.Quantity(), entry.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, nil
}
