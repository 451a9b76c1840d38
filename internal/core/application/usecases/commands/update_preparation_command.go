package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var (
	ErrUpdatePreparationCommandIsNotConstructed = errors.New(
		"UpdatePreparationCommand must be created via NewUpdatePreparationCommand constructor",
	)
	ErrPreparationStatusIsInvalid = errors.New(
		"preparation status must be preparing or ready_for_pickup",
	)
)

// UpdatePreparationCommand represents a restaurant's kitchen progress update:
// the order went into preparation or is ready for pickup.
type UpdatePreparationCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID
	target       order.Status

	guard guard.ConstructorGuard
}

// NewUpdatePreparationCommand creates a command to advance kitchen progress.
// The target status must be StatusPreparing or StatusReadyForPickup; the
// transition itself is still checked against the order's current status at
// handling time.
func NewUpdatePreparationCommand(
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	target order.Status,
) (UpdatePreparationCommand, error) {
	cmd := UpdatePreparationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRestaurantID(restaurantID),
		cmd.setTarget(target),
	); err != nil {
		return UpdatePreparationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdatePreparationCommandIsNotConstructed if validation fails.
func (c UpdatePreparationCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePreparationCommandIsNotConstructed)
}

// OrderID returns the order being progressed.
func (c UpdatePreparationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the acting restaurant's identifier.
func (c UpdatePreparationCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Target returns the requested kitchen status.
func (c UpdatePreparationCommand) Target() order.Status {
	return c.target
}

func (c *UpdatePreparationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdatePreparationCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *UpdatePreparationCommand) setTarget(target order.Status) error {
	if target != order.StatusPreparing && target != order.StatusReadyForPickup {
		return ErrPreparationStatusIsInvalid
	}

	c.target = target
	return nil
}
