package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
		"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
	)
	ErrDeliveryStatusIsInvalid = errors.New(
		"delivery status must be picked_up, on_the_way or delivered",
	)
)

// UpdateDeliveryStatusCommand represents a delivery agent's progress report:
// the order was picked up, is on the way, or was delivered.
//
// Example:
//
//	cmd, err := NewUpdateDeliveryStatusCommand(orderID, agentID, order.StatusDelivered)
//	if err != nil {
//	    return err
//	}
//	handler := NewUpdateDeliveryStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update delivery status: %w", err)
//	}
//	// The agent is available again once the order is delivered
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to advance delivery
// progress. The target status must be StatusPickedUp, StatusOnTheWay or
// StatusDelivered; the agent must be the one bound to the order.
func NewUpdateDeliveryStatusCommand(
	orderID kernel.UUID,
	agentID kernel.UUID,
	target order.Status,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAgentID(agentID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryStatusCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// OrderID returns the order being progressed.
func (c UpdateDeliveryStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the reporting agent's identifier.
func (c UpdateDeliveryStatusCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Target returns the requested delivery status.
func (c UpdateDeliveryStatusCommand) Target() order.Status {
	return c.target
}

func (c *UpdateDeliveryStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setTarget(target order.Status) error {
	switch target {
	case order.StatusPickedUp, order.StatusOnTheWay, order.StatusDelivered:
		c.target = target
		return nil
	default:
		return ErrDeliveryStatusIsInvalid
	}
}
