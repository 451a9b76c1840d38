package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrAssignPendingOrdersCommandIsNotConstructed = errors.New(
	"AssignPendingOrdersCommand must be created via NewAssignPendingOrdersCommand constructor",
)

// AssignPendingOrdersCommand triggers the assignment sweep over accepted
// orders that are still waiting for a delivery agent. Orders end up in that
// state when the pool was exhausted at acceptance time.
//
// Example:
//
//	cmd := NewAssignPendingOrdersCommand()
//	handler := NewAssignPendingOrdersCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("assignment sweep failed: %v", err)
//	}
type AssignPendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignPendingOrdersCommand creates a new command to trigger the
// assignment sweep. This is a parameterless command.
func NewAssignPendingOrdersCommand() AssignPendingOrdersCommand {
	return AssignPendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPendingOrdersCommandIsNotConstructed if validation fails.
func (c *AssignPendingOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignPendingOrdersCommandIsNotConstructed,
	)
}
