package commands

import (
	"context"
	"errors"
)

// ErrAgentHasActiveAssignment is returned when availability is flipped
// manually while the agent still carries an active order.
var ErrAgentHasActiveAssignment = errors.New("agent has an active assignment")

// UpdateAgentCommandHandler handles partial agent updates.
// Position reports are always allowed; manual availability flips are refused
// while the agent carries an active order, since for such agents availability
// is owned by the assignment lifecycle.
type UpdateAgentCommandHandler struct {
	uowFactory OrderAgentUoWFactory
}

// NewUpdateAgentCommandHandler creates a handler for agent updates.
// Requires an OrderAgentUoWFactory: the order repository is consulted to
// detect active assignments.
func NewUpdateAgentCommandHandler(uowFactory OrderAgentUoWFactory) UpdateAgentCommandHandler {
	return UpdateAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update agent command.
func (h UpdateAgentCommandHandler) Handle(ctx context.Context, cmd UpdateAgentCommand) error {
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

	agentRepo := uow.AgentRepository()

	updatedAgent, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if location := cmd.Location(); location != nil {
		if err = updatedAgent.MoveTo(*location); err != nil {
			return err
		}
	}

	if available := cmd.IsAvailable(); available != nil {
		active, activeErr := uow.OrderRepository().HasActiveForAgent(ctx, cmd.AgentID())
		if activeErr != nil {
			return activeErr
		}
		if active {
			return ErrAgentHasActiveAssignment
		}

		updatedAgent.SetAvailability(*available)
	}

	if err = agentRepo.Update(ctx, updatedAgent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
