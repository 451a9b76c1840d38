package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrUpdateAgentCommandIsNotConstructed = errors.New(
		"UpdateAgentCommand must be created via NewUpdateAgentCommand constructor",
	)
	ErrLocationIsPartial = errors.New("latitude and longitude must be set together")
	ErrNothingToUpdate   = errors.New("at least one field must be updated")
)

// UpdateAgentPatch lists the optional agent fields an update may change.
// Nil fields are left untouched.
type UpdateAgentPatch struct {
	Latitude    *float64
	Longitude   *float64
	IsAvailable *bool
}

// UpdateAgentCommand represents a partial update of a delivery agent:
// a position report, a manual availability flip, or both.
//
// Example:
//
//	lat, lng := 41.89, -87.62
//	cmd, err := NewUpdateAgentCommand(agentID, UpdateAgentPatch{
//	    Latitude:  &lat,
//	    Longitude: &lng,
//	})
type UpdateAgentCommand struct { //nolint:recvcheck //using for validation
	agentID     kernel.UUID
	location    *kernel.Location
	isAvailable *bool

	guard guard.ConstructorGuard
}

// NewUpdateAgentCommand creates a command to patch an agent.
// Latitude and longitude must be provided together; an empty patch is
// rejected.
func NewUpdateAgentCommand(agentID kernel.UUID, patch UpdateAgentPatch) (UpdateAgentCommand, error) {
	cmd := UpdateAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setPatch(patch),
	); err != nil {
		return UpdateAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateAgentCommandIsNotConstructed if validation fails.
func (c UpdateAgentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAgentCommandIsNotConstructed)
}

// AgentID returns the agent being updated.
func (c UpdateAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Location returns the new position, or nil when unchanged.
func (c UpdateAgentCommand) Location() *kernel.Location {
	return c.location
}

// IsAvailable returns the requested availability, or nil when unchanged.
func (c UpdateAgentCommand) IsAvailable() *bool {
	return c.isAvailable
}

func (c *UpdateAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *UpdateAgentCommand) setPatch(patch UpdateAgentPatch) error {
	if (patch.Latitude == nil) != (patch.Longitude == nil) {
		return ErrLocationIsPartial
	}

	if patch.Latitude == nil && patch.IsAvailable == nil {
		return ErrNothingToUpdate
	}

	if patch.Latitude != nil {
		location, err := kernel.NewLocation(*patch.Latitude, *patch.Longitude)
		if err != nil {
			return err
		}
		c.location = &location
	}

	if patch.IsAvailable != nil {
		available := *patch.IsAvailable
		c.isAvailable = &available
	}

	return nil
}
