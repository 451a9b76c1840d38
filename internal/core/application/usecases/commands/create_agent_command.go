package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCreateAgentCommandIsNotConstructed = errors.New(
		"CreateAgentCommand must be created via NewCreateAgentCommand constructor",
	)
	ErrAgentNameIsRequired = errors.New("agent name is required")
)

// CreateAgentCommand represents a request to register a new delivery agent.
// New agents join the pool available and at the given position.
//
// Example:
//
//	cmd, err := NewCreateAgentCommand(
//	    kernel.NewUUID(), "Jane Smith", "+15550100",
//	    agent.VehicleBicycle, 41.88, -87.63,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid agent data: %w", err)
//	}
type CreateAgentCommand struct { //nolint:recvcheck //using for validation
	agentID     kernel.UUID
	name        string
	phone       string
	vehicleType agent.VehicleType
	location    kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateAgentCommand creates a command to register a delivery agent.
// Validates the ID, requires a name, checks the vehicle type and the
// coordinate ranges. Phone is optional.
func NewCreateAgentCommand(
	agentID kernel.UUID,
	name string,
	phone string,
	vehicleType agent.VehicleType,
	latitude float64,
	longitude float64,
) (CreateAgentCommand, error) {
	cmd := CreateAgentCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setName(name),
		cmd.setVehicleType(vehicleType),
		cmd.setLocation(latitude, longitude),
	); err != nil {
		return CreateAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAgentCommandIsNotConstructed if validation fails.
func (c CreateAgentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAgentCommandIsNotConstructed)
}

// AgentID returns the unique identifier for the new agent.
func (c CreateAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Name returns the agent's display name.
func (c CreateAgentCommand) Name() string {
	return c.name
}

// Phone returns the agent's contact phone, may be empty.
func (c CreateAgentCommand) Phone() string {
	return c.phone
}

// VehicleType returns the agent's vehicle type.
func (c CreateAgentCommand) VehicleType() agent.VehicleType {
	return c.vehicleType
}

// Location returns the agent's starting position.
func (c CreateAgentCommand) Location() kernel.Location {
	return c.location
}

func (c *CreateAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *CreateAgentCommand) setName(name string) error {
	if name == "" {
		return ErrAgentNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateAgentCommand) setVehicleType(vehicleType agent.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *CreateAgentCommand) setLocation(latitude float64, longitude float64) error {
	location, err := kernel.NewLocation(latitude, longitude)
	if err != nil {
		return err
	}

	c.location = location
	return nil
}
