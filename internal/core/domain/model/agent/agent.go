package agent

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrAgentIsNotConstructed is returned when a DeliveryAgent instance was not
	// created through NewDeliveryAgent or RestoreDeliveryAgent.
	ErrAgentIsNotConstructed = errors.New(
		"DeliveryAgent must be created via NewDeliveryAgent or RestoreDeliveryAgent")

	// ErrNameIsRequired is returned when an agent is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrAgentIsNotAvailable is returned when reserving an agent that already
	// holds an active assignment.
	ErrAgentIsNotAvailable = errors.New("delivery agent is not available")
)

// DeliveryAgent represents a courier resource with a binary availability
// state. An agent outlives many orders; it is bound to at most one in-flight
// order at a time.
//
// Invariants:
//   - An agent with availability false holds exactly one active assignment
//   - An agent with availability true holds none
//
// Reserve and Release flip the availability flag with pool semantics: Reserve
// fails on an already-reserved agent, Release is an idempotent no-op on an
// already-available one. The exclusivity of Reserve across concurrent
// transactions is provided by the repository's row locking, not by this type.
type DeliveryAgent struct {
	id          kernel.UUID
	name        string
	phone       string
	vehicleType VehicleType
	location    kernel.Location

	// isAvailable is false while the agent holds an active assignment
	isAvailable bool

	isConstructed bool
}

// NewDeliveryAgent creates an available agent at the given location.
func NewDeliveryAgent(
	id kernel.UUID,
	name string,
	phone string,
	vehicleType VehicleType,
	location kernel.Location,
) (*DeliveryAgent, error) {
	a := &DeliveryAgent{
		phone:         phone,
		isAvailable:   true,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setVehicleType(vehicleType),
		a.setLocation(location),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreDeliveryAgent reconstructs an agent from persistence.
func RestoreDeliveryAgent(
	id kernel.UUID,
	name string,
	phone string,
	vehicleType VehicleType,
	location kernel.Location,
	isAvailable bool,
) (*DeliveryAgent, error) {
	a, err := NewDeliveryAgent(id, name, phone, vehicleType, location)
	if err != nil {
		return nil, err
	}

	a.isAvailable = isAvailable
	return a, nil
}

// Validate ensures the DeliveryAgent instance was properly constructed.
func (a *DeliveryAgent) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAgentIsNotConstructed
	}
	return nil
}

// IsEqual compares two agents by their unique identifiers.
func (a *DeliveryAgent) IsEqual(other *DeliveryAgent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's unique identifier.
func (a *DeliveryAgent) ID() kernel.UUID {
	return a.id
}

// Name returns the agent's display name.
func (a *DeliveryAgent) Name() string {
	return a.name
}

// Phone returns the agent's contact phone. May be empty.
func (a *DeliveryAgent) Phone() string {
	return a.phone
}

// VehicleType returns the agent's vehicle type.
func (a *DeliveryAgent) VehicleType() VehicleType {
	return a.vehicleType
}

// Location returns the agent's last reported position.
func (a *DeliveryAgent) Location() kernel.Location {
	return a.location
}

// IsAvailable reports whether the agent can take a new assignment.
func (a *DeliveryAgent) IsAvailable() bool {
	return a.isAvailable
}

// Reserve claims the agent for an assignment, flipping it to unavailable.
// Returns ErrAgentIsNotAvailable if the agent already holds an assignment.
func (a *DeliveryAgent) Reserve() error {
	if !a.isAvailable {
		return ErrAgentIsNotAvailable
	}

	a.isAvailable = false
	return nil
}

// Release returns the agent to the pool. Releasing an already-available agent
// is a no-op, not an error, so release paths stay idempotent.
func (a *DeliveryAgent) Release() {
	a.isAvailable = true
}

// MoveTo updates the agent's reported position.
func (a *DeliveryAgent) MoveTo(location kernel.Location) error {
	return a.setLocation(location)
}

// SetAvailability is the administrative mutator for the availability flag.
// It must not be used to free an agent that holds an active assignment; the
// caller is responsible for checking, since the aggregate does not see orders.
func (a *DeliveryAgent) SetAvailability(available bool) {
	a.isAvailable = available
}

func (a *DeliveryAgent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *DeliveryAgent) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *DeliveryAgent) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	a.vehicleType = vehicleType
	return nil
}

func (a *DeliveryAgent) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.location = location
	return nil
}
