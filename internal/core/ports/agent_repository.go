package ports

import (
	"context"

	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery-agent
// aggregates.
type AgentRepository interface {
	// Add persists a new agent.
	Add(ctx context.Context, aggregate *agent.DeliveryAgent) error

	// Update persists changes to an existing agent.
	Update(ctx context.Context, aggregate *agent.DeliveryAgent) error

	// Get retrieves an agent by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.DeliveryAgent, error)

	// GetAll retrieves every agent, for administrative listings.
	GetAll(ctx context.Context) ([]*agent.DeliveryAgent, error)

	// GetAllAvailableForReservation retrieves available agents as reservation
	// candidates with their rows locked until the surrounding transaction
	// ends. Rows already locked by a concurrent reservation are skipped rather
	// than waited on, so N racing acceptors receive disjoint candidate sets.
	// Must be called inside a unit-of-work transaction.
	GetAllAvailableForReservation(ctx context.Context) ([]*agent.DeliveryAgent, error)
}
