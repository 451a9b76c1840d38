package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrGetAgentOrdersQueryIsNotConstructed = errors.New(
	"GetAgentOrdersQuery must be created via NewGetAgentOrdersQuery constructor",
)

// GetAgentOrdersQuery retrieves the orders assigned to one delivery agent.
// With activeOnly the result is limited to the agent's current workload;
// otherwise the full assignment history is returned.
type GetAgentOrdersQuery struct {
	agentID    kernel.UUID
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetAgentOrdersQuery creates a query for an agent's orders.
func NewGetAgentOrdersQuery(agentID kernel.UUID, activeOnly bool) (GetAgentOrdersQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentOrdersQuery{}, err
	}

	return GetAgentOrdersQuery{
		agentID:    agentID,
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAgentOrdersQueryIsNotConstructed if validation fails.
func (q GetAgentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentOrdersQueryIsNotConstructed)
}

// AgentID returns the agent whose orders are requested.
func (q GetAgentOrdersQuery) AgentID() kernel.UUID {
	return q.agentID
}

// ActiveOnly reports whether delivered orders are excluded.
func (q GetAgentOrdersQuery) ActiveOnly() bool {
	return q.activeOnly
}

// GetAgentOrdersQueryResponse is the order summary shown in an agent's
// assignment list. Carries the delivery address so the agent can navigate.
type GetAgentOrdersQueryResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Status       order.Status
	Street       string
	City         string
	PlacedAt     time.Time
}
