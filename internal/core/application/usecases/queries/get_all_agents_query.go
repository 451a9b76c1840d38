package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetAllAgentsQueryIsNotConstructed = errors.New(
	"GetAllAgentsQuery must be created via NewGetAllAgentsQuery constructor",
)

// GetAllAgentsQuery retrieves every delivery agent for administrative
// listings and fleet monitoring.
//
// Example:
//
//	query := NewGetAllAgentsQuery()
//	handler := NewGetAllAgentsQueryHandler(db)
//	agents, err := handler.Handle(ctx, query)
type GetAllAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllAgentsQuery creates a query to retrieve all agents.
// This is a parameterless query.
func NewGetAllAgentsQuery() GetAllAgentsQuery {
	return GetAllAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllAgentsQueryIsNotConstructed if validation fails.
func (q GetAllAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAgentsQueryIsNotConstructed)
}

// GetAllAgentsQueryResponse represents one agent in the fleet listing.
type GetAllAgentsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Phone       string
	VehicleType agent.VehicleType
	Location    kernel.Location
	IsAvailable bool
}
