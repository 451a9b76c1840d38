// Package ports defines the contracts between the application core and
// infrastructure. These interfaces establish repository, unit-of-work, and
// collaborator boundaries, enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update performs an optimistic check-and-set on the aggregate version: a
// concurrent transition that committed first makes Update fail with a version
// conflict, so two racing transitions on the same order can never both win.
type OrderRepository interface {
	// Add persists a new order together with its line items as one atomic unit.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. Fails with
	// errs.ErrVersionConflict when the stored version no longer matches the
	// aggregate's, and with errs.ErrObjectNotFound when the row is gone.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForRestaurant retrieves an order scoped to its owning restaurant.
	// An order that exists but belongs to another restaurant is reported as
	// not found, so callers cannot probe foreign orders.
	GetForRestaurant(ctx context.Context, id kernel.UUID, restaurantID kernel.UUID) (*order.Order, error)

	// GetAllAcceptedUnassigned retrieves accepted orders with no bound agent,
	// oldest acceptance first. Feeds the assignment reconciliation sweep.
	GetAllAcceptedUnassigned(ctx context.Context) ([]*order.Order, error)

	// HasActiveForAgent reports whether the agent is bound to any in-flight
	// order. Guards the administrative availability flip.
	HasActiveForAgent(ctx context.Context, agentID kernel.UUID) (bool, error)
}
