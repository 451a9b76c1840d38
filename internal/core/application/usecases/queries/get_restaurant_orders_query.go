package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
		"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
	)
	ErrStatusFilterIsInvalid = errors.New("status filter is not a known order status")
)

// GetRestaurantOrdersQuery retrieves the orders placed with one restaurant,
// newest first, optionally filtered by status.
//
// Example:
//
//	status := order.StatusPending
//	query, err := NewGetRestaurantOrdersQuery(restaurantID, &status)
//	if err != nil {
//	    return err
//	}
//	orders, err := NewGetRestaurantOrdersQueryHandler(db).Handle(ctx, query)
type GetRestaurantOrdersQuery struct {
	restaurantID kernel.UUID
	status       *order.Status

	guard guard.ConstructorGuard
}

// NewGetRestaurantOrdersQuery creates a query for a restaurant's orders.
// A nil status means no filtering.
func NewGetRestaurantOrdersQuery(
	restaurantID kernel.UUID,
	status *order.Status,
) (GetRestaurantOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}

	q := GetRestaurantOrdersQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetRestaurantOrdersQuery{}, errors.Join(ErrStatusFilterIsInvalid, err)
		}
		filtered := *status
		q.status = &filtered
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRestaurantOrdersQueryIsNotConstructed if validation fails.
func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose orders are requested.
func (q GetRestaurantOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// Status returns the status filter, or nil for all orders.
func (q GetRestaurantOrdersQuery) Status() *order.Status {
	return q.status
}

// GetRestaurantOrdersQueryResponse is the order summary shown in a
// restaurant's order list.
type GetRestaurantOrdersQueryResponse struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	Status      order.Status
	TotalAmount decimal.Decimal
	PlacedAt    time.Time
}
