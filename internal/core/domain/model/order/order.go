package order

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsAreRequired is returned when an order is placed with no line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

	// ErrAgentAlreadyAssigned is returned when assigning an agent to an order
	// that already holds an active assignment. An order is never rebound while
	// its assignment is active.
	ErrAgentAlreadyAssigned = errors.New("order already has an assigned delivery agent")

	// ErrOrderIsNotAssignable is returned when assigning an agent to an order
	// that has not entered the accepted status.
	ErrOrderIsNotAssignable = errors.New("only accepted orders can be assigned a delivery agent")
)

// Order is the aggregate root for a placed purchase request. It owns the
// canonical status field and the delivery-agent binding, and is mutated only
// through transition methods that enforce the lifecycle graph.
//
// Invariants:
//   - Status moves only along the legal transition graph
//   - The agent binding is non-nil iff the order passed the accepted
//     transition with a successful assignment, and is cleared when the order
//     leaves the in-flight chain through cancellation
//   - The total amount is immutable after creation and equals the sum of the
//     line totals snapshotted at creation time
//   - Line items are fixed at creation and never mutated afterward
//
// The version field supports optimistic concurrency control in the repository:
// two concurrent transitions on the same order cannot both commit.
type Order struct {
	id           kernel.UUID
	userID       kernel.UUID
	restaurantID kernel.UUID

	// agentID is the bound delivery agent (nil while unassigned)
	agentID *kernel.UUID

	status       Status
	totalAmount  Money
	address      kernel.Address
	instructions string
	items        []Item

	placedAt    time.Time
	acceptedAt  *time.Time
	deliveredAt *time.Time

	// version is the optimistic concurrency token, maintained by the repository
	version int

	isConstructed bool
}

// NewOrder creates a pending order from validated line items. The total amount
// is computed as the sum of the item totals, each of which snapshots the menu
// price at this instant. The order and its items are meant to be persisted as
// a single atomic unit.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	address kernel.Address,
	instructions string,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		instructions:  instructions,
		placedAt:      time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setAddress(address),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	total := ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.TotalPrice())
	}
	o.totalAmount = total

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-deriving the
// total: the stored amount is the historical snapshot. The status and the
// agent binding are cross-checked so an inconsistent row cannot become a live
// aggregate.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	agentID *kernel.UUID,
	status Status,
	totalAmount Money,
	address kernel.Address,
	instructions string,
	items []Item,
	placedAt time.Time,
	acceptedAt *time.Time,
	deliveredAt *time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		instructions:  instructions,
		placedAt:      placedAt,
		acceptedAt:    acceptedAt,
		deliveredAt:   deliveredAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setAddress(address),
		o.setItems(items),
		status.Validate(),
		totalAmount.Validate(),
		status.ValidateCanHaveAgent(agentID != nil),
	); err != nil {
		return nil, err
	}

	if agentID != nil {
		if err := agentID.Validate(); err != nil {
			return nil, err
		}
		bound := *agentID
		o.agentID = &bound
	}

	o.status = status
	o.totalAmount = totalAmount

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the placing user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// RestaurantID returns the fulfilling restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Agent returns the bound delivery agent's ID, or nil if unassigned.
func (o *Order) Agent() *kernel.UUID {
	return o.agentID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the order total fixed at creation time.
func (o *Order) TotalAmount() Money {
	return o.totalAmount
}

// Address returns the delivery destination.
func (o *Order) Address() kernel.Address {
	return o.address
}

// Instructions returns the optional special instructions.
func (o *Order) Instructions() string {
	return o.instructions
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// PlacedAt returns the placement timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// AcceptedAt returns the acceptance timestamp, or nil if never accepted.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// DeliveredAt returns the delivery timestamp, or nil if not delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Version returns the optimistic concurrency token.
func (o *Order) Version() int {
	return o.version
}

// Accept transitions the order from pending to accepted and stamps the
// acceptance timestamp. Agent assignment is a separate step that follows the
// accept transition; acceptance must succeed even when no agent is available.
func (o *Order) Accept() error {
	newStatus, err := o.status.TransitionTo(StatusAccepted)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.acceptedAt = &now
	return nil
}

// Reject transitions the order from pending to rejected. Rejection happens
// before assignment ever runs, so a rejected order never holds an agent.
func (o *Order) Reject() error {
	newStatus, err := o.status.TransitionTo(StatusRejected)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws the order. Allowed from pending and accepted only: once
// preparation starts the order can only run to completion. Cancelling clears
// the agent binding; the caller is responsible for releasing the agent itself
// within the same transaction.
func (o *Order) Cancel() error {
	newStatus, err := o.status.TransitionTo(StatusCancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.agentID = nil
	return nil
}

// StartPreparing transitions the order from accepted to preparing.
func (o *Order) StartPreparing() error {
	newStatus, err := o.status.TransitionTo(StatusPreparing)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReady transitions the order from preparing to ready_for_pickup.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.TransitionTo(StatusReadyForPickup)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkPickedUp transitions the order from ready_for_pickup to picked_up.
func (o *Order) MarkPickedUp() error {
	newStatus, err := o.status.TransitionTo(StatusPickedUp)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkOnTheWay transitions the order from picked_up to on_the_way.
func (o *Order) MarkOnTheWay() error {
	newStatus, err := o.status.TransitionTo(StatusOnTheWay)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered transitions the order from on_the_way to delivered and stamps
// the delivery timestamp. The caller releases the bound agent in the same
// transaction so the agent becomes assignable exactly when delivery completes.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.TransitionTo(StatusDelivered)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// AssignAgent binds a delivery agent to the order. The order must be in
// accepted status and must not already hold a binding: an order is never
// reassigned while its assignment is active.
func (o *Order) AssignAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	if o.status != StatusAccepted {
		return ErrOrderIsNotAssignable
	}
	if o.agentID != nil {
		return ErrAgentAlreadyAssigned
	}

	bound := agentID
	o.agentID = &bound
	return nil
}

// IsAssignedTo reports whether the given agent holds this order's binding.
func (o *Order) IsAssignedTo(agentID kernel.UUID) bool {
	return o.agentID != nil && o.agentID.IsEqual(agentID)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("userID", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurantID", err)
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
