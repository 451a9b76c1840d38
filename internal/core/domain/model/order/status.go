package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The string values are the
// wire and storage representation and must not change.
//
// State transitions:
//
//	pending ──┬──> accepted ──> preparing ──> ready_for_pickup ──> picked_up ──> on_the_way ──> delivered
//	          ├──> rejected
//	          └──> cancelled  (also reachable from accepted)
//
// rejected, delivered, and cancelled are terminal. The accepted..delivered
// chain is strict: no transition may skip a state.
type Status string

const (
	// StatusPending is the initial status of every placed order. The order is
	// waiting for the restaurant to accept or reject it.
	StatusPending Status = "pending"

	// StatusAccepted indicates the restaurant has accepted the order. Entering
	// this status triggers delivery-agent assignment.
	StatusAccepted Status = "accepted"

	// StatusRejected indicates the restaurant declined the order. Terminal.
	StatusRejected Status = "rejected"

	// StatusPreparing indicates the kitchen has started on the order.
	StatusPreparing Status = "preparing"

	// StatusReadyForPickup indicates the order awaits its delivery agent.
	StatusReadyForPickup Status = "ready_for_pickup"

	// StatusPickedUp indicates the bound agent has collected the order.
	StatusPickedUp Status = "picked_up"

	// StatusOnTheWay indicates the order is in transit to the customer.
	StatusOnTheWay Status = "on_the_way"

	// StatusDelivered indicates the order reached the customer. Terminal;
	// entering it releases the bound agent back to the pool.
	StatusDelivered Status = "delivered"

	// StatusCancelled indicates the customer withdrew the order before
	// preparation started. Terminal.
	StatusCancelled Status = "cancelled"
)

// ErrIllegalTransition is the unwrap target for every rejected status change.
var ErrIllegalTransition = fmt.Errorf("illegal status transition")

// successors returns the legal transition graph. Terminal statuses map to nil.
func successors() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:        {StatusAccepted, StatusRejected, StatusCancelled},
		StatusAccepted:       {StatusPreparing, StatusCancelled},
		StatusPreparing:      {StatusReadyForPickup},
		StatusReadyForPickup: {StatusPickedUp},
		StatusPickedUp:       {StatusOnTheWay},
		StatusOnTheWay:       {StatusDelivered},
		StatusRejected:       nil,
		StatusDelivered:      nil,
		StatusCancelled:      nil,
	}
}

// Validate checks that the Status is one of the defined values.
// Used when reconstructing orders from persistence or parsing external input.
func (s Status) Validate() error {
	if _, ok := successors()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the storage representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	next, ok := successors()[s]
	return ok && len(next) == 0
}

// IsActive reports whether an order in this status is in flight between
// acceptance and delivery. Active orders are the ones a delivery agent is
// concerned with.
func (s Status) IsActive() bool {
	switch s {
	case StatusAccepted, StatusPreparing, StatusReadyForPickup, StatusPickedUp, StatusOnTheWay:
		return true
	default:
		return false
	}
}

// ActiveStatuses returns the statuses considered in-flight, in chain order.
func ActiveStatuses() []Status {
	return []Status{StatusAccepted, StatusPreparing, StatusReadyForPickup, StatusPickedUp, StatusOnTheWay}
}

// TransitionTo validates a transition from the current status to target and
// returns the target on success. A failed check leaves the caller's state
// untouched and unwraps to ErrIllegalTransition.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	if err := target.Validate(); err != nil {
		return "", err
	}

	for _, next := range successors()[s] {
		if next == target {
			return target, nil
		}
	}

	return "", fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, target)
}

// ValidateCanHaveAgent validates consistency between the status and the
// presence of a delivery-agent binding.
//
// Rules:
//   - pending, rejected, and cancelled orders must not have an agent
//   - picked_up, on_the_way, and delivered orders must have an agent
//   - accepted, preparing, and ready_for_pickup orders may have one
//     (acceptance can outrun the pool, leaving the order unassigned)
func (s Status) ValidateCanHaveAgent(hasAgent bool) error {
	if hasAgent {
		switch s {
		case StatusPending, StatusRejected, StatusCancelled:
			return errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("%s is not a valid status to have a delivery agent", s))
		}
		return nil
	}

	switch s {
	case StatusPickedUp, StatusOnTheWay, StatusDelivered:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no delivery agent", s))
	}
	return nil
}
