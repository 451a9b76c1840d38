package services

import (
	"errors"

	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/order"
)

// ErrNoAgentAvailable is returned when no delivery agent can take the order.
// This is a soft condition for callers: an accepted order stays accepted and
// unassigned, and the reconciliation sweep retries later.
var ErrNoAgentAvailable = errors.New("no delivery agent available")

// AgentMatcher is the domain service that selects a delivery agent for an
// accepted order and performs the in-memory binding on both aggregates.
//
// Selection policy: when the delivery address carries coordinates, the nearest
// available agent wins; otherwise the first available agent is taken. The
// caller supplies the candidate set and persists both aggregates in one
// transaction, which is where the cross-request exclusivity lives.
//
// Example:
//
//	matched, err := services.NewAgentMatcher().Match(o, candidates)
//	if errors.Is(err, services.ErrNoAgentAvailable) {
//	    // order stays accepted and unassigned
//	    return
//	}
type AgentMatcher struct{}

// NewAgentMatcher creates a new AgentMatcher instance.
func NewAgentMatcher() AgentMatcher {
	return AgentMatcher{}
}

// Match picks an agent for the order, reserves it, and binds it to the order.
// On success both aggregates are mutated and must be persisted together.
// Returns ErrNoAgentAvailable when the candidate set holds no available agent.
func (m AgentMatcher) Match(o *order.Order, agents []*agent.DeliveryAgent) (*agent.DeliveryAgent, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	best, err := m.findBestAgent(o, agents)
	if err != nil {
		return nil, err
	}

	if err = best.Reserve(); err != nil {
		return nil, err
	}

	if err = o.AssignAgent(best.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

func (m AgentMatcher) findBestAgent(
	o *order.Order,
	agents []*agent.DeliveryAgent,
) (*agent.DeliveryAgent, error) {
	destination := o.Address().Location()

	var best *agent.DeliveryAgent
	bestDistance := 0.0

	for _, candidate := range agents {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
		if !candidate.IsAvailable() {
			continue
		}

		if destination == nil {
			// No coordinates to rank by: first available wins.
			return candidate, nil
		}

		distance, err := candidate.Location().DistanceTo(*destination)
		if err != nil {
			return nil, err
		}

		if best == nil || distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}

	if best == nil {
		return nil, ErrNoAgentAvailable
	}

	return best, nil
}
