package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/outbox"
)

// assignAgentToOrder reserves the best available agent for an accepted order
// and records the assignment notification in the outbox. Must run inside the
// caller's transaction so the agent flip, the order binding and the outbox
// row commit or roll back together.
//
// Returns services.ErrNoAgentAvailable when the locked candidate set is empty;
// callers decide whether that is fatal or the order simply stays queued.
func assignAgentToOrder(ctx context.Context, uow UoW, o *order.Order) error {
	agentRepo := uow.AgentRepository()
	outboxRepo := uow.OutboxRepository()

	candidates, err := agentRepo.GetAllAvailableForReservation(ctx)
	if err != nil {
		return err
	}

	matched, err := services.NewAgentMatcher().Match(o, candidates)
	if err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, matched); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	message, err := outbox.NewAssignmentMessage(o.ID(), matched.ID(), time.Now().UTC())
	if err != nil {
		return err
	}

	return outboxRepo.Add(ctx, message)
}
