package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
)

// AssignPendingOrdersCommandHandler orchestrates the periodic assignment
// sweep. Walks the queue of accepted-but-unassigned orders, oldest first, and
// reserves an agent for each until the pool runs dry.
//
// Example:
//
//	handler := NewAssignPendingOrdersCommandHandler(uowFactory)
//	cmd := NewAssignPendingOrdersCommand()
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("sweep failed: %v", err)
//	}
type AssignPendingOrdersCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignPendingOrdersCommandHandler creates a handler for the assignment
// sweep. Requires a UoWFactory so each assignment commits the agent flip, the
// order binding and the outbox record together.
func NewAssignPendingOrdersCommandHandler(uowFactory UoWFactory) AssignPendingOrdersCommandHandler {
	return AssignPendingOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment sweep command.
// Each order is assigned in its own transaction, so a failure on one order
// does not undo assignments already made. An exhausted pool ends the sweep
// without error; remaining orders wait for the next run.
func (h AssignPendingOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd AssignPendingOrdersCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	waiting, err := h.waitingOrderIDs(ctx)
	if err != nil {
		return err
	}

	for _, orderID := range waiting {
		err = h.assignOne(ctx, orderID)
		if errors.Is(err, services.ErrNoAgentAvailable) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// waitingOrderIDs snapshots the queue of accepted orders without an agent.
func (h AssignPendingOrdersCommandHandler) waitingOrderIDs(
	ctx context.Context,
) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllAcceptedUnassigned(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}

// assignOne reserves an agent for a single waiting order in its own
// transaction. The order is re-read inside the transaction; if it moved on or
// got an agent in the meantime the attempt is skipped.
func (h AssignPendingOrdersCommandHandler) assignOne(ctx context.Context, orderID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	waitingOrder, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	if waitingOrder.Status() != order.StatusAccepted || waitingOrder.Agent() != nil {
		return nil
	}

	if err = assignAgentToOrder(ctx, uow, waitingOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
