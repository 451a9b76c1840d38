package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/outbox"
	"foodorder/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// relayBatchSize caps how many due messages one relay tick processes.
const relayBatchSize = 50

// OutboxRelayJob delivers queued assignment notifications to the dispatch
// service. Runs every three seconds; each tick claims a batch of due messages
// inside a transaction (row locks keep concurrent relays from double-sending),
// posts them, and records the outcome.
type OutboxRelayJob struct {
	uowFactory commands.OutboxUoWFactory
	notifier   ports.DispatchNotifier
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOutboxRelayJob creates the relay job.
func NewOutboxRelayJob(
	uowFactory commands.OutboxUoWFactory,
	notifier ports.DispatchNotifier,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		uowFactory: uowFactory,
		notifier:   notifier,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay job on a three second cadence.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("*/3 * * * * *", func() {
		ctx := context.Background()
		if err := j.relayDue(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every 3 seconds)")
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

// relayDue claims and delivers one batch of due messages. Delivery outcomes
// are committed even when every attempt failed, so the backoff bookkeeping
// always survives the tick.
func (j *OutboxRelayJob) relayDue(ctx context.Context) error {
	uow := j.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	due, err := uow.OutboxRepository().GetDue(ctx, now, relayBatchSize)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return uow.Commit(ctx)
	}

	for _, message := range due {
		j.deliver(ctx, message)

		if err := uow.OutboxRepository().Update(ctx, message); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// deliver attempts one notification and records the outcome on the message.
func (j *OutboxRelayJob) deliver(ctx context.Context, message *outbox.Message) {
	payload := outbox.AssignmentPayload{
		OrderID:    message.OrderID().String(),
		AgentID:    message.AgentID().String(),
		AssignedAt: message.AssignedAt(),
	}

	if err := j.notifier.NotifyAssignment(ctx, payload); err != nil {
		message.RecordFailure(time.Now().UTC())
		j.logger.DebugContext(ctx, "Assignment notification not acknowledged",
			"order_id", message.OrderID().String(),
			"attempts", message.Attempts(),
			"error", err)
		return
	}

	message.MarkDelivered()
	j.logger.InfoContext(ctx, "Assignment notification delivered",
		"order_id", message.OrderID().String(),
		"agent_id", message.AgentID().String())
}
