package ports

import (
	"context"
	"time"

	"foodorder/internal/core/outbox"
)

// OutboxRepository defines the persistence contract for assignment
// notification messages. Messages are written in the same transaction as the
// order changes that produced them and dispatched later by the relay job.
type OutboxRepository interface {
	// Add persists a new outbox message.
	Add(ctx context.Context, message *outbox.Message) error

	// Update persists delivery bookkeeping (status, attempts, next attempt).
	Update(ctx context.Context, message *outbox.Message) error

	// GetDue retrieves up to limit pending messages whose next attempt time
	// has passed, oldest first.
	GetDue(ctx context.Context, now time.Time, limit int) ([]*outbox.Message, error)
}
