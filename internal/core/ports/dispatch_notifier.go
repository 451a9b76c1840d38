package ports

import (
	"context"

	"foodorder/internal/core/outbox"
)

// DispatchNotifier delivers assignment notifications to the external dispatch
// service. An error return means the notification was not acknowledged and
// will be retried by the relay.
type DispatchNotifier interface {
	NotifyAssignment(ctx context.Context, payload outbox.AssignmentPayload) error
}
