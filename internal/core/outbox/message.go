// Package outbox implements the transactional outbox for cross-service
// assignment notifications. A message is persisted in the same transaction as
// the order mutation it describes, then delivered asynchronously with retries
// until the dispatch side acknowledges it. The accept path never blocks on the
// network, and a crashed relay loses nothing.
package outbox

import (
	"encoding/json"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

// MessageStatus tracks delivery progress of an outbox message.
type MessageStatus string

const (
	// StatusPending marks a message awaiting delivery or retry.
	StatusPending MessageStatus = "pending"
	// StatusDelivered marks a message acknowledged by the dispatch side.
	StatusDelivered MessageStatus = "delivered"
)

const (
	// retryBaseDelay is the delay before the first retry; each subsequent
	// failure doubles it.
	retryBaseDelay = 5 * time.Second
	// retryMaxDelay caps the exponential backoff.
	retryMaxDelay = 5 * time.Minute
)

// ErrMessageIsNotConstructed is returned when a Message was not created
// through NewAssignmentMessage or RestoreMessage.
var ErrMessageIsNotConstructed = errors.New(
	"Message must be created via NewAssignmentMessage or RestoreMessage")

// AssignmentPayload is the wire body delivered to the dispatch service.
type AssignmentPayload struct {
	OrderID    string    `json:"order_id"`
	AgentID    string    `json:"delivery_agent_id"`
	AssignedAt time.Time `json:"assigned_at"`
}

// Message is one assignment fact queued for delivery to the dispatch side.
type Message struct {
	id            kernel.UUID
	orderID       kernel.UUID
	agentID       kernel.UUID
	assignedAt    time.Time
	status        MessageStatus
	attempts      int
	nextAttemptAt time.Time
	createdAt     time.Time
	isConstructed bool
}

// NewAssignmentMessage queues an assignment fact for delivery. The message is
// immediately due.
func NewAssignmentMessage(orderID kernel.UUID, agentID kernel.UUID, assignedAt time.Time) (*Message, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := agentID.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Message{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		agentID:       agentID,
		assignedAt:    assignedAt,
		status:        StatusPending,
		nextAttemptAt: now,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreMessage reconstructs a queued message from persistence.
func RestoreMessage(
	id kernel.UUID,
	orderID kernel.UUID,
	agentID kernel.UUID,
	assignedAt time.Time,
	status MessageStatus,
	attempts int,
	nextAttemptAt time.Time,
	createdAt time.Time,
) (*Message, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := agentID.Validate(); err != nil {
		return nil, err
	}

	return &Message{
		id:            id,
		orderID:       orderID,
		agentID:       agentID,
		assignedAt:    assignedAt,
		status:        status,
		attempts:      attempts,
		nextAttemptAt: nextAttemptAt,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Message was created through a constructor.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// ID returns the message identifier.
func (m *Message) ID() kernel.UUID {
	return m.id
}

// OrderID returns the assigned order.
func (m *Message) OrderID() kernel.UUID {
	return m.orderID
}

// AgentID returns the bound delivery agent.
func (m *Message) AgentID() kernel.UUID {
	return m.agentID
}

// AssignedAt returns the moment the assignment was committed.
func (m *Message) AssignedAt() time.Time {
	return m.assignedAt
}

// Status returns the delivery status.
func (m *Message) Status() MessageStatus {
	return m.status
}

// Attempts returns how many delivery attempts have failed so far.
func (m *Message) Attempts() int {
	return m.attempts
}

// NextAttemptAt returns when the message becomes due again.
func (m *Message) NextAttemptAt() time.Time {
	return m.nextAttemptAt
}

// CreatedAt returns when the message was queued.
func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

// IsDue reports whether the message should be attempted at the given time.
func (m *Message) IsDue(now time.Time) bool {
	return m.status == StatusPending && !now.Before(m.nextAttemptAt)
}

// Payload renders the wire body delivered to the dispatch service.
func (m *Message) Payload() ([]byte, error) {
	return json.Marshal(AssignmentPayload{
		OrderID:    m.orderID.String(),
		AgentID:    m.agentID.String(),
		AssignedAt: m.assignedAt,
	})
}

// MarkDelivered records a successful, acknowledged delivery.
func (m *Message) MarkDelivered() {
	m.status = StatusDelivered
}

// RecordFailure counts a failed attempt and pushes the next one out with
// exponential backoff, doubling from retryBaseDelay up to retryMaxDelay.
func (m *Message) RecordFailure(now time.Time) {
	m.attempts++

	delay := retryBaseDelay << (m.attempts - 1)
	if delay > retryMaxDelay || delay <= 0 {
		delay = retryMaxDelay
	}
	m.nextAttemptAt = now.Add(delay)
}
