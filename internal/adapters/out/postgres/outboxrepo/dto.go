// Package outboxrepo provides data transfer objects and mapping functions
// for assignment notification messages. Messages are written in the same
// transaction as the assignment itself and drained later by the relay job.
package outboxrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/outbox"

	"github.com/google/uuid"
)

// MessageDTO represents the database structure for outbox messages.
// next_attempt_at drives the retry schedule; delivered rows are kept for
// audit rather than deleted.
type MessageDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	AgentID       uuid.UUID `gorm:"type:uuid"`
	AssignedAt    time.Time
	Status        string    `gorm:"type:varchar(16);index"`
	Attempts      int
	NextAttemptAt time.Time `gorm:"index"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// fromDomain converts an outbox message to its database representation.
func fromDomain(message *outbox.Message) MessageDTO {
	return MessageDTO{
		ID:            message.ID().Bytes(),
		OrderID:       message.OrderID().Bytes(),
		AgentID:       message.AgentID().Bytes(),
		AssignedAt:    message.AssignedAt(),
		Status:        string(message.Status()),
		Attempts:      message.Attempts(),
		NextAttemptAt: message.NextAttemptAt(),
		CreatedAt:     message.CreatedAt(),
	}
}

// toDomain converts a database DTO to an outbox message.
func toDomain(dto MessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}

	return outbox.RestoreMessage(
		id,
		orderID,
		agentID,
		dto.AssignedAt,
		outbox.MessageStatus(dto.Status),
		dto.Attempts,
		dto.NextAttemptAt,
		dto.CreatedAt,
	)
}
