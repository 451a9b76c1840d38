// Package agentrepo provides data transfer objects and mapping functions for
// delivery-agent persistence. Agent rows are the contention point of the
// assignment path, so the repository leans on row locks rather than versions.
package agentrepo

import (
	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for persisting agent aggregates.
// The is_available flag is flipped under a row lock during reservation.
type AgentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Phone       string
	VehicleType string `gorm:"type:varchar(16)"`
	Latitude    float64
	Longitude   float64
	IsAvailable bool `gorm:"index"`
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "delivery_agents"
}

// fromDomain converts an agent domain aggregate to its database representation.
func fromDomain(aggregate *agent.DeliveryAgent) AgentDTO {
	return AgentDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Phone:       aggregate.Phone(),
		VehicleType: aggregate.VehicleType().String(),
		Latitude:    aggregate.Location().Latitude(),
		Longitude:   aggregate.Location().Longitude(),
		IsAvailable: aggregate.IsAvailable(),
	}
}

// toDomain converts a database DTO to an agent domain aggregate.
func toDomain(dto AgentDTO) (*agent.DeliveryAgent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return agent.RestoreDeliveryAgent(
		id,
		dto.Name,
		dto.Phone,
		agent.VehicleType(dto.VehicleType),
		location,
		dto.IsAvailable,
	)
}
