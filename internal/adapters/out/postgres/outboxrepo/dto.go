// Package outboxrepo is the transactional outbox: lifecycle events are inserted
// with the state change that raised them and published later by the relay.
package outboxrepo

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MessageDTO is one outbox_messages row. PublishedAt stays NULL until the relay
// has handed the message to the broker. ClaimedUntil is the lease of the relay
// currently publishing it.
type MessageDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EventType    string         `gorm:"size:64;not null"`
	EntityType   string         `gorm:"size:32;not null"`
	EntityID     uuid.UUID      `gorm:"type:uuid;not null"`
	Payload      datatypes.JSON `gorm:"type:jsonb;not null"`
	OccurredAt   time.Time      `gorm:"not null;index"`
	ClaimedUntil *time.Time
	PublishedAt  *time.Time `gorm:"index"`
	CreatedAt    time.Time
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromEvent(e services.LifecycleEvent) (MessageDTO, error) {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return MessageDTO{}, err
	}
	return MessageDTO{
		ID:         e.ID.Bytes(),
		EventType:  string(e.Type),
		EntityType: e.EntityType.String(),
		EntityID:   e.EntityID.Bytes(),
		Payload:    datatypes.JSON(payload),
		OccurredAt: e.OccurredAt,
	}, nil
}

func toMessage(dto MessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	entityID, err := kernel.UUIDFromBytes(dto.EntityID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	return ports.OutboxMessage{
		ID:         id,
		EventType:  dto.EventType,
		EntityType: dto.EntityType,
		EntityID:   entityID,
		Payload:    []byte(dto.Payload),
		OccurredAt: dto.OccurredAt,
	}, nil
}
