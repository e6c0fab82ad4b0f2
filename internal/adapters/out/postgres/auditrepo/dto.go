// Package auditrepo stores the append-only audit log. Rows are only ever
// inserted; the bigserial sequence is the insertion order.
package auditrepo

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EntryDTO is one audit_log row.
type EntryDTO struct {
	Sequence   int64          `gorm:"primaryKey;autoIncrement"`
	EntityType string         `gorm:"size:32;not null;index:idx_audit_log_entity,priority:1"`
	EntityID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_audit_log_entity,priority:2"`
	Action     string         `gorm:"size:32;not null"`
	FromState  string         `gorm:"size:32"`
	ToState    string         `gorm:"size:32;not null"`
	ActorID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	OccurredAt time.Time      `gorm:"not null"`
	Metadata   datatypes.JSON `gorm:"type:jsonb"`
}

func (EntryDTO) TableName() string {
	return "audit_log"
}

func fromDomain(e audit.Entry) (EntryDTO, error) {
	meta, err := json.Marshal(e.Metadata())
	if err != nil {
		return EntryDTO{}, err
	}
	return EntryDTO{
		EntityType: e.EntityType().String(),
		EntityID:   e.EntityID().Bytes(),
		Action:     string(e.Action()),
		FromState:  e.FromState(),
		ToState:    e.ToState(),
		ActorID:    e.ActorID().Bytes(),
		OccurredAt: e.OccurredAt(),
		Metadata:   datatypes.JSON(meta),
	}, nil
}

func toDomain(dto EntryDTO) (audit.Entry, error) {
	entityType, err := audit.ParseEntityType(dto.EntityType)
	if err != nil {
		return audit.Entry{}, err
	}
	entityID, err := kernel.UUIDFromBytes(dto.EntityID[:])
	if err != nil {
		return audit.Entry{}, err
	}
	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return audit.Entry{}, err
	}

	var meta audit.Metadata
	if len(dto.Metadata) > 0 {
		if err = json.Unmarshal(dto.Metadata, &meta); err != nil {
			return audit.Entry{}, err
		}
	}

	return audit.RestoreEntry(dto.Sequence, entityType, entityID, audit.Action(dto.Action),
		dto.FromState, dto.ToState, actorID, dto.OccurredAt, meta)
}
