package auditrepo

import (
	"context"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAuditLog implements ports.AuditLog using GORM.
type GormAuditLog struct {
	db *gorm.DB
}

func NewGormAuditLog(db *gorm.DB) *GormAuditLog {
	return &GormAuditLog{db: db}
}

// Append inserts the entries in the given order within the caller's transaction.
func (l *GormAuditLog) Append(ctx context.Context, entries []audit.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		dto, err := fromDomain(e)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	return l.db.WithContext(ctx).Create(&dtos).Error
}

// ListByEntity returns the entries of one record in insertion order.
func (l *GormAuditLog) ListByEntity(
	ctx context.Context,
	entityType audit.EntityType,
	entityID kernel.UUID,
) ([]audit.Entry, error) {
	var dtos []EntryDTO
	err := l.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType.String(), entityID.Bytes()).
		Order("sequence").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
