package outboxrepo

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutbox implements ports.Outbox using GORM.
type GormOutbox struct {
	db *gorm.DB
}

func NewGormOutbox(db *gorm.DB) *GormOutbox {
	return &GormOutbox{db: db}
}

func (o *GormOutbox) Add(ctx context.Context, event services.LifecycleEvent) error {
	dto, err := fromEvent(event)
	if err != nil {
		return err
	}
	return o.db.WithContext(ctx).Create(&dto).Error
}

// ClaimUnpublished leases up to limit unpublished rows, oldest first. Rows
// locked by a concurrent claim or under an unexpired lease are skipped. The row
// locks last only for the claim itself; the lease keeps other relays away while
// the messages are published.
func (o *GormOutbox) ClaimUnpublished(
	ctx context.Context,
	limit int,
	now time.Time,
	lease time.Duration,
) ([]ports.OutboxMessage, error) {
	var dtos []MessageDTO
	err := o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("published_at IS NULL").
			Where("claimed_until IS NULL OR claimed_until <= ?", now).
			Order("occurred_at, id").
			Limit(limit).
			Find(&dtos).Error
		if err != nil || len(dtos) == 0 {
			return err
		}

		ids := make([]uuid.UUID, 0, len(dtos))
		for _, dto := range dtos {
			ids = append(ids, dto.ID)
		}
		return tx.Model(&MessageDTO{}).
			Where("id IN ?", ids).
			Update("claimed_until", now.Add(lease)).Error
	})
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toMessage(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}

func (o *GormOutbox) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return o.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id IN ?", raw).
		Update("published_at", at).Error
}
