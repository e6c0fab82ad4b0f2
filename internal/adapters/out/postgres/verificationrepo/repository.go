package verificationrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/verification"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormApplicationRepository implements ports.ApplicationRepository using GORM.
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewGormApplicationRepository creates a repository bound to db, which is either
// the pool or an open transaction.
func NewGormApplicationRepository(db *gorm.DB) *GormApplicationRepository {
	return &GormApplicationRepository{db: db}
}

// Add saves a new application with its documents.
func (r *GormApplicationRepository) Add(ctx context.Context, aggregate *verification.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	return r.writeChildren(db, aggregate)
}

// Update writes the application only when the stored version is still the one
// it was loaded at.
func (r *GormApplicationRepository) Update(ctx context.Context, aggregate *verification.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expected := aggregate.Revision().Expected()
	db := r.db.WithContext(ctx)

	result := db.Model(&ApplicationDTO{}).
		Where("id = ? AND version = ?", dto.ID, expected).
		Updates(map[string]any{
			"status":               dto.Status,
			"priority":             dto.Priority,
			"assigned_reviewer_id": dto.AssignedReviewerID,
			"submitted_at":         dto.SubmittedAt,
			"completed_at":         dto.CompletedAt,
			"version":              dto.Version,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&ApplicationDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("applicationID", aggregate.ID().String())
		}
		return errs.NewStaleWriteError("verification application", aggregate.ID().String(), expected)
	}

	return r.writeChildren(db, aggregate)
}

// writeChildren upserts documents and info requests and appends new review records.
func (r *GormApplicationRepository) writeChildren(db *gorm.DB, aggregate *verification.Application) error {
	if docs := documentsFromDomain(aggregate); len(docs) > 0 {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "reviewed_by", "rejection_reason", "reviewed_at", "updated_at"}),
		}).Create(&docs).Error
		if err != nil {
			return err
		}
	}

	if requests := infoRequestsFromDomain(aggregate); len(requests) > 0 {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "resolved_at", "updated_at"}),
		}).Create(&requests).Error
		if err != nil {
			return err
		}
	}

	if reviews := reviewsFromDomain(aggregate.ID(), aggregate.NewReviews()); len(reviews) > 0 {
		if err := db.Create(&reviews).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves an application with its documents, review history and info requests.
func (r *GormApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*verification.Application, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ApplicationDTO
	err := r.db.WithContext(ctx).
		Preload("Documents", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("InfoRequests", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("applicationID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListWithOverdueInfoRequests returns applications under review or waiting for
// info that hold an open request due before now.
func (r *GormApplicationRepository) ListWithOverdueInfoRequests(
	ctx context.Context,
	now time.Time,
	limit int,
) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&InfoRequestDTO{}).
		Joins("JOIN verification_applications a ON a.id = verification_info_requests.application_id AND a.deleted_at IS NULL").
		Where("verification_info_requests.status = ? AND verification_info_requests.due_date < ?",
			verification.InfoRequestOpen.String(), now).
		Where("a.status IN ?", []string{
			verification.StatusUnderReview.String(),
			verification.StatusAdditionalInfoRequired.String(),
		}).
		Distinct("verification_info_requests.application_id").
		Limit(limit).
		Pluck("verification_info_requests.application_id", &raw).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, b := range raw {
		id, idErr := kernel.UUIDFromBytes(b[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}
	return ids, nil
}
