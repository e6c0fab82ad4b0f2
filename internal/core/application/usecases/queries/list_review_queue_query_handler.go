package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/verification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListReviewQueueQueryHandler reads the review queue with plain SQL.
type ListReviewQueueQueryHandler struct {
	db *gorm.DB
}

func NewListReviewQueueQueryHandler(db *gorm.DB) ListReviewQueueQueryHandler {
	return ListReviewQueueQueryHandler{db: db}
}

// Handle returns submitted applications and those under review or waiting for
// info. Urgent comes before high, then normal, then low.
func (h ListReviewQueueQueryHandler) Handle(
	ctx context.Context,
	query ListReviewQueueQuery,
) ([]ListReviewQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	queue := make([]ListReviewQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.subject_type,
			a.subject_id,
			a.status,
			a.priority,
			a.assigned_reviewer_id,
			a.submitted_at,
			(
				SELECT COUNT(*)
				FROM verification_info_requests r
				WHERE r.application_id = a.id
					AND r.status = ?
					AND r.deleted_at IS NULL
			)
		FROM verification_applications a
		WHERE a.deleted_at IS NULL
			AND a.status IN ?
		ORDER BY
			CASE a.priority WHEN ? THEN 0 WHEN ? THEN 1 WHEN ? THEN 2 ELSE 3 END,
			a.submitted_at,
			a.id
		LIMIT ?
	`,
		verification.InfoRequestOpen.String(),
		[]string{
			verification.StatusSubmitted.String(),
			verification.StatusUnderReview.String(),
			verification.StatusAdditionalInfoRequired.String(),
		},
		verification.PriorityUrgent.String(),
		verification.PriorityHigh.String(),
		verification.PriorityNormal.String(),
		query.Limit(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ListReviewQueueQueryResponse
		var id, subjectID uuid.UUID
		var reviewerID uuid.NullUUID
		var submittedAt sql.NullTime

		err = rows.Scan(
			&id,
			&item.SubjectType,
			&subjectID,
			&item.Status,
			&item.Priority,
			&reviewerID,
			&submittedAt,
			&item.OpenInfoRequests,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.SubjectID, err = kernel.UUIDFromBytes(subjectID[:]); err != nil {
			return nil, err
		}
		if reviewerID.Valid {
			reviewer, idErr := kernel.UUIDFromBytes(reviewerID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			item.AssignedReviewerID = &reviewer
		}
		if submittedAt.Valid {
			at := submittedAt.Time
			item.SubmittedAt = &at
		}

		queue = append(queue, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return queue, nil
}
