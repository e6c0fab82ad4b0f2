package verification

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ReviewRecord is one line of an application's append-only review history.
// A record is written for every change of the overall status.
type ReviewRecord struct {
	reviewerID kernel.UUID
	fromStatus Status
	toStatus   Status
	comments   string
	recordedAt time.Time
}

// RestoreReviewRecord rebuilds a stored record.
func RestoreReviewRecord(reviewerID kernel.UUID, from, to Status, comments string, recordedAt time.Time) (ReviewRecord, error) {
	var timeErr error
	if recordedAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("recordedAt")
	}
	if err := errors.Join(reviewerID.Validate(), from.Validate(), to.Validate(), timeErr); err != nil {
		return ReviewRecord{}, err
	}
	return ReviewRecord{
		reviewerID: reviewerID,
		fromStatus: from,
		toStatus:   to,
		comments:   comments,
		recordedAt: recordedAt,
	}, nil
}

func (r ReviewRecord) ReviewerID() kernel.UUID {
	return r.reviewerID
}

func (r ReviewRecord) FromStatus() Status {
	return r.fromStatus
}

func (r ReviewRecord) ToStatus() Status {
	return r.toStatus
}

func (r ReviewRecord) Comments() string {
	return r.comments
}

func (r ReviewRecord) RecordedAt() time.Time {
	return r.recordedAt
}
