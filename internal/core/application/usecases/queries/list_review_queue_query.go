package queries

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const maxReviewQueueLimit = 200

var (
	ErrListReviewQueueQueryIsNotConstructed = errors.New(
		"ListReviewQueueQuery must be created via NewListReviewQueueQuery constructor",
	)
)

// ListReviewQueueQuery lists applications that still need a reviewer's attention,
// most urgent first and then oldest submission first.
type ListReviewQueueQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewListReviewQueueQuery accepts a limit between 1 and 200.
func NewListReviewQueueQuery(limit int) (ListReviewQueueQuery, error) {
	if limit < 1 || limit > maxReviewQueueLimit {
		return ListReviewQueueQuery{}, errs.NewValueIsOutOfRangeErrorWithCause("limit", limit, 1, maxReviewQueueLimit,
			fmt.Errorf("limit %d is out of range", limit))
	}
	return ListReviewQueueQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListReviewQueueQuery) Validate() error {
	return q.guard.Validate(ErrListReviewQueueQueryIsNotConstructed)
}

func (q ListReviewQueueQuery) Limit() int {
	return q.limit
}

// ListReviewQueueQueryResponse is one line of the review queue.
type ListReviewQueueQueryResponse struct {
	ID                 kernel.UUID
	SubjectType        string
	SubjectID          kernel.UUID
	Status             string
	Priority           string
	AssignedReviewerID *kernel.UUID
	SubmittedAt        *time.Time
	OpenInfoRequests   int
}
