package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAssignReviewerCommandIsNotConstructed = errors.New(
	"AssignReviewerCommand must be created via NewAssignReviewerCommand constructor",
)

// AssignReviewerCommand gives an application to a reviewer. On a submitted
// application it is also the pickup that starts the review.
type AssignReviewerCommand struct {
	applicationID kernel.UUID
	reviewerID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignReviewerCommand(applicationID, reviewerID kernel.UUID) (AssignReviewerCommand, error) {
	if err := errors.Join(applicationID.Validate(), reviewerID.Validate()); err != nil {
		return AssignReviewerCommand{}, err
	}
	return AssignReviewerCommand{applicationID: applicationID, reviewerID: reviewerID, guard: guard.NewConstructorGuard()}, nil
}

func (c AssignReviewerCommand) Validate() error {
	return c.guard.Validate(ErrAssignReviewerCommandIsNotConstructed)
}

func (c AssignReviewerCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

func (c AssignReviewerCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}
