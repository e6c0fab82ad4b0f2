package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/verification"
	"marketplace/internal/pkg/guard"
)

var ErrReviewDocumentCommandIsNotConstructed = errors.New(
	"ReviewDocumentCommand must be created via NewReviewDocumentCommand constructor",
)

// ReviewDocumentCommand records a reviewer decision on one document.
type ReviewDocumentCommand struct {
	applicationID kernel.UUID
	documentID    kernel.UUID
	reviewerID    kernel.UUID
	decision      verification.DocumentStatus
	reason        string

	guard guard.ConstructorGuard
}

func NewReviewDocumentCommand(
	applicationID, documentID, reviewerID kernel.UUID,
	decision verification.DocumentStatus,
	reason string,
) (ReviewDocumentCommand, error) {
	if err := errors.Join(
		applicationID.Validate(),
		documentID.Validate(),
		reviewerID.Validate(),
		decision.Validate(),
	); err != nil {
		return ReviewDocumentCommand{}, err
	}

	return ReviewDocumentCommand{
		applicationID: applicationID,
		documentID:    documentID,
		reviewerID:    reviewerID,
		decision:      decision,
		reason:        strings.TrimSpace(reason),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c ReviewDocumentCommand) Validate() error {
	return c.guard.Validate(ErrReviewDocumentCommandIsNotConstructed)
}

func (c ReviewDocumentCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

func (c ReviewDocumentCommand) DocumentID() kernel.UUID {
	return c.documentID
}

func (c ReviewDocumentCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

func (c ReviewDocumentCommand) Decision() verification.DocumentStatus {
	return c.decision
}

func (c ReviewDocumentCommand) Reason() string {
	return c.reason
}
