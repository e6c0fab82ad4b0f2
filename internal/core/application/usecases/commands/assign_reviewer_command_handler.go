package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/verification"
)

// AssignReviewerCommandHandler applies the acquire-if-null-or-self reviewer hold.
// A repeated assignment by the holder is answered without a write.
type AssignReviewerCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

func NewAssignReviewerCommandHandler(uowFactory ApplicationUoWFactory) AssignReviewerCommandHandler {
	return AssignReviewerCommandHandler{uowFactory: uowFactory}
}

func (h AssignReviewerCommandHandler) Handle(
	ctx context.Context,
	cmd AssignReviewerCommand,
) (*verification.Application, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return mutateApplication(ctx, h.uowFactory, cmd.ApplicationID(), now, func(app *verification.Application) error {
		return app.AssignReviewer(cmd.ReviewerID(), now)
	})
}
