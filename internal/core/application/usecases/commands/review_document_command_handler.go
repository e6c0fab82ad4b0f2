package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/verification"
)

type ReviewDocumentCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

func NewReviewDocumentCommandHandler(uowFactory ApplicationUoWFactory) ReviewDocumentCommandHandler {
	return ReviewDocumentCommandHandler{uowFactory: uowFactory}
}

func (h ReviewDocumentCommandHandler) Handle(
	ctx context.Context,
	cmd ReviewDocumentCommand,
) (*verification.Application, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return mutateApplication(ctx, h.uowFactory, cmd.ApplicationID(), now, func(app *verification.Application) error {
		return app.ReviewDocument(cmd.DocumentID(), cmd.ReviewerID(), cmd.Decision(), cmd.Reason(), now)
	})
}
