package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/verification"
)

type RequestAdditionalInfoCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

func NewRequestAdditionalInfoCommandHandler(uowFactory ApplicationUoWFactory) RequestAdditionalInfoCommandHandler {
	return RequestAdditionalInfoCommandHandler{uowFactory: uowFactory}
}

func (h RequestAdditionalInfoCommandHandler) Handle(
	ctx context.Context,
	cmd RequestAdditionalInfoCommand,
) (*verification.Application, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return mutateApplication(ctx, h.uowFactory, cmd.ApplicationID(), now, func(app *verification.Application) error {
		_, err := app.RequestAdditionalInfo(cmd.ReviewerID(), cmd.Message(), cmd.DocumentsRequested(), cmd.DueDate(), now)
		return err
	})
}
