package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/verification"
)

type SuspendApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

func NewSuspendApplicationCommandHandler(uowFactory ApplicationUoWFactory) SuspendApplicationCommandHandler {
	return SuspendApplicationCommandHandler{uowFactory: uowFactory}
}

func (h SuspendApplicationCommandHandler) Handle(
	ctx context.Context,
	cmd SuspendApplicationCommand,
) (*verification.Application, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return mutateApplication(ctx, h.uowFactory, cmd.ApplicationID(), now, func(app *verification.Application) error {
		return app.Suspend(cmd.ReviewerID(), cmd.Reason(), now)
	})
}
