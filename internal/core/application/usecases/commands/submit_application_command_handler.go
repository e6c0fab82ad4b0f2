package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/verification"
)

type SubmitApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

func NewSubmitApplicationCommandHandler(uowFactory ApplicationUoWFactory) SubmitApplicationCommandHandler {
	return SubmitApplicationCommandHandler{uowFactory: uowFactory}
}

func (h SubmitApplicationCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitApplicationCommand,
) (*verification.Application, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return mutateApplication(ctx, h.uowFactory, cmd.ApplicationID(), now, func(app *verification.Application) error {
		return app.Submit(cmd.Actor(), now)
	})
}
