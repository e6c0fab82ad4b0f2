package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/verification"
)

type ResolveInfoRequestCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

func NewResolveInfoRequestCommandHandler(uowFactory ApplicationUoWFactory) ResolveInfoRequestCommandHandler {
	return ResolveInfoRequestCommandHandler{uowFactory: uowFactory}
}

func (h ResolveInfoRequestCommandHandler) Handle(
	ctx context.Context,
	cmd ResolveInfoRequestCommand,
) (*verification.Application, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return mutateApplication(ctx, h.uowFactory, cmd.ApplicationID(), now, func(app *verification.Application) error {
		return app.ResolveInfoRequest(cmd.RequestID(), cmd.Actor(), now)
	})
}
