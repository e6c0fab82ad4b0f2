package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/verification"
	"marketplace/internal/core/domain/services"
)

// CreateApplicationCommandHandler stores a new draft application with its
// creation audit entries.
type CreateApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

func NewCreateApplicationCommandHandler(uowFactory ApplicationUoWFactory) CreateApplicationCommandHandler {
	return CreateApplicationCommandHandler{uowFactory: uowFactory}
}

func (h CreateApplicationCommandHandler) Handle(
	ctx context.Context,
	cmd CreateApplicationCommand,
) (*verification.Application, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	app, err := verification.NewApplication(cmd.SubjectType(), cmd.SubjectID(), cmd.Priority(),
		cmd.Documents(), cmd.Actor(), time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ApplicationRepository().Add(ctx, app); err != nil {
		return nil, err
	}

	if err = appendTrail(ctx, uow, app.PendingAuditEntries(), services.LifecycleEvent{}, false); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	app.ClearPendingAuditEntries()
	return app, nil
}
