package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/verification"
)

// DecideApplicationCommandHandler applies a review decision. Terminal decisions
// also store a lifecycle event for account activation and notifications.
type DecideApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
	dueWindow  time.Duration
}

// NewDecideApplicationCommandHandler uses dueWindow as the due date of info
// requests that do not carry one.
func NewDecideApplicationCommandHandler(uowFactory ApplicationUoWFactory, dueWindow time.Duration) DecideApplicationCommandHandler {
	return DecideApplicationCommandHandler{uowFactory: uowFactory, dueWindow: dueWindow}
}

func (h DecideApplicationCommandHandler) Handle(
	ctx context.Context,
	cmd DecideApplicationCommand,
) (*verification.Application, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	dueDate := now.Add(h.dueWindow)
	if cmd.DueDate() != nil {
		dueDate = *cmd.DueDate()
	}

	return mutateApplication(ctx, h.uowFactory, cmd.ApplicationID(), now, func(app *verification.Application) error {
		return app.Decide(cmd.ReviewerID(), cmd.Decision(), cmd.Comments(), cmd.ChangesRequested(), dueDate, now)
	})
}
