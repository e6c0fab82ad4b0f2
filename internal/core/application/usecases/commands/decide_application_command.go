package commands

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/verification"
	"marketplace/internal/pkg/guard"
)

var ErrDecideApplicationCommandIsNotConstructed = errors.New(
	"DecideApplicationCommand must be created via NewDecideApplicationCommand constructor",
)

// DecideApplicationCommand carries the reviewer's decision on an application
// under review: approved, rejected or additional_info_required. A nil dueDate
// on an info request falls back to the handler's configured window.
type DecideApplicationCommand struct {
	applicationID    kernel.UUID
	reviewerID       kernel.UUID
	decision         verification.Status
	comments         string
	changesRequested []string
	dueDate          *time.Time

	guard guard.ConstructorGuard
}

func NewDecideApplicationCommand(
	applicationID, reviewerID kernel.UUID,
	decision verification.Status,
	comments string,
	changesRequested []string,
	dueDate *time.Time,
) (DecideApplicationCommand, error) {
	if err := errors.Join(
		applicationID.Validate(),
		reviewerID.Validate(),
		decision.Validate(),
	); err != nil {
		return DecideApplicationCommand{}, err
	}

	return DecideApplicationCommand{
		applicationID:    applicationID,
		reviewerID:       reviewerID,
		decision:         decision,
		comments:         strings.TrimSpace(comments),
		changesRequested: changesRequested,
		dueDate:          dueDate,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c DecideApplicationCommand) Validate() error {
	return c.guard.Validate(ErrDecideApplicationCommandIsNotConstructed)
}

func (c DecideApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

func (c DecideApplicationCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

func (c DecideApplicationCommand) Decision() verification.Status {
	return c.decision
}

func (c DecideApplicationCommand) Comments() string {
	return c.comments
}

func (c DecideApplicationCommand) ChangesRequested() []string {
	return c.changesRequested
}

func (c DecideApplicationCommand) DueDate() *time.Time {
	return c.dueDate
}
