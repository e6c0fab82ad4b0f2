package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrSuspendApplicationCommandIsNotConstructed = errors.New(
	"SuspendApplicationCommand must be created via NewSuspendApplicationCommand constructor",
)

type SuspendApplicationCommand struct {
	applicationID kernel.UUID
	reviewerID    kernel.UUID
	reason        string

	guard guard.ConstructorGuard
}

func NewSuspendApplicationCommand(applicationID, reviewerID kernel.UUID, reason string) (SuspendApplicationCommand, error) {
	var reasonErr error
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}
	if err := errors.Join(applicationID.Validate(), reviewerID.Validate(), reasonErr); err != nil {
		return SuspendApplicationCommand{}, err
	}
	return SuspendApplicationCommand{
		applicationID: applicationID,
		reviewerID:    reviewerID,
		reason:        reason,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c SuspendApplicationCommand) Validate() error {
	return c.guard.Validate(ErrSuspendApplicationCommandIsNotConstructed)
}

func (c SuspendApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

func (c SuspendApplicationCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

func (c SuspendApplicationCommand) Reason() string {
	return c.reason
}
