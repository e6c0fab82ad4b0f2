package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrSubmitApplicationCommandIsNotConstructed = errors.New(
	"SubmitApplicationCommand must be created via NewSubmitApplicationCommand constructor",
)

// SubmitApplicationCommand hands a draft application over for review.
type SubmitApplicationCommand struct {
	applicationID kernel.UUID
	actor         kernel.UUID

	guard guard.ConstructorGuard
}

func NewSubmitApplicationCommand(applicationID, actor kernel.UUID) (SubmitApplicationCommand, error) {
	if err := errors.Join(applicationID.Validate(), actor.Validate()); err != nil {
		return SubmitApplicationCommand{}, err
	}
	return SubmitApplicationCommand{applicationID: applicationID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c SubmitApplicationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitApplicationCommandIsNotConstructed)
}

func (c SubmitApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

func (c SubmitApplicationCommand) Actor() kernel.UUID {
	return c.actor
}
