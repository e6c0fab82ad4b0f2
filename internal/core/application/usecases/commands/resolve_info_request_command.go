package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrResolveInfoRequestCommandIsNotConstructed = errors.New(
	"ResolveInfoRequestCommand must be created via NewResolveInfoRequestCommand constructor",
)

// ResolveInfoRequestCommand marks an info request answered.
type ResolveInfoRequestCommand struct {
	applicationID kernel.UUID
	requestID     kernel.UUID
	actor         kernel.UUID

	guard guard.ConstructorGuard
}

func NewResolveInfoRequestCommand(applicationID, requestID, actor kernel.UUID) (ResolveInfoRequestCommand, error) {
	if err := errors.Join(applicationID.Validate(), requestID.Validate(), actor.Validate()); err != nil {
		return ResolveInfoRequestCommand{}, err
	}
	return ResolveInfoRequestCommand{
		applicationID: applicationID,
		requestID:     requestID,
		actor:         actor,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c ResolveInfoRequestCommand) Validate() error {
	return c.guard.Validate(ErrResolveInfoRequestCommandIsNotConstructed)
}

func (c ResolveInfoRequestCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

func (c ResolveInfoRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c ResolveInfoRequestCommand) Actor() kernel.UUID {
	return c.actor
}
