package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/verification"
	"marketplace/internal/pkg/guard"
)

var ErrCreateApplicationCommandIsNotConstructed = errors.New(
	"CreateApplicationCommand must be created via NewCreateApplicationCommand constructor",
)

// CreateApplicationCommand opens a draft verification case for a business or driver.
//
// Example:
//
//	cmd, err := NewCreateApplicationCommand(verification.SubjectDriver, driverID,
//	    verification.PriorityNormal, []verification.DocumentSpec{{Type: "driver_license", Required: true}}, actorID)
//	if err != nil {
//	    return fmt.Errorf("invalid application: %w", err)
//	}
//	app, err := handler.Handle(ctx, cmd)
type CreateApplicationCommand struct {
	subjectType verification.SubjectType
	subjectID   kernel.UUID
	priority    verification.Priority
	documents   []verification.DocumentSpec
	actor       kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateApplicationCommand(
	subjectType verification.SubjectType,
	subjectID kernel.UUID,
	priority verification.Priority,
	documents []verification.DocumentSpec,
	actor kernel.UUID,
) (CreateApplicationCommand, error) {
	if err := errors.Join(
		subjectType.Validate(),
		subjectID.Validate(),
		priority.Validate(),
		actor.Validate(),
	); err != nil {
		return CreateApplicationCommand{}, err
	}

	return CreateApplicationCommand{
		subjectType: subjectType,
		subjectID:   subjectID,
		priority:    priority,
		documents:   documents,
		actor:       actor,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateApplicationCommand) Validate() error {
	return c.guard.Validate(ErrCreateApplicationCommandIsNotConstructed)
}

func (c CreateApplicationCommand) SubjectType() verification.SubjectType {
	return c.subjectType
}

func (c CreateApplicationCommand) SubjectID() kernel.UUID {
	return c.subjectID
}

func (c CreateApplicationCommand) Priority() verification.Priority {
	return c.priority
}

func (c CreateApplicationCommand) Documents() []verification.DocumentSpec {
	return c.documents
}

func (c CreateApplicationCommand) Actor() kernel.UUID {
	return c.actor
}
