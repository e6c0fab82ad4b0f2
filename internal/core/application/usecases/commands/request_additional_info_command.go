package commands

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRequestAdditionalInfoCommandIsNotConstructed = errors.New(
	"RequestAdditionalInfoCommand must be created via NewRequestAdditionalInfoCommand constructor",
)

// RequestAdditionalInfoCommand opens an info request on an application under
// review or already waiting for info.
type RequestAdditionalInfoCommand struct {
	applicationID      kernel.UUID
	reviewerID         kernel.UUID
	message            string
	documentsRequested []string
	dueDate            time.Time

	guard guard.ConstructorGuard
}

func NewRequestAdditionalInfoCommand(
	applicationID, reviewerID kernel.UUID,
	message string,
	documentsRequested []string,
	dueDate time.Time,
) (RequestAdditionalInfoCommand, error) {
	var messageErr, dueErr error
	message = strings.TrimSpace(message)
	if message == "" {
		messageErr = errs.NewValueIsRequiredError("message")
	}
	if dueDate.IsZero() {
		dueErr = errs.NewValueIsRequiredError("dueDate")
	}
	if err := errors.Join(applicationID.Validate(), reviewerID.Validate(), messageErr, dueErr); err != nil {
		return RequestAdditionalInfoCommand{}, err
	}

	return RequestAdditionalInfoCommand{
		applicationID:      applicationID,
		reviewerID:         reviewerID,
		message:            message,
		documentsRequested: documentsRequested,
		dueDate:            dueDate,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

func (c RequestAdditionalInfoCommand) Validate() error {
	return c.guard.Validate(ErrRequestAdditionalInfoCommandIsNotConstructed)
}

func (c RequestAdditionalInfoCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

func (c RequestAdditionalInfoCommand) ReviewerID() kernel.UUID {
	return c.reviewerID
}

func (c RequestAdditionalInfoCommand) Message() string {
	return c.message
}

func (c RequestAdditionalInfoCommand) DocumentsRequested() []string {
	return c.documentsRequested
}

func (c RequestAdditionalInfoCommand) DueDate() time.Time {
	return c.dueDate
}
