package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

type CancelOrderCommand struct {
	orderID kernel.UUID
	actor   kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID, actor kernel.UUID, reason string) (CancelOrderCommand, error) {
	var reasonErr error
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}
	if err := errors.Join(orderID.Validate(), actor.Validate(), reasonErr); err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{orderID: orderID, actor: actor, reason: reason, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CancelOrderCommand) Actor() kernel.UUID {
	return c.actor
}

func (c CancelOrderCommand) Reason() string {
	return c.reason
}
