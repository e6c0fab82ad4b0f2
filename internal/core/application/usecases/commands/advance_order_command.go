package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand moves an order to its next status.
type AdvanceOrderCommand struct {
	orderID kernel.UUID
	status  order.Status
	actor   kernel.UUID
	notes   string

	guard guard.ConstructorGuard
}

func NewAdvanceOrderCommand(orderID kernel.UUID, status order.Status, actor kernel.UUID, notes string) (AdvanceOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), status.Validate(), actor.Validate()); err != nil {
		return AdvanceOrderCommand{}, err
	}
	return AdvanceOrderCommand{
		orderID: orderID,
		status:  status,
		actor:   actor,
		notes:   strings.TrimSpace(notes),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AdvanceOrderCommand) Status() order.Status {
	return c.status
}

func (c AdvanceOrderCommand) Actor() kernel.UUID {
	return c.actor
}

func (c AdvanceOrderCommand) Notes() string {
	return c.notes
}
