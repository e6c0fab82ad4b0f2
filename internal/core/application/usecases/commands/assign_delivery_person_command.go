package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAssignDeliveryPersonCommandIsNotConstructed = errors.New(
	"AssignDeliveryPersonCommand must be created via NewAssignDeliveryPersonCommand constructor",
)

type AssignDeliveryPersonCommand struct {
	orderID  kernel.UUID
	driverID kernel.UUID
	actor    kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDeliveryPersonCommand(orderID, driverID, actor kernel.UUID) (AssignDeliveryPersonCommand, error) {
	if err := errors.Join(orderID.Validate(), driverID.Validate(), actor.Validate()); err != nil {
		return AssignDeliveryPersonCommand{}, err
	}
	return AssignDeliveryPersonCommand{orderID: orderID, driverID: driverID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c AssignDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryPersonCommandIsNotConstructed)
}

func (c AssignDeliveryPersonCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignDeliveryPersonCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c AssignDeliveryPersonCommand) Actor() kernel.UUID {
	return c.actor
}
