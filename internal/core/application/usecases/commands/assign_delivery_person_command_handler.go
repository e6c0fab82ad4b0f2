package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

type AssignDeliveryPersonCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAssignDeliveryPersonCommandHandler(uowFactory OrderUoWFactory) AssignDeliveryPersonCommandHandler {
	return AssignDeliveryPersonCommandHandler{uowFactory: uowFactory}
}

func (h AssignDeliveryPersonCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryPersonCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), now, func(o *order.Order) error {
		return o.AssignDeliveryPerson(cmd.DriverID(), cmd.Actor(), now)
	})
}
