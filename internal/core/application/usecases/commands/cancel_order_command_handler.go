package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), now, func(o *order.Order) error {
		return o.Cancel(cmd.Actor(), cmd.Reason(), now)
	})
}
