package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler applies one forward step. Two writers that read the
// same version race on the conditional update; the loser gets a stale write.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{uowFactory: uowFactory}
}

func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), now, func(o *order.Order) error {
		return o.Advance(cmd.Status(), cmd.Actor(), cmd.Notes(), now)
	})
}
