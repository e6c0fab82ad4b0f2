package http

import (
	"context"
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func idAndActor(id openapi_types.UUID, params servers.ActorParams) (kernel.UUID, kernel.UUID, error) {
	entityID, idErr := toKernelUUID(id)
	actor, actorErr := toKernelUUID(params.XActorID)
	return entityID, actor, errors.Join(idErr, actorErr)
}

func (s *Server) respondOrder(ctx echo.Context, handle func(context.Context) (*order.Order, error)) error {
	reqCtx := ctx.Request().Context()
	o, err := commands.RetryOnStaleWrite(reqCtx, s.retry, func() (*order.Order, error) {
		return handle(reqCtx)
	})
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, orderResponse(o))
}

// PlaceOrder handles POST /api/v1/orders - places a pending order.
func (s *Server) PlaceOrder(ctx echo.Context, params servers.ActorParams) error {
	var body servers.NewOrder
	if err := bindBody(ctx, &body); err != nil {
		return writeError(ctx, s.logger, err)
	}
	customerID, customerErr := toKernelUUID(body.CustomerId)
	businessID, businessErr := toKernelUUID(body.BusinessId)
	actor, actorErr := toKernelUUID(params.XActorID)
	if err := errors.Join(customerErr, businessErr, actorErr); err != nil {
		return writeError(ctx, s.logger, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(customerID, businessID, actor)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	o, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusCreated, orderResponse(o))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := toKernelUUID(id)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, orderResponse(o))
}

// AdvanceOrder handles PUT /api/v1/orders/{id}/status.
func (s *Server) AdvanceOrder(ctx echo.Context, id openapi_types.UUID, params servers.ActorParams) error {
	var body servers.StatusChange
	if err := bindBody(ctx, &body); err != nil {
		return writeError(ctx, s.logger, err)
	}
	orderID, actor, err := idAndActor(id, params)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	next, err := order.ParseStatus(body.Status)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	cmd, err := commands.NewAdvanceOrderCommand(orderID, next, actor, deref(body.Notes))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.respondOrder(ctx, func(c context.Context) (*order.Order, error) {
		return s.handlers.AdvanceOrder.Handle(c, cmd)
	})
}

// AssignDeliveryPerson handles PUT /api/v1/orders/{id}/assign.
func (s *Server) AssignDeliveryPerson(ctx echo.Context, id openapi_types.UUID, params servers.ActorParams) error {
	var body servers.DriverAssignment
	if err := bindBody(ctx, &body); err != nil {
		return writeError(ctx, s.logger, err)
	}
	orderID, actor, err := idAndActor(id, params)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	driverID, err := toKernelUUID(body.DriverId)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	cmd, err := commands.NewAssignDeliveryPersonCommand(orderID, driverID, actor)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.respondOrder(ctx, func(c context.Context) (*order.Order, error) {
		return s.handlers.AssignDeliveryPerson.Handle(c, cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, id openapi_types.UUID, params servers.ActorParams) error {
	var body servers.Reason
	if err := bindBody(ctx, &body); err != nil {
		return writeError(ctx, s.logger, err)
	}
	orderID, actor, err := idAndActor(id, params)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	cmd, err := commands.NewCancelOrderCommand(orderID, actor, body.Reason)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.respondOrder(ctx, func(c context.Context) (*order.Order, error) {
		return s.handlers.CancelOrder.Handle(c, cmd)
	})
}
