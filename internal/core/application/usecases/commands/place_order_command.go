package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a customer placing an order at a business.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customerID, businessID, customerID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s is pending", o.ID())
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	businessID kernel.UUID
	actor      kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the customer, business and acting user ids.
func NewPlaceOrderCommand(customerID, businessID, actor kernel.UUID) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setBusinessID(businessID),
		actor.Validate(),
	); err != nil {
		return PlaceOrderCommand{}, err
	}
	orderCommand.actor = actor

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c PlaceOrderCommand) BusinessID() kernel.UUID {
	return c.businessID
}

func (c PlaceOrderCommand) Actor() kernel.UUID {
	return c.actor
}

func (c *PlaceOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *PlaceOrderCommand) setBusinessID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.businessID = id
	return nil
}
