package commands

import (
	"errors"

	"storefront/internal/core/application/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand turns the checkout in progress into an order.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	request checkout.Request

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(orderID kernel.UUID, request checkout.Request) (PlaceOrderCommand, error) {
	var basketErr, sessionErr error
	if request.Basket == nil {
		basketErr = errs.NewValueIsRequiredError("basket")
	}
	if request.Session == nil {
		sessionErr = errs.NewValueIsRequiredError("session")
	}
	if err := errors.Join(orderID.Validate(), basketErr, sessionErr); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		orderID: orderID,
		request: request,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID      { return c.orderID }
func (c PlaceOrderCommand) Request() checkout.Request { return c.request }
