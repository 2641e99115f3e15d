package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUpdateBasketLineCommandIsNotConstructed = errors.New(
	"UpdateBasketLineCommand must be created via NewUpdateBasketLineCommand constructor",
)

// UpdateBasketLineCommand changes a line's quantity. Zero removes the line.
type UpdateBasketLineCommand struct { //nolint:recvcheck //using for validation
	basketID kernel.UUID
	lineID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewUpdateBasketLineCommand(basketID kernel.UUID, lineID kernel.UUID, quantity int) (UpdateBasketLineCommand, error) {
	var quantityErr error
	if quantity < 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	if err := errors.Join(basketID.Validate(), lineID.Validate(), quantityErr); err != nil {
		return UpdateBasketLineCommand{}, err
	}

	return UpdateBasketLineCommand{
		basketID: basketID,
		lineID:   lineID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateBasketLineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBasketLineCommandIsNotConstructed)
}

func (c UpdateBasketLineCommand) BasketID() kernel.UUID { return c.basketID }
func (c UpdateBasketLineCommand) LineID() kernel.UUID   { return c.lineID }
func (c UpdateBasketLineCommand) Quantity() int         { return c.quantity }
