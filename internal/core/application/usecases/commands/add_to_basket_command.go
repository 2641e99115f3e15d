package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAddToBasketCommandIsNotConstructed = errors.New(
	"AddToBasketCommand must be created via NewAddToBasketCommand constructor",
)

// AddToBasketCommand puts quantity items of a product into the visitor's
// basket. basketID is the basket remembered in the session, ownerID the
// signed-in user; either may be nil.
type AddToBasketCommand struct { //nolint:recvcheck //using for validation
	basketID  *kernel.UUID
	ownerID   *kernel.UUID
	productID kernel.UUID
	quantity  int
	currency  string

	guard guard.ConstructorGuard
}

func NewAddToBasketCommand(
	basketID *kernel.UUID,
	ownerID *kernel.UUID,
	productID kernel.UUID,
	quantity int,
	currency string,
) (AddToBasketCommand, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := errors.Join(productID.Validate(), quantityErr, kernel.ValidateCurrency(currency)); err != nil {
		return AddToBasketCommand{}, err
	}

	return AddToBasketCommand{
		basketID:  basketID,
		ownerID:   ownerID,
		productID: productID,
		quantity:  quantity,
		currency:  currency,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddToBasketCommand) Validate() error {
	return c.guard.Validate(ErrAddToBasketCommandIsNotConstructed)
}

func (c AddToBasketCommand) BasketID() *kernel.UUID { return c.basketID }
func (c AddToBasketCommand) OwnerID() *kernel.UUID  { return c.ownerID }
func (c AddToBasketCommand) ProductID() kernel.UUID { return c.productID }
func (c AddToBasketCommand) Quantity() int          { return c.quantity }
func (c AddToBasketCommand) Currency() string       { return c.currency }
