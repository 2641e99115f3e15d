package commands

import (
	"errors"
	"fmt"
	"slices"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateShippingMethodCommandIsNotConstructed = errors.New(
	"CreateShippingMethodCommand must be created via NewCreateShippingMethodCommand constructor",
)

// MethodDetails is what staff edit on any kind of shipping method.
type MethodDetails struct {
	Name        string
	Description string
	Countries   []string
	IsEnabled   bool
}

// Charges configure the pricing of a method. Only the fields of the
// method's kind are used.
type Charges struct {
	PricePerOrder         decimal.Decimal
	PricePerItem          decimal.Decimal
	FreeShippingThreshold *decimal.Decimal
	DefaultWeight         decimal.Decimal
}

type CreateShippingMethodCommand struct { //nolint:recvcheck //using for validation
	methodID kernel.UUID
	kind     shipping.Kind
	details  MethodDetails
	charges  Charges

	guard guard.ConstructorGuard
}

func NewCreateShippingMethodCommand(
	methodID kernel.UUID,
	kind shipping.Kind,
	details MethodDetails,
	charges Charges,
) (CreateShippingMethodCommand, error) {
	var kindErr error
	if !slices.Contains([]shipping.Kind{shipping.KindOrderAndItemCharges, shipping.KindWeightBased}, kind) {
		kindErr = errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a shipping method kind", kind))
	}
	if err := errors.Join(methodID.Validate(), kindErr); err != nil {
		return CreateShippingMethodCommand{}, err
	}

	return CreateShippingMethodCommand{
		methodID: methodID,
		kind:     kind,
		details:  details,
		charges:  charges,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateShippingMethodCommand) Validate() error {
	return c.guard.Validate(ErrCreateShippingMethodCommandIsNotConstructed)
}

func (c CreateShippingMethodCommand) MethodID() kernel.UUID  { return c.methodID }
func (c CreateShippingMethodCommand) Kind() shipping.Kind    { return c.kind }
func (c CreateShippingMethodCommand) Details() MethodDetails { return c.details }
func (c CreateShippingMethodCommand) Charges() Charges       { return c.charges }
