package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrUpdateShippingMethodCommandIsNotConstructed = errors.New(
	"UpdateShippingMethodCommand must be created via NewUpdateShippingMethodCommand constructor",
)

// UpdateShippingMethodCommand replaces the editable settings of a method.
// The code stays as it was when the method was created.
type UpdateShippingMethodCommand struct { //nolint:recvcheck //using for validation
	methodID kernel.UUID
	details  MethodDetails
	charges  Charges

	guard guard.ConstructorGuard
}

func NewUpdateShippingMethodCommand(methodID kernel.UUID, details MethodDetails, charges Charges) (UpdateShippingMethodCommand, error) {
	if err := methodID.Validate(); err != nil {
		return UpdateShippingMethodCommand{}, err
	}
	return UpdateShippingMethodCommand{
		methodID: methodID,
		details:  details,
		charges:  charges,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateShippingMethodCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShippingMethodCommandIsNotConstructed)
}

func (c UpdateShippingMethodCommand) MethodID() kernel.UUID  { return c.methodID }
func (c UpdateShippingMethodCommand) Details() MethodDetails { return c.details }
func (c UpdateShippingMethodCommand) Charges() Charges       { return c.charges }
