package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrSetProductEnabledCommandIsNotConstructed = errors.New(
	"SetProductEnabledCommand must be created via NewSetProductEnabledCommand constructor",
)

// SetProductEnabledCommand switches a product on or off in the storefront.
type SetProductEnabledCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	isEnabled bool

	guard guard.ConstructorGuard
}

func NewSetProductEnabledCommand(productID kernel.UUID, isEnabled bool) (SetProductEnabledCommand, error) {
	if err := productID.Validate(); err != nil {
		return SetProductEnabledCommand{}, err
	}
	return SetProductEnabledCommand{
		productID: productID,
		isEnabled: isEnabled,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetProductEnabledCommand) Validate() error {
	return c.guard.Validate(ErrSetProductEnabledCommandIsNotConstructed)
}

func (c SetProductEnabledCommand) ProductID() kernel.UUID { return c.productID }
func (c SetProductEnabledCommand) IsEnabled() bool        { return c.isEnabled }
