package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrDeleteShippingMethodCommandIsNotConstructed = errors.New(
	"DeleteShippingMethodCommand must be created via NewDeleteShippingMethodCommand constructor",
)

type DeleteShippingMethodCommand struct { //nolint:recvcheck //using for validation
	methodID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteShippingMethodCommand(methodID kernel.UUID) (DeleteShippingMethodCommand, error) {
	if err := methodID.Validate(); err != nil {
		return DeleteShippingMethodCommand{}, err
	}
	return DeleteShippingMethodCommand{methodID: methodID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteShippingMethodCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShippingMethodCommandIsNotConstructed)
}

func (c DeleteShippingMethodCommand) MethodID() kernel.UUID { return c.methodID }

type DeleteShippingMethodCommandHandler struct {
	uowFactory ShippingUoWFactory
}

func NewDeleteShippingMethodCommandHandler(uowFactory ShippingUoWFactory) DeleteShippingMethodCommandHandler {
	return DeleteShippingMethodCommandHandler{uowFactory: uowFactory}
}

// Handle removes the method with its weight bands.
func (h DeleteShippingMethodCommandHandler) Handle(ctx context.Context, cmd DeleteShippingMethodCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShippingMethodRepository().Delete(ctx, cmd.MethodID()); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
