package commands

import (
	"context"

	"storefront/internal/core/domain/model/shipping"
)

type CreateShippingMethodCommandHandler struct {
	uowFactory ShippingUoWFactory
}

func NewCreateShippingMethodCommandHandler(uowFactory ShippingUoWFactory) CreateShippingMethodCommandHandler {
	return CreateShippingMethodCommandHandler{uowFactory: uowFactory}
}

// Handle returns the code derived from the method name.
func (h CreateShippingMethodCommandHandler) Handle(ctx context.Context, cmd CreateShippingMethodCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	d := cmd.Details()
	cfg, err := shipping.NewConfiguration(cmd.MethodID(), d.Name, d.Description, d.Countries, d.IsEnabled)
	if err != nil {
		return "", err
	}

	c := cmd.Charges()
	var method shipping.Configured
	switch cmd.Kind() {
	case shipping.KindWeightBased:
		method, err = shipping.NewWeightBased(cfg, c.DefaultWeight)
	default:
		method, err = shipping.NewOrderAndItemCharges(cfg, c.PricePerOrder, c.PricePerItem, c.FreeShippingThreshold)
	}
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShippingMethodRepository().Add(ctx, method); err != nil {
		return "", err
	}
	if err = uow.Commit(ctx); err != nil {
		return "", err
	}
	return method.Code(), nil
}
