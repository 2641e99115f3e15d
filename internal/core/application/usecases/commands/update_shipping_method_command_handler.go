package commands

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/pkg/errs"
)

type UpdateShippingMethodCommandHandler struct {
	uowFactory ShippingUoWFactory
}

func NewUpdateShippingMethodCommandHandler(uowFactory ShippingUoWFactory) UpdateShippingMethodCommandHandler {
	return UpdateShippingMethodCommandHandler{uowFactory: uowFactory}
}

func (h UpdateShippingMethodCommandHandler) Handle(ctx context.Context, cmd UpdateShippingMethodCommand) error {
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

	repo := uow.ShippingMethodRepository()
	method, err := repo.Get(ctx, cmd.MethodID())
	if err != nil {
		return err
	}

	d, c := cmd.Details(), cmd.Charges()
	switch m := method.(type) {
	case *shipping.OrderAndItemCharges:
		err = errors.Join(
			applyDetails(&m.Configuration, d),
			m.SetCharges(c.PricePerOrder, c.PricePerItem, c.FreeShippingThreshold),
		)
	case *shipping.WeightBased:
		err = errors.Join(
			applyDetails(&m.Configuration, d),
			m.SetDefaultWeight(c.DefaultWeight),
		)
	default:
		err = errs.NewStateIsInvalidErrorWithCause("shipping method", string(method.Kind()),
			fmt.Errorf("%T cannot be edited", method))
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, method); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func applyDetails(cfg *shipping.Configuration, d MethodDetails) error {
	if err := errors.Join(cfg.Rename(d.Name), cfg.SetCountries(d.Countries)); err != nil {
		return err
	}
	cfg.SetDescription(d.Description)
	cfg.SetEnabled(d.IsEnabled)
	return nil
}
