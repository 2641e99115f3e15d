package commands

import (
	"context"
	"fmt"

	"storefront/internal/core/domain/model/partner"
	"storefront/internal/pkg/errs"
)

type UpdateBasketLineCommandHandler struct {
	uowFactory BasketUoWFactory
	strategy   partner.Strategy
}

func NewUpdateBasketLineCommandHandler(uowFactory BasketUoWFactory, strategy partner.Strategy) UpdateBasketLineCommandHandler {
	return UpdateBasketLineCommandHandler{uowFactory: uowFactory, strategy: strategy}
}

// Handle checks stock only when the quantity goes up.
func (h UpdateBasketLineCommandHandler) Handle(ctx context.Context, cmd UpdateBasketLineCommand) error {
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

	repo := uow.BasketRepository()
	b, err := repo.Get(ctx, cmd.BasketID())
	if err != nil {
		return err
	}
	line, ok := b.Line(cmd.LineID())
	if !ok {
		return errs.NewObjectNotFoundError("line", cmd.LineID().String())
	}

	if cmd.Quantity() > line.Quantity() {
		info := h.strategy.FetchForStockRecord(line.Product(), line.StockRecord())
		if ok, reason := info.Availability.IsPurchasePermitted(cmd.Quantity()); !ok {
			return fmt.Errorf("%w: '%s' %s", ErrNotPurchasable, line.Product().Title(), reason)
		}
	}

	if err = b.SetLineQuantity(cmd.LineID(), cmd.Quantity()); err != nil {
		return err
	}
	if err = repo.Update(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
