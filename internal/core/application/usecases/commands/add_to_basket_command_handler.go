package commands

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/catalogue"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/partner"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ErrNotPurchasable wraps the reason a product may not be bought in the
// quantity asked for.
var ErrNotPurchasable = errors.New("product cannot be bought")

type AddToBasketCommandHandler struct {
	uowFactory BasketUoWFactory
	strategy   partner.Strategy
}

func NewAddToBasketCommandHandler(uowFactory BasketUoWFactory, strategy partner.Strategy) AddToBasketCommandHandler {
	return AddToBasketCommandHandler{uowFactory: uowFactory, strategy: strategy}
}

// Handle returns the basket the product went into, which is new when the
// visitor had no open basket yet.
func (h AddToBasketCommandHandler) Handle(ctx context.Context, cmd AddToBasketCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	basketRepo := uow.BasketRepository()
	b, isNew, err := loadOrCreateBasket(ctx, basketRepo, cmd.BasketID(), cmd.OwnerID(), cmd.Currency())
	if err != nil {
		return kernel.UUID{}, err
	}

	product, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return kernel.UUID{}, err
	}
	records, err := uow.StockRecordRepository().ListForProduct(ctx, product.ID())
	if err != nil {
		return kernel.UUID{}, err
	}

	info := h.strategy.FetchForProduct(product, records)
	if info.Price == nil || info.StockRecord == nil {
		return kernel.UUID{}, fmt.Errorf("%w: '%s' has no price", ErrNotPurchasable, product.Title())
	}
	wanted := quantityInBasket(b, product, info.StockRecord) + cmd.Quantity()
	if ok, reason := info.Availability.IsPurchasePermitted(wanted); !ok {
		return kernel.UUID{}, fmt.Errorf("%w: '%s' %s", ErrNotPurchasable, product.Title(), reason)
	}

	if _, err = b.AddProduct(kernel.NewUUID(), product, info.StockRecord, *info.Price, cmd.Quantity()); err != nil {
		return kernel.UUID{}, err
	}

	if isNew {
		err = basketRepo.Add(ctx, b)
	} else {
		err = basketRepo.Update(ctx, b)
	}
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = uow.AnalyticsRepository().RecordBasketAddition(ctx, product.ID(), cmd.OwnerID()); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}
	return b.ID(), nil
}

// loadOrCreateBasket finds the basket a visitor is filling. A signed-in
// user's open basket wins; otherwise the session basket is used while it is
// still open and nobody else owns it. The bool reports a new basket.
func loadOrCreateBasket(
	ctx context.Context,
	repo ports.BasketRepository,
	basketID *kernel.UUID,
	ownerID *kernel.UUID,
	currency string,
) (*basket.Basket, bool, error) {
	if ownerID != nil {
		b, err := repo.GetOpenForOwner(ctx, *ownerID)
		if err == nil {
			return b, false, nil
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, false, err
		}
	}

	if basketID != nil {
		b, err := repo.Get(ctx, *basketID)
		switch {
		case err == nil && b.Status().IsEditable() && b.OwnerID() == nil:
			if ownerID != nil {
				if err = b.AssignOwner(*ownerID); err != nil {
					return nil, false, err
				}
			}
			return b, false, nil
		case err == nil && b.Status().IsEditable() && ownerID != nil && b.OwnerID().IsEqual(*ownerID):
			return b, false, nil
		case err != nil && !errors.Is(err, errs.ErrObjectNotFound):
			return nil, false, err
		}
	}

	b, err := basket.NewBasket(kernel.NewUUID(), ownerID, currency)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func quantityInBasket(b *basket.Basket, product *catalogue.Product, record *partner.StockRecord) int {
	n := 0
	for _, l := range b.Lines() {
		if l.Product().ID().IsEqual(product.ID()) && l.StockRecord().ID().IsEqual(record.ID()) {
			n += l.Quantity()
		}
	}
	return n
}
