package commands

import (
	"context"

	"storefront/internal/core/domain/model/catalogue"
	"storefront/internal/core/domain/model/partner"
)

type CreateProductCommandHandler struct {
	uowFactory CatalogueUoWFactory
}

func NewCreateProductCommandHandler(uowFactory CatalogueUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

// Handle stores the product and its stock record in one transaction.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := catalogue.NewProduct(cmd.ProductID(), cmd.Title(), cmd.UPC(), cmd.IsShippingRequired())
	if err != nil {
		return err
	}
	product.SetDescription(cmd.Description())
	for code, value := range cmd.Attributes() {
		if err = product.SetAttribute(code, value); err != nil {
			return err
		}
	}

	stock := cmd.Stock()
	record, err := partner.NewStockRecord(
		stock.StockRecordID, product.ID(), stock.PartnerSKU, stock.Currency, stock.PriceExclTax, stock.NumInStock,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, product); err != nil {
		return err
	}
	if err = uow.StockRecordRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
