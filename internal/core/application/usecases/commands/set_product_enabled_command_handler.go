package commands

import "context"

type SetProductEnabledCommandHandler struct {
	uowFactory CatalogueUoWFactory
}

func NewSetProductEnabledCommandHandler(uowFactory CatalogueUoWFactory) SetProductEnabledCommandHandler {
	return SetProductEnabledCommandHandler{uowFactory: uowFactory}
}

func (h SetProductEnabledCommandHandler) Handle(ctx context.Context, cmd SetProductEnabledCommand) error {
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

	repo := uow.ProductRepository()
	product, err := repo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if cmd.IsEnabled() {
		product.Enable()
	} else {
		product.Disable()
	}
	if err = repo.Update(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
