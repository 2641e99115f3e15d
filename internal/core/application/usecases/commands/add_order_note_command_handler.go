package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

type AddOrderNoteCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAddOrderNoteCommandHandler(uowFactory OrderUoWFactory) AddOrderNoteCommandHandler {
	return AddOrderNoteCommandHandler{uowFactory: uowFactory}
}

func (h AddOrderNoteCommandHandler) Handle(ctx context.Context, cmd AddOrderNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	note, err := order.NewNote(cmd.NoteID(), cmd.Message(), cmd.IsVisibleOnFrontend(), cmd.AuthorID(), time.Now())
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

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = o.AddNote(note); err != nil {
		return err
	}
	if err = repo.Update(ctx, o); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
