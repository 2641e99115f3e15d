package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAddOrderNoteCommandIsNotConstructed = errors.New(
	"AddOrderNoteCommand must be created via NewAddOrderNoteCommand constructor",
)

type AddOrderNoteCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	noteID              kernel.UUID
	authorID            *kernel.UUID
	message             string
	isVisibleOnFrontend bool

	guard guard.ConstructorGuard
}

func NewAddOrderNoteCommand(
	orderID kernel.UUID,
	noteID kernel.UUID,
	authorID *kernel.UUID,
	message string,
	isVisibleOnFrontend bool,
) (AddOrderNoteCommand, error) {
	message = strings.TrimSpace(message)
	var messageErr error
	if message == "" {
		messageErr = errs.NewValueIsRequiredError("message")
	}
	if err := errors.Join(orderID.Validate(), noteID.Validate(), messageErr); err != nil {
		return AddOrderNoteCommand{}, err
	}

	return AddOrderNoteCommand{
		orderID:             orderID,
		noteID:              noteID,
		authorID:            authorID,
		message:             message,
		isVisibleOnFrontend: isVisibleOnFrontend,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrderNoteCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderNoteCommandIsNotConstructed)
}

func (c AddOrderNoteCommand) OrderID() kernel.UUID      { return c.orderID }
func (c AddOrderNoteCommand) NoteID() kernel.UUID       { return c.noteID }
func (c AddOrderNoteCommand) AuthorID() *kernel.UUID    { return c.authorID }
func (c AddOrderNoteCommand) Message() string           { return c.message }
func (c AddOrderNoteCommand) IsVisibleOnFrontend() bool { return c.isVisibleOnFrontend }
