package order

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Note is a staff annotation on an order.
type Note struct {
	id                  kernel.UUID
	message             string
	isVisibleOnFrontend bool
	authorID            *kernel.UUID
	createdAt           time.Time
}

func NewNote(id kernel.UUID, message string, isVisibleOnFrontend bool, authorID *kernel.UUID, createdAt time.Time) (Note, error) {
	message = strings.TrimSpace(message)
	var messageErr error
	if message == "" {
		messageErr = errs.NewValueIsRequiredError("message")
	}
	if err := errors.Join(id.Validate(), messageErr); err != nil {
		return Note{}, err
	}
	return Note{
		id:                  id,
		message:             message,
		isVisibleOnFrontend: isVisibleOnFrontend,
		authorID:            authorID,
		createdAt:           createdAt.UTC(),
	}, nil
}

func (n Note) ID() kernel.UUID           { return n.id }
func (n Note) Message() string           { return n.message }
func (n Note) IsVisibleOnFrontend() bool { return n.isVisibleOnFrontend }
func (n Note) AuthorID() *kernel.UUID    { return n.authorID }
func (n Note) CreatedAt() time.Time      { return n.createdAt }
