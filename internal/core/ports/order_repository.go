package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository persists orders with their lines and notes.
type OrderRepository interface {
	Add(ctx context.Context, o *order.Order) error
	Update(ctx context.Context, o *order.Order) error
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// NextNumberSequence draws the next value of the order number
	// sequence. Values are never reused, even when the transaction rolls
	// back.
	NextNumberSequence(ctx context.Context) (int64, error)
}
