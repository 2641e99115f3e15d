package ports

import (
	"context"

	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
)

// BasketRepository persists baskets together with their lines. Loaded lines
// carry their product and stock record.
type BasketRepository interface {
	Add(ctx context.Context, b *basket.Basket) error
	// Update refuses to touch a basket that is already stored as submitted
	// and returns a StateIsInvalidError.
	Update(ctx context.Context, b *basket.Basket) error
	Get(ctx context.Context, id kernel.UUID) (*basket.Basket, error)

	// GetOpenForOwner returns the user's open basket or an
	// ObjectNotFoundError.
	GetOpenForOwner(ctx context.Context, ownerID kernel.UUID) (*basket.Basket, error)
}
