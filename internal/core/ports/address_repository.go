package ports

import (
	"context"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"
)

// UserAddressRepository persists address book entries.
type UserAddressRepository interface {
	Add(ctx context.Context, a *address.UserAddress) error
	Update(ctx context.Context, a *address.UserAddress) error
	Get(ctx context.Context, id kernel.UUID) (*address.UserAddress, error)
	Delete(ctx context.Context, id kernel.UUID) error
	// ListForUser returns entries oldest first.
	ListForUser(ctx context.Context, userID kernel.UUID) ([]*address.UserAddress, error)
}
