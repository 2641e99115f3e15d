package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"
)

// ShippingMethodRepository persists dashboard-managed shipping methods of
// every kind. Weight bands are saved with their method.
type ShippingMethodRepository interface {
	Add(ctx context.Context, m shipping.Configured) error
	Update(ctx context.Context, m shipping.Configured) error
	Get(ctx context.Context, id kernel.UUID) (shipping.Configured, error)
	Delete(ctx context.Context, id kernel.UUID) error
	List(ctx context.Context) ([]shipping.Configured, error)

	// EnabledMethods makes the repository usable as a shipping.MethodSource.
	EnabledMethods(ctx context.Context) ([]shipping.Method, error)
}
