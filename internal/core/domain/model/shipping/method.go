package shipping

import (
	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
)

const (
	FreeCode               = "free-shipping"
	NoShippingRequiredCode = "no-shipping-required"
	FixedPriceCode         = "fixed-price-shipping"
	CollectionCode         = "collection"
)

// Method prices shipping for a basket.
type Method interface {
	Code() string
	Name() string
	Description() string
	// IsDiscounted is true for methods whose charge has an offer applied.
	IsDiscounted() bool
	Calculate(b *basket.Basket) (kernel.Price, error)
}

// Discounter is implemented by methods that can report the charge before
// a discount was taken off.
type Discounter interface {
	Discount(b *basket.Basket) (kernel.Price, error)
	CalculateExclDiscount(b *basket.Basket) (kernel.Price, error)
}

// Restricter is implemented by methods that are only offered for some
// baskets or destinations.
type Restricter interface {
	IsApplicable(b *basket.Basket, shippingAddress *address.Address) bool
}

// Locator is implemented by methods tied to a physical location.
type Locator interface {
	// DistanceKm returns false when the distance cannot be worked out, for
	// example because the address was never geocoded.
	DistanceKm(shippingAddress address.Address) (float64, bool)
}

// Configured is a method managed from the dashboard.
type Configured interface {
	Method
	Restricter
	ID() kernel.UUID
	Kind() Kind
	IsEnabled() bool
	Countries() []string
}
