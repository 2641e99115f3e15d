package shipping

import (
	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Free never charges.
type Free struct{}

func (Free) Code() string        { return FreeCode }
func (Free) Name() string        { return "Free shipping" }
func (Free) Description() string { return "" }
func (Free) IsDiscounted() bool  { return false }

func (Free) Calculate(b *basket.Basket) (kernel.Price, error) {
	return kernel.ZeroPrice(b.Currency()), nil
}

// NoShippingRequired is the only method offered for baskets of digital
// goods.
type NoShippingRequired struct{}

func (NoShippingRequired) Code() string        { return NoShippingRequiredCode }
func (NoShippingRequired) Name() string        { return "No shipping required" }
func (NoShippingRequired) Description() string { return "" }
func (NoShippingRequired) IsDiscounted() bool  { return false }

func (NoShippingRequired) Calculate(b *basket.Basket) (kernel.Price, error) {
	return kernel.ZeroPrice(b.Currency()), nil
}

// FixedPrice charges the same amount for every basket.
type FixedPrice struct {
	chargeExclTax decimal.Decimal
	chargeInclTax decimal.Decimal
}

func NewFixedPrice(chargeExclTax decimal.Decimal, chargeInclTax decimal.Decimal) (FixedPrice, error) {
	if err := nonNegative("charge excl. tax", chargeExclTax); err != nil {
		return FixedPrice{}, err
	}
	if chargeInclTax.LessThan(chargeExclTax) {
		return FixedPrice{}, errs.NewValueIsOutOfRangeError("charge incl. tax", chargeInclTax.String(), chargeExclTax.String(), "∞")
	}
	return FixedPrice{chargeExclTax: chargeExclTax, chargeInclTax: chargeInclTax}, nil
}

func (FixedPrice) Code() string        { return FixedPriceCode }
func (FixedPrice) Name() string        { return "Fixed price shipping" }
func (FixedPrice) Description() string { return "" }
func (FixedPrice) IsDiscounted() bool  { return false }

func (m FixedPrice) Calculate(b *basket.Basket) (kernel.Price, error) {
	return kernel.NewPrice(b.Currency(), m.chargeExclTax, m.chargeInclTax.Sub(m.chargeExclTax))
}

// Collection lets the customer pick the order up from a store.
type Collection struct {
	name     string
	location kernel.GeoPoint
}

func NewCollection(name string, location kernel.GeoPoint) Collection {
	if name == "" {
		name = "Collect from store"
	}
	return Collection{name: name, location: location}
}

func (Collection) Code() string               { return CollectionCode }
func (m Collection) Name() string             { return m.name }
func (Collection) Description() string        { return "" }
func (Collection) IsDiscounted() bool         { return false }
func (m Collection) Location() kernel.GeoPoint { return m.location }

func (Collection) Calculate(b *basket.Basket) (kernel.Price, error) {
	return kernel.ZeroPrice(b.Currency()), nil
}

func (m Collection) DistanceKm(shippingAddress address.Address) (float64, bool) {
	loc := shippingAddress.Location()
	if loc == nil {
		return 0, false
	}
	d, err := m.location.DistanceKm(*loc)
	if err != nil {
		return 0, false
	}
	return d, true
}
