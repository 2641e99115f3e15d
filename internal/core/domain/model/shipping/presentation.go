package shipping

import (
	"fmt"
	"math"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
)

const milesPerKm = 0.6213712

func Charge(m Method, b *basket.Basket) (kernel.Price, error) {
	return m.Calculate(b)
}

// ChargeDiscount is zero for methods that never discount.
func ChargeDiscount(m Method, b *basket.Basket) (kernel.Price, error) {
	if d, ok := m.(Discounter); ok {
		return d.Discount(b)
	}
	return kernel.ZeroPrice(b.Currency()), nil
}

func ChargeExclDiscount(m Method, b *basket.Basket) (kernel.Price, error) {
	if d, ok := m.(Discounter); ok {
		return d.CalculateExclDiscount(b)
	}
	return m.Calculate(b)
}

func DistanceKm(m Method, shippingAddress address.Address) (float64, bool) {
	if l, ok := m.(Locator); ok {
		return l.DistanceKm(shippingAddress)
	}
	return 0, false
}

// Miles renders a distance for customers: short hops read "less than 5",
// long ones are rounded to the nearest 10 miles and the rest to the
// nearest 5. Halves round to even.
func Miles(km float64) string {
	if math.IsNaN(km) || math.IsInf(km, 0) {
		return ""
	}
	d := km * milesPerKm
	switch {
	case d < 5:
		return "less than 5"
	case d > 100:
		return fmt.Sprintf("%d", int64(10*math.RoundToEven(d/10)))
	default:
		return fmt.Sprintf("%d", int64(5*math.RoundToEven(d/5)))
	}
}
