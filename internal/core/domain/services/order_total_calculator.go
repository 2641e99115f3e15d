package services

import (
	"storefront/internal/core/domain/model/kernel"
)

// OrderTotalCalculator works out what the customer will be charged.
type OrderTotalCalculator struct{}

func NewOrderTotalCalculator() OrderTotalCalculator {
	return OrderTotalCalculator{}
}

// Calculate adds the shipping charge, and the payment charge when one has
// been chosen, to the basket total.
func (OrderTotalCalculator) Calculate(
	basketTotal kernel.Price,
	shippingCharge kernel.Price,
	paymentCharge *kernel.Price,
) (kernel.Price, error) {
	total, err := basketTotal.Add(shippingCharge)
	if err != nil {
		return kernel.Price{}, err
	}
	if paymentCharge == nil {
		return total, nil
	}
	return total.Add(*paymentCharge)
}
