package shipping

import (
	"errors"

	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OrderAndItemCharges charges once per order plus once per shipped item.
// The charge is waived once the basket total reaches the free shipping
// threshold.
type OrderAndItemCharges struct {
	Configuration

	pricePerOrder         decimal.Decimal
	pricePerItem          decimal.Decimal
	freeShippingThreshold *decimal.Decimal
}

func NewOrderAndItemCharges(
	cfg Configuration,
	pricePerOrder decimal.Decimal,
	pricePerItem decimal.Decimal,
	freeShippingThreshold *decimal.Decimal,
) (*OrderAndItemCharges, error) {
	m := &OrderAndItemCharges{Configuration: cfg}
	if err := m.SetCharges(pricePerOrder, pricePerItem, freeShippingThreshold); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *OrderAndItemCharges) Kind() Kind                    { return KindOrderAndItemCharges }
func (m *OrderAndItemCharges) PricePerOrder() decimal.Decimal { return m.pricePerOrder }
func (m *OrderAndItemCharges) PricePerItem() decimal.Decimal  { return m.pricePerItem }

func (m *OrderAndItemCharges) FreeShippingThreshold() *decimal.Decimal {
	if m.freeShippingThreshold == nil {
		return nil
	}
	t := *m.freeShippingThreshold
	return &t
}

func (m *OrderAndItemCharges) SetCharges(
	pricePerOrder decimal.Decimal,
	pricePerItem decimal.Decimal,
	freeShippingThreshold *decimal.Decimal,
) error {
	var thresholdErr error
	if freeShippingThreshold != nil && freeShippingThreshold.IsNegative() {
		thresholdErr = errs.NewValueIsOutOfRangeError("free shipping threshold", freeShippingThreshold.String(), 0, "∞")
	}
	if err := errors.Join(
		nonNegative("price per order", pricePerOrder),
		nonNegative("price per item", pricePerItem),
		thresholdErr,
	); err != nil {
		return err
	}

	m.pricePerOrder = pricePerOrder
	m.pricePerItem = pricePerItem
	m.freeShippingThreshold = nil
	if freeShippingThreshold != nil {
		t := *freeShippingThreshold
		m.freeShippingThreshold = &t
	}
	return nil
}

func (m *OrderAndItemCharges) Calculate(b *basket.Basket) (kernel.Price, error) {
	if m.qualifiesForFreeShipping(b) {
		return kernel.ZeroPrice(b.Currency()), nil
	}
	return m.CalculateExclDiscount(b)
}

// CalculateExclDiscount is the charge as if the threshold did not exist.
func (m *OrderAndItemCharges) CalculateExclDiscount(b *basket.Basket) (kernel.Price, error) {
	charge := m.pricePerOrder
	for _, line := range b.Lines() {
		if line.Product().IsShippingRequired() {
			charge = charge.Add(m.pricePerItem.Mul(decimal.NewFromInt(int64(line.Quantity()))))
		}
	}
	return kernel.NewPrice(b.Currency(), charge, decimal.Zero)
}

func (m *OrderAndItemCharges) Discount(b *basket.Basket) (kernel.Price, error) {
	if !m.qualifiesForFreeShipping(b) {
		return kernel.ZeroPrice(b.Currency()), nil
	}
	return m.CalculateExclDiscount(b)
}

func (m *OrderAndItemCharges) qualifiesForFreeShipping(b *basket.Basket) bool {
	return m.freeShippingThreshold != nil && b.Total().InclTax().GreaterThanOrEqual(*m.freeShippingThreshold)
}

func nonNegative(name string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsOutOfRangeError(name, amount.String(), 0, "∞")
	}
	return nil
}
