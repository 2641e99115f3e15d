package shipping

import (
	"fmt"

	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/catalogue"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Scale reads product weights from a catalogue attribute.
type Scale struct {
	attributeCode string
	defaultWeight decimal.Decimal
}

func NewScale(attributeCode string, defaultWeight decimal.Decimal) Scale {
	return Scale{attributeCode: attributeCode, defaultWeight: defaultWeight}
}

// WeighProduct falls back to the default weight when the product has no
// weight attribute.
func (s Scale) WeighProduct(product *catalogue.Product) (decimal.Decimal, error) {
	raw, ok := product.Attribute(s.attributeCode)
	if !ok {
		return s.defaultWeight, nil
	}
	weight, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(s.attributeCode,
			fmt.Errorf("product %q: %w", product.Title(), err))
	}
	return weight, nil
}

// WeighBasket sums the weight of every line, shippable or not.
func (s Scale) WeighBasket(b *basket.Basket) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range b.Lines() {
		weight, err := s.WeighProduct(line.Product())
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(weight.Mul(decimal.NewFromInt(int64(line.Quantity()))))
	}
	return total, nil
}
