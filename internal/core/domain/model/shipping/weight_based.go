package shipping

import (
	"fmt"
	"slices"

	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const WeightAttributeCode = "weight"

// WeightBased looks the basket weight up in a table of weight bands.
type WeightBased struct {
	Configuration

	defaultWeight decimal.Decimal
	bands         []*WeightBand
}

func NewWeightBased(cfg Configuration, defaultWeight decimal.Decimal, bands ...*WeightBand) (*WeightBased, error) {
	if err := nonNegative("default weight", defaultWeight); err != nil {
		return nil, err
	}
	m := &WeightBased{Configuration: cfg, defaultWeight: defaultWeight}
	for _, band := range bands {
		if err := m.AddBand(band); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *WeightBased) Kind() Kind                     { return KindWeightBased }
func (m *WeightBased) DefaultWeight() decimal.Decimal { return m.defaultWeight }

func (m *WeightBased) SetDefaultWeight(defaultWeight decimal.Decimal) error {
	if err := nonNegative("default weight", defaultWeight); err != nil {
		return err
	}
	m.defaultWeight = defaultWeight
	return nil
}

// Bands are ordered by upper limit.
func (m *WeightBased) Bands() []*WeightBand {
	return slices.Clone(m.bands)
}

func (m *WeightBased) AddBand(band *WeightBand) error {
	if band == nil {
		return errs.NewValueIsRequiredError("band")
	}
	for _, b := range m.bands {
		if b.upperLimit.Equal(band.upperLimit) {
			return errs.NewValueIsInvalidErrorWithCause("upper limit",
				fmt.Errorf("a band with upper limit %s already exists", band.upperLimit))
		}
	}
	m.bands = append(m.bands, band)
	slices.SortFunc(m.bands, func(a, b *WeightBand) int { return a.upperLimit.Cmp(b.upperLimit) })
	return nil
}

func (m *WeightBased) RemoveBand(id kernel.UUID) error {
	idx := slices.IndexFunc(m.bands, func(b *WeightBand) bool { return b.id.IsEqual(id) })
	if idx < 0 {
		return errs.NewObjectNotFoundError("weight band", id)
	}
	m.bands = slices.Delete(m.bands, idx, idx+1)
	return nil
}

func (m *WeightBased) TopBand() *WeightBand {
	if len(m.bands) == 0 {
		return nil
	}
	return m.bands[len(m.bands)-1]
}

// BandForWeight is the smallest band that can hold weight.
func (m *WeightBased) BandForWeight(weight decimal.Decimal) *WeightBand {
	for _, b := range m.bands {
		if b.upperLimit.GreaterThanOrEqual(weight) {
			return b
		}
	}
	return nil
}

// WeightFrom is the upper limit of the next band down, or zero for the
// lightest band.
func (m *WeightBased) WeightFrom(band *WeightBand) decimal.Decimal {
	from := decimal.Zero
	for _, b := range m.bands {
		if b.upperLimit.LessThan(band.upperLimit) && b.upperLimit.GreaterThan(from) {
			from = b.upperLimit
		}
	}
	return from
}

// GetCharge prices a weight. Weights above the top band are split into
// whole top bands plus the band for whatever is left over.
func (m *WeightBased) GetCharge(weight decimal.Decimal) decimal.Decimal {
	top := m.TopBand()
	if top == nil {
		return decimal.Zero
	}
	if weight.LessThanOrEqual(top.upperLimit) {
		return m.BandForWeight(weight).charge
	}

	quotient := weight.Div(top.upperLimit).Floor()
	remainder := weight.Sub(quotient.Mul(top.upperLimit))
	charge := quotient.Mul(top.charge)
	if remainder.IsPositive() {
		charge = charge.Add(m.BandForWeight(remainder).charge)
	}
	return charge
}

func (m *WeightBased) Calculate(b *basket.Basket) (kernel.Price, error) {
	weight, err := NewScale(WeightAttributeCode, m.defaultWeight).WeighBasket(b)
	if err != nil {
		return kernel.Price{}, err
	}
	return kernel.NewPrice(b.Currency(), m.GetCharge(weight), decimal.Zero)
}
