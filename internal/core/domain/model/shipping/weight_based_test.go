package shipping_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWeightBased(t *testing.T, bands map[string]string) *shipping.WeightBased {
	t.Helper()
	m, err := shipping.NewWeightBased(newConfiguration(t, "Weight based"), decimal.Zero)
	require.NoError(t, err)
	for upper, charge := range bands {
		band, err := shipping.NewWeightBand(kernel.NewUUID(), dec(upper), dec(charge))
		require.NoError(t, err)
		require.NoError(t, m.AddBand(band))
	}
	return m
}

func TestWeightBased_GetCharge(t *testing.T) {
	bands := map[string]string{"1": "4.00", "2": "8.00", "3": "12.00"}

	tests := map[string]struct {
		bands  map[string]string
		weight string
		want   string
	}{
		"no bands":                       {bands: nil, weight: "5", want: "0"},
		"exactly on a band limit":        {bands: bands, weight: "2", want: "8.00"},
		"between two bands":              {bands: bands, weight: "1.5", want: "8.00"},
		"lighter than the first band":    {bands: bands, weight: "0.1", want: "4.00"},
		"multiple of the top band":       {bands: bands, weight: "6", want: "24.00"},
		"above the top band with change": {bands: bands, weight: "7.5", want: "32.00"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			m := newWeightBased(t, tc.bands)

			got := m.GetCharge(dec(tc.weight))

			assert.True(t, dec(tc.want).Equal(got), "want %s, got %s", tc.want, got)
		})
	}
}

func TestWeightBased_Bands(t *testing.T) {
	m := newWeightBased(t, map[string]string{"5": "10", "1": "2", "3": "6"})

	got := m.Bands()
	require.Len(t, got, 3)
	assert.True(t, dec("1").Equal(got[0].UpperLimit()))
	assert.True(t, dec("5").Equal(m.TopBand().UpperLimit()))
	assert.True(t, decimal.Zero.Equal(m.WeightFrom(got[0])))
	assert.True(t, dec("3").Equal(m.WeightFrom(got[2])))

	duplicate, err := shipping.NewWeightBand(kernel.NewUUID(), dec("3"), dec("1"))
	require.NoError(t, err)
	require.ErrorIs(t, m.AddBand(duplicate), errs.ErrValueIsInvalid)

	require.NoError(t, m.RemoveBand(got[1].ID()))
	assert.Len(t, m.Bands(), 2)
	require.ErrorIs(t, m.RemoveBand(kernel.NewUUID()), errs.ErrObjectNotFound)
}

func TestNewWeightBand(t *testing.T) {
	_, err := shipping.NewWeightBand(kernel.NewUUID(), decimal.Zero, dec("1"))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = shipping.NewWeightBand(kernel.NewUUID(), dec("1"), dec("-1"))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestWeightBased_Calculate(t *testing.T) {
	m := newWeightBased(t, map[string]string{"1": "4.00", "5": "9.00"})
	require.NoError(t, m.SetDefaultWeight(dec("0.5")))

	// 2 x 1.2kg + 1 x default 0.5kg = 2.9kg
	b := newBasket(t,
		item{price: "10", quantity: 2, shipped: true, weight: "1.2"},
		item{price: "5", quantity: 1, shipped: true},
	)

	charge, err := m.Calculate(b)

	require.NoError(t, err)
	assert.True(t, dec("9.00").Equal(charge.InclTax()))
	assert.True(t, charge.Tax().IsZero())
}

func TestScale_WeighProduct_InvalidAttribute(t *testing.T) {
	b := newBasket(t, item{price: "1", quantity: 1, shipped: true, weight: "heavy"})

	_, err := shipping.NewScale(shipping.WeightAttributeCode, decimal.Zero).WeighBasket(b)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
