package shipping_test

import (
	"testing"

	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderAndItemCharges_Calculate(t *testing.T) {
	threshold := dec("50.00")
	m, err := shipping.NewOrderAndItemCharges(newConfiguration(t, "Standard"), dec("5.00"), dec("1.50"), &threshold)
	require.NoError(t, err)

	t.Run("charges per order and per shipped item", func(t *testing.T) {
		b := newBasket(t,
			item{price: "10.00", quantity: 2, shipped: true},
			item{price: "5.00", quantity: 4, shipped: false},
		)

		charge, err := m.Calculate(b)

		require.NoError(t, err)
		assert.True(t, dec("8.00").Equal(charge.InclTax()))
		discount, err := m.Discount(b)
		require.NoError(t, err)
		assert.True(t, discount.IsZero())
	})

	t.Run("free once the threshold is reached", func(t *testing.T) {
		b := newBasket(t, item{price: "25.00", quantity: 2, shipped: true})

		charge, err := m.Calculate(b)
		require.NoError(t, err)
		assert.True(t, charge.IsZero())

		full, err := m.CalculateExclDiscount(b)
		require.NoError(t, err)
		assert.True(t, dec("8.00").Equal(full.InclTax()))

		discount, err := shipping.ChargeDiscount(m, b)
		require.NoError(t, err)
		assert.True(t, full.IsEqual(discount))
	})
}

func TestNewOrderAndItemCharges_Validation(t *testing.T) {
	_, err := shipping.NewOrderAndItemCharges(newConfiguration(t, "Bad"), dec("-1"), decimal.Zero, nil)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestConfiguration(t *testing.T) {
	cfg := newConfiguration(t, "Royal Mail – 1st Class", "gb", "FR", "GB")

	assert.Equal(t, "royal-mail-1st-class", cfg.Code())
	assert.Equal(t, []string{"FR", "GB"}, cfg.Countries())
	assert.True(t, cfg.IsApplicable(nil, nil))
	assert.True(t, cfg.IsApplicable(nil, newAddress(t, "GB")))
	assert.False(t, cfg.IsApplicable(nil, newAddress(t, "US")))

	require.ErrorIs(t, cfg.SetCountries([]string{"XX1"}), errs.ErrValueIsInvalid)
	require.ErrorIs(t, cfg.Rename(" "), errs.ErrValueIsRequired)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "creme-brulee-delivery", shipping.Slugify("  Crème Brûlée   Delivery! "))
	assert.Equal(t, "", shipping.Slugify("!!!"))
}
