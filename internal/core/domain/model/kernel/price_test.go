package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, currency string, exclTax string, tax string) kernel.Price {
	t.Helper()
	p, err := kernel.NewPrice(currency, decimal.RequireFromString(exclTax), decimal.RequireFromString(tax))
	require.NoError(t, err)
	return p
}

func TestNewPrice(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		exclTax  string
		tax      string
		wantErr  error
	}{
		{name: "valid", currency: "GBP", exclTax: "10.00", tax: "2.00"},
		{name: "zero amounts", currency: "EUR", exclTax: "0", tax: "0"},
		{name: "missing currency", currency: "", exclTax: "1", tax: "0", wantErr: errs.ErrValueIsRequired},
		{name: "unknown currency", currency: "XYZ1", exclTax: "1", tax: "0", wantErr: errs.ErrValueIsInvalid},
		{name: "negative excl tax", currency: "GBP", exclTax: "-1", tax: "0", wantErr: errs.ErrValueIsInvalid},
		{name: "negative tax", currency: "GBP", exclTax: "1", tax: "-0.01", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := kernel.NewPrice(tt.currency, decimal.RequireFromString(tt.exclTax), decimal.RequireFromString(tt.tax))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Error(t, p.Validate())
				return
			}
			require.NoError(t, err)
			require.NoError(t, p.Validate())
			assert.Equal(t, tt.currency, p.Currency())
		})
	}
}

func TestPrice_InclTax(t *testing.T) {
	p := mustPrice(t, "GBP", "10.00", "2.50")

	assert.True(t, decimal.RequireFromString("12.50").Equal(p.InclTax()))
	assert.Equal(t, "12.50 GBP", p.String())
	assert.False(t, p.IsZero())
	assert.True(t, kernel.ZeroPrice("GBP").IsZero())
}

func TestPrice_Add(t *testing.T) {
	t.Run("same currency", func(t *testing.T) {
		sum, err := mustPrice(t, "GBP", "10", "2").Add(mustPrice(t, "GBP", "5", "1"))

		require.NoError(t, err)
		assert.True(t, sum.IsEqual(mustPrice(t, "GBP", "15", "3")))
	})

	t.Run("currency mismatch", func(t *testing.T) {
		_, err := mustPrice(t, "GBP", "10", "2").Add(mustPrice(t, "EUR", "5", "1"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value operand", func(t *testing.T) {
		_, err := mustPrice(t, "GBP", "10", "2").Add(kernel.Price{})
		require.ErrorIs(t, err, kernel.ErrPriceIsNotConstructed)
	})
}

func TestPrice_Sub(t *testing.T) {
	diff, err := mustPrice(t, "GBP", "10", "2").Sub(mustPrice(t, "GBP", "12", "1"))

	require.NoError(t, err)
	assert.True(t, diff.ExclTax().IsZero())
	assert.True(t, decimal.NewFromInt(1).Equal(diff.Tax()))
}

func TestPrice_Multiply(t *testing.T) {
	p := mustPrice(t, "GBP", "1.25", "0.25").Multiply(4)

	assert.True(t, p.IsEqual(mustPrice(t, "GBP", "5", "1")))
}
