package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/domain/model/shipping"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
products:
  - title: Tea towel
    upc: "0001"
    partner_sku: TT-1
    price: "4.99"
    num_in_stock: 12
    is_shipping_required: false
    attributes:
      colour: blue
shipping_methods:
  - kind: weight_based
    name: Parcel
    countries: [GB]
    default_weight: "0.5"
    bands:
      - upper_limit: "1"
        charge: "3.50"
users:
  - email: admin@example.com
    password: correct-horse
    superuser: true
`), 0o600))

	f, err := ReadSeedFile(path)
	require.NoError(t, err)

	require.Len(t, f.Products, 1)
	p := f.Products[0]
	assert.Equal(t, "Tea towel", p.Title)
	assert.True(t, decimal.RequireFromString("4.99").Equal(p.Price))
	require.NotNil(t, p.IsShippingRequired)
	assert.False(t, *p.IsShippingRequired)
	assert.Equal(t, "blue", p.Attributes["colour"])

	require.Len(t, f.ShippingMethods, 1)
	m := f.ShippingMethods[0]
	assert.Equal(t, shipping.KindWeightBased, m.Kind)
	assert.Nil(t, m.FreeShippingThreshold)
	require.Len(t, m.Bands, 1)
	assert.True(t, decimal.RequireFromString("3.50").Equal(m.Bands[0].Charge))

	require.Len(t, f.Users, 1)
	assert.True(t, f.Users[0].Superuser)
}

func TestReadSeedFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products: {title"), 0o600))

	_, err := ReadSeedFile(path)
	require.Error(t, err)
}

func TestFakeProducts(t *testing.T) {
	first := FakeProducts(5, 42)
	again := FakeProducts(5, 42)

	require.Len(t, first, 5)
	assert.Equal(t, first, again)
	for _, p := range first {
		assert.NotEmpty(t, p.Title)
		assert.Len(t, p.UPC, 12)
		assert.True(t, p.Price.IsPositive())
		assert.GreaterOrEqual(t, p.NumInStock, 0)
	}
	assert.Empty(t, FakeProducts(0, 42))
}

func TestNewPaymentMethod(t *testing.T) {
	t.Run("no fee by default", func(t *testing.T) {
		m, err := newPaymentMethod(PaymentMethodConfig{Code: "cash", Name: "Cash"})
		require.NoError(t, err)
		assert.Equal(t, payment.NoFeeCode, m.Code())
	})

	t.Run("fixed fee", func(t *testing.T) {
		m, err := newPaymentMethod(PaymentMethodConfig{Code: "cod", Name: "Cash on delivery", Kind: "fixed", Fee: "2.00", Tax: "0.40"})
		require.NoError(t, err)
		assert.Equal(t, "cod", m.Code())
	})

	t.Run("percentage", func(t *testing.T) {
		m, err := newPaymentMethod(PaymentMethodConfig{Code: "card", Name: "Card", Kind: "percentage", Percentage: "1.5"})
		require.NoError(t, err)
		assert.Equal(t, "card", m.Code())
	})

	t.Run("bad amount", func(t *testing.T) {
		_, err := newPaymentMethod(PaymentMethodConfig{Code: "cod", Name: "Cash on delivery", Kind: "fixed", Fee: "two"})
		require.Error(t, err)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := newPaymentMethod(PaymentMethodConfig{Code: "gift", Name: "Gift card", Kind: "voucher"})
		require.Error(t, err)
	})
}
