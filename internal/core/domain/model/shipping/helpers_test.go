package shipping_test

import (
	"testing"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/catalogue"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/partner"
	"storefront/internal/core/domain/model/shipping"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type item struct {
	price    string
	quantity int
	shipped  bool
	weight   string
}

func newBasket(t *testing.T, items ...item) *basket.Basket {
	t.Helper()
	b, err := basket.NewBasket(kernel.NewUUID(), nil, "GBP")
	require.NoError(t, err)

	for _, it := range items {
		p, err := catalogue.NewProduct(kernel.NewUUID(), "Product", "", it.shipped)
		require.NoError(t, err)
		if it.weight != "" {
			require.NoError(t, p.SetAttribute(shipping.WeightAttributeCode, it.weight))
		}
		sr, err := partner.NewStockRecord(kernel.NewUUID(), p.ID(), "SKU", "GBP", dec(it.price), 100)
		require.NoError(t, err)
		unit, err := kernel.NewPrice("GBP", dec(it.price), decimal.Zero)
		require.NoError(t, err)
		_, err = b.AddProduct(kernel.NewUUID(), p, sr, unit, it.quantity)
		require.NoError(t, err)
	}
	return b
}

func newConfiguration(t *testing.T, name string, countries ...string) shipping.Configuration {
	t.Helper()
	cfg, err := shipping.NewConfiguration(kernel.NewUUID(), name, "", countries, true)
	require.NoError(t, err)
	return cfg
}

func newFixedPrice(t *testing.T, exclTax, inclTax string) shipping.FixedPrice {
	t.Helper()
	m, err := shipping.NewFixedPrice(dec(exclTax), dec(inclTax))
	require.NoError(t, err)
	return m
}

func newAddress(t *testing.T, country string) *address.Address {
	t.Helper()
	a, err := address.NewAddress(address.Fields{Line1: "1 High Street", Country: country})
	require.NoError(t, err)
	return &a
}
