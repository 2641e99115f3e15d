package basket_test

import (
	"testing"

	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/catalogue"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/partner"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	product *catalogue.Product
	record  *partner.StockRecord
	price   kernel.Price
}

func newFixture(t *testing.T, shipping bool, price string) fixture {
	t.Helper()
	p, err := catalogue.NewProduct(kernel.NewUUID(), "Widget", "", shipping)
	require.NoError(t, err)
	sr, err := partner.NewStockRecord(kernel.NewUUID(), p.ID(), "W-1", "GBP", decimal.RequireFromString(price), 10)
	require.NoError(t, err)
	unit, err := kernel.NewPrice("GBP", decimal.RequireFromString(price), decimal.Zero)
	require.NoError(t, err)
	return fixture{product: p, record: sr, price: unit}
}

func newBasket(t *testing.T) *basket.Basket {
	t.Helper()
	b, err := basket.NewBasket(kernel.NewUUID(), nil, "GBP")
	require.NoError(t, err)
	return b
}

func TestNewBasket(t *testing.T) {
	b := newBasket(t)

	assert.Equal(t, basket.Open, b.Status())
	assert.True(t, b.IsEmpty())
	assert.Nil(t, b.OwnerID())
	assert.True(t, b.Total().IsZero())

	_, err := basket.NewBasket(kernel.UUID{}, nil, "GBP")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestBasket_AddProduct(t *testing.T) {
	t.Run("merges lines for the same stock record", func(t *testing.T) {
		b := newBasket(t)
		f := newFixture(t, true, "5.00")

		first, err := b.AddProduct(kernel.NewUUID(), f.product, f.record, f.price, 2)
		require.NoError(t, err)
		second, err := b.AddProduct(kernel.NewUUID(), f.product, f.record, f.price, 3)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, b.NumLines())
		assert.Equal(t, 5, b.NumItems())
		assert.True(t, decimal.RequireFromString("25").Equal(b.Total().InclTax()))
	})

	t.Run("rejects non positive quantity", func(t *testing.T) {
		f := newFixture(t, true, "5.00")
		_, err := newBasket(t).AddProduct(kernel.NewUUID(), f.product, f.record, f.price, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects foreign currency", func(t *testing.T) {
		f := newFixture(t, true, "5.00")
		eur, err := kernel.NewPrice("EUR", decimal.NewFromInt(5), decimal.Zero)
		require.NoError(t, err)

		_, err = newBasket(t).AddProduct(kernel.NewUUID(), f.product, f.record, eur, 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("frozen basket is read only", func(t *testing.T) {
		b := newBasket(t)
		f := newFixture(t, true, "5.00")
		require.NoError(t, b.Freeze())

		_, err := b.AddProduct(kernel.NewUUID(), f.product, f.record, f.price, 1)
		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	})
}

func TestBasket_SetLineQuantity(t *testing.T) {
	b := newBasket(t)
	f := newFixture(t, true, "1.50")
	line, err := b.AddProduct(kernel.NewUUID(), f.product, f.record, f.price, 1)
	require.NoError(t, err)

	require.NoError(t, b.SetLineQuantity(line.ID(), 4))
	assert.Equal(t, 4, b.NumItems())

	require.NoError(t, b.SetLineQuantity(line.ID(), 0))
	assert.True(t, b.IsEmpty())

	require.ErrorIs(t, b.RemoveLine(line.ID()), errs.ErrObjectNotFound)
}

func TestBasket_IsShippingRequired(t *testing.T) {
	b := newBasket(t)
	digital := newFixture(t, false, "3.00")
	physical := newFixture(t, true, "3.00")

	_, err := b.AddProduct(kernel.NewUUID(), digital.product, digital.record, digital.price, 1)
	require.NoError(t, err)
	assert.False(t, b.IsShippingRequired())

	_, err = b.AddProduct(kernel.NewUUID(), physical.product, physical.record, physical.price, 1)
	require.NoError(t, err)
	assert.True(t, b.IsShippingRequired())
}

func TestBasket_StatusTransitions(t *testing.T) {
	b := newBasket(t)

	require.NoError(t, b.Freeze())
	require.ErrorIs(t, b.Freeze(), errs.ErrStateIsInvalid)
	require.NoError(t, b.Thaw())
	require.NoError(t, b.Freeze())
	require.NoError(t, b.Submit())
	assert.Equal(t, basket.Submitted, b.Status())
	assert.NotNil(t, b.SubmittedAt())
	require.ErrorIs(t, b.Thaw(), errs.ErrStateIsInvalid)
	require.ErrorIs(t, b.Submit(), errs.ErrStateIsInvalid)
}

func TestBasket_AssignOwner(t *testing.T) {
	b := newBasket(t)
	owner := kernel.NewUUID()

	require.NoError(t, b.AssignOwner(owner))
	require.NoError(t, b.AssignOwner(owner))
	require.ErrorIs(t, b.AssignOwner(kernel.NewUUID()), errs.ErrStateIsInvalid)
}

func TestParseStatus(t *testing.T) {
	s, err := basket.ParseStatus("Frozen")
	require.NoError(t, err)
	assert.Equal(t, basket.Frozen, s)

	_, err = basket.ParseStatus("Unknown")
	require.Error(t, err)
}
