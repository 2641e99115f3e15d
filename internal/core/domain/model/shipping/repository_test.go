package shipping_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	methods []shipping.Method
	err     error
}

func (s staticSource) EnabledMethods(context.Context) ([]shipping.Method, error) {
	return s.methods, s.err
}

func TestRepository_GetShippingMethods(t *testing.T) {
	ctx := context.Background()
	abroad, err := shipping.NewOrderAndItemCharges(newConfiguration(t, "France only", "FR"), dec("3"), decimal.Zero, nil)
	require.NoError(t, err)
	repo := shipping.NewRepository(staticSource{methods: []shipping.Method{abroad}}, shipping.Free{})

	t.Run("digital baskets need no shipping", func(t *testing.T) {
		b := newBasket(t, item{price: "1", quantity: 1, shipped: false})

		methods, err := repo.GetShippingMethods(ctx, b, nil)

		require.NoError(t, err)
		require.Len(t, methods, 1)
		assert.Equal(t, shipping.NoShippingRequiredCode, methods[0].Code())
	})

	t.Run("country restriction applies once the address is known", func(t *testing.T) {
		b := newBasket(t, item{price: "1", quantity: 1, shipped: true})

		all, err := repo.GetShippingMethods(ctx, b, nil)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "france-only", all[0].Code())

		uk, err := repo.GetShippingMethods(ctx, b, newAddress(t, "GB"))
		require.NoError(t, err)
		require.Len(t, uk, 1)
		assert.Equal(t, shipping.FreeCode, uk[0].Code())

		_, found, err := repo.FindShippingMethod(ctx, b, newAddress(t, "FR"), "france-only")
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("builtins are withheld while a configured method applies", func(t *testing.T) {
		royalMail, err := shipping.NewOrderAndItemCharges(newConfiguration(t, "Royal Mail"), dec("5"), dec("1"), nil)
		require.NoError(t, err)
		repo := shipping.NewRepository(staticSource{methods: []shipping.Method{royalMail}}, shipping.Free{})
		b := newBasket(t, item{price: "10", quantity: 2, shipped: true})
		gb := newAddress(t, "GB")

		methods, err := repo.GetShippingMethods(ctx, b, gb)
		require.NoError(t, err)
		require.Len(t, methods, 1)
		assert.Equal(t, "royal-mail", methods[0].Code())

		_, found, err := repo.FindShippingMethod(ctx, b, gb, shipping.FreeCode)
		require.NoError(t, err)
		assert.False(t, found)

		def, err := repo.GetDefaultShippingMethod(ctx, b, gb)
		require.NoError(t, err)
		assert.Equal(t, "royal-mail", def.Code())
		charge, err := def.Calculate(b)
		require.NoError(t, err)
		assert.True(t, dec("7").Equal(charge.InclTax()))
	})

	t.Run("source errors are returned", func(t *testing.T) {
		boom := errors.New("boom")
		b := newBasket(t, item{price: "1", quantity: 1, shipped: true})

		_, err := shipping.NewRepository(staticSource{err: boom}).GetShippingMethods(ctx, b, nil)

		require.ErrorIs(t, err, boom)
	})
}

func TestRepository_GetDefaultShippingMethod(t *testing.T) {
	ctx := context.Background()
	b := newBasket(t, item{price: "10", quantity: 1, shipped: true})

	t.Run("cheapest wins", func(t *testing.T) {
		repo := shipping.NewRepository(nil,
			newFixedPrice(t, "5", "6"),
			newFixedPrice(t, "2", "2.40"),
		)

		m, err := repo.GetDefaultShippingMethod(ctx, b, nil)

		require.NoError(t, err)
		charge, err := m.Calculate(b)
		require.NoError(t, err)
		assert.True(t, dec("2.40").Equal(charge.InclTax()))
	})

	t.Run("no methods", func(t *testing.T) {
		_, err := shipping.NewRepository(nil).GetDefaultShippingMethod(ctx, b, nil)

		require.ErrorIs(t, err, shipping.ErrNoShippingMethods)
	})
}

func TestNewFixedPrice(t *testing.T) {
	_, err := shipping.NewFixedPrice(dec("5"), dec("4"))
	require.Error(t, err)
	var outOfRange *errs.ValueIsOutOfRangeError
	assert.ErrorAs(t, err, &outOfRange)

	_, err = shipping.NewFixedPrice(dec("-1"), dec("0"))
	require.Error(t, err)

	m, err := shipping.NewFixedPrice(dec("5"), dec("5"))
	require.NoError(t, err)
	b := newBasket(t, item{price: "1", quantity: 1, shipped: true})
	charge, err := m.Calculate(b)
	require.NoError(t, err)
	assert.True(t, charge.Tax().IsZero())
}

func TestCollection_DistanceKm(t *testing.T) {
	store, err := kernel.NewGeoPoint(51.5074, -0.1278)
	require.NoError(t, err)
	m := shipping.NewCollection("", store)
	lat, lng := 51.4545, -2.5879

	_, ok := shipping.DistanceKm(m, *newAddress(t, "GB"))
	assert.False(t, ok)

	withLocation := *newAddress(t, "GB")
	f := withLocation.Fields()
	f.Latitude, f.Longitude = &lat, &lng
	bristol, err := addressFromFields(f)
	require.NoError(t, err)

	km, ok := shipping.DistanceKm(m, bristol)
	require.True(t, ok)
	assert.InDelta(t, 170, km, 2)
	assert.Equal(t, "110", shipping.Miles(km))
	assert.Equal(t, "Collect from store", m.Name())
}
