package services_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/catalogue"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/partner"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gbp(t *testing.T, exclTax string, tax string) kernel.Price {
	t.Helper()
	p, err := kernel.NewPrice("GBP", decimal.RequireFromString(exclTax), decimal.RequireFromString(tax))
	require.NoError(t, err)
	return p
}

func addLine(t *testing.T, b *basket.Basket, title string, stock int, qty int) *partner.StockRecord {
	t.Helper()
	p, err := catalogue.NewProduct(kernel.NewUUID(), title, "", true)
	require.NoError(t, err)
	sr, err := partner.NewStockRecord(kernel.NewUUID(), p.ID(), "SKU-"+title, "GBP", decimal.NewFromInt(10), stock)
	require.NoError(t, err)
	_, err = b.AddProduct(kernel.NewUUID(), p, sr, gbp(t, "10", "0"), qty)
	require.NoError(t, err)
	return sr
}

func placement(t *testing.T) services.Placement {
	t.Helper()
	return services.Placement{
		OrderID:            kernel.NewUUID(),
		Number:             services.OrderNumber(1),
		GuestEmail:         "guest@example.com",
		ShippingMethodCode: "free-shipping",
		ShippingMethodName: "Free shipping",
		ShippingCharge:     kernel.ZeroPrice("GBP"),
		PaymentMethodCode:  "no-fees",
		PaymentCharge:      kernel.ZeroPrice("GBP"),
		Total:              gbp(t, "30", "0"),
		PlacedAt:           time.Now(),
	}
}

func TestOrderTotalCalculator_Calculate(t *testing.T) {
	calc := services.NewOrderTotalCalculator()
	fee := gbp(t, "1.00", "0.20")

	withoutFee, err := calc.Calculate(gbp(t, "10", "2"), gbp(t, "5", "1"), nil)
	require.NoError(t, err)
	withFee, err := calc.Calculate(gbp(t, "10", "2"), gbp(t, "5", "1"), &fee)
	require.NoError(t, err)

	assert.Equal(t, "18", withoutFee.InclTax().String())
	assert.Equal(t, "19.2", withFee.InclTax().String())

	_, err = calc.Calculate(gbp(t, "10", "0"), kernel.ZeroPrice("EUR"), nil)
	require.Error(t, err)
}

func TestOrderNumber(t *testing.T) {
	assert.Equal(t, "100001", services.OrderNumber(1))
	assert.Equal(t, "142000", services.OrderNumber(42000))
}

func TestOrderPlacer_Place(t *testing.T) {
	t.Run("allocates stock and submits the basket", func(t *testing.T) {
		b, err := basket.NewBasket(kernel.NewUUID(), nil, "GBP")
		require.NoError(t, err)
		tea := addLine(t, b, "Tea", 5, 2)
		mug := addLine(t, b, "Mug", 1, 1)

		o, allocations, err := services.NewOrderPlacer().Place(b, placement(t))

		require.NoError(t, err)
		assert.Equal(t, "100001", o.Number())
		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.Lines(), 2)
		assert.Equal(t, []services.Allocation{
			{StockRecordID: tea.ID(), Quantity: 2},
			{StockRecordID: mug.ID(), Quantity: 1},
		}, allocations)
		assert.Equal(t, 3, tea.NetStockLevel())
		assert.Equal(t, 0, mug.NetStockLevel())
		assert.Equal(t, basket.Submitted, b.Status())
	})

	t.Run("releases allocations when a line is out of stock", func(t *testing.T) {
		b, err := basket.NewBasket(kernel.NewUUID(), nil, "GBP")
		require.NoError(t, err)
		tea := addLine(t, b, "Tea", 5, 2)
		addLine(t, b, "Mug", 1, 3)

		_, _, err = services.NewOrderPlacer().Place(b, placement(t))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "Mug")
		assert.Equal(t, 5, tea.NetStockLevel())
		assert.Equal(t, basket.Open, b.Status())
	})

	t.Run("refuses empty baskets", func(t *testing.T) {
		b, err := basket.NewBasket(kernel.NewUUID(), nil, "GBP")
		require.NoError(t, err)

		_, _, err = services.NewOrderPlacer().Place(b, placement(t))

		require.ErrorIs(t, err, services.ErrBasketIsEmpty)
	})
}
