package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/checkout"
	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/catalogue"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/partner"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/websession"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newProduct(t *testing.T, title string, shipped bool) *catalogue.Product {
	t.Helper()
	p, err := catalogue.NewProduct(kernel.NewUUID(), title, "", shipped)
	require.NoError(t, err)
	return p
}

func newStockRecord(t *testing.T, p *catalogue.Product, price string, stock int) *partner.StockRecord {
	t.Helper()
	sr, err := partner.NewStockRecord(kernel.NewUUID(), p.ID(), "SKU-"+p.Title(), "GBP", dec(price), stock)
	require.NoError(t, err)
	return sr
}

func newBasketWith(t *testing.T, p *catalogue.Product, sr *partner.StockRecord, qty int) *basket.Basket {
	t.Helper()
	b, err := basket.NewBasket(kernel.NewUUID(), nil, "GBP")
	require.NoError(t, err)
	unit, err := kernel.NewPrice("GBP", sr.PriceExclTax(), decimal.Zero)
	require.NoError(t, err)
	_, err = b.AddProduct(kernel.NewUUID(), p, sr, unit, qty)
	require.NoError(t, err)
	return b
}

func newUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "ada@example.com", "Ada", "Lovelace", "hash", time.Now())
	require.NoError(t, err)
	return u
}

// newFlow offers free shipping and a fee-free payment method.
func newFlow() *checkout.Flow {
	return checkout.NewFlow(
		partner.NewStrategy(nil),
		shipping.NewRepository(nil, shipping.Free{}),
		payment.NewRepository(payment.NoFeePayment{}),
		nil,
	)
}

func newCheckoutRequest(t *testing.T, b *basket.Basket, u *user.User) checkout.Request {
	t.Helper()
	sess, err := websession.Load(t.Context(), websession.NewManager(nil, websession.Options{}), "")
	require.NoError(t, err)
	return checkout.Request{
		Basket:  b,
		User:    u,
		Session: checkout.NewSessionData(sess),
	}
}
