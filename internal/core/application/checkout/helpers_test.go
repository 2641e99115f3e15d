package checkout_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/core/application/checkout"
	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/catalogue"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/partner"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/websession"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAddressBook struct {
	mock.Mock
}

func (m *MockAddressBook) Get(ctx context.Context, id kernel.UUID) (*address.UserAddress, error) {
	args := m.Called(ctx, id)
	ua, _ := args.Get(0).(*address.UserAddress)
	return ua, args.Error(1)
}

func (m *MockAddressBook) ListForUser(ctx context.Context, userID kernel.UUID) ([]*address.UserAddress, error) {
	args := m.Called(ctx, userID)
	book, _ := args.Get(0).([]*address.UserAddress)
	return book, args.Error(1)
}

type line struct {
	title   string
	price   string
	qty     int
	stock   int
	shipped bool
}

func newBasket(t *testing.T, lines ...line) *basket.Basket {
	t.Helper()
	b, err := basket.NewBasket(kernel.NewUUID(), nil, "GBP")
	require.NoError(t, err)

	for _, l := range lines {
		p, err := catalogue.NewProduct(kernel.NewUUID(), l.title, "", l.shipped)
		require.NoError(t, err)
		price := decimal.RequireFromString(l.price)
		sr, err := partner.NewStockRecord(kernel.NewUUID(), p.ID(), "SKU-"+l.title, "GBP", price, l.stock)
		require.NoError(t, err)
		unit, err := kernel.NewPrice("GBP", price, decimal.Zero)
		require.NoError(t, err)
		_, err = b.AddProduct(kernel.NewUUID(), p, sr, unit, l.qty)
		require.NoError(t, err)
	}
	return b
}

func newUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "ada@example.com", "Ada", "Lovelace", "hash", time.Now())
	require.NoError(t, err)
	return u
}

func userAddress(t *testing.T, userID kernel.UUID, country string) *address.UserAddress {
	t.Helper()
	a, err := address.NewAddress(address.Fields{Line1: "1 High Street", Country: country})
	require.NoError(t, err)
	ua, err := address.NewUserAddress(kernel.NewUUID(), userID, a)
	require.NoError(t, err)
	return ua
}

func newFlow(t *testing.T, book checkout.AddressBook) *checkout.Flow {
	t.Helper()
	card, err := payment.NewFixedFeePayment("card", "Card", "", decimal.RequireFromString("0.50"), decimal.Zero)
	require.NoError(t, err)
	fixed, err := shipping.NewFixedPrice(decimal.RequireFromString("5"), decimal.RequireFromString("5"))
	require.NoError(t, err)

	return checkout.NewFlow(
		partner.NewStrategy(nil),
		shipping.NewRepository(nil, fixed),
		payment.NewRepository(card),
		book,
	)
}

// newWebSession starts an empty in-memory web session.
func newWebSession(t *testing.T) *websession.Session {
	t.Helper()
	s, err := websession.Load(t.Context(), websession.NewManager(nil, websession.Options{}), "")
	require.NoError(t, err)
	return s
}

func newRequest(t *testing.T, b *basket.Basket, u *user.User) checkout.Request {
	t.Helper()
	return checkout.Request{
		Basket:  b,
		User:    u,
		Session: checkout.NewSessionData(newWebSession(t)),
	}
}
