package checkout

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/partner"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// AddressBook reads the customer's saved addresses.
type AddressBook interface {
	Get(ctx context.Context, id kernel.UUID) (*address.UserAddress, error)
	ListForUser(ctx context.Context, userID kernel.UUID) ([]*address.UserAddress, error)
}

// Request is what every checkout step works on. User is nil for guests.
type Request struct {
	Basket  *basket.Basket
	User    *user.User
	Session *SessionData
}

func (r Request) IsAuthenticated() bool {
	return r.User != nil
}

// Flow answers questions about a checkout in progress: whether a step may
// be shown, and what the order would look like if placed now.
type Flow struct {
	strategy   partner.Strategy
	shipping   *shipping.Repository
	payment    *payment.Repository
	addresses  AddressBook
	calculator services.OrderTotalCalculator
}

func NewFlow(
	strategy partner.Strategy,
	shippingRepo *shipping.Repository,
	paymentRepo *payment.Repository,
	addresses AddressBook,
) *Flow {
	return &Flow{
		strategy:   strategy,
		shipping:   shippingRepo,
		payment:    paymentRepo,
		addresses:  addresses,
		calculator: services.NewOrderTotalCalculator(),
	}
}

func (f *Flow) Shipping() *shipping.Repository { return f.shipping }
func (f *Flow) Payment() *payment.Repository   { return f.payment }

// ShippingAddress resolves the chosen shipping address. It is nil when the
// basket needs no shipping, when nothing was chosen, or when the chosen
// address book entry is gone.
func (f *Flow) ShippingAddress(ctx context.Context, r Request) (*address.Address, error) {
	if !r.Basket.IsShippingRequired() {
		return nil, nil
	}
	if fields := r.Session.NewShippingAddressFields(); fields != nil {
		a, err := address.NewAddress(*fields)
		if err != nil {
			return nil, nil
		}
		return &a, nil
	}
	if id := r.Session.ShippingUserAddressID(); id != nil {
		return f.userAddress(ctx, r, *id)
	}
	return nil, nil
}

// ShippingMethod matches the chosen code against the methods on offer for
// the basket and address. It is nil when no method was chosen or the chosen
// one is no longer offered.
func (f *Flow) ShippingMethod(ctx context.Context, r Request, shippingAddress *address.Address) (shipping.Method, error) {
	code := r.Session.ShippingMethodCode()
	if code == "" {
		return nil, nil
	}
	m, found, err := f.shipping.FindShippingMethod(ctx, r.Basket, shippingAddress, code)
	if err != nil || !found {
		return nil, err
	}
	return m, nil
}

// ShippingCharge is nil when there is no method.
func (f *Flow) ShippingCharge(b *basket.Basket, m shipping.Method) (*kernel.Price, error) {
	if m == nil {
		return nil, nil
	}
	charge, err := m.Calculate(b)
	if err != nil {
		return nil, err
	}
	return &charge, nil
}

// OrderTotals adds a shipping charge, and optionally a payment charge, to
// the basket total. A nil shipping charge counts as zero.
func (f *Flow) OrderTotals(b *basket.Basket, shippingCharge *kernel.Price, paymentCharge *kernel.Price) (kernel.Price, error) {
	sc := kernel.ZeroPrice(b.Currency())
	if shippingCharge != nil {
		sc = *shippingCharge
	}
	return f.calculator.Calculate(b.Total(), sc, paymentCharge)
}

// OrderTotalsWithShipping prices the order with the chosen shipping method
// and no payment charge.
func (f *Flow) OrderTotalsWithShipping(ctx context.Context, r Request) (kernel.Price, error) {
	addr, err := f.ShippingAddress(ctx, r)
	if err != nil {
		return kernel.Price{}, err
	}
	m, err := f.ShippingMethod(ctx, r, addr)
	if err != nil {
		return kernel.Price{}, err
	}
	charge, err := f.ShippingCharge(r.Basket, m)
	if err != nil {
		return kernel.Price{}, err
	}
	return f.OrderTotals(r.Basket, charge, nil)
}

// PaymentMethod matches the chosen code against the methods on offer for
// orderTotal.
func (f *Flow) PaymentMethod(r Request, orderTotal kernel.Price) payment.Method {
	code := r.Session.PaymentMethod()
	if code == "" {
		return nil
	}
	m, found := f.payment.FindPaymentMethod(r.Basket, orderTotal, code)
	if !found {
		return nil
	}
	return m
}

// DefaultBillingAddress suggests an address book entry for billing. Guests
// and customers with an empty book get nil.
func (f *Flow) DefaultBillingAddress(ctx context.Context, r Request) (*address.UserAddress, error) {
	if !r.IsAuthenticated() {
		return nil, nil
	}
	book, err := f.addresses.ListForUser(ctx, r.User.ID())
	if err != nil {
		return nil, err
	}
	return address.DefaultForBilling(book), nil
}

// BillingAddress resolves the chosen billing address. Billing to the
// shipping address copies shippingAddress.
func (f *Flow) BillingAddress(ctx context.Context, r Request, shippingAddress *address.Address) (*address.Address, error) {
	if r.Session.IsBillingAddressSameAsShipping() {
		if shippingAddress == nil {
			return nil, nil
		}
		a := *shippingAddress
		return &a, nil
	}
	if fields := r.Session.NewBillingAddressFields(); fields != nil {
		a, err := address.NewAddress(*fields)
		if err != nil {
			return nil, nil
		}
		return &a, nil
	}
	if id := r.Session.BillingUserAddressID(); id != nil {
		return f.userAddress(ctx, r, *id)
	}
	return nil, nil
}

func (f *Flow) userAddress(ctx context.Context, r Request, id kernel.UUID) (*address.Address, error) {
	if !r.IsAuthenticated() {
		return nil, nil
	}
	ua, err := f.addresses.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !ua.BelongsTo(r.User.ID()) {
		return nil, nil
	}
	a := ua.Address()
	return &a, nil
}
