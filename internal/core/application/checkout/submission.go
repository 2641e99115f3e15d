package checkout

import (
	"context"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/core/domain/model/user"
)

// Submission is everything needed to place the order.
type Submission struct {
	User            *user.User
	Basket          *basket.Basket
	ShippingAddress *address.Address
	ShippingMethod  shipping.Method
	ShippingCharge  kernel.Price
	BillingAddress  *address.Address
	OrderTotal      kernel.Price
	PaymentMethod   payment.Method
	PaymentCharge   *kernel.Price
	// GuestEmail is empty for signed-in customers.
	GuestEmail    string
	PaymentKwargs map[string]any
}

// BuildSubmission prices the order as it stands. It assumes the place-order
// step has been dispatched.
func (f *Flow) BuildSubmission(ctx context.Context, r Request) (Submission, error) {
	shippingAddress, err := f.ShippingAddress(ctx, r)
	if err != nil {
		return Submission{}, err
	}
	method, err := f.ShippingMethod(ctx, r, shippingAddress)
	if err != nil {
		return Submission{}, err
	}
	billingAddress, err := f.BillingAddress(ctx, r, shippingAddress)
	if err != nil {
		return Submission{}, err
	}

	s := Submission{
		User:            r.User,
		Basket:          r.Basket,
		ShippingAddress: shippingAddress,
		ShippingMethod:  method,
		ShippingCharge:  kernel.ZeroPrice(r.Basket.Currency()),
		BillingAddress:  billingAddress,
		PaymentKwargs:   map[string]any{},
	}
	if billingAddress != nil {
		s.PaymentKwargs["billing_address"] = billingAddress
	}
	if !r.IsAuthenticated() {
		s.GuestEmail = r.Session.GuestEmail()
	}

	charge, err := f.ShippingCharge(r.Basket, method)
	if err != nil {
		return Submission{}, err
	}
	if charge != nil {
		s.ShippingCharge = *charge
	}

	totalWithShipping, err := f.OrderTotals(r.Basket, charge, nil)
	if err != nil {
		return Submission{}, err
	}
	s.OrderTotal = totalWithShipping

	if pm := f.PaymentMethod(r, totalWithShipping); pm != nil {
		pc, err := payment.Charge(pm, r.Basket, totalWithShipping)
		if err != nil {
			return Submission{}, err
		}
		s.PaymentMethod = pm
		s.PaymentCharge = &pc
		if s.OrderTotal, err = f.OrderTotals(r.Basket, charge, &pc); err != nil {
			return Submission{}, err
		}
	}

	return s, nil
}
