package checkout

import (
	"context"
	"fmt"
)

// Condition checks one thing about a checkout in progress. It returns a
// *FailedPreConditionError or *PassedSkipConditionError to redirect, any
// other error when the check itself could not run, and nil otherwise.
type Condition func(ctx context.Context, f *Flow, r Request) error

func CheckBasketIsNotEmpty(_ context.Context, _ *Flow, r Request) error {
	if r.Basket.IsEmpty() {
		return &FailedPreConditionError{
			URL:      BasketURL,
			Messages: []string{"You need to add some items to your basket to checkout"},
		}
	}
	return nil
}

// CheckBasketIsValid rejects baskets holding lines that can no longer be
// bought in the quantity asked for.
func CheckBasketIsValid(_ context.Context, f *Flow, r Request) error {
	var messages []string
	for _, l := range r.Basket.Lines() {
		info := f.strategy.FetchForStockRecord(l.Product(), l.StockRecord())
		if ok, reason := info.Availability.IsPurchasePermitted(l.Quantity()); !ok {
			messages = append(messages, fmt.Sprintf(
				"'%s' is no longer available to buy (%s). Please adjust your basket to continue",
				l.Product().Title(), reason))
		}
	}
	if len(messages) > 0 {
		return &FailedPreConditionError{URL: BasketURL, Messages: messages}
	}
	return nil
}

func CheckUserEmailIsCaptured(_ context.Context, _ *Flow, r Request) error {
	if !r.IsAuthenticated() && r.Session.GuestEmail() == "" {
		return &FailedPreConditionError{
			URL:      IndexURL,
			Messages: []string{"Please either sign in or enter your email address"},
		}
	}
	return nil
}

func CheckShippingDataIsCaptured(ctx context.Context, f *Flow, r Request) error {
	if !r.Basket.IsShippingRequired() {
		// Even without shipping a method code has to be stored.
		if !r.Session.IsShippingMethodSet() {
			return &FailedPreConditionError{URL: ShippingMethodURL}
		}
		return nil
	}

	if err := checkShippingAddressIsCaptured(ctx, f, r); err != nil {
		return err
	}
	return checkShippingMethodIsCaptured(ctx, f, r)
}

func checkShippingAddressIsCaptured(ctx context.Context, f *Flow, r Request) error {
	if !r.Session.IsShippingAddressSet() {
		return &FailedPreConditionError{
			URL:      ShippingAddressURL,
			Messages: []string{"Please choose a shipping address"},
		}
	}
	addr, err := f.ShippingAddress(ctx, r)
	if err != nil {
		return err
	}
	if addr == nil {
		return &FailedPreConditionError{
			URL:      ShippingAddressURL,
			Messages: []string{"Your previously chosen shipping address is no longer valid.  Please choose another one"},
		}
	}
	return nil
}

func checkShippingMethodIsCaptured(ctx context.Context, f *Flow, r Request) error {
	if !r.Session.IsShippingMethodSet() {
		return &FailedPreConditionError{
			URL:      ShippingMethodURL,
			Messages: []string{"Please choose a shipping method"},
		}
	}
	addr, err := f.ShippingAddress(ctx, r)
	if err != nil {
		return err
	}
	m, err := f.ShippingMethod(ctx, r, addr)
	if err != nil {
		return err
	}
	if m == nil {
		return &FailedPreConditionError{
			URL:      ShippingMethodURL,
			Messages: []string{"Your previously chosen shipping method is no longer valid.  Please choose another one"},
		}
	}
	return nil
}

func CheckPaymentMethodIsCaptured(ctx context.Context, f *Flow, r Request) error {
	if r.Session.PaymentMethod() == "" {
		return &FailedPreConditionError{
			URL:      PaymentMethodURL,
			Messages: []string{"Please choose a payment method"},
		}
	}
	total, err := f.OrderTotalsWithShipping(ctx, r)
	if err != nil {
		return err
	}
	if f.PaymentMethod(r, total) == nil {
		return &FailedPreConditionError{
			URL:      PaymentMethodURL,
			Messages: []string{"Your previously chosen payment method is no longer valid.  Please choose another one"},
		}
	}
	return nil
}

func CheckPaymentDataIsCaptured(_ context.Context, _ *Flow, r Request) error {
	if len(r.Session.PaymentData()) == 0 {
		return &FailedPreConditionError{
			URL:      PaymentDetailsURL,
			Messages: []string{"Please provide valid payment details"},
		}
	}
	return nil
}

// checkPaymentDataIfRequired asks for payment details only when there is
// something to pay.
func checkPaymentDataIfRequired(ctx context.Context, f *Flow, r Request) error {
	required, err := f.IsPaymentRequired(ctx, r)
	if err != nil || !required {
		return err
	}
	return CheckPaymentDataIsCaptured(ctx, f, r)
}

func SkipUnlessBasketRequiresShipping(_ context.Context, _ *Flow, r Request) error {
	if !r.Basket.IsShippingRequired() {
		return &PassedSkipConditionError{URL: ShippingMethodURL}
	}
	return nil
}

func SkipUnlessPaymentIsRequired(ctx context.Context, f *Flow, r Request) error {
	required, err := f.IsPaymentRequired(ctx, r)
	if err != nil {
		return err
	}
	if !required {
		return &PassedSkipConditionError{URL: PreviewURL}
	}
	return nil
}

// IsPaymentRequired reports whether the order, shipping included, costs
// anything before tax.
func (f *Flow) IsPaymentRequired(ctx context.Context, r Request) (bool, error) {
	total, err := f.OrderTotalsWithShipping(ctx, r)
	if err != nil {
		return false, err
	}
	return !total.ExclTax().IsZero(), nil
}
