package checkout

import "context"

const (
	BasketURL          = "/basket/"
	IndexURL           = "/checkout/"
	ShippingAddressURL = "/checkout/shipping-address/"
	ShippingMethodURL  = "/checkout/shipping-method/"
	PaymentMethodURL   = "/checkout/payment-method/"
	PaymentDetailsURL  = "/checkout/payment-details/"
	PreviewURL         = "/checkout/preview/"
	ThankYouURL        = "/checkout/thank-you/"
)

// Step is one page of the checkout.
type Step struct {
	Name           string
	URL            string
	PreConditions  []Condition
	SkipConditions []Condition
}

var (
	IndexStep = Step{
		Name:          "index",
		URL:           IndexURL,
		PreConditions: []Condition{CheckBasketIsNotEmpty, CheckBasketIsValid},
	}
	ShippingAddressStep = Step{
		Name:           "shipping-address",
		URL:            ShippingAddressURL,
		PreConditions:  []Condition{CheckBasketIsNotEmpty, CheckBasketIsValid, CheckUserEmailIsCaptured},
		SkipConditions: []Condition{SkipUnlessBasketRequiresShipping},
	}
	ShippingMethodStep = Step{
		Name:          "shipping-method",
		URL:           ShippingMethodURL,
		PreConditions: []Condition{CheckBasketIsNotEmpty, CheckBasketIsValid, CheckUserEmailIsCaptured},
	}
	PaymentMethodStep = Step{
		Name: "payment-method",
		URL:  PaymentMethodURL,
		PreConditions: []Condition{
			CheckBasketIsNotEmpty, CheckBasketIsValid, CheckUserEmailIsCaptured, CheckShippingDataIsCaptured,
		},
		SkipConditions: []Condition{SkipUnlessPaymentIsRequired},
	}
	PaymentDetailsStep = Step{
		Name: "payment-details",
		URL:  PaymentDetailsURL,
		PreConditions: []Condition{
			CheckBasketIsNotEmpty, CheckBasketIsValid, CheckUserEmailIsCaptured, CheckShippingDataIsCaptured,
			CheckPaymentMethodIsCaptured,
		},
		SkipConditions: []Condition{SkipUnlessPaymentIsRequired},
	}
	PreviewStep = Step{
		Name: "preview",
		URL:  PreviewURL,
		PreConditions: []Condition{
			CheckBasketIsNotEmpty, CheckBasketIsValid, CheckUserEmailIsCaptured, CheckShippingDataIsCaptured,
		},
	}
	PlaceOrderStep = Step{
		Name: "place-order",
		URL:  PreviewURL,
		PreConditions: []Condition{
			CheckBasketIsNotEmpty, CheckBasketIsValid, CheckUserEmailIsCaptured, CheckShippingDataIsCaptured,
			CheckPaymentMethodIsCaptured, checkPaymentDataIfRequired,
		},
	}
)

// Dispatch runs the step's pre-conditions in order, then its
// skip-conditions, and returns the first redirect.
func (f *Flow) Dispatch(ctx context.Context, step Step, r Request) error {
	for _, check := range step.PreConditions {
		if err := check(ctx, f, r); err != nil {
			return err
		}
	}
	for _, check := range step.SkipConditions {
		if err := check(ctx, f, r); err != nil {
			return err
		}
	}
	return nil
}
