package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/checkout"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (s *Server) checkoutRequest(c echo.Context) (checkout.Request, error) {
	b, err := s.currentBasket(c)
	if err != nil {
		return checkout.Request{}, err
	}
	return checkout.Request{
		Basket:  b,
		User:    currentUser(c),
		Session: checkout.NewSessionData(currentSession(c)),
	}, nil
}

// dispatch loads the checkout and runs the step's conditions. Failed
// conditions come back as errors the error handler turns into redirects.
func (s *Server) dispatch(c echo.Context, step checkout.Step) (checkout.Request, error) {
	r, err := s.checkoutRequest(c)
	if err != nil {
		return checkout.Request{}, err
	}
	if err = s.flow.Dispatch(c.Request().Context(), step, r); err != nil {
		return checkout.Request{}, err
	}
	return r, nil
}

// dispatchPaymentStep records that nothing has to be paid when a payment
// step is skipped, so the order can still be placed.
func (s *Server) dispatchPaymentStep(c echo.Context, step checkout.Step) (checkout.Request, error) {
	r, err := s.checkoutRequest(c)
	if err != nil {
		return checkout.Request{}, err
	}
	err = s.flow.Dispatch(c.Request().Context(), step, r)
	var skipped *checkout.PassedSkipConditionError
	if errors.As(err, &skipped) {
		r.Session.PayBy(payment.NoPaymentRequiredCode)
	}
	if err != nil {
		return checkout.Request{}, err
	}
	return r, nil
}

// CheckoutIndex handles GET /checkout/. Signed-in customers go straight on
// to the shipping address.
func (s *Server) CheckoutIndex(c echo.Context) error {
	r, err := s.dispatch(c, checkout.IndexStep)
	if err != nil {
		return err
	}
	if r.IsAuthenticated() {
		return redirect(c, checkout.ShippingAddressURL)
	}
	return c.JSON(http.StatusOK, servers.GuestCheckout{GuestEmail: r.Session.GuestEmail()})
}

// SubmitGuestEmail handles POST /checkout/ - checks out as a guest.
func (s *Server) SubmitGuestEmail(c echo.Context) error {
	var req servers.SubmitGuestEmailJSONRequestBody
	if err := bindBody(c, &req); err != nil {
		return err
	}
	r, err := s.dispatch(c, checkout.IndexStep)
	if err != nil {
		return err
	}
	r.Session.SetGuestEmail(req.Email)
	return redirect(c, checkout.ShippingAddressURL)
}

// GetShippingAddress handles GET /checkout/shipping-address/.
func (s *Server) GetShippingAddress(c echo.Context) error {
	r, err := s.dispatch(c, checkout.ShippingAddressStep)
	if err != nil {
		return err
	}

	resp := servers.ShippingAddressStep{
		Addresses:             []servers.UserAddress{},
		SelectedAddress:       toOptionalAddress(r.Session.NewShippingAddressFields()),
		SelectedUserAddressId: fromOptionalUUID(r.Session.ShippingUserAddressID()),
	}
	if r.IsAuthenticated() {
		book, err := s.uow.Create().UserAddressRepository().ListForUser(c.Request().Context(), r.User.ID())
		if err != nil {
			return err
		}
		for _, a := range book {
			resp.Addresses = append(resp.Addresses, newUserAddress(a))
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// SubmitShippingAddress handles POST /checkout/shipping-address/.
func (s *Server) SubmitShippingAddress(c echo.Context) error {
	var req servers.SubmitShippingAddressJSONRequestBody
	if err := bindBody(c, &req); err != nil {
		return err
	}
	r, err := s.dispatch(c, checkout.ShippingAddressStep)
	if err != nil {
		return err
	}

	switch {
	case req.UserAddressId != nil && req.Address != nil:
		return echo.NewHTTPError(http.StatusBadRequest, "Choose a saved address or enter a new one, not both")
	case req.UserAddressId != nil:
		entry, err := s.ownAddress(c, r, *req.UserAddressId)
		if err != nil {
			return err
		}
		r.Session.ShipToUserAddress(entry)
	case req.Address != nil:
		fields := fromAddress(*req.Address)
		if _, err = address.NewAddress(fields); err != nil {
			return err
		}
		r.Session.ShipToNewAddress(fields)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Please choose a shipping address")
	}
	return redirect(c, checkout.ShippingMethodURL)
}

// ownAddress loads an address book entry of the signed-in customer.
func (s *Server) ownAddress(c echo.Context, r checkout.Request, addressId openapi_types.UUID) (*address.UserAddress, error) {
	if !r.IsAuthenticated() {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Guests cannot use saved addresses")
	}
	id, err := toUUID(addressId)
	if err != nil {
		return nil, err
	}
	entry, err := s.uow.Create().UserAddressRepository().Get(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	if !entry.BelongsTo(r.User.ID()) {
		return nil, errs.NewObjectNotFoundError("address", id.String())
	}
	return entry, nil
}

// GetShippingMethods handles GET /checkout/shipping-method/. A single
// method on offer is chosen without asking.
func (s *Server) GetShippingMethods(c echo.Context) error {
	r, err := s.dispatch(c, checkout.ShippingMethodStep)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	shippingAddress, err := s.flow.ShippingAddress(ctx, r)
	if err != nil {
		return err
	}
	methods, err := s.flow.Shipping().GetShippingMethods(ctx, r.Basket, shippingAddress)
	if err != nil {
		return err
	}
	switch len(methods) {
	case 0:
		return redirect(c, checkout.ShippingAddressURL,
			"Shipping is not available for your chosen address - please choose another")
	case 1:
		r.Session.UseShippingMethod(methods[0].Code())
		return redirect(c, checkout.PaymentMethodURL)
	}

	resp := make([]servers.ShippingMethod, 0, len(methods))
	for _, m := range methods {
		option, err := newShippingMethod(m, r.Basket, shippingAddress)
		if err != nil {
			return err
		}
		resp = append(resp, option)
	}
	return c.JSON(http.StatusOK, resp)
}

func newShippingMethod(m shipping.Method, b *basket.Basket, shippingAddress *address.Address) (servers.ShippingMethod, error) {
	charge, err := shipping.Charge(m, b)
	if err != nil {
		return servers.ShippingMethod{}, err
	}
	exclDiscount, err := shipping.ChargeExclDiscount(m, b)
	if err != nil {
		return servers.ShippingMethod{}, err
	}
	discount, err := shipping.ChargeDiscount(m, b)
	if err != nil {
		return servers.ShippingMethod{}, err
	}

	resp := servers.ShippingMethod{
		Code:               m.Code(),
		Name:               m.Name(),
		Description:        m.Description(),
		IsDiscounted:       m.IsDiscounted(),
		Charge:             newPrice(charge),
		ChargeExclDiscount: newPrice(exclDiscount),
		Discount:           newPrice(discount),
	}
	if shippingAddress != nil {
		if km, ok := shipping.DistanceKm(m, *shippingAddress); ok {
			resp.Distance = shipping.Miles(km)
		}
	}
	return resp, nil
}

// SubmitShippingMethod handles POST /checkout/shipping-method/.
func (s *Server) SubmitShippingMethod(c echo.Context) error {
	var req servers.MethodChoice
	if err := bindBody(c, &req); err != nil {
		return err
	}
	r, err := s.dispatch(c, checkout.ShippingMethodStep)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	shippingAddress, err := s.flow.ShippingAddress(ctx, r)
	if err != nil {
		return err
	}
	_, found, err := s.flow.Shipping().FindShippingMethod(ctx, r.Basket, shippingAddress, req.MethodCode)
	if err != nil {
		return err
	}
	if !found {
		return redirect(c, checkout.ShippingMethodURL, "Your submitted shipping method is not permitted")
	}
	r.Session.UseShippingMethod(req.MethodCode)
	return redirect(c, checkout.PaymentMethodURL)
}

// GetPaymentMethods handles GET /checkout/payment-method/.
func (s *Server) GetPaymentMethods(c echo.Context) error {
	r, err := s.dispatchPaymentStep(c, checkout.PaymentMethodStep)
	if err != nil {
		return err
	}
	total, err := s.flow.OrderTotalsWithShipping(c.Request().Context(), r)
	if err != nil {
		return err
	}

	methods := s.flow.Payment().GetPaymentMethods(r.Basket, total)
	resp := make([]servers.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		option, err := newPaymentMethod(m, r.Basket, total)
		if err != nil {
			return err
		}
		resp = append(resp, option)
	}
	return c.JSON(http.StatusOK, resp)
}

func newPaymentMethod(m payment.Method, b *basket.Basket, total kernel.Price) (servers.PaymentMethod, error) {
	charge, err := payment.Charge(m, b, total)
	if err != nil {
		return servers.PaymentMethod{}, err
	}
	return servers.PaymentMethod{
		Code:        m.Code(),
		Name:        m.Name(),
		Description: m.Description(),
		Charge:      newPrice(charge),
	}, nil
}

// SubmitPaymentMethod handles POST /checkout/payment-method/.
func (s *Server) SubmitPaymentMethod(c echo.Context) error {
	var req servers.MethodChoice
	if err := bindBody(c, &req); err != nil {
		return err
	}
	r, err := s.dispatchPaymentStep(c, checkout.PaymentMethodStep)
	if err != nil {
		return err
	}
	total, err := s.flow.OrderTotalsWithShipping(c.Request().Context(), r)
	if err != nil {
		return err
	}

	if _, found := s.flow.Payment().FindPaymentMethod(r.Basket, total, req.MethodCode); !found {
		return redirect(c, checkout.PaymentMethodURL, "Your submitted payment method is not permitted")
	}
	r.Session.PayBy(req.MethodCode)
	return redirect(c, checkout.PaymentDetailsURL)
}

// GetPaymentDetails handles GET /checkout/payment-details/.
func (s *Server) GetPaymentDetails(c echo.Context) error {
	r, err := s.dispatchPaymentStep(c, checkout.PaymentDetailsStep)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	total, err := s.flow.OrderTotalsWithShipping(ctx, r)
	if err != nil {
		return err
	}
	chosen := s.flow.PaymentMethod(r, total)
	if chosen == nil {
		return redirect(c, checkout.PaymentMethodURL, "Please choose a payment method")
	}
	method, err := newPaymentMethod(chosen, r.Basket, total)
	if err != nil {
		return err
	}
	resp := servers.PaymentDetailsStep{PaymentMethod: method}

	defaultBilling, err := s.flow.DefaultBillingAddress(ctx, r)
	if err != nil {
		return err
	}
	if defaultBilling != nil {
		entry := newUserAddress(defaultBilling)
		resp.DefaultBillingAddress = &entry
	}
	return c.JSON(http.StatusOK, resp)
}

// SubmitPaymentDetails handles POST /checkout/payment-details/. Without a
// billing choice the default billing address is used, then the shipping
// address.
func (s *Server) SubmitPaymentDetails(c echo.Context) error {
	var req servers.SubmitPaymentDetailsJSONRequestBody
	if err := bindBody(c, &req); err != nil {
		return err
	}
	r, err := s.dispatchPaymentStep(c, checkout.PaymentDetailsStep)
	if err != nil {
		return err
	}

	var billing servers.BillingChoice
	if req.Billing != nil {
		billing = *req.Billing
	}
	switch {
	case billing.SameAsShipping:
		r.Session.BillToShippingAddress()
	case billing.UserAddressId != nil:
		entry, err := s.ownAddress(c, r, *billing.UserAddressId)
		if err != nil {
			return err
		}
		r.Session.BillToUserAddress(entry)
	case billing.Address != nil:
		fields := fromAddress(*billing.Address)
		if _, err = address.NewAddress(fields); err != nil {
			return err
		}
		r.Session.BillToNewAddress(fields)
	default:
		defaultBilling, err := s.flow.DefaultBillingAddress(c.Request().Context(), r)
		if err != nil {
			return err
		}
		if defaultBilling != nil {
			r.Session.BillToUserAddress(defaultBilling)
		} else {
			r.Session.BillToShippingAddress()
		}
	}

	r.Session.SetPaymentData(req.Data)
	return redirect(c, checkout.PreviewURL)
}

// Preview handles GET /checkout/preview/ - prices the order as it would be
// placed.
func (s *Server) Preview(c echo.Context) error {
	r, err := s.dispatch(c, checkout.PreviewStep)
	if err != nil {
		return err
	}
	sub, err := s.flow.BuildSubmission(c.Request().Context(), r)
	if err != nil {
		return err
	}

	resp := servers.Preview{
		Basket:          newBasket(r.Basket),
		GuestEmail:      sub.GuestEmail,
		ShippingAddress: toOptionalAddress(addressFields(sub.ShippingAddress)),
		BillingAddress:  toOptionalAddress(addressFields(sub.BillingAddress)),
		ShippingCharge:  newPrice(sub.ShippingCharge),
		PaymentCharge:   newOptionalPrice(sub.PaymentCharge),
		OrderTotal:      newPrice(sub.OrderTotal),
	}
	if sub.ShippingMethod != nil {
		resp.ShippingMethodCode = sub.ShippingMethod.Code()
		resp.ShippingMethodName = sub.ShippingMethod.Name()
	}
	if sub.PaymentMethod != nil {
		resp.PaymentMethodCode = sub.PaymentMethod.Code()
	}
	return c.JSON(http.StatusOK, resp)
}

// PlaceOrder handles POST /checkout/preview/ - places the order and points
// the client at the thank-you page.
func (s *Server) PlaceOrder(c echo.Context) error {
	r, err := s.checkoutRequest(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), r)
	if err != nil {
		return err
	}
	o, err := s.cmd.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.metrics.ordersPlaced.WithLabelValues(o.Currency()).Inc()
	currentSession(c).Delete(sessionBasketKey)

	c.Response().Header().Set(echo.HeaderLocation, checkout.ThankYouURL)
	return c.JSON(http.StatusCreated, newOrder(o, false))
}

// ThankYou handles GET /checkout/thank-you/ - shows the order just placed
// in this session.
func (s *Server) ThankYou(c echo.Context) error {
	number := checkout.NewSessionData(currentSession(c)).OrderNumber()
	if number == "" {
		return errs.NewObjectNotFoundError("order", "in session")
	}
	o, err := s.uow.Create().OrderRepository().GetByNumber(c.Request().Context(), number)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newOrder(o, false))
}
