package checkout

import (
	"encoding/json"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/pkg/websession"
)

// SessionKey is the web session entry the checkout choices are kept under.
const SessionKey = "checkout_data"

const (
	nsGuest      = "guest"
	nsShipping   = "shipping"
	nsBilling    = "billing"
	nsPayment    = "payment"
	nsSubmission = "submission"
)

type namespaces map[string]map[string]json.RawMessage

// SessionData is the customer's checkout choices, grouped in namespaces.
// Every change is written straight back to the web session.
type SessionData struct {
	session *websession.Session
	data    namespaces
}

// NewSessionData reads the checkout entry of s. A missing or unreadable
// entry starts the checkout afresh.
func NewSessionData(s *websession.Session) *SessionData {
	d := &SessionData{session: s, data: namespaces{}}
	if found, err := s.Get(SessionKey, &d.data); err != nil || !found || d.data == nil {
		d.data = namespaces{}
	}
	return d
}

func (d *SessionData) get(ns string, key string, dst any) bool {
	raw, ok := d.data[ns][key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// set stores value under ns/key. Values are strings, bools and address
// fields, none of which fail to marshal.
func (d *SessionData) set(ns string, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if d.data[ns] == nil {
		d.data[ns] = map[string]json.RawMessage{}
	}
	d.data[ns][key] = raw
	d.save()
}

func (d *SessionData) unset(ns string, key string) {
	if _, ok := d.data[ns][key]; ok {
		delete(d.data[ns], key)
		d.save()
	}
}

func (d *SessionData) flushNamespace(ns string) {
	d.data[ns] = map[string]json.RawMessage{}
	d.save()
}

func (d *SessionData) save() {
	_ = d.session.Set(SessionKey, d.data)
}

// Flush forgets every checkout choice.
func (d *SessionData) Flush() {
	d.data = namespaces{}
	d.save()
}

// Guest

func (d *SessionData) SetGuestEmail(email string) {
	d.set(nsGuest, "email", email)
}

func (d *SessionData) GuestEmail() string {
	var email string
	d.get(nsGuest, "email", &email)
	return email
}

// Shipping address

// ResetShippingData forgets the shipping address and method.
func (d *SessionData) ResetShippingData() {
	d.flushNamespace(nsShipping)
}

// ShipToUserAddress chooses an address book entry, dropping any earlier
// shipping choice.
func (d *SessionData) ShipToUserAddress(a *address.UserAddress) {
	d.ResetShippingData()
	d.set(nsShipping, "user_address_id", a.ID().String())
}

// ShipToNewAddress stores an address typed in during checkout. It replaces
// any address stored before.
func (d *SessionData) ShipToNewAddress(f address.Fields) {
	d.unset(nsShipping, "new_address_fields")
	d.set(nsShipping, "new_address_fields", f)
}

func (d *SessionData) NewShippingAddressFields() *address.Fields {
	return d.fields(nsShipping)
}

func (d *SessionData) ShippingUserAddressID() *kernel.UUID {
	return d.uuid(nsShipping, "user_address_id")
}

// IsShippingAddressSet reports whether either kind of shipping address was
// chosen.
func (d *SessionData) IsShippingAddressSet() bool {
	_, newAddr := d.data[nsShipping]["new_address_fields"]
	_, bookAddr := d.data[nsShipping]["user_address_id"]
	return newAddr || bookAddr
}

// Shipping method

func (d *SessionData) UseFreeShipping() {
	d.set(nsShipping, "method_code", shipping.FreeCode)
}

func (d *SessionData) UseShippingMethod(code string) {
	d.set(nsShipping, "method_code", code)
}

func (d *SessionData) ShippingMethodCode() string {
	var code string
	d.get(nsShipping, "method_code", &code)
	return code
}

func (d *SessionData) IsShippingMethodSet() bool {
	_, ok := d.data[nsShipping]["method_code"]
	return ok
}

// Billing address

// BillToNewAddress stores a billing address typed in during checkout.
func (d *SessionData) BillToNewAddress(f address.Fields) {
	d.flushNamespace(nsBilling)
	d.set(nsBilling, "new_address_fields", f)
}

func (d *SessionData) BillToUserAddress(a *address.UserAddress) {
	d.flushNamespace(nsBilling)
	d.set(nsBilling, "user_address_id", a.ID().String())
}

// BillToShippingAddress bills to whatever address the order ships to.
func (d *SessionData) BillToShippingAddress() {
	d.flushNamespace(nsBilling)
	d.set(nsBilling, "billing_address_same_as_shipping", true)
}

func (d *SessionData) IsBillingAddressSameAsShipping() bool {
	var same bool
	d.get(nsBilling, "billing_address_same_as_shipping", &same)
	return same
}

func (d *SessionData) BillingUserAddressID() *kernel.UUID {
	return d.uuid(nsBilling, "user_address_id")
}

func (d *SessionData) NewBillingAddressFields() *address.Fields {
	return d.fields(nsBilling)
}

func (d *SessionData) IsBillingAddressSet() bool {
	return d.IsBillingAddressSameAsShipping() ||
		d.NewBillingAddressFields() != nil ||
		d.BillingUserAddressID() != nil
}

// Payment

func (d *SessionData) PayBy(code string) {
	d.set(nsPayment, "method", code)
}

func (d *SessionData) PaymentMethod() string {
	var code string
	d.get(nsPayment, "method", &code)
	return code
}

// SetPaymentData keeps whatever the payment details step collected.
func (d *SessionData) SetPaymentData(data map[string]string) {
	d.set(nsPayment, "data", data)
}

func (d *SessionData) PaymentData() map[string]string {
	var data map[string]string
	if !d.get(nsPayment, "data", &data) {
		return nil
	}
	return data
}

// Submission

func (d *SessionData) SetOrderNumber(number string) {
	d.set(nsSubmission, "order_number", number)
}

func (d *SessionData) OrderNumber() string {
	var number string
	d.get(nsSubmission, "order_number", &number)
	return number
}

func (d *SessionData) SetSubmittedBasket(id kernel.UUID) {
	d.set(nsSubmission, "basket_id", id.String())
}

func (d *SessionData) SubmittedBasketID() *kernel.UUID {
	return d.uuid(nsSubmission, "basket_id")
}

func (d *SessionData) fields(ns string) *address.Fields {
	var f address.Fields
	if !d.get(ns, "new_address_fields", &f) {
		return nil
	}
	return &f
}

func (d *SessionData) uuid(ns string, key string) *kernel.UUID {
	var s string
	if !d.get(ns, key, &s) {
		return nil
	}
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return nil
	}
	return &id
}
