package order

import (
	"errors"
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned by Validate for orders that bypassed
// NewOrder and RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor") //nolint:staticcheck,revive // matches the other aggregates

// Details is everything checkout knows about an order at submission time.
type Details struct {
	Number     string
	BasketID   kernel.UUID
	UserID     *kernel.UUID
	GuestEmail string
	Currency   string
	Lines      []Line

	// ShippingAddress is nil for orders that need no shipping.
	ShippingAddress    *address.Address
	BillingAddress     *address.Address
	ShippingMethodCode string
	ShippingMethodName string
	ShippingCharge     kernel.Price
	PaymentMethodCode  string
	PaymentCharge      kernel.Price
	Total              kernel.Price
}

// Order is the aggregate root of a placed order.
//
// Invariants:
//   - the number is unique and never changes
//   - there is at least one line
//   - either a user or a guest email is known
//   - every price is in the order currency
type Order struct {
	id       kernel.UUID
	details  Details
	status   Status
	notes    []Note
	placedAt time.Time

	isConstructed bool
}

// NewOrder creates a Pending order.
func NewOrder(id kernel.UUID, d Details, placedAt time.Time) (*Order, error) {
	return RestoreOrder(id, d, Pending, nil, placedAt)
}

// RestoreOrder rebuilds an order from storage.
func RestoreOrder(id kernel.UUID, d Details, status Status, notes []Note, placedAt time.Time) (*Order, error) {
	o := &Order{
		status:        status,
		notes:         slices.Clone(notes),
		placedAt:      placedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		o.setDetails(d),
	); err != nil {
		return nil, err
	}
	o.id = id

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                   { return o.id }
func (o *Order) Number() string                    { return o.details.Number }
func (o *Order) BasketID() kernel.UUID             { return o.details.BasketID }
func (o *Order) UserID() *kernel.UUID              { return o.details.UserID }
func (o *Order) GuestEmail() string                { return o.details.GuestEmail }
func (o *Order) Currency() string                  { return o.details.Currency }
func (o *Order) ShippingAddress() *address.Address { return o.details.ShippingAddress }
func (o *Order) BillingAddress() *address.Address  { return o.details.BillingAddress }
func (o *Order) ShippingMethodCode() string        { return o.details.ShippingMethodCode }
func (o *Order) ShippingMethodName() string        { return o.details.ShippingMethodName }
func (o *Order) ShippingCharge() kernel.Price      { return o.details.ShippingCharge }
func (o *Order) PaymentMethodCode() string         { return o.details.PaymentMethodCode }
func (o *Order) PaymentCharge() kernel.Price       { return o.details.PaymentCharge }
func (o *Order) Total() kernel.Price               { return o.details.Total }
func (o *Order) Status() Status                    { return o.status }
func (o *Order) PlacedAt() time.Time               { return o.placedAt }
func (o *Order) Lines() []Line                     { return slices.Clone(o.details.Lines) }
func (o *Order) Notes() []Note                     { return slices.Clone(o.notes) }
func (o *Order) IsAnonymous() bool                 { return o.details.UserID == nil }
func (o *Order) IsShippingRequired() bool          { return o.details.ShippingAddress != nil }

// Email is where order confirmations go.
func (o *Order) Email(userEmail string) string {
	if o.IsAnonymous() {
		return o.details.GuestEmail
	}
	return userEmail
}

// BasketTotal is the sum of the line prices without shipping or payment.
func (o *Order) BasketTotal() kernel.Price {
	total := kernel.ZeroPrice(o.details.Currency)
	for _, l := range o.details.Lines {
		if sum, err := total.Add(l.LinePrice()); err == nil {
			total = sum
		}
	}
	return total
}

func (o *Order) NumItems() int {
	n := 0
	for _, l := range o.details.Lines {
		n += l.Quantity()
	}
	return n
}

// VisibleNotes are the notes the customer may read.
func (o *Order) VisibleNotes() []Note {
	var visible []Note
	for _, n := range o.notes {
		if n.IsVisibleOnFrontend() {
			visible = append(visible, n)
		}
	}
	return visible
}

func (o *Order) AddNote(note Note) error {
	if err := note.ID().Validate(); err != nil {
		return err
	}
	o.notes = append(o.notes, note)
	return nil
}

// SetStatus moves the order along the pipeline.
func (o *Order) SetStatus(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) Cancel() error {
	return o.SetStatus(Cancelled)
}

func (o *Order) setDetails(d Details) error {
	d.Number = strings.TrimSpace(d.Number)
	d.GuestEmail = strings.TrimSpace(d.GuestEmail)

	var numberErr, linesErr, customerErr, methodErr error
	if d.Number == "" {
		numberErr = errs.NewValueIsRequiredError("number")
	}
	if len(d.Lines) == 0 {
		linesErr = errs.NewValueIsRequiredError("lines")
	}
	switch {
	case d.UserID == nil && d.GuestEmail == "":
		customerErr = errs.NewValueIsRequiredError("guest email")
	case d.UserID == nil:
		if _, err := mail.ParseAddress(d.GuestEmail); err != nil {
			customerErr = errs.NewValueIsInvalidErrorWithCause("guest email", err)
		}
	}
	if d.ShippingMethodCode == "" {
		methodErr = errs.NewValueIsRequiredError("shipping method")
	}

	if err := errors.Join(
		numberErr,
		linesErr,
		customerErr,
		methodErr,
		d.BasketID.Validate(),
		kernel.ValidateCurrency(d.Currency),
		sameCurrency(d.Currency, "shipping charge", d.ShippingCharge),
		sameCurrency(d.Currency, "payment charge", d.PaymentCharge),
		sameCurrency(d.Currency, "total", d.Total),
	); err != nil {
		return err
	}
	for _, l := range d.Lines {
		if err := sameCurrency(d.Currency, "line price", l.UnitPrice()); err != nil {
			return err
		}
	}

	d.Lines = slices.Clone(d.Lines)
	o.details = d
	return nil
}

func sameCurrency(currency string, name string, p kernel.Price) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Currency() != currency {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is not in %s", p, currency))
	}
	return nil
}
