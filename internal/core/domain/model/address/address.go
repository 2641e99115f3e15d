// Package address holds postal addresses used for shipping and billing and
// the address book entries customers keep between orders.
package address

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"golang.org/x/text/language"
)

var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Fields is the plain form of an address. It is what forms submit, what the
// checkout session stores and what repositories persist.
type Fields struct {
	Title       string   `json:"title,omitempty"`
	FirstName   string   `json:"first_name,omitempty"`
	LastName    string   `json:"last_name,omitempty"`
	Line1       string   `json:"line1"`
	Line2       string   `json:"line2,omitempty"`
	Line3       string   `json:"line3,omitempty"`
	Line4       string   `json:"line4,omitempty"`
	State       string   `json:"state,omitempty"`
	Postcode    string   `json:"postcode,omitempty"`
	Country     string   `json:"country"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// Address is a validated postal address.
type Address struct {
	fields   Fields
	location *kernel.GeoPoint

	isConstructed bool
}

func NewAddress(f Fields) (Address, error) {
	f = trim(f)
	a := Address{isConstructed: true}

	if err := errors.Join(
		requireField("line1", f.Line1),
		a.setCountry(&f),
		a.setLocation(f.Latitude, f.Longitude),
	); err != nil {
		return Address{}, err
	}
	a.fields = f

	return a, nil
}

func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// Fields returns the plain form of the address.
func (a Address) Fields() Fields {
	return a.fields
}

func (a Address) Country() string {
	return a.fields.Country
}

func (a Address) Postcode() string {
	return a.fields.Postcode
}

func (a Address) PhoneNumber() string {
	return a.fields.PhoneNumber
}

// Location is nil unless the address was geocoded.
func (a Address) Location() *kernel.GeoPoint {
	return a.location
}

// Name joins title, first and last name.
func (a Address) Name() string {
	return join(" ", a.fields.Title, a.fields.FirstName, a.fields.LastName)
}

// Summary is a one-line rendering used in order confirmations and logs.
func (a Address) Summary() string {
	return join(", ", a.Name(), a.fields.Line1, a.fields.Line2, a.fields.Line3, a.fields.Line4,
		a.fields.State, a.fields.Postcode, a.fields.Country)
}

// IsEqual compares the postal content, ignoring notes and phone numbers.
func (a Address) IsEqual(other Address) bool {
	return strings.EqualFold(a.Summary(), other.Summary())
}

func (a *Address) setCountry(f *Fields) error {
	if f.Country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	code := strings.ToUpper(f.Country)
	region, err := language.ParseRegion(code)
	if err != nil || len(code) != 2 || !region.IsCountry() {
		return errs.NewValueIsInvalidErrorWithCause("country", fmt.Errorf("%q is not an ISO 3166 country code", f.Country))
	}
	f.Country = code
	return nil
}

func (a *Address) setLocation(lat *float64, lng *float64) error {
	if lat == nil && lng == nil {
		return nil
	}
	if lat == nil || lng == nil {
		return errs.NewValueIsInvalidErrorWithCause("location", errors.New("latitude and longitude must be given together"))
	}
	p, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return err
	}
	a.location = &p
	return nil
}

func requireField(name string, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func trim(f Fields) Fields {
	for _, s := range []*string{
		&f.Title, &f.FirstName, &f.LastName, &f.Line1, &f.Line2, &f.Line3, &f.Line4,
		&f.State, &f.Postcode, &f.Country, &f.PhoneNumber, &f.Notes,
	} {
		*s = strings.TrimSpace(*s)
	}
	f.Postcode = strings.ToUpper(f.Postcode)
	return f
}

func join(sep string, parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, sep)
}
