// Package catalogue holds the products a shop sells.
package catalogue

import (
	"errors"
	"maps"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

const (
	TitleMaxLength = 255
	UPCMaxLength   = 64
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is a sellable item. Prices and stock live on partner stock records,
// the product only carries descriptive data plus attributes such as weight.
type Product struct {
	id                 kernel.UUID
	title              string
	upc                string
	description        string
	isShippingRequired bool
	isEnabled          bool
	attributes         map[string]string
	createdAt          time.Time

	isConstructed bool
}

func NewProduct(id kernel.UUID, title string, upc string, isShippingRequired bool) (*Product, error) {
	p := &Product{
		isShippingRequired: isShippingRequired,
		isEnabled:          true,
		attributes:         make(map[string]string),
		createdAt:          time.Now().UTC(),
		isConstructed:      true,
	}

	if err := errors.Join(p.setID(id), p.setTitle(title), p.setUPC(upc)); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product from storage.
func RestoreProduct(
	id kernel.UUID,
	title string,
	upc string,
	description string,
	isShippingRequired bool,
	isEnabled bool,
	attributes map[string]string,
	createdAt time.Time,
) (*Product, error) {
	p, err := NewProduct(id, title, upc, isShippingRequired)
	if err != nil {
		return nil, err
	}

	p.description = description
	p.isEnabled = isEnabled
	p.createdAt = createdAt
	for code, value := range attributes {
		if err = p.SetAttribute(code, value); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Title() string {
	return p.title
}

func (p *Product) UPC() string {
	return p.upc
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) IsShippingRequired() bool {
	return p.isShippingRequired
}

func (p *Product) IsEnabled() bool {
	return p.isEnabled
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) Enable() {
	p.isEnabled = true
}

func (p *Product) Disable() {
	p.isEnabled = false
}

func (p *Product) SetDescription(description string) {
	p.description = strings.TrimSpace(description)
}

// Attribute returns the text value stored under code.
func (p *Product) Attribute(code string) (string, bool) {
	v, ok := p.attributes[code]
	return v, ok
}

// Attributes returns a copy of all attribute values.
func (p *Product) Attributes() map[string]string {
	return maps.Clone(p.attributes)
}

// SetAttribute stores value under code. An empty value removes the attribute.
func (p *Product) SetAttribute(code string, value string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("attribute code")
	}
	if value == "" {
		delete(p.attributes, code)
		return nil
	}
	p.attributes[code] = value
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if len(title) > TitleMaxLength {
		return errs.NewValueIsOutOfRangeError("title length", len(title), 1, TitleMaxLength)
	}
	p.title = title
	return nil
}

func (p *Product) setUPC(upc string) error {
	upc = strings.TrimSpace(upc)
	if len(upc) > UPCMaxLength {
		return errs.NewValueIsOutOfRangeError("upc length", len(upc), 0, UPCMaxLength)
	}
	p.upc = upc
	return nil
}
