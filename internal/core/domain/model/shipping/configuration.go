package shipping

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"golang.org/x/text/language"
)

const NameMaxLength = 128

// Kind tells configured methods apart in storage.
type Kind string

const (
	KindOrderAndItemCharges Kind = "order_and_item_charges"
	KindWeightBased         Kind = "weight_based"
)

// Configuration is what every dashboard-managed method shares.
type Configuration struct {
	id          kernel.UUID
	code        string
	name        string
	description string
	countries   []string
	isEnabled   bool
}

// NewConfiguration derives the code from the name.
func NewConfiguration(
	id kernel.UUID,
	name string,
	description string,
	countries []string,
	isEnabled bool,
) (Configuration, error) {
	return RestoreConfiguration(id, Slugify(name), name, description, countries, isEnabled)
}

func RestoreConfiguration(
	id kernel.UUID,
	code string,
	name string,
	description string,
	countries []string,
	isEnabled bool,
) (Configuration, error) {
	c := Configuration{
		description: strings.TrimSpace(description),
		isEnabled:   isEnabled,
	}

	if err := errors.Join(
		id.Validate(),
		c.setName(name),
		c.setCode(code),
		c.SetCountries(countries),
	); err != nil {
		return Configuration{}, err
	}
	c.id = id

	return c, nil
}

func (c *Configuration) ID() kernel.UUID     { return c.id }
func (c *Configuration) Code() string        { return c.code }
func (c *Configuration) Name() string        { return c.name }
func (c *Configuration) Description() string { return c.description }
func (c *Configuration) Countries() []string { return slices.Clone(c.countries) }
func (c *Configuration) IsEnabled() bool     { return c.isEnabled }
func (c *Configuration) IsDiscounted() bool  { return false }

// IsApplicable honours the country restriction once the destination is known.
func (c *Configuration) IsApplicable(_ *basket.Basket, shippingAddress *address.Address) bool {
	if len(c.countries) == 0 || shippingAddress == nil {
		return true
	}
	return slices.Contains(c.countries, shippingAddress.Country())
}

func (c *Configuration) Rename(name string) error {
	return c.setName(name)
}

func (c *Configuration) SetDescription(description string) {
	c.description = strings.TrimSpace(description)
}

func (c *Configuration) SetEnabled(isEnabled bool) {
	c.isEnabled = isEnabled
}

// SetCountries restricts the method to ISO 3166 alpha-2 countries. An empty
// list lifts the restriction.
func (c *Configuration) SetCountries(countries []string) error {
	normalized := make([]string, 0, len(countries))
	for _, code := range countries {
		code = strings.ToUpper(strings.TrimSpace(code))
		region, err := language.ParseRegion(code)
		if err != nil || len(code) != 2 || !region.IsCountry() {
			return errs.NewValueIsInvalidErrorWithCause("countries", fmt.Errorf("%q is not a country code", code))
		}
		if !slices.Contains(normalized, code) {
			normalized = append(normalized, code)
		}
	}
	slices.Sort(normalized)
	c.countries = normalized
	return nil
}

func (c *Configuration) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > NameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, NameMaxLength)
	}
	c.name = name
	return nil
}

func (c *Configuration) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsInvalidErrorWithCause("code", errors.New("name must contain letters or digits"))
	}
	c.code = code
	return nil
}
