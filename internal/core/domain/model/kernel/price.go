package kernel

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice or ZeroPrice")

// Price is an amount in a single currency, kept as the tax-exclusive part
// plus the tax on top of it.
type Price struct { //nolint:recvcheck //setters are used during construction
	currency string
	exclTax  decimal.Decimal
	tax      decimal.Decimal

	guard guard.ConstructorGuard
}

func NewPrice(currencyCode string, exclTax decimal.Decimal, tax decimal.Decimal) (Price, error) {
	p := Price{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setCurrency(currencyCode),
		p.setExclTax(exclTax),
		p.setTax(tax),
	); err != nil {
		return Price{}, err
	}

	return p, nil
}

// ZeroPrice returns a price of nothing. The currency code is expected to
// have been validated already, usually by configuration loading.
func ZeroPrice(currencyCode string) Price {
	return Price{
		currency: currencyCode,
		exclTax:  decimal.Zero,
		tax:      decimal.Zero,
		guard:    guard.NewConstructorGuard(),
	}
}

// ValidateCurrency checks that code is a known ISO 4217 currency.
func ValidateCurrency(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	if _, err := currency.ParseISO(code); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("currency", err)
	}
	return nil
}

func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

func (p Price) Currency() string {
	return p.currency
}

func (p Price) ExclTax() decimal.Decimal {
	return p.exclTax
}

func (p Price) Tax() decimal.Decimal {
	return p.tax
}

func (p Price) InclTax() decimal.Decimal {
	return p.exclTax.Add(p.tax)
}

func (p Price) IsZero() bool {
	return p.InclTax().IsZero()
}

// Add sums two prices of the same currency.
func (p Price) Add(other Price) (Price, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return Price{}, err
	}
	if p.currency != other.currency {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("cannot add %s to %s", other.currency, p.currency),
		)
	}

	return Price{
		currency: p.currency,
		exclTax:  p.exclTax.Add(other.exclTax),
		tax:      p.tax.Add(other.tax),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Sub subtracts other, flooring both components at zero.
func (p Price) Sub(other Price) (Price, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return Price{}, err
	}
	if p.currency != other.currency {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("cannot subtract %s from %s", other.currency, p.currency),
		)
	}

	return Price{
		currency: p.currency,
		exclTax:  decimal.Max(p.exclTax.Sub(other.exclTax), decimal.Zero),
		tax:      decimal.Max(p.tax.Sub(other.tax), decimal.Zero),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (p Price) Multiply(quantity int) Price {
	q := decimal.NewFromInt(int64(quantity))
	return Price{
		currency: p.currency,
		exclTax:  p.exclTax.Mul(q),
		tax:      p.tax.Mul(q),
		guard:    p.guard,
	}
}

func (p Price) IsEqual(other Price) bool {
	return p.currency == other.currency && p.exclTax.Equal(other.exclTax) && p.tax.Equal(other.tax)
}

func (p Price) String() string {
	return fmt.Sprintf("%s %s", p.InclTax().StringFixed(2), p.currency)
}

func (p *Price) setCurrency(code string) error {
	if err := ValidateCurrency(code); err != nil {
		return err
	}
	p.currency = code
	return nil
}

func (p *Price) setExclTax(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("excl_tax", fmt.Errorf("%s is negative", amount))
	}
	p.exclTax = amount
	return nil
}

func (p *Price) setTax(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("tax", fmt.Errorf("%s is negative", amount))
	}
	p.tax = amount
	return nil
}
