// Package payment prices the way a customer pays for an order.
package payment

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	NoFeeCode             = "no-fees"
	NoPaymentRequiredCode = "no-payment-required"
)

// Method prices a payment option for an order total.
type Method interface {
	Code() string
	Name() string
	Description() string
	IsDiscounted() bool
	Calculate(b *basket.Basket, orderTotal kernel.Price) (kernel.Price, error)
	Discount(b *basket.Basket) kernel.Price
}

type noDiscount struct{}

func (noDiscount) IsDiscounted() bool { return false }

func (noDiscount) Discount(b *basket.Basket) kernel.Price {
	return kernel.ZeroPrice(b.Currency())
}

// NoFeePayment costs the customer nothing extra.
type NoFeePayment struct{ noDiscount }

func (NoFeePayment) Code() string        { return NoFeeCode }
func (NoFeePayment) Name() string        { return "No fee" }
func (NoFeePayment) Description() string { return "" }

func (NoFeePayment) Calculate(b *basket.Basket, _ kernel.Price) (kernel.Price, error) {
	return kernel.ZeroPrice(b.Currency()), nil
}

// NoPaymentRequired is the only option for orders that cost nothing.
type NoPaymentRequired struct{ NoFeePayment }

func (NoPaymentRequired) Code() string { return NoPaymentRequiredCode }
func (NoPaymentRequired) Name() string { return "No payment required" }

// FixedFeePayment adds a flat fee to the order.
type FixedFeePayment struct {
	noDiscount

	code        string
	name        string
	description string
	feeExclTax  decimal.Decimal
	tax         decimal.Decimal
}

func NewFixedFeePayment(code string, name string, description string, feeExclTax decimal.Decimal, tax decimal.Decimal) (*FixedFeePayment, error) {
	m := &FixedFeePayment{description: description, feeExclTax: feeExclTax, tax: tax}
	if err := errors.Join(
		setIdentity(&m.code, &m.name, code, name),
		nonNegative("fee", feeExclTax),
		nonNegative("tax", tax),
	); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *FixedFeePayment) Code() string        { return m.code }
func (m *FixedFeePayment) Name() string        { return m.name }
func (m *FixedFeePayment) Description() string { return m.description }

func (m *FixedFeePayment) Calculate(b *basket.Basket, _ kernel.Price) (kernel.Price, error) {
	return kernel.NewPrice(b.Currency(), m.feeExclTax, m.tax)
}

// PercentageFeePayment charges a share of the order total including tax,
// rounded to the penny.
type PercentageFeePayment struct {
	noDiscount

	code        string
	name        string
	description string
	percentage  decimal.Decimal
}

func NewPercentageFeePayment(code string, name string, description string, percentage decimal.Decimal) (*PercentageFeePayment, error) {
	m := &PercentageFeePayment{description: description, percentage: percentage}
	var rangeErr error
	if percentage.IsNegative() || percentage.GreaterThan(decimal.NewFromInt(100)) {
		rangeErr = errs.NewValueIsOutOfRangeError("percentage", percentage.String(), 0, 100)
	}
	if err := errors.Join(setIdentity(&m.code, &m.name, code, name), rangeErr); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *PercentageFeePayment) Code() string                { return m.code }
func (m *PercentageFeePayment) Name() string                { return m.name }
func (m *PercentageFeePayment) Description() string         { return m.description }
func (m *PercentageFeePayment) Percentage() decimal.Decimal { return m.percentage }

func (m *PercentageFeePayment) Calculate(b *basket.Basket, orderTotal kernel.Price) (kernel.Price, error) {
	fee := orderTotal.InclTax().Mul(m.percentage).Div(decimal.NewFromInt(100)).Round(2)
	return kernel.NewPrice(b.Currency(), fee, decimal.Zero)
}

func setIdentity(code *string, name *string, newCode string, newName string) error {
	newCode, newName = strings.TrimSpace(newCode), strings.TrimSpace(newName)
	var codeErr, nameErr error
	if newCode == "" {
		codeErr = errs.NewValueIsRequiredError("code")
	}
	if newName == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	*code, *name = newCode, newName
	return errors.Join(codeErr, nameErr)
}

func nonNegative(name string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsOutOfRangeError(name, amount.String(), 0, "∞")
	}
	return nil
}
