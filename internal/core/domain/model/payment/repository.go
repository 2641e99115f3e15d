package payment

import (
	"errors"

	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
)

var ErrNoPaymentMethods = errors.New("You need to define some payment methods") //nolint:staticcheck,revive // shown to shop staff as is

type Repository struct {
	methods []Method
}

func NewRepository(methods ...Method) *Repository {
	return &Repository{methods: methods}
}

// GetPaymentMethods returns the options for an order total. Orders that
// cost nothing can only be placed with NoPaymentRequired.
func (r *Repository) GetPaymentMethods(_ *basket.Basket, orderTotal kernel.Price) []Method {
	if !orderTotal.InclTax().IsPositive() {
		return []Method{NoPaymentRequired{}}
	}
	methods := make([]Method, len(r.methods))
	copy(methods, r.methods)
	return methods
}

// GetDefaultPaymentMethod is the first method on offer.
func (r *Repository) GetDefaultPaymentMethod(b *basket.Basket, orderTotal kernel.Price) (Method, error) {
	methods := r.GetPaymentMethods(b, orderTotal)
	if len(methods) == 0 {
		return nil, ErrNoPaymentMethods
	}
	return methods[0], nil
}

func (r *Repository) FindPaymentMethod(b *basket.Basket, orderTotal kernel.Price, code string) (Method, bool) {
	for _, m := range r.GetPaymentMethods(b, orderTotal) {
		if m.Code() == code {
			return m, true
		}
	}
	return nil, false
}

// Charge is what the customer pays for using m.
func Charge(m Method, b *basket.Basket, orderTotal kernel.Price) (kernel.Price, error) {
	return m.Calculate(b, orderTotal)
}
