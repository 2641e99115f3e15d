package shipping

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/basket"
)

var ErrNoShippingMethods = errors.New("no shipping methods are available")

// MethodSource supplies the dashboard-managed methods that are switched on.
type MethodSource interface {
	EnabledMethods(ctx context.Context) ([]Method, error)
}

// Repository decides which methods a basket may be shipped with.
type Repository struct {
	source   MethodSource
	builtins []Method
}

func NewRepository(source MethodSource, builtins ...Method) *Repository {
	return &Repository{source: source, builtins: builtins}
}

// GetShippingMethods returns the methods on offer. Baskets that need no
// shipping only get NoShippingRequired. The builtins are a fallback used
// only when no configured method applies. The address may be nil.
func (r *Repository) GetShippingMethods(
	ctx context.Context,
	b *basket.Basket,
	shippingAddress *address.Address,
) ([]Method, error) {
	if !b.IsShippingRequired() {
		return []Method{NoShippingRequired{}}, nil
	}

	var configured []Method
	if r.source != nil {
		enabled, err := r.source.EnabledMethods(ctx)
		if err != nil {
			return nil, err
		}
		configured = applicable(enabled, b, shippingAddress)
	}
	if len(configured) > 0 {
		return configured, nil
	}
	return applicable(r.builtins, b, shippingAddress), nil
}

func applicable(candidates []Method, b *basket.Basket, shippingAddress *address.Address) []Method {
	methods := make([]Method, 0, len(candidates))
	for _, m := range candidates {
		if restricted, ok := m.(Restricter); ok && !restricted.IsApplicable(b, shippingAddress) {
			continue
		}
		methods = append(methods, m)
	}
	return methods
}

// GetDefaultShippingMethod picks the cheapest method. Ties go to the method
// listed first.
func (r *Repository) GetDefaultShippingMethod(
	ctx context.Context,
	b *basket.Basket,
	shippingAddress *address.Address,
) (Method, error) {
	methods, err := r.GetShippingMethods(ctx, b, shippingAddress)
	if err != nil {
		return nil, err
	}
	if len(methods) == 0 {
		return nil, ErrNoShippingMethods
	}

	var cheapest Method
	for _, m := range methods {
		charge, err := m.Calculate(b)
		if err != nil {
			return nil, err
		}
		if cheapest == nil {
			cheapest = m
			continue
		}
		best, err := cheapest.Calculate(b)
		if err != nil {
			return nil, err
		}
		if charge.InclTax().LessThan(best.InclTax()) {
			cheapest = m
		}
	}
	return cheapest, nil
}

// FindShippingMethod looks a method up by code among those on offer.
func (r *Repository) FindShippingMethod(
	ctx context.Context,
	b *basket.Basket,
	shippingAddress *address.Address,
	code string,
) (Method, bool, error) {
	methods, err := r.GetShippingMethods(ctx, b, shippingAddress)
	if err != nil {
		return nil, false, err
	}
	for _, m := range methods {
		if m.Code() == code {
			return m, true, nil
		}
	}
	return nil, false, nil
}
