// Package commands holds the operations that change state. Every handler
// validates its command, opens a unit of work, loads and changes aggregates,
// and commits.
package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// Each handler depends on the narrowest unit of work that covers the
// repositories it touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	StockRecordRepoFactory interface {
		StockRecordRepository() ports.StockRecordRepository
	}

	BasketRepoFactory interface {
		BasketRepository() ports.BasketRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	UserAddressRepoFactory interface {
		UserAddressRepository() ports.UserAddressRepository
	}

	ShippingMethodRepoFactory interface {
		ShippingMethodRepository() ports.ShippingMethodRepository
	}

	VisitorRepoFactory interface {
		VisitorRepository() ports.VisitorRepository
	}

	AnalyticsRepoFactory interface {
		AnalyticsRepository() ports.AnalyticsRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// CatalogueUoW covers products and their stock records.
	CatalogueUoW interface {
		TxManager
		ProductRepoFactory
		StockRecordRepoFactory
	}

	CatalogueUoWFactory interface {
		Create() CatalogueUoW
	}

	// BasketUoW covers basket edits and the basket-addition counters.
	BasketUoW interface {
		TxManager
		BasketRepoFactory
		ProductRepoFactory
		StockRecordRepoFactory
		AnalyticsRepoFactory
	}

	BasketUoWFactory interface {
		Create() BasketUoW
	}

	// CheckoutUoW covers turning a basket into an order.
	CheckoutUoW interface {
		TxManager
		BasketRepoFactory
		StockRecordRepoFactory
		OrderRepoFactory
		AnalyticsRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	AddressUoW interface {
		TxManager
		UserAddressRepoFactory
	}

	AddressUoWFactory interface {
		Create() AddressUoW
	}

	ShippingUoW interface {
		TxManager
		ShippingMethodRepoFactory
	}

	ShippingUoWFactory interface {
		Create() ShippingUoW
	}

	// TrackingUoW covers visitors, their page views and the view and
	// search counters.
	TrackingUoW interface {
		TxManager
		VisitorRepoFactory
		AnalyticsRepoFactory
	}

	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	AccountUoW interface {
		TxManager
		UserRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
	}

	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
