package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction. Repositories it hands out use the
// transaction started by Begin, or the plain connection before that.
type UnitOfWork interface {
	// Begin starts a database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active, as after Commit.
	Rollback(ctx context.Context) error

	// ProductRepository returns the catalogue products bound to the current transaction.
	ProductRepository() ProductRepository

	// StockRecordRepository returns partner stock and prices bound to the current transaction.
	StockRecordRepository() StockRecordRepository

	// BasketRepository returns baskets and their lines bound to the current transaction.
	BasketRepository() BasketRepository

	// OrderRepository returns placed orders bound to the current transaction.
	OrderRepository() OrderRepository

	// UserAddressRepository returns address books bound to the current transaction.
	UserAddressRepository() UserAddressRepository

	// ShippingMethodRepository returns dashboard-configured shipping methods
	// bound to the current transaction.
	ShippingMethodRepository() ShippingMethodRepository

	// VisitorRepository returns tracked visitors and page views bound to the current transaction.
	VisitorRepository() VisitorRepository

	// AnalyticsRepository returns the product and customer counters bound to the current transaction.
	AnalyticsRepository() AnalyticsRepository

	// UserRepository returns customer and staff accounts bound to the current transaction.
	UserRepository() UserRepository

	// ReviewRepository returns product reviews and votes bound to the current transaction.
	ReviewRepository() ReviewRepository
}
