package ports

import (
	"context"

	"storefront/internal/core/domain/model/catalogue"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/partner"
)

// ProductRepository persists catalogue products.
type ProductRepository interface {
	Add(ctx context.Context, product *catalogue.Product) error
	Update(ctx context.Context, product *catalogue.Product) error
	Get(ctx context.Context, id kernel.UUID) (*catalogue.Product, error)
}

// StockRecordRepository persists partner stock records.
type StockRecordRepository interface {
	Add(ctx context.Context, record *partner.StockRecord) error
	Update(ctx context.Context, record *partner.StockRecord) error
	Get(ctx context.Context, id kernel.UUID) (*partner.StockRecord, error)
	// Allocate reserves quantity units against the stored stock level. It
	// fails with partner.ErrInsufficientStock when fewer are left.
	Allocate(ctx context.Context, id kernel.UUID, quantity int) error
	// ListForProduct returns records oldest first, so the strategy picks
	// the same record every time.
	ListForProduct(ctx context.Context, productID kernel.UUID) ([]*partner.StockRecord, error)
}
