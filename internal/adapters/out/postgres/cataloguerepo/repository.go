package cataloguerepo

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/catalogue"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/partner"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormProductRepository implements ports.ProductRepository.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{db: db, tracker: tracker}
}

func (r *GormProductRepository) Add(ctx context.Context, aggregate *catalogue.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := ProductFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductRepository) Update(ctx context.Context, aggregate *catalogue.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := ProductFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalogue.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return ProductToDomain(dto)
}

// GormStockRecordRepository implements ports.StockRecordRepository.
type GormStockRecordRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormStockRecordRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRecordRepository {
	return &GormStockRecordRepository{db: db, tracker: tracker}
}

func (r *GormStockRecordRepository) Add(ctx context.Context, aggregate *partner.StockRecord) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := StockRecordFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Product").Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormStockRecordRepository) Update(ctx context.Context, aggregate *partner.StockRecord) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := StockRecordFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&StockRecordDTO{}).Where("id = ?", dto.ID).
		Select("partner_sku", "currency", "price_excl_tax", "num_in_stock", "num_allocated").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stock record", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Allocate increments num_allocated in a single guarded statement, so two
// orders racing for the last unit cannot both get it.
func (r *GormStockRecordRepository) Allocate(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	db := r.db.WithContext(ctx)
	result := db.Model(&StockRecordDTO{}).
		Where("id = ? AND num_in_stock - num_allocated >= ?", id.Bytes(), quantity).
		Update("num_allocated", gorm.Expr("num_allocated + ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(&StockRecordDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("stock record", id.String())
	}
	return fmt.Errorf("stock record %s: %w", id, partner.ErrInsufficientStock)
}

func (r *GormStockRecordRepository) Get(ctx context.Context, id kernel.UUID) (*partner.StockRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StockRecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock record", id.String())
		}
		return nil, err
	}

	return StockRecordToDomain(dto)
}

func (r *GormStockRecordRepository) ListForProduct(ctx context.Context, productID kernel.UUID) ([]*partner.StockRecord, error) {
	var dtos []StockRecordDTO
	if err := r.db.WithContext(ctx).Order("created_at, id").
		Find(&dtos, "product_id = ?", productID.Bytes()).Error; err != nil {
		return nil, err
	}

	records := make([]*partner.StockRecord, 0, len(dtos))
	for _, dto := range dtos {
		sr, err := StockRecordToDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, sr)
	}
	return records, nil
}
