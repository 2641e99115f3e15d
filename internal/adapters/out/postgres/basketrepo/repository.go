package basketrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

var errMissingAssociation = errors.New("basket line loaded without its product or stock record")

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormBasketRepository implements ports.BasketRepository.
type GormBasketRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormBasketRepository(db *gorm.DB, tracker aggregateTracker) *GormBasketRepository {
	return &GormBasketRepository{db: db, tracker: tracker}
}

func (r *GormBasketRepository) Add(ctx context.Context, aggregate *basket.Basket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Lines.Product", "Lines.StockRecord").Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the basket row and replaces its lines.
func (r *GormBasketRepository) Update(ctx context.Context, aggregate *basket.Basket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	// The status guard makes a second submission of the same basket match
	// no row, even when both requests loaded it before either committed.
	result := db.Model(&BasketDTO{}).Where("id = ? AND status <> ?", dto.ID, basket.Submitted.String()).
		Select("owner_id", "status", "currency", "submitted_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&BasketDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("basket", aggregate.ID().String())
		}
		return errs.NewStateIsInvalidError("basket", basket.Submitted.String())
	}

	if err := db.Where("basket_id = ?", dto.ID).Delete(&BasketLineDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Lines) > 0 {
		if err := db.Omit("Product", "StockRecord").Create(&dto.Lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormBasketRepository) Get(ctx context.Context, id kernel.UUID) (*basket.Basket, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "basket", id.String(), "id = ?", id.Bytes())
}

func (r *GormBasketRepository) GetOpenForOwner(ctx context.Context, ownerID kernel.UUID) (*basket.Basket, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "open basket", ownerID.String(),
		"owner_id = ? AND status = ?", ownerID.Bytes(), basket.Open.String())
}

func (r *GormBasketRepository) first(ctx context.Context, name string, key string, query string, args ...any) (*basket.Basket, error) {
	var dto BasketDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Lines.Product").
		Preload("Lines.StockRecord").
		Order("created_at DESC").
		Where(query, args...).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(name, key)
		}
		return nil, err
	}

	return toDomain(dto)
}
