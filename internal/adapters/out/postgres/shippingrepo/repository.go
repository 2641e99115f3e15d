package shippingrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormShippingMethodRepository implements ports.ShippingMethodRepository.
type GormShippingMethodRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormShippingMethodRepository(db *gorm.DB, tracker aggregateTracker) *GormShippingMethodRepository {
	return &GormShippingMethodRepository{db: db, tracker: tracker}
}

func (r *GormShippingMethodRepository) Add(ctx context.Context, m shipping.Configured) error {
	dto := fromDomain(m)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(m.ID(), m)
	return nil
}

// Update rewrites the method and replaces its weight bands.
func (r *GormShippingMethodRepository) Update(ctx context.Context, m shipping.Configured) error {
	dto := fromDomain(m)
	db := r.db.WithContext(ctx)

	result := db.Model(&MethodDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "kind", "code", "Bands").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipping method", m.ID().String())
	}

	if err := db.Where("method_id = ?", dto.ID).Delete(&WeightBandDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Bands) > 0 {
		if err := db.Create(&dto.Bands).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(m.ID(), m)
	return nil
}

func (r *GormShippingMethodRepository) Get(ctx context.Context, id kernel.UUID) (shipping.Configured, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MethodDTO
	if err := r.withBands(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipping method", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormShippingMethodRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&MethodDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipping method", id.String())
	}
	return nil
}

// List returns every method, enabled or not, by name.
func (r *GormShippingMethodRepository) List(ctx context.Context) ([]shipping.Configured, error) {
	return r.find(r.withBands(ctx).Order("name"))
}

func (r *GormShippingMethodRepository) EnabledMethods(ctx context.Context) ([]shipping.Method, error) {
	configured, err := r.find(r.withBands(ctx).Where("is_enabled").Order("name"))
	if err != nil {
		return nil, err
	}
	methods := make([]shipping.Method, 0, len(configured))
	for _, m := range configured {
		methods = append(methods, m)
	}
	return methods, nil
}

func (r *GormShippingMethodRepository) withBands(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Bands", func(db *gorm.DB) *gorm.DB {
		return db.Order("upper_limit")
	})
}

func (r *GormShippingMethodRepository) find(query *gorm.DB) ([]shipping.Configured, error) {
	var dtos []MethodDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	methods := make([]shipping.Configured, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, nil
}
