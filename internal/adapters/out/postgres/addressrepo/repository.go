package addressrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/address"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormUserAddressRepository implements ports.UserAddressRepository.
type GormUserAddressRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormUserAddressRepository(db *gorm.DB, tracker aggregateTracker) *GormUserAddressRepository {
	return &GormUserAddressRepository{db: db, tracker: tracker}
}

func (r *GormUserAddressRepository) Add(ctx context.Context, aggregate *address.UserAddress) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormUserAddressRepository) Update(ctx context.Context, aggregate *address.UserAddress) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserAddressDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "user_id", "created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user address", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormUserAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.UserAddress, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserAddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user address", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormUserAddressRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&UserAddressDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user address", id.String())
	}
	return nil
}

func (r *GormUserAddressRepository) ListForUser(ctx context.Context, userID kernel.UUID) ([]*address.UserAddress, error) {
	var dtos []UserAddressDTO
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos, "user_id = ?", userID.Bytes()).Error; err != nil {
		return nil, err
	}

	book := make([]*address.UserAddress, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		book = append(book, a)
	}
	return book, nil
}
