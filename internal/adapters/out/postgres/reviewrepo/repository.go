package reviewrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormReviewRepository implements ports.ReviewRepository.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{db: db, tracker: tracker}
}

func (r *GormReviewRepository) Add(ctx context.Context, rv *review.ProductReview) error {
	if err := rv.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rv)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(rv.ID(), rv)
	return nil
}

// Update saves the status and any new votes. Votes are never withdrawn.
func (r *GormReviewRepository) Update(ctx context.Context, rv *review.ProductReview) error {
	if err := rv.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rv)
	db := r.db.WithContext(ctx)
	result := db.Model(&ReviewDTO{}).Where("id = ?", dto.ID).Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("review", rv.ID().String())
	}

	if len(dto.Votes) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Votes).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(rv.ID(), rv)
	return nil
}

func (r *GormReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.ProductReview, error) {
	var dto ReviewDTO
	err := r.db.WithContext(ctx).
		Preload("Votes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("review", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormReviewRepository) HasReviewBy(ctx context.Context, productID kernel.UUID, userID kernel.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&ReviewDTO{}).
		Where("product_id = ? AND user_id = ?", productID.Bytes(), userID.Bytes()).
		Count(&n).Error
	return n > 0, err
}
