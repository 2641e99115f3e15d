package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"
)

// ReviewRepository persists product reviews with their votes.
type ReviewRepository interface {
	Add(ctx context.Context, r *review.ProductReview) error
	Update(ctx context.Context, r *review.ProductReview) error
	Get(ctx context.Context, id kernel.UUID) (*review.ProductReview, error)
	HasReviewBy(ctx context.Context, productID kernel.UUID, userID kernel.UUID) (bool, error)
}
