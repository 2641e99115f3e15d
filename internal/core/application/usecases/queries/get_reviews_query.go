package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/pkg/guard"
)

var ErrGetReviewsQueryIsNotConstructed = errors.New(
	"GetReviewsQuery must be created via NewGetReviewsQuery constructor",
)

// GetReviewsQuery lists a product's reviews. The storefront only shows
// approved ones; moderators also see the rest.
type GetReviewsQuery struct {
	productID    kernel.UUID
	sortBy       string
	approvedOnly bool
	page         Page

	guard guard.ConstructorGuard
}

// NewGetReviewsQuery falls back to sorting by helpfulness.
func NewGetReviewsQuery(productID kernel.UUID, sortBy string, approvedOnly bool, page Page) (GetReviewsQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetReviewsQuery{}, err
	}
	return GetReviewsQuery{
		productID:    productID,
		sortBy:       review.NormalizeSort(sortBy),
		approvedOnly: approvedOnly,
		page:         page,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewsQueryIsNotConstructed)
}

func (q GetReviewsQuery) ProductID() kernel.UUID { return q.productID }
func (q GetReviewsQuery) SortBy() string         { return q.sortBy }
func (q GetReviewsQuery) ApprovedOnly() bool     { return q.approvedOnly }
func (q GetReviewsQuery) Page() Page             { return q.page }

func (q GetReviewsQuery) orderClause() string {
	switch q.sortBy {
	case review.SortByScore:
		return "r.score DESC, r.created_at DESC"
	case review.SortByRecency:
		return "r.created_at DESC"
	}
	return "delta_votes DESC, total_votes DESC, r.created_at DESC"
}

type GetReviewsQueryResponse struct {
	ID         kernel.UUID
	UserID     *kernel.UUID
	Name       string
	Score      int
	Title      string
	Body       string
	Status     review.Status
	TotalVotes int
	DeltaVotes int
	CreatedAt  time.Time
}
