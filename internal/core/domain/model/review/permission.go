package review

import "storefront/internal/core/domain/model/kernel"

// Sort orders.
const (
	SortByHelpfulness = "helpfulness"
	SortByScore       = "score"
	SortByRecency     = "recency"
)

// CheckPermitted decides whether someone may review a product. hasReviewed
// tells whether the user already left a review for it.
func CheckPermitted(userID *kernel.UUID, allowAnonymous bool, hasReviewed bool) error {
	if userID == nil && !allowAnonymous {
		return ErrReviewNotAllowed
	}
	if userID != nil && hasReviewed {
		return ErrAlreadyReviewed
	}
	return nil
}

// NormalizeSort falls back to helpfulness for unknown orders.
func NormalizeSort(sortBy string) string {
	switch sortBy {
	case SortByScore, SortByRecency:
		return sortBy
	}
	return SortByHelpfulness
}
