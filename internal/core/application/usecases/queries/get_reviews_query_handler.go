package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetReviewsQueryHandler struct {
	db *gorm.DB
}

func NewGetReviewsQueryHandler(db *gorm.DB) GetReviewsQueryHandler {
	return GetReviewsQueryHandler{db: db}
}

// Handle shows the author's name for anonymous reviews and the account's
// full name otherwise.
func (h GetReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetReviewsQuery,
) (Listing[GetReviewsQueryResponse], error) {
	if err := query.Validate(); err != nil {
		return Listing[GetReviewsQueryResponse]{}, err
	}

	listing := Listing[GetReviewsQueryResponse]{
		Items: make([]GetReviewsQueryResponse, 0),
		Page:  query.Page(),
	}
	args := map[string]any{
		"product_id":    query.ProductID().Bytes(),
		"approved_only": query.ApprovedOnly(),
		"approved":      int(review.Approved),
		"limit":         query.Page().Size,
		"offset":        query.Page().Offset(),
	}
	const where = `WHERE r.product_id = @product_id AND (NOT @approved_only OR r.status = @approved)`

	db := h.db.WithContext(ctx)
	if err := db.Raw(`SELECT count(*) FROM reviews r `+where, args).Scan(&listing.Total).Error; err != nil {
		return listing, err
	}

	rows, err := db.Raw(`
		SELECT
			r.id,
			r.user_id,
			CASE WHEN r.user_id IS NULL THEN r.name
				ELSE coalesce(nullif(trim(u.first_name || ' ' || u.last_name), ''), u.email, '') END,
			r.score,
			r.title,
			r.body,
			r.status,
			coalesce(v.total_votes, 0) AS total_votes,
			coalesce(v.delta_votes, 0) AS delta_votes,
			r.created_at
		FROM reviews r
		LEFT JOIN users u ON u.id = r.user_id
		LEFT JOIN (
			SELECT review_id, count(*) AS total_votes, sum(delta) AS delta_votes
			FROM review_votes
			GROUP BY review_id
		) v ON v.review_id = r.id
		`+where+`
		ORDER BY `+query.orderClause()+`, r.id
		LIMIT @limit OFFSET @offset
	`, args).Rows()
	if err != nil {
		return listing, err
	}
	defer rows.Close()

	for rows.Next() {
		var rv GetReviewsQueryResponse
		var id uuid.UUID
		var userID uuid.NullUUID
		var status int

		if err = rows.Scan(
			&id,
			&userID,
			&rv.Name,
			&rv.Score,
			&rv.Title,
			&rv.Body,
			&status,
			&rv.TotalVotes,
			&rv.DeltaVotes,
			&rv.CreatedAt,
		); err != nil {
			return listing, err
		}

		if rv.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return listing, err
		}
		if rv.UserID, err = optionalUUID(userID); err != nil {
			return listing, err
		}
		rv.Status = review.Status(status)
		listing.Items = append(listing.Items, rv)
	}

	if err = rows.Err(); err != nil {
		return listing, err
	}

	return listing, nil
}
