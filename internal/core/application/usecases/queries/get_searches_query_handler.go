package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetSearchesQueryHandler struct {
	db *gorm.DB
}

func NewGetSearchesQueryHandler(db *gorm.DB) GetSearchesQueryHandler {
	return GetSearchesQueryHandler{db: db}
}

func (h GetSearchesQueryHandler) Handle(
	ctx context.Context,
	query GetSearchesQuery,
) (Listing[GetSearchesQueryResponse], error) {
	if err := query.Validate(); err != nil {
		return Listing[GetSearchesQueryResponse]{}, err
	}

	listing := Listing[GetSearchesQueryResponse]{
		Items: make([]GetSearchesQueryResponse, 0),
		Page:  query.Page(),
	}
	db := h.db.WithContext(ctx)
	const where = `WHERE (? = '' OR s.query ILIKE '%' || ? || '%')`

	if err := db.Raw(`SELECT count(*) FROM analytics_user_searches s `+where,
		query.Filter(), query.Filter()).Scan(&listing.Total).Error; err != nil {
		return listing, err
	}

	rows, err := db.Raw(`
		SELECT
			s.id,
			s.user_id,
			coalesce(u.email, ''),
			s.query,
			s.result_count,
			s.created_at
		FROM analytics_user_searches s
		LEFT JOIN users u ON u.id = s.user_id
		`+where+`
		ORDER BY s.created_at DESC, s.id
		LIMIT ? OFFSET ?
	`, query.Filter(), query.Filter(), query.Page().Size, query.Page().Offset()).Rows()
	if err != nil {
		return listing, err
	}
	defer rows.Close()

	for rows.Next() {
		var search GetSearchesQueryResponse
		var id uuid.UUID
		var userID uuid.NullUUID

		if err = rows.Scan(
			&id,
			&userID,
			&search.UserEmail,
			&search.Query,
			&search.ResultCount,
			&search.CreatedAt,
		); err != nil {
			return listing, err
		}

		if search.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return listing, err
		}
		if search.UserID, err = optionalUUID(userID); err != nil {
			return listing, err
		}
		listing.Items = append(listing.Items, search)
	}

	if err = rows.Err(); err != nil {
		return listing, err
	}

	return listing, nil
}
