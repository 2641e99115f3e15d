package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetPageViewsQueryHandler struct {
	db *gorm.DB
}

func NewGetPageViewsQueryHandler(db *gorm.DB) GetPageViewsQueryHandler {
	return GetPageViewsQueryHandler{db: db}
}

func (h GetPageViewsQueryHandler) Handle(
	ctx context.Context,
	query GetPageViewsQuery,
) (Listing[GetPageViewsQueryResponse], error) {
	if err := query.Validate(); err != nil {
		return Listing[GetPageViewsQueryResponse]{}, err
	}

	listing := Listing[GetPageViewsQueryResponse]{
		Items: make([]GetPageViewsQueryResponse, 0),
		Page:  query.Page(),
	}
	f := query.Filter()
	args := map[string]any{
		"session_key": f.SessionKey,
		"ip_address":  f.IPAddress,
		"limit":       query.Page().Size,
		"offset":      query.Page().Offset(),
	}
	const from = `FROM tracking_page_views pv
		JOIN tracking_visitors v ON v.session_key = pv.session_key
		WHERE (@session_key = '' OR pv.session_key = @session_key)
		AND (@ip_address = '' OR host(v.ip_address) = @ip_address)`

	db := h.db.WithContext(ctx)
	if err := db.Raw(`SELECT count(*) `+from, args).Scan(&listing.Total).Error; err != nil {
		return listing, err
	}

	rows, err := db.Raw(`
		SELECT
			pv.id,
			pv.session_key,
			pv.url || CASE WHEN coalesce(pv.query_string, '') = '' THEN '' ELSE '?' || pv.query_string END,
			coalesce(pv.referer, ''),
			pv.method,
			pv.view_time
		`+from+`
		ORDER BY pv.view_time DESC, pv.id
		LIMIT @limit OFFSET @offset
	`, args).Rows()
	if err != nil {
		return listing, err
	}
	defer rows.Close()

	for rows.Next() {
		var view GetPageViewsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&view.SessionKey,
			&view.Path,
			&view.Referer,
			&view.Method,
			&view.ViewTime,
		); err != nil {
			return listing, err
		}

		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return listing, err
		}
		listing.Items = append(listing.Items, view)
	}

	if err = rows.Err(); err != nil {
		return listing, err
	}

	return listing, nil
}
