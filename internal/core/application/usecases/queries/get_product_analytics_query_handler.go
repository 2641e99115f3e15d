package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetProductAnalyticsQueryHandler struct {
	db *gorm.DB
}

func NewGetProductAnalyticsQueryHandler(db *gorm.DB) GetProductAnalyticsQueryHandler {
	return GetProductAnalyticsQueryHandler{db: db}
}

func (h GetProductAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetProductAnalyticsQuery,
) (Listing[GetProductAnalyticsQueryResponse], error) {
	if err := query.Validate(); err != nil {
		return Listing[GetProductAnalyticsQueryResponse]{}, err
	}

	listing := Listing[GetProductAnalyticsQueryResponse]{
		Items: make([]GetProductAnalyticsQueryResponse, 0),
		Page:  query.Page(),
	}
	db := h.db.WithContext(ctx)

	if err := db.Raw(`SELECT count(*) FROM analytics_product_records`).Scan(&listing.Total).Error; err != nil {
		return listing, err
	}

	// the column comes from a fixed whitelist
	rows, err := db.Raw(`
		SELECT
			r.product_id,
			coalesce(p.title, ''),
			r.num_views,
			r.num_basket_additions,
			r.num_purchases,
			r.score
		FROM analytics_product_records r
		LEFT JOIN products p ON p.id = r.product_id
		ORDER BY `+query.column()+` DESC, r.product_id
		LIMIT ? OFFSET ?
	`, query.Page().Size, query.Page().Offset()).Rows()
	if err != nil {
		return listing, err
	}
	defer rows.Close()

	for rows.Next() {
		var rec GetProductAnalyticsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&rec.Title,
			&rec.NumViews,
			&rec.NumBasketAdditions,
			&rec.NumPurchases,
			&rec.Score,
		); err != nil {
			return listing, err
		}

		if rec.ProductID, err = kernel.UUIDFromGoogle(id); err != nil {
			return listing, err
		}
		listing.Items = append(listing.Items, rec)
	}

	if err = rows.Err(); err != nil {
		return listing, err
	}

	return listing, nil
}
