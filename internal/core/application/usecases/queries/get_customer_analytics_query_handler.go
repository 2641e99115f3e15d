package queries

import (
	"context"
	"database/sql"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetCustomerAnalyticsQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerAnalyticsQueryHandler(db *gorm.DB) GetCustomerAnalyticsQueryHandler {
	return GetCustomerAnalyticsQueryHandler{db: db}
}

func (h GetCustomerAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerAnalyticsQuery,
) (Listing[GetCustomerAnalyticsQueryResponse], error) {
	if err := query.Validate(); err != nil {
		return Listing[GetCustomerAnalyticsQueryResponse]{}, err
	}

	listing := Listing[GetCustomerAnalyticsQueryResponse]{
		Items: make([]GetCustomerAnalyticsQueryResponse, 0),
		Page:  query.Page(),
	}
	db := h.db.WithContext(ctx)

	if err := db.Raw(`SELECT count(*) FROM analytics_user_records`).Scan(&listing.Total).Error; err != nil {
		return listing, err
	}

	rows, err := db.Raw(`
		SELECT
			r.user_id,
			coalesce(u.email, ''),
			r.num_product_views,
			r.num_basket_additions,
			r.num_orders,
			r.num_order_lines,
			r.num_order_items,
			r.total_spent,
			r.date_last_order
		FROM analytics_user_records r
		LEFT JOIN users u ON u.id = r.user_id
		ORDER BY r.total_spent DESC, r.user_id
		LIMIT ? OFFSET ?
	`, query.Page().Size, query.Page().Offset()).Rows()
	if err != nil {
		return listing, err
	}
	defer rows.Close()

	for rows.Next() {
		var rec GetCustomerAnalyticsQueryResponse
		var id uuid.UUID
		var lastOrder sql.NullTime

		if err = rows.Scan(
			&id,
			&rec.Email,
			&rec.NumProductViews,
			&rec.NumBasketAdditions,
			&rec.NumOrders,
			&rec.NumOrderLines,
			&rec.NumOrderItems,
			&rec.TotalSpent,
			&lastOrder,
		); err != nil {
			return listing, err
		}

		if rec.UserID, err = kernel.UUIDFromGoogle(id); err != nil {
			return listing, err
		}
		if lastOrder.Valid {
			rec.DateLastOrder = &lastOrder.Time
		}
		listing.Items = append(listing.Items, rec)
	}

	if err = rows.Err(); err != nil {
		return listing, err
	}

	return listing, nil
}
