package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle lists the newest orders first. Email is the guest email or the
// customer's account email.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (Listing[GetOrdersQueryResponse], error) {
	if err := query.Validate(); err != nil {
		return Listing[GetOrdersQueryResponse]{}, err
	}

	listing := Listing[GetOrdersQueryResponse]{
		Items: make([]GetOrdersQueryResponse, 0),
		Page:  query.Page(),
	}

	f := query.Filter()
	var userID *uuid.UUID
	if f.UserID != nil {
		raw := f.UserID.Bytes()
		userID = &raw
	}
	status := 0
	if f.Status != nil {
		status = int(*f.Status)
	}
	args := map[string]any{
		"user_id": userID,
		"status":  status,
		"number":  f.Number,
		"limit":   query.Page().Size,
		"offset":  query.Page().Offset(),
	}
	const where = `WHERE (CAST(@user_id AS uuid) IS NULL OR o.user_id = @user_id)
		AND (@status = 0 OR o.status = @status)
		AND (@number = '' OR o.number = @number)`

	db := h.db.WithContext(ctx)
	if err := db.Raw(`SELECT count(*) FROM orders o `+where, args).Scan(&listing.Total).Error; err != nil {
		return listing, err
	}

	rows, err := db.Raw(`
		SELECT
			o.id,
			o.number,
			o.status,
			o.user_id,
			CASE WHEN o.user_id IS NULL THEN o.guest_email ELSE coalesce(u.email, '') END,
			o.currency,
			(SELECT coalesce(sum(l.quantity), 0) FROM order_lines l WHERE l.order_id = o.id),
			o.total_excl_tax + o.total_tax,
			o.placed_at
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		`+where+`
		ORDER BY o.placed_at DESC, o.id
		LIMIT @limit OFFSET @offset
	`, args).Rows()
	if err != nil {
		return listing, err
	}
	defer rows.Close()

	for rows.Next() {
		var o GetOrdersQueryResponse
		var id uuid.UUID
		var owner uuid.NullUUID
		var status int

		if err = rows.Scan(
			&id,
			&o.Number,
			&status,
			&owner,
			&o.Email,
			&o.Currency,
			&o.NumItems,
			&o.TotalInclTax,
			&o.PlacedAt,
		); err != nil {
			return listing, err
		}

		if o.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return listing, err
		}
		if o.UserID, err = optionalUUID(owner); err != nil {
			return listing, err
		}
		o.Status = order.Status(status)
		listing.Items = append(listing.Items, o)
	}

	if err = rows.Err(); err != nil {
		return listing, err
	}

	return listing, nil
}
