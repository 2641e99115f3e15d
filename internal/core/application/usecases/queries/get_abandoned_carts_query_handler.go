package queries

import (
	"context"

	"storefront/internal/core/domain/model/basket"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAbandonedCartsQueryHandler struct {
	db *gorm.DB
}

func NewGetAbandonedCartsQueryHandler(db *gorm.DB) GetAbandonedCartsQueryHandler {
	return GetAbandonedCartsQueryHandler{db: db}
}

// Handle lists the oldest baskets first.
func (h GetAbandonedCartsQueryHandler) Handle(
	ctx context.Context,
	query GetAbandonedCartsQuery,
) (Listing[GetAbandonedCartsQueryResponse], error) {
	if err := query.Validate(); err != nil {
		return Listing[GetAbandonedCartsQueryResponse]{}, err
	}

	listing := Listing[GetAbandonedCartsQueryResponse]{
		Items: make([]GetAbandonedCartsQueryResponse, 0),
		Page:  query.Page(),
	}
	db := h.db.WithContext(ctx)
	status := basket.Open.String()

	if err := db.Raw(
		`SELECT count(*) FROM baskets WHERE status = ? AND created_at <= ?`,
		status, query.Cutoff(),
	).Scan(&listing.Total).Error; err != nil {
		return listing, err
	}

	rows, err := db.Raw(`
		SELECT
			b.id,
			b.owner_id,
			coalesce(u.email, ''),
			b.currency,
			count(l.id),
			coalesce(sum(l.quantity), 0),
			coalesce(sum(l.quantity * l.price_excl_tax), 0),
			coalesce(sum(l.quantity * (l.price_excl_tax + l.price_tax)), 0),
			b.created_at
		FROM baskets b
		LEFT JOIN users u ON u.id = b.owner_id
		LEFT JOIN basket_lines l ON l.basket_id = b.id
		WHERE b.status = ? AND b.created_at <= ?
		GROUP BY b.id, u.email
		ORDER BY b.created_at, b.id
		LIMIT ? OFFSET ?
	`, status, query.Cutoff(), query.Page().Size, query.Page().Offset()).Rows()
	if err != nil {
		return listing, err
	}
	defer rows.Close()

	for rows.Next() {
		var cart GetAbandonedCartsQueryResponse
		var id uuid.UUID
		var ownerID uuid.NullUUID

		if err = rows.Scan(
			&id,
			&ownerID,
			&cart.OwnerEmail,
			&cart.Currency,
			&cart.NumLines,
			&cart.NumItems,
			&cart.TotalExclTax,
			&cart.TotalInclTax,
			&cart.CreatedAt,
		); err != nil {
			return listing, err
		}

		if cart.BasketID, err = kernel.UUIDFromGoogle(id); err != nil {
			return listing, err
		}
		if cart.OwnerID, err = optionalUUID(ownerID); err != nil {
			return listing, err
		}
		listing.Items = append(listing.Items, cart)
	}

	if err = rows.Err(); err != nil {
		return listing, err
	}

	return listing, nil
}

func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil //nolint:nilnil // absent is not an error
	}
	converted, err := kernel.UUIDFromGoogle(id.UUID)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
