package queries

import (
	"context"
	"database/sql"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle orders products newest first.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) (Listing[GetProductsQueryResponse], error) {
	if err := query.Validate(); err != nil {
		return Listing[GetProductsQueryResponse]{}, err
	}

	listing := Listing[GetProductsQueryResponse]{
		Items: make([]GetProductsQueryResponse, 0),
		Page:  query.Page(),
	}

	where := `WHERE (NOT @enabled_only OR p.is_enabled)
		AND (@search = '' OR p.title ILIKE '%' || @search || '%' OR p.upc = @search)`
	args := map[string]any{
		"enabled_only": query.EnabledOnly(),
		"search":       query.Search(),
		"limit":        query.Page().Size,
		"offset":       query.Page().Offset(),
	}

	db := h.db.WithContext(ctx)
	if err := db.Raw(`SELECT count(*) FROM products p `+where, args).Scan(&listing.Total).Error; err != nil {
		return listing, err
	}

	rows, err := db.Raw(`
		SELECT
			p.id,
			p.title,
			coalesce(p.upc, ''),
			p.is_enabled,
			p.is_shipping_required,
			sr.currency,
			sr.price_excl_tax,
			sr.num_in_stock - sr.num_allocated
		FROM products p
		LEFT JOIN LATERAL (
			SELECT currency, price_excl_tax, num_in_stock, num_allocated
			FROM stock_records
			WHERE product_id = p.id
			ORDER BY created_at, id
			LIMIT 1
		) sr ON true
		`+where+`
		ORDER BY p.created_at DESC, p.id
		LIMIT @limit OFFSET @offset
	`, args).Rows()
	if err != nil {
		return listing, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetProductsQueryResponse
		var id uuid.UUID
		var currency sql.NullString
		var price decimal.NullDecimal
		var stock sql.NullInt64

		if err = rows.Scan(
			&id,
			&item.Title,
			&item.UPC,
			&item.IsEnabled,
			&item.IsShippingRequired,
			&currency,
			&price,
			&stock,
		); err != nil {
			return listing, err
		}

		productID, idErr := kernel.UUIDFromGoogle(id)
		if idErr != nil {
			return listing, idErr
		}
		item.ID = productID
		if currency.Valid {
			item.Currency = &currency.String
		}
		if price.Valid {
			item.PriceExclTax = &price.Decimal
		}
		if stock.Valid {
			level := int(stock.Int64)
			item.NetStockLevel = &level
		}
		listing.Items = append(listing.Items, item)
	}

	if err = rows.Err(); err != nil {
		return listing, err
	}

	return listing, nil
}
