package postgres

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/adapters/out/postgres/addressrepo"
	"storefront/internal/adapters/out/postgres/analyticsrepo"
	"storefront/internal/adapters/out/postgres/basketrepo"
	"storefront/internal/adapters/out/postgres/cataloguerepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/reviewrepo"
	"storefront/internal/adapters/out/postgres/shippingrepo"
	"storefront/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the store, parents before children.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&cataloguerepo.ProductDTO{},
		&cataloguerepo.StockRecordDTO{},
		&basketrepo.BasketDTO{},
		&basketrepo.BasketLineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&orderrepo.NoteDTO{},
		&addressrepo.UserAddressDTO{},
		&shippingrepo.MethodDTO{},
		&shippingrepo.WeightBandDTO{},
		&analyticsrepo.VisitorDTO{},
		&analyticsrepo.PageViewDTO{},
		&analyticsrepo.ProductRecordDTO{},
		&analyticsrepo.UserRecordDTO{},
		&analyticsrepo.UserProductViewDTO{},
		&analyticsrepo.UserSearchDTO{},
		&reviewrepo.ReviewDTO{},
		&reviewrepo.VoteDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := db.Exec("CREATE SEQUENCE IF NOT EXISTS " + orderrepo.NumberSequence).Error; err != nil {
		return fmt.Errorf("create %s: %w", orderrepo.NumberSequence, err)
	}
	return nil
}

// Truncate empties every table. Tests call it between cases.
func Truncate(ctx context.Context, db *gorm.DB) error {
	models := Models()
	tables := make([]string, 0, len(models))
	for _, m := range models {
		if t, ok := m.(interface{ TableName() string }); ok {
			tables = append(tables, t.TableName())
		}
	}
	return db.WithContext(ctx).Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " CASCADE").Error
}
