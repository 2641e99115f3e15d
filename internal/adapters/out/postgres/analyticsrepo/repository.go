package analyticsrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/analytics"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormVisitorRepository implements ports.VisitorRepository.
type GormVisitorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormVisitorRepository(db *gorm.DB, tracker aggregateTracker) *GormVisitorRepository {
	return &GormVisitorRepository{db: db, tracker: tracker}
}

// Add leaves the transaction usable when another request stored the same
// session key first and reports that as ports.ErrVisitorExists.
func (r *GormVisitorRepository) Add(ctx context.Context, v *analytics.Visitor) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := visitorFromDomain(v)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Omit("PageViews").Create(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrVisitorExists
	}

	r.tracker.TrackAggregate(v.Identity(), v)
	return nil
}

func (r *GormVisitorRepository) Update(ctx context.Context, v *analytics.Visitor) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := visitorFromDomain(v)
	result := r.db.WithContext(ctx).Model(&VisitorDTO{}).Where("session_key = ?", dto.SessionKey).
		Select("*").Omit("session_key", "identity", "start_time", "PageViews").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("visitor", dto.SessionKey)
	}

	r.tracker.TrackAggregate(v.Identity(), v)
	return nil
}

func (r *GormVisitorRepository) Get(ctx context.Context, sessionKey string) (*analytics.Visitor, error) {
	var dto VisitorDTO
	if err := r.db.WithContext(ctx).First(&dto, "session_key = ?", sessionKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("visitor", sessionKey)
		}
		return nil, err
	}

	return visitorToDomain(dto)
}

func (r *GormVisitorRepository) Delete(ctx context.Context, sessionKey string) error {
	result := r.db.WithContext(ctx).Delete(&VisitorDTO{}, "session_key = ?", sessionKey)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("visitor", sessionKey)
	}
	return nil
}

func (r *GormVisitorRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&VisitorDTO{}, "expiry_time < ?", cutoff.UTC())
	return result.RowsAffected, result.Error
}

func (r *GormVisitorRepository) AddPageView(ctx context.Context, pv analytics.PageView) error {
	dto := PageViewDTO{
		ID:          pv.ID.Bytes(),
		SessionKey:  pv.SessionKey,
		URL:         pv.URL,
		Referer:     pv.Referer,
		QueryString: pv.QueryString,
		Method:      pv.Method,
		ViewTime:    pv.ViewTime.UTC(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GormAnalyticsRepository implements ports.AnalyticsRepository with upserts,
// so counters come into existence on first use.
type GormAnalyticsRepository struct {
	db *gorm.DB
}

func NewGormAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

func (r *GormAnalyticsRepository) RecordProductView(
	ctx context.Context,
	productID kernel.UUID,
	userID *kernel.UUID,
	at time.Time,
) error {
	db := r.db.WithContext(ctx)
	if err := r.bumpProduct(db, productID, "num_views", 1); err != nil {
		return err
	}
	if userID == nil {
		return nil
	}
	if err := r.bumpUser(db, *userID, "num_product_views"); err != nil {
		return err
	}
	return db.Create(&UserProductViewDTO{
		ID:        uuid.New(),
		UserID:    userID.Bytes(),
		ProductID: productID.Bytes(),
		CreatedAt: at.UTC(),
	}).Error
}

func (r *GormAnalyticsRepository) RecordBasketAddition(ctx context.Context, productID kernel.UUID, userID *kernel.UUID) error {
	db := r.db.WithContext(ctx)
	if err := r.bumpProduct(db, productID, "num_basket_additions", 1); err != nil {
		return err
	}
	if userID == nil {
		return nil
	}
	return r.bumpUser(db, *userID, "num_basket_additions")
}

func (r *GormAnalyticsRepository) RecordPurchase(ctx context.Context, productID kernel.UUID, quantity int) error {
	return r.bumpProduct(r.db.WithContext(ctx), productID, "num_purchases", quantity)
}

func (r *GormAnalyticsRepository) RecordUserOrder(
	ctx context.Context,
	userID kernel.UUID,
	numLines int,
	numItems int,
	total decimal.Decimal,
	at time.Time,
) error {
	placedAt := at.UTC()
	rec := UserRecordDTO{
		UserID:        userID.Bytes(),
		NumOrders:     1,
		NumOrderLines: numLines,
		NumOrderItems: numItems,
		TotalSpent:    total,
		DateLastOrder: &placedAt,
	}
	const t = "analytics_user_records"
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"num_orders":      gorm.Expr(t + ".num_orders + 1"),
			"num_order_lines": gorm.Expr(t+".num_order_lines + ?", numLines),
			"num_order_items": gorm.Expr(t+".num_order_items + ?", numItems),
			"total_spent":     gorm.Expr(t+".total_spent + ?", total),
			"date_last_order": placedAt,
		}),
	}).Create(&rec).Error
}

func (r *GormAnalyticsRepository) RecordSearch(ctx context.Context, search analytics.UserSearch) error {
	dto := UserSearchDTO{
		ID:          search.ID.Bytes(),
		UserID:      optionalID(search.UserID),
		Query:       search.Query,
		ResultCount: search.ResultCount,
		CreatedAt:   search.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormAnalyticsRepository) RecalculateProductScores(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Exec(fmt.Sprintf(
		"UPDATE analytics_product_records SET score = (num_views * %d + num_basket_additions * %d + num_purchases * %d)::float8 / %d",
		analytics.ViewWeight, analytics.BasketAdditionWeight, analytics.PurchaseWeight,
		analytics.ViewWeight+analytics.BasketAdditionWeight+analytics.PurchaseWeight,
	))
	return result.RowsAffected, result.Error
}

func (r *GormAnalyticsRepository) bumpProduct(db *gorm.DB, productID kernel.UUID, column string, by int) error {
	rec := ProductRecordDTO{ProductID: productID.Bytes()}
	switch column {
	case "num_views":
		rec.NumViews = by
	case "num_basket_additions":
		rec.NumBasketAdditions = by
	case "num_purchases":
		rec.NumPurchases = by
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			column: gorm.Expr("analytics_product_records."+column+" + ?", by),
		}),
	}).Create(&rec).Error
}

func (r *GormAnalyticsRepository) bumpUser(db *gorm.DB, userID kernel.UUID, column string) error {
	rec := UserRecordDTO{UserID: userID.Bytes()}
	switch column {
	case "num_product_views":
		rec.NumProductViews = 1
	case "num_basket_additions":
		rec.NumBasketAdditions = 1
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			column: gorm.Expr("analytics_user_records." + column + " + 1"),
		}),
	}).Create(&rec).Error
}
