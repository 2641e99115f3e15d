package ports

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/analytics"
	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ErrVisitorExists is returned by VisitorRepository.Add when another request
// stored the same session key first.
var ErrVisitorExists = errors.New("visitor already exists")

type VisitorRepository interface {
	Add(ctx context.Context, v *analytics.Visitor) error
	Update(ctx context.Context, v *analytics.Visitor) error
	Get(ctx context.Context, sessionKey string) (*analytics.Visitor, error)
	Delete(ctx context.Context, sessionKey string) error
	// DeleteExpired removes visitors whose session expired before cutoff,
	// page views included.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
	AddPageView(ctx context.Context, pv analytics.PageView) error
}

// AnalyticsRepository keeps the running counters behind the reports.
// Counters are created on first use.
type AnalyticsRepository interface {
	RecordProductView(ctx context.Context, productID kernel.UUID, userID *kernel.UUID, at time.Time) error
	RecordBasketAddition(ctx context.Context, productID kernel.UUID, userID *kernel.UUID) error
	RecordPurchase(ctx context.Context, productID kernel.UUID, quantity int) error
	RecordUserOrder(ctx context.Context, userID kernel.UUID, numLines int, numItems int, total decimal.Decimal, at time.Time) error
	RecordSearch(ctx context.Context, search analytics.UserSearch) error

	// RecalculateProductScores refreshes every product score and returns the
	// number of records updated.
	RecalculateProductScores(ctx context.Context) (int64, error)
}
