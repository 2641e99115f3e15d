package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// AbandonedAfter is how long an open basket sits untouched before the
// dashboard reports it.
const AbandonedAfter = 7 * 24 * time.Hour

var ErrGetAbandonedCartsQueryIsNotConstructed = errors.New(
	"GetAbandonedCartsQuery must be created via NewGetAbandonedCartsQuery constructor",
)

type GetAbandonedCartsQuery struct {
	cutoff time.Time
	page   Page

	guard guard.ConstructorGuard
}

// NewGetAbandonedCartsQuery reports open baskets created AbandonedAfter
// before now or earlier.
func NewGetAbandonedCartsQuery(now time.Time, page Page) GetAbandonedCartsQuery {
	return GetAbandonedCartsQuery{
		cutoff: now.Add(-AbandonedAfter).UTC(),
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}
}

func (q GetAbandonedCartsQuery) Validate() error {
	return q.guard.Validate(ErrGetAbandonedCartsQueryIsNotConstructed)
}

func (q GetAbandonedCartsQuery) Cutoff() time.Time { return q.cutoff }
func (q GetAbandonedCartsQuery) Page() Page        { return q.page }

type GetAbandonedCartsQueryResponse struct {
	BasketID     kernel.UUID
	OwnerID      *kernel.UUID
	OwnerEmail   string
	Currency     string
	NumLines     int
	NumItems     int
	TotalExclTax decimal.Decimal
	TotalInclTax decimal.Decimal
	CreatedAt    time.Time
}
