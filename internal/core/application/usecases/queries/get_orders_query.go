package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// OrderFilter narrows the order list. A customer's order history sets
// UserID; the dashboard may filter by status.
type OrderFilter struct {
	UserID *kernel.UUID
	Status *order.Status
	Number string
}

type GetOrdersQuery struct {
	filter OrderFilter
	page   Page

	guard guard.ConstructorGuard
}

func NewGetOrdersQuery(filter OrderFilter, page Page) (GetOrdersQuery, error) {
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	return GetOrdersQuery{filter: filter, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Filter() OrderFilter { return q.filter }
func (q GetOrdersQuery) Page() Page          { return q.page }

type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	Number       string
	Status       order.Status
	UserID       *kernel.UUID
	Email        string
	Currency     string
	NumItems     int
	TotalInclTax decimal.Decimal
	PlacedAt     time.Time
}
