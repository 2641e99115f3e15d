package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCustomerAnalyticsQueryIsNotConstructed = errors.New(
	"GetCustomerAnalyticsQuery must be created via NewGetCustomerAnalyticsQuery constructor",
)

// GetCustomerAnalyticsQuery lists customers by how much they spent.
type GetCustomerAnalyticsQuery struct {
	page Page

	guard guard.ConstructorGuard
}

func NewGetCustomerAnalyticsQuery(page Page) GetCustomerAnalyticsQuery {
	return GetCustomerAnalyticsQuery{page: page, guard: guard.NewConstructorGuard()}
}

func (q GetCustomerAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerAnalyticsQueryIsNotConstructed)
}

func (q GetCustomerAnalyticsQuery) Page() Page { return q.page }

type GetCustomerAnalyticsQueryResponse struct {
	UserID             kernel.UUID
	Email              string
	NumProductViews    int
	NumBasketAdditions int
	NumOrders          int
	NumOrderLines      int
	NumOrderItems      int
	TotalSpent         decimal.Decimal
	DateLastOrder      *time.Time
}
