package queries

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetProductAnalyticsQueryIsNotConstructed = errors.New(
	"GetProductAnalyticsQuery must be created via NewGetProductAnalyticsQuery constructor",
)

// Product analytics orderings. All of them are descending.
const (
	ProductAnalyticsByScore          = "score"
	ProductAnalyticsByViews          = "views"
	ProductAnalyticsByBasketAddition = "basket_additions"
	ProductAnalyticsByPurchases      = "purchases"
)

func productAnalyticsColumns() map[string]string {
	return map[string]string{
		ProductAnalyticsByScore:          "r.score",
		ProductAnalyticsByViews:          "r.num_views",
		ProductAnalyticsByBasketAddition: "r.num_basket_additions",
		ProductAnalyticsByPurchases:      "r.num_purchases",
	}
}

type GetProductAnalyticsQuery struct {
	orderBy string
	page    Page

	guard guard.ConstructorGuard
}

// NewGetProductAnalyticsQuery defaults to ordering by score.
func NewGetProductAnalyticsQuery(orderBy string, page Page) (GetProductAnalyticsQuery, error) {
	if orderBy == "" {
		orderBy = ProductAnalyticsByScore
	}
	if _, ok := productAnalyticsColumns()[orderBy]; !ok {
		return GetProductAnalyticsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"order by", fmt.Errorf("%q is not a product analytics ordering", orderBy))
	}
	return GetProductAnalyticsQuery{orderBy: orderBy, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductAnalyticsQueryIsNotConstructed)
}

func (q GetProductAnalyticsQuery) Page() Page { return q.page }

func (q GetProductAnalyticsQuery) column() string {
	return productAnalyticsColumns()[q.orderBy]
}

type GetProductAnalyticsQueryResponse struct {
	ProductID          kernel.UUID
	Title              string
	NumViews           int
	NumBasketAdditions int
	NumPurchases       int
	Score              float64
}
