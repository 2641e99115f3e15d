package queries_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage_DefaultsZeroValues(t *testing.T) {
	page, err := queries.NewPage(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, queries.DefaultPageSize, page.Size)
	assert.Equal(t, 0, page.Offset())
}

func TestNewPage_Offset(t *testing.T) {
	page, err := queries.NewPage(3, 25)
	require.NoError(t, err)
	assert.Equal(t, 50, page.Offset())
}

func TestNewPage_OutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		number int
		size   int
	}{
		{"negative page", -1, 10},
		{"negative size", 1, -5},
		{"size above max", 1, queries.MaxPageSize + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewPage(tt.number, tt.size)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		})
	}
}

func TestListing_NumPages(t *testing.T) {
	page, err := queries.NewPage(1, 10)
	require.NoError(t, err)

	assert.Equal(t, 0, queries.Listing[int]{Total: 0, Page: page}.NumPages())
	assert.Equal(t, 1, queries.Listing[int]{Total: 10, Page: page}.NumPages())
	assert.Equal(t, 3, queries.Listing[int]{Total: 21, Page: page}.NumPages())
	assert.Equal(t, 0, queries.Listing[int]{Total: 5}.NumPages())
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name  string
		query interface{ Validate() error }
		want  error
	}{
		{"products", queries.GetProductsQuery{}, queries.ErrGetProductsQueryIsNotConstructed},
		{"abandoned carts", queries.GetAbandonedCartsQuery{}, queries.ErrGetAbandonedCartsQueryIsNotConstructed},
		{"product analytics", queries.GetProductAnalyticsQuery{}, queries.ErrGetProductAnalyticsQueryIsNotConstructed},
		{"customer analytics", queries.GetCustomerAnalyticsQuery{}, queries.ErrGetCustomerAnalyticsQueryIsNotConstructed},
		{"searches", queries.GetSearchesQuery{}, queries.ErrGetSearchesQueryIsNotConstructed},
		{"visitors", queries.GetVisitorsQuery{}, queries.ErrGetVisitorsQueryIsNotConstructed},
		{"page views", queries.GetPageViewsQuery{}, queries.ErrGetPageViewsQueryIsNotConstructed},
		{"orders", queries.GetOrdersQuery{}, queries.ErrGetOrdersQueryIsNotConstructed},
		{"reviews", queries.GetReviewsQuery{}, queries.ErrGetReviewsQueryIsNotConstructed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewGetProductsQuery_TrimsSearch(t *testing.T) {
	query := queries.NewGetProductsQuery(queries.Page{Number: 1, Size: 10}, "  hamlet ", true)
	require.NoError(t, query.Validate())
	assert.Equal(t, "hamlet", query.Search())
	assert.True(t, query.EnabledOnly())
}

func TestNewGetAbandonedCartsQuery_CutoffIsAWeekBack(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	query := queries.NewGetAbandonedCartsQuery(now, queries.Page{Number: 1, Size: 10})
	require.NoError(t, query.Validate())
	assert.Equal(t, time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC), query.Cutoff())
}

func TestNewGetProductAnalyticsQuery(t *testing.T) {
	query, err := queries.NewGetProductAnalyticsQuery("", queries.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetProductAnalyticsQuery(queries.ProductAnalyticsByPurchases, queries.Page{Number: 1, Size: 10})
	require.NoError(t, err)

	_, err = queries.NewGetProductAnalyticsQuery("num_views; DROP TABLE users", queries.Page{Number: 1, Size: 10})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetOrdersQuery_RejectsUnknownStatus(t *testing.T) {
	status := order.Status(42)
	_, err := queries.NewGetOrdersQuery(queries.OrderFilter{Status: &status}, queries.Page{Number: 1, Size: 10})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	shipped := order.Shipped
	query, err := queries.NewGetOrdersQuery(queries.OrderFilter{Status: &shipped}, queries.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, order.Shipped, *query.Filter().Status)
}

func TestNewGetReviewsQuery(t *testing.T) {
	_, err := queries.NewGetReviewsQuery(kernel.UUID{}, "", true, queries.Page{Number: 1, Size: 10})
	require.Error(t, err)

	query, err := queries.NewGetReviewsQuery(kernel.NewUUID(), "bogus", true, queries.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, review.SortByHelpfulness, query.SortBy())

	query, err = queries.NewGetReviewsQuery(kernel.NewUUID(), review.SortByScore, false, queries.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, review.SortByScore, query.SortBy())
	assert.False(t, query.ApprovedOnly())
}
