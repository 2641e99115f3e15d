package analytics_test

import (
	"strings"
	"testing"
	"time"

	"storefront/internal/core/domain/model/analytics"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRecord_CalculateScore(t *testing.T) {
	r := analytics.ProductRecord{NumViews: 9, NumBasketAdditions: 3, NumPurchases: 9}

	r.CalculateScore()

	assert.InDelta(t, 7.0, r.Score, 1e-9)
	assert.Zero(t, analytics.Score(0, 0, 0))
}

func TestUserRecord_RecordOrder(t *testing.T) {
	var r analytics.UserRecord
	placed := time.Now()

	r.RecordOrder(2, 5, decimal.RequireFromString("19.99"), placed)
	r.RecordOrder(1, 1, decimal.RequireFromString("0.01"), placed)

	assert.Equal(t, 2, r.NumOrders)
	assert.Equal(t, 3, r.NumOrderLines)
	assert.Equal(t, 6, r.NumOrderItems)
	assert.Equal(t, "20", r.TotalSpent.String())
	require.NotNil(t, r.DateLastOrder)
}

func TestNewUserSearch(t *testing.T) {
	s, err := analytics.NewUserSearch(kernel.NewUUID(), nil, "  green tea ", 4, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "green tea", s.Query)

	_, err = analytics.NewUserSearch(kernel.NewUUID(), nil, strings.Repeat("a", 256), 0, time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = analytics.NewUserSearch(kernel.NewUUID(), nil, "", -1, time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
