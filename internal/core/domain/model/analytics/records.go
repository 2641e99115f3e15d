package analytics

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Score weights.
const (
	ViewWeight           = 1
	BasketAdditionWeight = 3
	PurchaseWeight       = 5
)

// ProductRecord counts how popular a product is.
type ProductRecord struct {
	ProductID          kernel.UUID
	NumViews           int
	NumBasketAdditions int
	NumPurchases       int
	Score              float64
}

// Score is the weighted mean of the counters.
func Score(numViews int, numBasketAdditions int, numPurchases int) float64 {
	weighted := numViews*ViewWeight + numBasketAdditions*BasketAdditionWeight + numPurchases*PurchaseWeight
	return float64(weighted) / float64(ViewWeight+BasketAdditionWeight+PurchaseWeight)
}

func (r *ProductRecord) CalculateScore() {
	r.Score = Score(r.NumViews, r.NumBasketAdditions, r.NumPurchases)
}

// UserRecord sums up a customer's activity.
type UserRecord struct {
	UserID             kernel.UUID
	NumProductViews    int
	NumBasketAdditions int
	NumOrders          int
	NumOrderLines      int
	NumOrderItems      int
	TotalSpent         decimal.Decimal
	DateLastOrder      *time.Time
}

// RecordOrder adds a placed order to the customer's totals.
func (r *UserRecord) RecordOrder(numLines int, numItems int, total decimal.Decimal, placedAt time.Time) {
	r.NumOrders++
	r.NumOrderLines += numLines
	r.NumOrderItems += numItems
	r.TotalSpent = r.TotalSpent.Add(total)
	at := placedAt.UTC()
	r.DateLastOrder = &at
}

type UserProductView struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	ProductID kernel.UUID
	CreatedAt time.Time
}

const SearchQueryMaxLength = 255

// UserSearch is a catalogue search. Anonymous searches have no user.
type UserSearch struct {
	ID          kernel.UUID
	UserID      *kernel.UUID
	Query       string
	ResultCount int
	CreatedAt   time.Time
}

func NewUserSearch(id kernel.UUID, userID *kernel.UUID, query string, resultCount int, createdAt time.Time) (UserSearch, error) {
	query = strings.TrimSpace(query)
	var queryErr, countErr error
	switch {
	case query == "":
		queryErr = errs.NewValueIsRequiredError("query")
	case utf8.RuneCountInString(query) > SearchQueryMaxLength:
		queryErr = errs.NewValueIsOutOfRangeError("query length", utf8.RuneCountInString(query), 1, SearchQueryMaxLength)
	}
	if resultCount < 0 {
		countErr = errs.NewValueIsOutOfRangeError("result count", resultCount, 0, "∞")
	}
	if err := errors.Join(id.Validate(), queryErr, countErr); err != nil {
		return UserSearch{}, err
	}
	return UserSearch{ID: id, UserID: userID, Query: query, ResultCount: resultCount, CreatedAt: createdAt.UTC()}, nil
}
