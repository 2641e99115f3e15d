package queries

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetSearchesQueryIsNotConstructed = errors.New(
	"GetSearchesQuery must be created via NewGetSearchesQuery constructor",
)

// GetSearchesQuery lists catalogue searches, newest first. A non-empty
// filter keeps searches whose text contains it.
type GetSearchesQuery struct {
	filter string
	page   Page

	guard guard.ConstructorGuard
}

func NewGetSearchesQuery(filter string, page Page) GetSearchesQuery {
	return GetSearchesQuery{filter: strings.TrimSpace(filter), page: page, guard: guard.NewConstructorGuard()}
}

func (q GetSearchesQuery) Validate() error {
	return q.guard.Validate(ErrGetSearchesQueryIsNotConstructed)
}

func (q GetSearchesQuery) Filter() string { return q.filter }
func (q GetSearchesQuery) Page() Page     { return q.page }

type GetSearchesQueryResponse struct {
	ID          kernel.UUID
	UserID      *kernel.UUID
	UserEmail   string
	Query       string
	ResultCount int
	CreatedAt   time.Time
}
