package queries

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetPageViewsQueryIsNotConstructed = errors.New(
	"GetPageViewsQuery must be created via NewGetPageViewsQuery constructor",
)

// PageViewFilter keeps the page views of one visit, one address, or both.
type PageViewFilter struct {
	SessionKey string
	IPAddress  string
}

type GetPageViewsQuery struct {
	filter PageViewFilter
	page   Page

	guard guard.ConstructorGuard
}

func NewGetPageViewsQuery(filter PageViewFilter, page Page) GetPageViewsQuery {
	filter.SessionKey = strings.TrimSpace(filter.SessionKey)
	filter.IPAddress = strings.TrimSpace(filter.IPAddress)
	return GetPageViewsQuery{filter: filter, page: page, guard: guard.NewConstructorGuard()}
}

func (q GetPageViewsQuery) Validate() error {
	return q.guard.Validate(ErrGetPageViewsQueryIsNotConstructed)
}

func (q GetPageViewsQuery) Filter() PageViewFilter { return q.filter }
func (q GetPageViewsQuery) Page() Page             { return q.page }

// GetPageViewsQueryResponse carries Path, the URL with its query string.
type GetPageViewsQueryResponse struct {
	ID         kernel.UUID
	SessionKey string
	Path       string
	Referer    string
	Method     string
	ViewTime   time.Time
}
