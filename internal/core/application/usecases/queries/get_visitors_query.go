package queries

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/analytics"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetVisitorsQueryIsNotConstructed = errors.New(
	"GetVisitorsQuery must be created via NewGetVisitorsQuery constructor",
)

// VisitorFilter narrows the visitor report. Search matches the IP address,
// session key or user agent.
type VisitorFilter struct {
	IsBot        *bool
	Search       string
	StartedAfter *time.Time
}

type GetVisitorsQuery struct {
	filter VisitorFilter
	page   Page

	guard guard.ConstructorGuard
}

func NewGetVisitorsQuery(filter VisitorFilter, page Page) GetVisitorsQuery {
	filter.Search = strings.TrimSpace(filter.Search)
	return GetVisitorsQuery{filter: filter, page: page, guard: guard.NewConstructorGuard()}
}

func (q GetVisitorsQuery) Validate() error {
	return q.guard.Validate(ErrGetVisitorsQueryIsNotConstructed)
}

func (q GetVisitorsQuery) Filter() VisitorFilter { return q.filter }
func (q GetVisitorsQuery) Page() Page            { return q.page }

// GetVisitorsQueryResponse summarises one visit. LandingPage is the URL of
// the latest page view.
type GetVisitorsQueryResponse struct {
	SessionKey   string
	Identity     kernel.UUID
	UserID       *kernel.UUID
	IPAddress    string
	Hostname     string
	StartTime    time.Time
	TimeOnSite   time.Duration
	IsBot        bool
	Client       *analytics.UserAgentData
	NumPageViews int
	LandingPage  string
	SessionOver  bool
}
