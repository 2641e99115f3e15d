package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/adapters/out/security"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/analytics"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/websession"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type fakeVisitorRepository struct {
	ports.VisitorRepository
	visitors  map[string]*analytics.Visitor
	pageViews []analytics.PageView
}

func (r *fakeVisitorRepository) Add(_ context.Context, v *analytics.Visitor) error {
	if _, ok := r.visitors[v.SessionKey()]; ok {
		return ports.ErrVisitorExists
	}
	r.visitors[v.SessionKey()] = v
	return nil
}

func (r *fakeVisitorRepository) Update(_ context.Context, v *analytics.Visitor) error {
	r.visitors[v.SessionKey()] = v
	return nil
}

func (r *fakeVisitorRepository) Get(_ context.Context, sessionKey string) (*analytics.Visitor, error) {
	v, ok := r.visitors[sessionKey]
	if !ok {
		return nil, errs.NewObjectNotFoundError("visitor", sessionKey)
	}
	return v, nil
}

func (r *fakeVisitorRepository) AddPageView(_ context.Context, pv analytics.PageView) error {
	r.pageViews = append(r.pageViews, pv)
	return nil
}

type visitorsOnlyUoW struct {
	visitors *fakeVisitorRepository
}

func (visitorsOnlyUoW) Begin(context.Context) error    { return nil }
func (visitorsOnlyUoW) Commit(context.Context) error   { return nil }
func (visitorsOnlyUoW) Rollback(context.Context) error { return nil }

func (u visitorsOnlyUoW) VisitorRepository() ports.VisitorRepository { return u.visitors }

func (visitorsOnlyUoW) AnalyticsRepository() ports.AnalyticsRepository { return nil }

type visitorsOnlyFactory struct{ uow visitorsOnlyUoW }

func (f visitorsOnlyFactory) Create() commands.TrackingUoW { return f.uow }

type TrackingSuite struct {
	suite.Suite

	echo     *echo.Echo
	visitors *fakeVisitorRepository
	cookies  *security.TrackingCookieCodec
}

func TestTrackingSuite(t *testing.T) {
	suite.Run(t, new(TrackingSuite))
}

func (s *TrackingSuite) SetupTest() {
	s.visitors = &fakeVisitorRepository{visitors: map[string]*analytics.Visitor{}}
	var err error
	s.cookies, err = security.NewTrackingCookieCodec("0123456789abcdef0123456789abcdef")
	s.Require().NoError(err)
	s.serve(Settings{TrackPageViews: true, TrackReferer: true, TrackQueryString: true})
}

// serve rebuilds the server with settings and mounts a page behind the
// same middleware chain the site routes use.
func (s *TrackingSuite) serve(settings Settings) {
	policy, err := analytics.NewTrackingPolicy(analytics.TrackingSettings{
		TrackAnonymous:   true,
		IgnoreURLs:       []string{"pages/ignored"},
		IgnoreUserAgents: []string{"curl"},
	})
	s.Require().NoError(err)

	server := NewServer(Deps{
		Settings: settings,
		Sessions: websession.NewManager(nil, websession.Options{}),
		Cookies:  s.cookies,
		Tracking: policy,
		Commands: Commands{
			TrackVisit: commands.NewTrackVisitCommandHandler(
				visitorsOnlyFactory{uow: visitorsOnlyUoW{visitors: s.visitors}}, nil, nil, zap.NewNop()),
		},
	})
	s.echo = echo.New()
	page := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	g := s.echo.Group("/pages", server.trackVisits, server.loadSession)
	g.GET("/home", page)
	g.GET("/ignored", page)
}

func (s *TrackingSuite) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Referer", "https://search.example.com/")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (s *TrackingSuite) Test_FirstVisitPinsANewSession() {
	rec := s.get("/pages/home?ref=mail")

	s.Require().Equal(http.StatusOK, rec.Code)
	session := cookieNamed(rec, websession.DefaultCookieName)
	s.Require().NotNil(session)
	tracker := cookieNamed(rec, "tracker")
	s.Require().NotNil(tracker)
	s.True(tracker.HttpOnly)

	s.Require().Len(s.visitors.visitors, 1)
	visitor, ok := s.visitors.visitors[session.Value]
	s.Require().True(ok)
	decoded, ok := s.cookies.Decode(tracker.Value)
	s.Require().True(ok)
	s.Equal(session.Value, decoded.SessionKey)
	s.Equal(visitor.Identity().String(), decoded.Identity)

	s.Require().Len(s.visitors.pageViews, 1)
	pv := s.visitors.pageViews[0]
	s.Equal("/pages/home", pv.URL)
	s.Equal(session.Value, pv.SessionKey)
	s.Require().NotNil(pv.Referer)
	s.Equal("https://search.example.com/", *pv.Referer)
	s.Require().NotNil(pv.QueryString)
	s.Equal("ref=mail", *pv.QueryString)
}

func (s *TrackingSuite) Test_TrackingCookieKeepsTheVisit() {
	first := s.get("/pages/home")
	tracker := cookieNamed(first, "tracker")
	s.Require().NotNil(tracker)

	// The browser dropped its session cookie but still holds the tracker.
	second := s.get("/pages/home", tracker)

	s.Equal(http.StatusOK, second.Code)
	s.Len(s.visitors.visitors, 1)
	s.Len(s.visitors.pageViews, 2)
	s.Equal(s.visitors.pageViews[0].SessionKey, s.visitors.pageViews[1].SessionKey)
	s.Nil(cookieNamed(second, websession.DefaultCookieName))
	reissued := cookieNamed(second, "tracker")
	s.Require().NotNil(reissued)
	decoded, ok := s.cookies.Decode(reissued.Value)
	s.Require().True(ok)
	s.Equal(s.visitors.pageViews[0].SessionKey, decoded.SessionKey)
}

func (s *TrackingSuite) Test_IgnoredURLIsNotTracked() {
	rec := s.get("/pages/ignored")

	s.Equal(http.StatusOK, rec.Code)
	s.Empty(s.visitors.visitors)
	s.Empty(s.visitors.pageViews)
	s.Nil(cookieNamed(rec, "tracker"))
	s.Nil(cookieNamed(rec, websession.DefaultCookieName))
}

func (s *TrackingSuite) Test_IgnoredUserAgentIsNotTracked() {
	req := httptest.NewRequest(http.MethodGet, "/pages/home", nil)
	req.Header.Set("User-Agent", "curl/8.5.0")
	rec := httptest.NewRecorder()

	s.echo.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Empty(s.visitors.visitors)
	s.Nil(cookieNamed(rec, "tracker"))
}

func (s *TrackingSuite) Test_RefererAndQueryStringFollowSettings() {
	s.serve(Settings{TrackPageViews: true})

	s.get("/pages/home?ref=mail")

	s.Require().Len(s.visitors.pageViews, 1)
	s.Nil(s.visitors.pageViews[0].Referer)
	s.Nil(s.visitors.pageViews[0].QueryString)
}

func (s *TrackingSuite) Test_PageViewsOff() {
	s.serve(Settings{})

	rec := s.get("/pages/home")

	s.Len(s.visitors.visitors, 1)
	s.Empty(s.visitors.pageViews)
	s.NotNil(cookieNamed(rec, "tracker"))
}
