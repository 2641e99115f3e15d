package http

import (
	"net/http"
	"strings"
	"time"

	"storefront/internal/adapters/out/security"
	"storefront/internal/core/application/checkout"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/analytics"
	"storefront/internal/core/domain/model/partner"
	"storefront/internal/core/ports"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/websession"

	"github.com/alexedwards/scs/v2"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// TokenVerifier checks bearer tokens issued at login.
type TokenVerifier interface {
	Verify(token string) (*security.Claims, error)
}

// CookieCodec signs the visitor tracking cookie.
type CookieCodec interface {
	Encode(c analytics.TrackingCookie) (string, error)
	Decode(value string) (analytics.TrackingCookie, bool)
}

// Settings tune the web layer. Zero durations and limits switch the
// matching feature off.
type Settings struct {
	Currency           string
	SecureCookies      bool
	TrackingCookieName string
	TrackPageViews     bool
	TrackReferer       bool
	TrackQueryString   bool
	RateLimit          float64
	RateBurst          int
}

// Commands are the state-changing use cases the routes call.
type Commands struct {
	AddToBasket          commands.AddToBasketCommandHandler
	UpdateBasketLine     commands.UpdateBasketLineCommandHandler
	PlaceOrder           commands.PlaceOrderCommandHandler
	RegisterUser         commands.RegisterUserCommandHandler
	Login                commands.LoginCommandHandler
	UserAddresses        commands.UserAddressCommandHandler
	Reviews              commands.ReviewCommandHandler
	CreateProduct        commands.CreateProductCommandHandler
	SetProductEnabled    commands.SetProductEnabledCommandHandler
	AddOrderNote         commands.AddOrderNoteCommandHandler
	ChangeOrderStatus    commands.ChangeOrderStatusCommandHandler
	CreateShippingMethod commands.CreateShippingMethodCommandHandler
	UpdateShippingMethod commands.UpdateShippingMethodCommandHandler
	DeleteShippingMethod commands.DeleteShippingMethodCommandHandler
	WeightBands          commands.WeightBandCommandHandler
	TrackVisit           commands.TrackVisitCommandHandler
	Tracking             commands.TrackingCommandHandler
}

// Queries are the read models behind listings and reports.
type Queries struct {
	Products          queries.GetProductsQueryHandler
	Orders            queries.GetOrdersQueryHandler
	Reviews           queries.GetReviewsQueryHandler
	ProductAnalytics  queries.GetProductAnalyticsQueryHandler
	CustomerAnalytics queries.GetCustomerAnalyticsQueryHandler
	Searches          queries.GetSearchesQueryHandler
	AbandonedCarts    queries.GetAbandonedCartsQueryHandler
	Visitors          queries.GetVisitorsQueryHandler
	PageViews         queries.GetPageViewsQueryHandler
}

// Deps is everything NewServer needs. Registry may be nil, and a nil
// Sessions keeps web sessions in memory.
type Deps struct {
	Settings   Settings
	Logger     *zap.Logger
	UoWFactory ports.UnitOfWorkFactory
	Sessions   *scs.SessionManager
	Tokens     TokenVerifier
	Cookies    CookieCodec
	Tracking   *analytics.TrackingPolicy
	Flow       *checkout.Flow
	Strategy   partner.Strategy
	Commands   Commands
	Queries    Queries
	Registry   *prometheus.Registry
}

// Server turns HTTP requests into use case calls.
type Server struct {
	settings Settings
	logger   *zap.Logger
	uow      ports.UnitOfWorkFactory
	sessions *scs.SessionManager
	tokens   TokenVerifier
	cookies  CookieCodec
	tracking *analytics.TrackingPolicy
	flow     *checkout.Flow
	strategy partner.Strategy
	cmd      Commands
	qry      Queries
	metrics  *metrics
	now      func() time.Time
}

func NewServer(d Deps) *Server {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
	}
	if d.Sessions == nil {
		d.Sessions = websession.NewManager(nil, websession.Options{Secure: d.Settings.SecureCookies})
	}
	if d.Settings.TrackingCookieName == "" {
		d.Settings.TrackingCookieName = "tracker"
	}
	return &Server{
		settings: d.Settings,
		logger:   d.Logger,
		uow:      d.UoWFactory,
		sessions: d.Sessions,
		tokens:   d.Tokens,
		cookies:  d.Cookies,
		tracking: d.Tracking,
		flow:     d.Flow,
		strategy: d.Strategy,
		cmd:      d.Commands,
		qry:      d.Queries,
		metrics:  newMetrics(d.Registry),
		now:      time.Now,
	}
}

var _ servers.ServerInterface = (*Server)(nil)

// RegisterHandlers installs middleware and every route on e.
func (s *Server) RegisterHandlers(e *echo.Echo) error {
	if err := registerDocs(); err != nil {
		return err
	}

	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.Recover())
	e.Use(s.logRequests())
	e.Use(s.metrics.middleware)

	e.GET("/metrics", echo.WrapHandler(s.metrics.handler()))
	e.GET("/openapi.json", serveOpenAPI)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Tracking runs outermost so its hook sees the session and user the
	// inner middleware attach, and runs before the session is saved.
	site := e.Group("", s.trackVisits, s.loadSession, s.authenticate)
	if limiter := s.rateLimiter(); limiter != nil {
		site.Use(limiter)
	}

	servers.RegisterHandlers(&siteRouter{
		root:      e,
		site:      site,
		user:      s.requireUser,
		dashboard: s.requireDashboardUser,
	}, s)

	return nil
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// publicAccountPaths are the account routes open to anonymous visitors.
var publicAccountPaths = map[string]bool{
	"/accounts/register/": true,
	"/accounts/login/":    true,
}

// siteRouter mounts the generated routes. Shop routes go on the site group;
// account and dashboard routes get their access check first. The health
// check stays outside the session and tracking middleware.
type siteRouter struct {
	root      *echo.Echo
	site      *echo.Group
	user      echo.MiddlewareFunc
	dashboard echo.MiddlewareFunc
}

func (r *siteRouter) add(method, path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	switch {
	case path == "/health":
		return r.root.Add(method, path, h, m...)
	case strings.HasPrefix(path, "/dashboard/"):
		m = append([]echo.MiddlewareFunc{r.dashboard}, m...)
	case strings.HasPrefix(path, "/accounts/") && !publicAccountPaths[path]:
		m = append([]echo.MiddlewareFunc{r.user}, m...)
	}
	return r.site.Add(method, path, h, m...)
}

func (r *siteRouter) CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodConnect, path, h, m...)
}

func (r *siteRouter) DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodDelete, path, h, m...)
}

func (r *siteRouter) GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodGet, path, h, m...)
}

func (r *siteRouter) HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodHead, path, h, m...)
}

func (r *siteRouter) OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodOptions, path, h, m...)
}

func (r *siteRouter) PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodPatch, path, h, m...)
}

func (r *siteRouter) POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodPost, path, h, m...)
}

func (r *siteRouter) PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodPut, path, h, m...)
}

func (r *siteRouter) TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.add(http.MethodTrace, path, h, m...)
}
