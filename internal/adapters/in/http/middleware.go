package http

import (
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/analytics"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/websession"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	ctxSession = "storefront.session"
	ctxUser    = "storefront.user"

	// visitStartedKey pins a fresh session that a visitor row points at.
	visitStartedKey = "visit_started"
)

func currentSession(c echo.Context) *websession.Session {
	s, _ := c.Get(ctxSession).(*websession.Session)
	return s
}

// currentUser is nil for anonymous requests.
func currentUser(c echo.Context) *user.User {
	u, _ := c.Get(ctxUser).(*user.User)
	return u
}

func currentUserID(c echo.Context) *kernel.UUID {
	u := currentUser(c)
	if u == nil {
		return nil
	}
	id := u.ID()
	return &id
}

// loadSession restores the web session named by the session cookie and
// saves it back just before the response headers go out.
func (s *Server) loadSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := ""
		if cookie, err := c.Cookie(s.sessions.Cookie.Name); err == nil {
			token = cookie.Value
		}
		sess, err := websession.Load(c.Request().Context(), s.sessions, token)
		if err != nil {
			return err
		}

		c.Set(ctxSession, sess)
		c.Response().Before(func() {
			if err := sess.Save(c.Response()); err != nil {
				s.logger.Error("saving session", zap.Error(err))
			}
		})
		return next(c)
	}
}

// authenticate attaches the user named by a bearer token. Requests without
// a token stay anonymous; a bad token is rejected.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request())
		if !ok {
			return next(c)
		}

		claims, err := s.tokens.Verify(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}
		id, err := claims.UserID()
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		u, err := s.uow.Create().UserRepository().Get(c.Request().Context(), id)
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		case err != nil:
			return err
		case !u.IsActive():
			return echo.NewHTTPError(http.StatusUnauthorized, "This account is inactive")
		}

		c.Set(ctxUser, u)
		return next(c)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get(echo.HeaderAuthorization), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

func (s *Server) requireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if currentUser(c) == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication credentials were not provided")
		}
		return next(c)
	}
}

func (s *Server) requireDashboardUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		u := currentUser(c)
		if u == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication credentials were not provided")
		}
		if !u.CanUseDashboard() {
			return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to access the dashboard")
		}
		return next(c)
	}
}

// trackVisits records the visitor once the status code is known, right
// before the headers are written, and re-issues the tracking cookie.
func (s *Server) trackVisits(next echo.HandlerFunc) echo.HandlerFunc {
	if s.tracking == nil || s.cookies == nil {
		return next
	}
	return func(c echo.Context) error {
		c.Response().Before(func() { s.recordVisit(c) })
		return next(c)
	}
}

func (s *Server) recordVisit(c echo.Context) {
	sess := currentSession(c)
	if sess == nil {
		return
	}
	req := c.Request()
	u := currentUser(c)

	hit := analytics.Hit{
		IsAjax:          req.Header.Get(echo.HeaderXRequestedWith) == "XMLHttpRequest",
		StatusCode:      c.Response().Status,
		IsAuthenticated: u != nil,
		IsSuperuser:     u != nil && u.IsSuperuser(),
		Path:            req.URL.Path,
		UserAgent:       req.UserAgent(),
	}
	if !s.tracking.ShouldTrack(hit) {
		return
	}

	now := s.now()
	var cookie analytics.TrackingCookie
	if raw, err := c.Cookie(s.settings.TrackingCookieName); err == nil {
		cookie, _ = s.cookies.Decode(raw.Value)
	}
	sessionKey, usesCurrent := cookie.ResolveSessionKey(sess.Key(), now)
	if usesCurrent && sess.IsNew() {
		if err := sess.EnsureKey(); err != nil {
			s.logger.Error("creating session for visitor", zap.Error(err))
			return
		}
		sessionKey = sess.Key()
		if err := sess.Set(visitStartedKey, now.Unix()); err != nil {
			s.logger.Warn("pinning session for visitor", zap.Error(err))
		}
	}

	var pageView *commands.PageViewInput
	if s.settings.TrackPageViews {
		pageView = &commands.PageViewInput{
			URL:    req.URL.Path,
			Method: req.Method,
		}
		if s.settings.TrackReferer {
			pageView.Referer = req.Referer()
		}
		if s.settings.TrackQueryString {
			pageView.QueryString = req.URL.RawQuery
		}
	}

	cmd, err := commands.NewTrackVisitCommand(
		sessionKey,
		cookie.IdentityOrNew(),
		currentUserID(c),
		clientIP(req),
		req.UserAgent(),
		sess.ExpiryAge(),
		now,
		pageView,
	)
	if err != nil {
		s.logger.Warn("building visit", zap.Error(err))
		return
	}
	visitor, err := s.cmd.TrackVisit.Handle(req.Context(), cmd)
	if err != nil {
		s.logger.Error("tracking visit", zap.String("session_key", sessionKey), zap.Error(err))
		return
	}

	tc, err := analytics.NewTrackingCookie(visitor)
	if err != nil {
		s.logger.Warn("building tracking cookie", zap.Error(err))
		return
	}
	value, err := s.cookies.Encode(tc)
	if err != nil {
		s.logger.Error("signing tracking cookie", zap.Error(err))
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     s.settings.TrackingCookieName,
		Value:    value,
		Path:     "/",
		Expires:  *visitor.ExpiryTime(),
		HttpOnly: true,
		Secure:   s.settings.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// clientIP trusts forwarding headers in a fixed order and falls back to the
// connection address.
func clientIP(r *http.Request) string {
	for _, header := range []string{
		"Client-IP",
		"X-Forwarded-For",
		"X-Forwarded",
		"X-Cluster-Client-IP",
		"Forwarded-For",
		"Forwarded",
	} {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}
		first, _, _ := strings.Cut(value, ",")
		first = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(first), "for="))
		if ip := net.ParseIP(strings.Trim(first, `"[]`)); ip != nil {
			return ip.String()
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.String()
	}
	return ""
}

func (s *Server) rateLimiter() echo.MiddlewareFunc {
	if s.settings.RateLimit <= 0 {
		return nil
	}
	burst := s.settings.RateBurst
	if burst <= 0 {
		burst = int(s.settings.RateLimit)
	}
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(s.settings.RateLimit),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return clientIP(c.Request()), nil
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
		},
	})
}

func (s *Server) logRequests() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				s.logger.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			s.logger.Info("request", fields...)
			return nil
		},
	})
}
