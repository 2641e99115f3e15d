package commands

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrTrackVisitCommandIsNotConstructed = errors.New(
	"TrackVisitCommand must be created via NewTrackVisitCommand constructor",
)

// PageViewInput describes the request being tracked.
type PageViewInput struct {
	URL         string
	Referer     string
	QueryString string
	Method      string
}

// TrackVisitCommand records one tracked request of a browsing session.
type TrackVisitCommand struct { //nolint:recvcheck //using for validation
	sessionKey string
	identity   kernel.UUID
	userID     *kernel.UUID
	ipAddress  string
	userAgent  string
	expiryAge  time.Duration
	visitTime  time.Time
	pageView   *PageViewInput

	guard guard.ConstructorGuard
}

// NewTrackVisitCommand takes the session key and identity resolved from the
// tracking cookie. pageView is nil when page views are not recorded.
func NewTrackVisitCommand(
	sessionKey string,
	identity kernel.UUID,
	userID *kernel.UUID,
	ipAddress string,
	userAgent string,
	expiryAge time.Duration,
	visitTime time.Time,
	pageView *PageViewInput,
) (TrackVisitCommand, error) {
	var keyErr, ageErr error
	if strings.TrimSpace(sessionKey) == "" {
		keyErr = errs.NewValueIsRequiredError("session key")
	}
	if expiryAge <= 0 {
		ageErr = errs.NewValueIsOutOfRangeError("expiry age", expiryAge, "1s", "∞")
	}
	if err := errors.Join(keyErr, identity.Validate(), ageErr); err != nil {
		return TrackVisitCommand{}, err
	}

	return TrackVisitCommand{
		sessionKey: sessionKey,
		identity:   identity,
		userID:     userID,
		ipAddress:  ipAddress,
		userAgent:  userAgent,
		expiryAge:  expiryAge,
		visitTime:  visitTime,
		pageView:   pageView,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c TrackVisitCommand) Validate() error {
	return c.guard.Validate(ErrTrackVisitCommandIsNotConstructed)
}

func (c TrackVisitCommand) SessionKey() string       { return c.sessionKey }
func (c TrackVisitCommand) Identity() kernel.UUID    { return c.identity }
func (c TrackVisitCommand) UserID() *kernel.UUID     { return c.userID }
func (c TrackVisitCommand) IPAddress() string        { return c.ipAddress }
func (c TrackVisitCommand) UserAgent() string        { return c.userAgent }
func (c TrackVisitCommand) ExpiryAge() time.Duration { return c.expiryAge }
func (c TrackVisitCommand) VisitTime() time.Time     { return c.visitTime }
func (c TrackVisitCommand) PageView() *PageViewInput { return c.pageView }
