package analytics

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// TrackingSettings mirror the tracking section of the configuration.
type TrackingSettings struct {
	TrackAjaxRequests bool
	TrackAnonymous    bool
	TrackSuperusers   bool
	IgnoreStatusCodes []int
	// IgnoreURLs are matched against the start of the path without its
	// leading slash.
	IgnoreURLs []string
	// IgnoreUserAgents are matched against the start of the user agent,
	// ignoring case.
	IgnoreUserAgents []string
}

// Hit is one response the tracker may record.
type Hit struct {
	IsAjax          bool
	StatusCode      int
	IsAuthenticated bool
	IsSuperuser     bool
	Path            string
	UserAgent       string
}

// TrackingPolicy decides which hits are worth recording.
type TrackingPolicy struct {
	settings         TrackingSettings
	ignoreURLs       []*regexp.Regexp
	ignoreUserAgents []*regexp.Regexp
}

func NewTrackingPolicy(settings TrackingSettings) (*TrackingPolicy, error) {
	p := &TrackingPolicy{settings: settings}
	for _, pattern := range settings.IgnoreURLs {
		re, err := regexp.Compile(`^(?:` + pattern + `)`)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("ignore url", err)
		}
		p.ignoreURLs = append(p.ignoreURLs, re)
	}
	for _, pattern := range settings.IgnoreUserAgents {
		re, err := regexp.Compile(`(?i)^(?:` + pattern + `)`)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("ignore user agent", err)
		}
		p.ignoreUserAgents = append(p.ignoreUserAgents, re)
	}
	return p, nil
}

func (p *TrackingPolicy) ShouldTrack(h Hit) bool {
	switch {
	case h.IsAjax && !p.settings.TrackAjaxRequests:
		return false
	case slices.Contains(p.settings.IgnoreStatusCodes, h.StatusCode):
		return false
	case !h.IsAuthenticated && !p.settings.TrackAnonymous:
		return false
	case h.IsSuperuser && !p.settings.TrackSuperusers:
		return false
	}

	path := strings.TrimLeft(h.Path, "/")
	for _, re := range p.ignoreURLs {
		if re.MatchString(path) {
			return false
		}
	}
	for _, re := range p.ignoreUserAgents {
		if re.MatchString(h.UserAgent) {
			return false
		}
	}
	return true
}

// TrackingCookie ties a browser to its visitor across session renewals.
type TrackingCookie struct {
	Identity   string  `json:"id"`
	SessionKey string  `json:"sk"`
	Expires    float64 `json:"exp"`
}

// ResolveSessionKey picks the visitor row a request belongs to. The cookie
// wins while it is fresh. An expired or missing cookie falls back to the
// current session, which the caller must make sure exists.
func (c TrackingCookie) ResolveSessionKey(currentSessionKey string, now time.Time) (string, bool) {
	sessionKey := c.SessionKey
	if sessionKey == "" {
		sessionKey = currentSessionKey
	}
	expired := c.Expires-float64(now.UnixNano())/float64(time.Second) <= 0
	if expired || sessionKey == "" {
		return currentSessionKey, true
	}
	return sessionKey, false
}

// IdentityOrNew keeps the identity the browser already had.
func (c TrackingCookie) IdentityOrNew() kernel.UUID {
	if id, err := kernel.UUIDFromString(c.Identity); err == nil {
		return id
	}
	return kernel.NewUUID()
}

func NewTrackingCookie(v *Visitor) (TrackingCookie, error) {
	if v.ExpiryTime() == nil {
		return TrackingCookie{}, errs.NewValueIsRequiredErrorWithCause("expiry time",
			fmt.Errorf("visitor %s was never refreshed", v.SessionKey()))
	}
	return TrackingCookie{
		Identity:   v.Identity().String(),
		SessionKey: v.SessionKey(),
		Expires:    float64(v.ExpiryTime().UnixNano()) / float64(time.Second),
	}, nil
}
