package analytics

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

const SessionKeyMaxLength = 40

var ErrVisitorIsNotConstructed = errors.New("Visitor must be created via NewVisitor constructor") //nolint:staticcheck,revive // matches the other aggregates

// Resolver is satisfied by *net.Resolver.
type Resolver interface {
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

// Visitor is one browsing session.
type Visitor struct {
	sessionKey string
	identity   kernel.UUID
	userID     *kernel.UUID
	ipAddress  string
	userAgent  string
	startTime  time.Time
	expiryAge  int
	expiryTime *time.Time
	timeOnSite int
	endTime    *time.Time
	hostname   string
	isBot      bool
	data       *UserAgentData

	isConstructed bool
}

// NewVisitor starts a visit. The user agent is profiled once, when the
// visitor is first saved.
func NewVisitor(sessionKey string, identity kernel.UUID, ipAddress string, startTime time.Time) (*Visitor, error) {
	v := &Visitor{startTime: startTime.UTC(), isConstructed: true}
	if err := errors.Join(
		v.setSessionKey(sessionKey),
		identity.Validate(),
		v.setIPAddress(ipAddress),
	); err != nil {
		return nil, err
	}
	v.identity = identity
	return v, nil
}

// VisitorState is the stored form of a visitor.
type VisitorState struct {
	SessionKey string
	Identity   kernel.UUID
	UserID     *kernel.UUID
	IPAddress  string
	UserAgent  string
	StartTime  time.Time
	ExpiryAge  int
	ExpiryTime *time.Time
	TimeOnSite int
	EndTime    *time.Time
	Hostname   string
	IsBot      bool
	Data       *UserAgentData
}

func RestoreVisitor(s VisitorState) (*Visitor, error) {
	v, err := NewVisitor(s.SessionKey, s.Identity, s.IPAddress, s.StartTime)
	if err != nil {
		return nil, err
	}
	v.userID = s.UserID
	v.userAgent = s.UserAgent
	v.expiryAge = s.ExpiryAge
	v.expiryTime = s.ExpiryTime
	v.timeOnSite = s.TimeOnSite
	v.endTime = s.EndTime
	v.hostname = s.Hostname
	v.isBot = s.IsBot
	v.data = s.Data
	return v, nil
}

func (v *Visitor) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVisitorIsNotConstructed
	}
	return nil
}

func (v *Visitor) State() VisitorState {
	return VisitorState{
		SessionKey: v.sessionKey,
		Identity:   v.identity,
		UserID:     v.userID,
		IPAddress:  v.ipAddress,
		UserAgent:  v.userAgent,
		StartTime:  v.startTime,
		ExpiryAge:  v.expiryAge,
		ExpiryTime: v.expiryTime,
		TimeOnSite: v.timeOnSite,
		EndTime:    v.endTime,
		Hostname:   v.hostname,
		IsBot:      v.isBot,
		Data:       v.data,
	}
}

func (v *Visitor) SessionKey() string     { return v.sessionKey }
func (v *Visitor) Identity() kernel.UUID  { return v.identity }
func (v *Visitor) UserID() *kernel.UUID   { return v.userID }
func (v *Visitor) IPAddress() string      { return v.ipAddress }
func (v *Visitor) UserAgent() string      { return v.userAgent }
func (v *Visitor) StartTime() time.Time   { return v.startTime }
func (v *Visitor) ExpiryTime() *time.Time { return v.expiryTime }
func (v *Visitor) TimeOnSite() int        { return v.timeOnSite }
func (v *Visitor) Hostname() string       { return v.hostname }
func (v *Visitor) IsBot() bool            { return v.isBot }
func (v *Visitor) Data() *UserAgentData   { return v.data }
func (v *Visitor) ExpiryAgeSeconds() int  { return v.expiryAge }
func (v *Visitor) EndTime() *time.Time    { return v.endTime }

// SessionExpired reports whether the session timed out before now.
func (v *Visitor) SessionExpired(now time.Time) bool {
	return v.expiryTime != nil && !v.expiryTime.After(now)
}

// SessionEnded reports an explicit logout.
func (v *Visitor) SessionEnded() bool {
	return v.endTime != nil
}

// Refresh applies what one more request tells us about the visit.
func (v *Visitor) Refresh(userID *kernel.UUID, expiryAge time.Duration, userAgent string, visitTime time.Time) {
	if userID != nil && v.userID == nil {
		id := *userID
		v.userID = &id
	}

	v.expiryAge = int(expiryAge.Seconds())
	expiry := visitTime.Add(expiryAge).UTC()
	v.expiryTime = &expiry

	if userAgent != "" {
		v.userAgent = strings.ToValidUTF8(userAgent, "")
	}
	v.timeOnSite = int(visitTime.Sub(v.startTime).Seconds())
}

// End records a logout.
func (v *Visitor) End(at time.Time) {
	at = at.UTC()
	v.endTime = &at
}

// Profile parses the user agent and flags bots. It only runs once per
// visitor.
func (v *Visitor) Profile(botPatterns []string) {
	if v.data != nil {
		return
	}
	data := ParseUserAgent(v.userAgent)
	v.data = &data
	v.isBot = v.DetectBot(botPatterns)
}

func (v *Visitor) DetectBot(botPatterns []string) bool {
	return IsBotUserAgent(v.userAgent, botPatterns)
}

// ReverseLookup resolves the hostname of the visitor's address the first
// time it is asked for. Lookup failures leave the hostname empty.
func (v *Visitor) ReverseLookup(ctx context.Context, resolver Resolver, botPatterns []string) string {
	if v.hostname != "" {
		return v.hostname
	}
	names, err := resolver.LookupAddr(ctx, v.ipAddress)
	if err != nil || len(names) == 0 {
		return ""
	}
	v.hostname = strings.TrimSuffix(names[0], ".")
	v.isBot = v.DetectBot(botPatterns)
	return v.hostname
}

func (v *Visitor) setSessionKey(sessionKey string) error {
	switch {
	case sessionKey == "":
		return errs.NewValueIsRequiredError("session key")
	case len(sessionKey) > SessionKeyMaxLength:
		return errs.NewValueIsOutOfRangeError("session key length", len(sessionKey), 1, SessionKeyMaxLength)
	}
	v.sessionKey = sessionKey
	return nil
}

func (v *Visitor) setIPAddress(ip string) error {
	if net.ParseIP(ip) == nil {
		return errs.NewValueIsInvalidError("ip address")
	}
	v.ipAddress = ip
	return nil
}
