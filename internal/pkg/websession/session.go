// Package websession holds per-visitor state between requests on top of an
// scs session manager. Values are stored as JSON bytes so the checkout and
// basket code never deal with the manager's codec.
package websession

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
)

const (
	DefaultCookieName = "sessionid"
	DefaultLifetime   = 14 * 24 * time.Hour
)

// Options shape the session cookie. Zero values fall back to the defaults.
type Options struct {
	CookieName string
	Lifetime   time.Duration
	Secure     bool
}

// NewManager builds the session manager for store. A nil store keeps
// sessions in process memory.
func NewManager(store scs.Store, opts Options) *scs.SessionManager {
	m := scs.New()
	if store != nil {
		m.Store = store
	}
	m.Lifetime = opts.Lifetime
	if m.Lifetime <= 0 {
		m.Lifetime = DefaultLifetime
	}
	m.Cookie.Name = opts.CookieName
	if m.Cookie.Name == "" {
		m.Cookie.Name = DefaultCookieName
	}
	m.Cookie.Path = "/"
	m.Cookie.HttpOnly = true
	m.Cookie.Secure = opts.Secure
	m.Cookie.SameSite = http.SameSiteLaxMode
	m.Cookie.Persist = true
	return m
}

// Session is one visitor's state for the length of a request. It carries
// the context the manager loaded the session data into.
type Session struct {
	manager *scs.SessionManager
	ctx     context.Context
}

// Load reads the session named by token. An empty, unknown or expired token
// starts a new session.
func Load(ctx context.Context, manager *scs.SessionManager, token string) (*Session, error) {
	ctx, err := manager.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	return &Session{manager: manager, ctx: ctx}, nil
}

// Key is empty for a new session until it is saved or EnsureKey runs.
func (s *Session) Key() string { return s.manager.Token(s.ctx) }

func (s *Session) IsNew() bool { return s.Key() == "" }

func (s *Session) IsModified() bool { return s.manager.Status(s.ctx) != scs.Unmodified }

func (s *Session) ExpiryAge() time.Duration { return s.manager.Lifetime }

func (s *Session) Has(name string) bool { return s.manager.Exists(s.ctx, name) }

// Get decodes the value stored under name into dst. It reports false when
// nothing is stored.
func (s *Session) Get(name string, dst any) (bool, error) {
	raw := s.manager.GetBytes(s.ctx, name)
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Session) Set(name string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.manager.Put(s.ctx, name, raw)
	return nil
}

func (s *Session) Delete(name string) {
	s.manager.Remove(s.ctx, name)
}

// EnsureKey gives a new session its key now instead of at save time.
func (s *Session) EnsureKey() error {
	if s.Key() != "" {
		return nil
	}
	return s.manager.RenewToken(s.ctx)
}

// CycleKey moves the session to a new key, keeping its values. Call it on
// login so a session key seen before authentication stops working.
func (s *Session) CycleKey() error {
	return s.manager.RenewToken(s.ctx)
}

// Flush drops every value and the stored session. Anything set afterwards
// is saved under a new key.
func (s *Session) Flush() error {
	return s.manager.Destroy(s.ctx)
}

// Commit stores the session and returns its key and expiry.
func (s *Session) Commit() (string, time.Time, error) {
	return s.manager.Commit(s.ctx)
}

// Save stores a changed session and writes its cookie to w. A flushed
// session that was not written to again gets an expired cookie.
func (s *Session) Save(w http.ResponseWriter) error {
	switch s.manager.Status(s.ctx) {
	case scs.Modified:
		token, expiry, err := s.Commit()
		if err != nil {
			return err
		}
		s.manager.WriteSessionCookie(s.ctx, w, token, expiry)
	case scs.Destroyed:
		s.manager.WriteSessionCookie(s.ctx, w, "", time.Time{})
	}
	return nil
}
