package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/core/domain/model/analytics"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const firefox = "Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0"

type fakeResolver struct {
	names []string
	err   error
	calls int
}

func (r *fakeResolver) LookupAddr(context.Context, string) ([]string, error) {
	r.calls++
	return r.names, r.err
}

func newVisitor(t *testing.T) *analytics.Visitor {
	t.Helper()
	v, err := analytics.NewVisitor("abc123", kernel.NewUUID(), "10.0.0.1", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return v
}

func TestNewVisitor_Validation(t *testing.T) {
	_, err := analytics.NewVisitor("", kernel.NewUUID(), "not-an-ip", time.Now())

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestVisitor_Refresh(t *testing.T) {
	v := newVisitor(t)
	user := kernel.NewUUID()
	visit := v.StartTime().Add(90 * time.Second)

	v.Refresh(&user, 2*time.Hour, firefox, visit)
	v.Refresh(nil, 2*time.Hour, "", visit.Add(30*time.Second))

	require.NotNil(t, v.UserID())
	assert.True(t, user.IsEqual(*v.UserID()))
	assert.Equal(t, firefox, v.UserAgent())
	assert.Equal(t, 120, v.TimeOnSite())
	assert.Equal(t, 7200, v.ExpiryAgeSeconds())
	assert.False(t, v.SessionExpired(visit))
	assert.True(t, v.SessionExpired(visit.Add(3*time.Hour)))
	assert.False(t, v.SessionEnded())

	v.End(visit)
	assert.True(t, v.SessionEnded())
}

func TestVisitor_Profile(t *testing.T) {
	t.Run("browser", func(t *testing.T) {
		v := newVisitor(t)
		v.Refresh(nil, time.Hour, firefox, time.Now())

		v.Profile(analytics.DefaultBotPatterns)

		require.NotNil(t, v.Data())
		assert.Equal(t, "Firefox", v.Data().Browser)
		assert.False(t, v.IsBot())
	})

	t.Run("missing user agent is a bot", func(t *testing.T) {
		v := newVisitor(t)

		v.Profile(analytics.DefaultBotPatterns)

		assert.True(t, v.IsBot())
	})

	t.Run("pattern match ignores case", func(t *testing.T) {
		assert.True(t, analytics.IsBotUserAgent("Mozilla/5.0 (compatible; GoogleBot/2.1)", analytics.DefaultBotPatterns))
		assert.True(t, analytics.IsBotUserAgent("python-requests/2.31", analytics.DefaultBotPatterns))
		assert.False(t, analytics.IsBotUserAgent(firefox, analytics.DefaultBotPatterns))
	})
}

func TestVisitor_ReverseLookup(t *testing.T) {
	v := newVisitor(t)
	resolver := &fakeResolver{names: []string{"host.example.com."}}

	assert.Equal(t, "host.example.com", v.ReverseLookup(t.Context(), resolver, nil))
	assert.Equal(t, "host.example.com", v.ReverseLookup(t.Context(), resolver, nil))
	assert.Equal(t, 1, resolver.calls)

	failing := newVisitor(t)
	assert.Empty(t, failing.ReverseLookup(t.Context(), &fakeResolver{err: errors.New("nxdomain")}, nil))
}

func TestRestoreVisitor(t *testing.T) {
	v := newVisitor(t)
	v.Refresh(nil, time.Hour, firefox, time.Now())
	v.Profile(analytics.DefaultBotPatterns)

	restored, err := analytics.RestoreVisitor(v.State())

	require.NoError(t, err)
	assert.Equal(t, v.State(), restored.State())
}
