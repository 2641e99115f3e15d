package analytics_test

import (
	"net/http"
	"testing"
	"time"

	"storefront/internal/core/domain/model/analytics"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingPolicy_ShouldTrack(t *testing.T) {
	policy, err := analytics.NewTrackingPolicy(analytics.TrackingSettings{
		TrackAnonymous:    true,
		IgnoreStatusCodes: []int{http.StatusNotFound},
		IgnoreURLs:        []string{`dashboard/`, `static/`},
		IgnoreUserAgents:  []string{`curl`},
	})
	require.NoError(t, err)

	base := analytics.Hit{StatusCode: http.StatusOK, Path: "/catalogue/tea/", UserAgent: firefox}

	tests := map[string]struct {
		mutate func(h *analytics.Hit)
		want   bool
	}{
		"plain page view":          {mutate: func(*analytics.Hit) {}, want: true},
		"ajax":                     {mutate: func(h *analytics.Hit) { h.IsAjax = true }, want: false},
		"ignored status":           {mutate: func(h *analytics.Hit) { h.StatusCode = http.StatusNotFound }, want: false},
		"superuser":                {mutate: func(h *analytics.Hit) { h.IsAuthenticated, h.IsSuperuser = true, true }, want: false},
		"ignored url":              {mutate: func(h *analytics.Hit) { h.Path = "/dashboard/orders/" }, want: false},
		"url only matches a start": {mutate: func(h *analytics.Hit) { h.Path = "/catalogue/static/" }, want: true},
		"ignored agent any case":   {mutate: func(h *analytics.Hit) { h.UserAgent = "CURL/8.0" }, want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			h := base
			tc.mutate(&h)

			assert.Equal(t, tc.want, policy.ShouldTrack(h))
		})
	}
}

func TestTrackingPolicy_Anonymous(t *testing.T) {
	policy, err := analytics.NewTrackingPolicy(analytics.TrackingSettings{})
	require.NoError(t, err)

	assert.False(t, policy.ShouldTrack(analytics.Hit{StatusCode: http.StatusOK}))
	assert.True(t, policy.ShouldTrack(analytics.Hit{StatusCode: http.StatusOK, IsAuthenticated: true}))
}

func TestNewTrackingPolicy_BadPattern(t *testing.T) {
	_, err := analytics.NewTrackingPolicy(analytics.TrackingSettings{IgnoreURLs: []string{"("}})

	require.Error(t, err)
}

func TestTrackingCookie_ResolveSessionKey(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	fresh := analytics.TrackingCookie{SessionKey: "old", Expires: float64(now.Add(time.Hour).Unix())}
	stale := analytics.TrackingCookie{SessionKey: "old", Expires: float64(now.Add(-time.Hour).Unix())}

	key, renewed := fresh.ResolveSessionKey("current", now)
	assert.Equal(t, "old", key)
	assert.False(t, renewed)

	key, renewed = stale.ResolveSessionKey("current", now)
	assert.Equal(t, "current", key)
	assert.True(t, renewed)

	key, renewed = analytics.TrackingCookie{}.ResolveSessionKey("current", now)
	assert.Equal(t, "current", key)
	assert.True(t, renewed)
}

func TestNewTrackingCookie(t *testing.T) {
	identity := kernel.NewUUID()
	v, err := analytics.NewVisitor("sk1", identity, "::1", time.Now())
	require.NoError(t, err)

	_, err = analytics.NewTrackingCookie(v)
	require.Error(t, err)

	v.Refresh(nil, time.Hour, "", time.Now())
	cookie, err := analytics.NewTrackingCookie(v)
	require.NoError(t, err)
	assert.Equal(t, "sk1", cookie.SessionKey)
	assert.True(t, identity.IsEqual(cookie.IdentityOrNew()))
}
