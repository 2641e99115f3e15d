package websession_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/pkg/websession"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_GetSet(t *testing.T) {
	s, err := websession.Load(t.Context(), websession.NewManager(nil, websession.Options{Lifetime: time.Hour}), "")
	require.NoError(t, err)
	require.True(t, s.IsNew())
	assert.False(t, s.IsModified())
	assert.Equal(t, time.Hour, s.ExpiryAge())

	require.NoError(t, s.Set("basket_id", "b-1"))
	assert.True(t, s.IsModified())
	assert.True(t, s.Has("basket_id"))

	var got string
	found, err := s.Get("basket_id", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "b-1", got)

	found, err = s.Get("missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSession_CommitThenLoad(t *testing.T) {
	m := websession.NewManager(nil, websession.Options{})
	s, err := websession.Load(t.Context(), m, "")
	require.NoError(t, err)
	require.NoError(t, s.Set("n", 42))

	key, expiry, err := s.Commit()
	require.NoError(t, err)
	assert.NotEmpty(t, key)
	assert.WithinDuration(t, time.Now().Add(websession.DefaultLifetime), expiry, time.Minute)

	restored, err := websession.Load(t.Context(), m, key)
	require.NoError(t, err)
	var n int
	found, err := restored.Get("n", &n)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 42, n)
	assert.False(t, restored.IsNew())
	assert.False(t, restored.IsModified())
	assert.Equal(t, key, restored.Key())
}

func TestSession_EnsureKey(t *testing.T) {
	s, err := websession.Load(t.Context(), websession.NewManager(nil, websession.Options{}), "")
	require.NoError(t, err)

	require.NoError(t, s.EnsureKey())
	key := s.Key()
	assert.NotEmpty(t, key)

	require.NoError(t, s.EnsureKey())
	assert.Equal(t, key, s.Key())
}

func TestSession_FlushAndCycle(t *testing.T) {
	m := websession.NewManager(nil, websession.Options{})
	s, err := websession.Load(t.Context(), m, "")
	require.NoError(t, err)
	require.NoError(t, s.Set("n", 1))
	key, _, err := s.Commit()
	require.NoError(t, err)

	s, err = websession.Load(t.Context(), m, key)
	require.NoError(t, err)
	require.NoError(t, s.CycleKey())
	assert.NotEqual(t, key, s.Key())
	assert.True(t, s.Has("n"))

	require.NoError(t, s.Flush())
	assert.False(t, s.Has("n"))
	assert.True(t, s.IsNew())

	old, err := websession.Load(t.Context(), m, key)
	require.NoError(t, err)
	assert.True(t, old.IsNew())
}

func TestSession_Save_WritesCookie(t *testing.T) {
	m := websession.NewManager(nil, websession.Options{CookieName: "shop", Secure: true})

	t.Run("unchanged session writes nothing", func(t *testing.T) {
		s, err := websession.Load(t.Context(), m, "")
		require.NoError(t, err)
		rec := httptest.NewRecorder()

		require.NoError(t, s.Save(rec))

		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("changed session is stored", func(t *testing.T) {
		s, err := websession.Load(t.Context(), m, "")
		require.NoError(t, err)
		require.NoError(t, s.Set("colour", "green"))
		rec := httptest.NewRecorder()

		require.NoError(t, s.Save(rec))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "shop", cookies[0].Name)
		assert.NotEmpty(t, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, cookies[0].Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	})

	t.Run("flushed session expires the cookie", func(t *testing.T) {
		s, err := websession.Load(t.Context(), m, "")
		require.NoError(t, err)
		require.NoError(t, s.Set("colour", "green"))
		key, _, err := s.Commit()
		require.NoError(t, err)

		s, err = websession.Load(t.Context(), m, key)
		require.NoError(t, err)
		require.NoError(t, s.Flush())
		rec := httptest.NewRecorder()

		require.NoError(t, s.Save(rec))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})
}
