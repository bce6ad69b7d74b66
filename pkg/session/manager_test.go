package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/geoinfo/pkg/session"
)

func newManager(t *testing.T, opts ...session.Option) (*session.Manager, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })
	return session.New(append([]session.Option{session.WithStore(store)}, opts...)...), store
}

func TestManager_Ensure(t *testing.T) {
	t.Run("creates a session and sets the cookie", func(t *testing.T) {
		m, store := newManager(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		sess, err := m.Ensure(r.Context(), w, r)
		require.NoError(t, err)
		require.NotEmpty(t, sess.Token)
		assert.Equal(t, 1, store.Len())

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "sid", cookies[0].Name)
		assert.Equal(t, sess.Token, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("reuses an existing session", func(t *testing.T) {
		m, store := newManager(t)

		first := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		sess, err := m.Ensure(r.Context(), first, r)
		require.NoError(t, err)

		r2 := httptest.NewRequest(http.MethodGet, "/", nil)
		r2.AddCookie(first.Result().Cookies()[0])
		w2 := httptest.NewRecorder()

		again, err := m.Ensure(r2.Context(), w2, r2)
		require.NoError(t, err)
		assert.Equal(t, sess.ID, again.ID)
		assert.Empty(t, w2.Result().Cookies())
		assert.Equal(t, 1, store.Len())
	})

	t.Run("replaces an unknown token", func(t *testing.T) {
		m, _ := newManager(t)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "sid", Value: "stale"})
		w := httptest.NewRecorder()

		sess, err := m.Ensure(r.Context(), w, r)
		require.NoError(t, err)
		assert.NotEqual(t, "stale", sess.Token)
	})

	t.Run("header transport", func(t *testing.T) {
		m, _ := newManager(t, session.WithTransport(session.NewHeaderTransport("X-Session-Token")))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		sess, err := m.Ensure(r.Context(), w, r)
		require.NoError(t, err)
		assert.Equal(t, "Bearer "+sess.Token, w.Header().Get("X-Session-Token"))
		assert.NotEmpty(t, w.Header().Get("X-Session-Token-Expires"))

		r2 := httptest.NewRequest(http.MethodGet, "/", nil)
		r2.Header.Set("X-Session-Token", "Bearer "+sess.Token)
		again, err := m.Ensure(r2.Context(), httptest.NewRecorder(), r2)
		require.NoError(t, err)
		assert.Equal(t, sess.ID, again.ID)
	})
}

func TestManager_Save(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.TTL = time.Hour
	m, store := newManager(t, session.WithConfig(cfg))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	sess, err := m.Ensure(r.Context(), w, r)
	require.NoError(t, err)

	sess.ExpiresAt = time.Now().Add(time.Minute)
	sess.Set("country_code", "DE")
	require.NoError(t, m.Save(r.Context(), sess))

	stored, err := store.Get(r.Context(), sess.Token)
	require.NoError(t, err)
	cc, _ := stored.GetString("country_code")
	assert.Equal(t, "DE", cc)
	assert.WithinDuration(t, time.Now().Add(time.Hour), stored.ExpiresAt, 5*time.Second)

	assert.ErrorIs(t, m.Save(r.Context(), nil), session.ErrInvalidSession)
}

func TestManager_Destroy(t *testing.T) {
	m, store := newManager(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := m.Ensure(r.Context(), w, r)
	require.NoError(t, err)

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(w.Result().Cookies()[0])
	w2 := httptest.NewRecorder()
	require.NoError(t, m.Destroy(r2.Context(), w2, r2))

	assert.Equal(t, 0, store.Len())
	cookies := w2.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestManager_EnsureSession(t *testing.T) {
	m, _ := newManager(t)

	var found bool
	handler := m.EnsureSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = session.FromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, found)

	_, ok := session.FromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
