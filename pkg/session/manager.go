package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"time"
)

// Manager ties a Transport to a Store.
type Manager struct {
	store     Store
	transport Transport
	config    Config
}

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithStore sets a custom session store
func WithStore(store Store) Option {
	return func(m *Manager) { m.store = store }
}

// WithTransport sets a custom session transport
func WithTransport(transport Transport) Option {
	return func(m *Manager) { m.transport = transport }
}

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(m *Manager) { m.config = config }
}

// New creates a session manager. Without options it uses a MemoryStore
// and a CookieTransport named after Config.CookieName.
func New(opts ...Option) *Manager {
	m := &Manager{config: DefaultConfig()}
	for _, opt := range opts {
		opt(m)
	}
	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}
	if m.transport == nil {
		m.transport = NewCookieTransport(m.config.CookieName, m.config.SecureCookies)
	}
	return m
}

// Ensure returns the request's live session or creates a new one and sends
// its token to the client.
func (m *Manager) Ensure(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	if token, err := m.transport.GetToken(r); err == nil {
		session, err := m.store.Get(ctx, token)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrSessionExpired) {
			return nil, err
		}
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	session := NewSession(token, m.config.TTL)
	if err := m.store.Save(ctx, session); err != nil {
		return nil, err
	}
	if err := m.transport.SetToken(w, session.Token, m.config.TTL); err != nil {
		_ = m.store.Delete(ctx, session.Token)
		return nil, err
	}
	return session, nil
}

// Save persists session and extends its expiry by the configured TTL.
func (m *Manager) Save(ctx context.Context, session *Session) error {
	if session == nil {
		return ErrInvalidSession
	}
	session.ExpiresAt = time.Now().Add(m.config.TTL)
	return m.store.Save(ctx, session)
}

// Destroy deletes the request's session and clears the token.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if token, err := m.transport.GetToken(r); err == nil {
		if err := m.store.Delete(ctx, token); err != nil {
			return err
		}
	}
	return m.transport.ClearToken(w)
}

// EnsureSession is a middleware that ensures a session exists and stores it
// in the request context.
func (m *Manager) EnsureSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.Ensure(r.Context(), w, r)
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// generateToken creates a cryptographically secure token
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
