package session

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

// Session is the per-user key-value record persisted between requests.
type Session struct {
	ID        uuid.UUID      `json:"id"`
	Token     string         `json:"token"`
	Data      map[string]any `json:"data,omitempty"`
	ExpiresAt time.Time      `json:"expires_at"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewSession creates a session that expires after ttl.
func NewSession(token string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		Token:     token,
		Data:      make(map[string]any),
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

// IsExpired returns true if the session has expired
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// Get retrieves a value from session data
func (s *Session) Get(key string) (any, bool) {
	if s == nil || s.Data == nil {
		return nil, false
	}
	val, ok := s.Data[key]
	return val, ok
}

// GetString retrieves a string value from session data
func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// Set stores a value in session data
func (s *Session) Set(key string, value any) {
	if s == nil {
		return
	}
	if s.Data == nil {
		s.Data = make(map[string]any)
	}
	s.Data[key] = value
}

// Delete removes a value from session data
func (s *Session) Delete(key string) {
	if s == nil || s.Data == nil {
		return
	}
	delete(s.Data, key)
}

// clone returns a copy whose Data map is not shared with s.
func (s *Session) clone() *Session {
	c := *s
	if s.Data != nil {
		c.Data = make(map[string]any, len(s.Data))
		maps.Copy(c.Data, s.Data)
	}
	return &c
}
