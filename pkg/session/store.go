package session

import "context"

// Store persists sessions keyed by token.
type Store interface {
	// Get returns ErrSessionNotFound or ErrSessionExpired when no live
	// session exists for token.
	Get(ctx context.Context, token string) (*Session, error)

	// Save creates or replaces the session.
	Save(ctx context.Context, session *Session) error

	// Delete removes a session by token. Missing tokens are not an error.
	Delete(ctx context.Context, token string) error
}
