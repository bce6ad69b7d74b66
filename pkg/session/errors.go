package session

import "errors"

var (
	// ErrInvalidSession indicates a nil session or one without a token
	ErrInvalidSession = errors.New("session.invalid")

	// ErrSessionExpired indicates the session has expired
	ErrSessionExpired = errors.New("session.expired")

	// ErrSessionNotFound indicates no session was found
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrTokenGeneration indicates token generation failed
	ErrTokenGeneration = errors.New("session.token_generation_failed")
)
