package session

import (
	"net/http"
	"strings"
	"time"
)

// Transport defines how session tokens are transmitted between client and server
type Transport interface {
	// GetToken extracts the session token from the request
	GetToken(r *http.Request) (string, error)

	// SetToken sends the session token in the response
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error

	// ClearToken removes the session token from the response
	ClearToken(w http.ResponseWriter) error
}

// CookieTransport carries the token in an HttpOnly cookie.
type CookieTransport struct {
	name   string
	secure bool
}

// NewCookieTransport creates a cookie-based transport
func NewCookieTransport(name string, secure bool) *CookieTransport {
	return &CookieTransport{name: name, secure: secure}
}

func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	c, err := r.Cookie(t.name)
	if err != nil || c.Value == "" {
		return "", ErrSessionNotFound
	}
	return c.Value, nil
}

func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	http.SetCookie(w, &http.Cookie{
		Name:     t.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// HeaderTransport carries the token in a request/response header, for API
// clients that do not keep cookies.
type HeaderTransport struct {
	headerName string
	prefix     string
}

// NewHeaderTransport creates a header-based transport using the "Bearer " prefix.
func NewHeaderTransport(headerName string) *HeaderTransport {
	return &HeaderTransport{headerName: headerName, prefix: "Bearer "}
}

func (t *HeaderTransport) GetToken(r *http.Request) (string, error) {
	value := strings.TrimPrefix(r.Header.Get(t.headerName), t.prefix)
	if value == "" {
		return "", ErrSessionNotFound
	}
	return value, nil
}

func (t *HeaderTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	w.Header().Set(t.headerName, t.prefix+token)
	if ttl > 0 {
		w.Header().Set(t.headerName+"-Expires", time.Now().Add(ttl).Format(time.RFC3339))
	}
	return nil
}

func (t *HeaderTransport) ClearToken(w http.ResponseWriter) error {
	w.Header().Del(t.headerName)
	w.Header().Del(t.headerName + "-Expires")
	return nil
}
