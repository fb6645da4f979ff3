// Package cookie provides a small cookie manager with security-first
// defaults: path "/", HttpOnly, SameSite=Lax. Values are written as-is; any
// integrity protection belongs to the value itself (e.g. a signed JWT).
package cookie

import (
	"errors"
	"net/http"
	"time"
)

// ErrCookieNotFound is returned by Get when the request carries no cookie
// with the requested name.
var ErrCookieNotFound = errors.New("cookie: not found")

// Manager writes and clears cookies with a fixed set of defaults chosen at
// construction. Per-call options override defaults without mutating them.
type Manager struct {
	defaults Options
}

// New creates a Manager. Defaults are HttpOnly, path "/", SameSite=Lax;
// opts may override them.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{defaults: applyOptions(defaults, opts)}
}

// Set writes a cookie with the manager defaults plus opts.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}

// Get returns the raw value of the named cookie from the request.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete instructs the client to drop the named cookie by expiring it.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   m.defaults.Secure,
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
	})
}
