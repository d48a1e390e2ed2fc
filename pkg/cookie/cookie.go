package cookie

import (
	"errors"
	"net/http"
	"time"
)

// Manager writes and reads the cookies that carry access and refresh tokens.
// Tokens are self-verifying JWTs, so the manager does not sign or encrypt values.
type Manager struct {
	defaults    Options
	refreshName string
	accessName  string
}

// New creates a Manager with the default cookie names. Cookies are always
// HttpOnly with SameSite=Strict regardless of opts.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:   "/",
		Secure: true,
	}
	defaults = applyOptions(defaults, opts)
	forceStrict(&defaults)

	cfg := DefaultConfig()
	return &Manager{
		defaults:    defaults,
		refreshName: cfg.RefreshName,
		accessName:  cfg.AccessName,
	}
}

// RefreshName returns the name of the refresh token cookie.
func (m *Manager) RefreshName() string { return m.refreshName }

// AccessName returns the name of the access token cookie.
func (m *Manager) AccessName() string { return m.accessName }

// Set writes a cookie with a fixed lifetime.
func (m *Manager) Set(w http.ResponseWriter, name, value string, ttl time.Duration, opts ...Option) error {
	if name == "" {
		return ErrEmptyName
	}
	seconds := int(ttl / time.Second)
	if seconds <= 0 {
		return ErrInvalidMaxAge
	}

	options := applyOptions(m.defaults, append([]Option{WithMaxAge(seconds)}, opts...))
	forceStrict(&options)

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
	return nil
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	if c.Value == "" {
		return "", ErrCookieNotFound
	}
	return c.Value, nil
}

func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	})
}

// SetTokens writes both token cookies, each with max-age equal to its token lifetime.
func (m *Manager) SetTokens(w http.ResponseWriter, access string, accessTTL time.Duration, refresh string, refreshTTL time.Duration) error {
	if err := m.Set(w, m.accessName, access, accessTTL); err != nil {
		return err
	}
	return m.Set(w, m.refreshName, refresh, refreshTTL)
}

// RefreshToken reads the refresh token cookie.
func (m *Manager) RefreshToken(r *http.Request) (string, error) {
	return m.Get(r, m.refreshName)
}

// ClearTokens expires both token cookies.
func (m *Manager) ClearTokens(w http.ResponseWriter) {
	m.Delete(w, m.accessName)
	m.Delete(w, m.refreshName)
}
