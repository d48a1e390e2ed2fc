package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/storekit/pkg/jwt"
	"github.com/dmitrymomot/storekit/pkg/logger"
)

// TokenVerifier verifies access tokens. Implemented by *jwt.Service.
type TokenVerifier interface {
	VerifyAccessToken(token string) (*jwt.Claims, error)
}

// Outcome is the terminal state of one authentication attempt.
type Outcome string

const (
	OutcomeAnonymous     Outcome = "anonymous"
	OutcomeAuthenticated Outcome = "authenticated"
	OutcomeInvalid       Outcome = "invalid"
	OutcomeExpired       Outcome = "expired"
)

// Authenticator turns a bearer credential into a Principal.
// It keeps no per-request state; every call is independent.
type Authenticator struct {
	verifier   TokenVerifier
	cookieName string
	logger     *slog.Logger
	observe    func(Outcome)
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithCookie enables reading the access token from the named cookie when the
// request carries no Authorization header.
func WithCookie(name string) Option {
	return func(a *Authenticator) {
		a.cookieName = name
	}
}

// WithLogger sets the logger used for debug output on rejected tokens.
func WithLogger(l *slog.Logger) Option {
	return func(a *Authenticator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithObserver registers a callback invoked with every outcome, e.g. for metrics.
func WithObserver(fn func(Outcome)) Option {
	return func(a *Authenticator) {
		a.observe = fn
	}
}

// NewAuthenticator creates an authenticator backed by the given verifier.
func NewAuthenticator(verifier TokenVerifier, opts ...Option) *Authenticator {
	a := &Authenticator{
		verifier: verifier,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Authenticate verifies the raw Authorization header value.
// Absent, malformed, forged or expired credentials all yield (nil, false).
func (a *Authenticator) Authenticate(rawHeader string) (*Principal, bool) {
	token, ok := BearerToken(rawHeader)
	if !ok {
		a.record(OutcomeAnonymous)
		return nil, false
	}
	return a.authenticateToken(token)
}

// Middleware attaches a Principal to the request context when a valid access
// token is presented. It never rejects a request; use RequirePrincipal on
// routes that need an identity.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			p  *Principal
			ok bool
		)
		if header := r.Header.Get("Authorization"); header != "" {
			p, ok = a.Authenticate(header)
		} else if token := a.cookieToken(r); token != "" {
			p, ok = a.authenticateToken(token)
		} else {
			a.record(OutcomeAnonymous)
		}

		if ok {
			r = r.WithContext(WithPrincipal(r.Context(), p))
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Authenticator) authenticateToken(token string) (*Principal, bool) {
	claims, err := a.verifier.VerifyAccessToken(token)
	if err != nil {
		outcome := OutcomeInvalid
		if errors.Is(err, jwt.ErrExpiredToken) {
			outcome = OutcomeExpired
		}
		a.logger.Debug("access token rejected",
			slog.String("outcome", string(outcome)),
			logger.Component("auth"),
		)
		a.record(outcome)
		return nil, false
	}

	a.record(OutcomeAuthenticated)
	return PrincipalFromClaims(claims), true
}

func (a *Authenticator) cookieToken(r *http.Request) string {
	if a.cookieName == "" {
		return ""
	}
	c, err := r.Cookie(a.cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

func (a *Authenticator) record(o Outcome) {
	if a.observe != nil {
		a.observe(o)
	}
}

// BearerToken extracts the credential from an "Authorization: Bearer <token>"
// value. The scheme is matched case-insensitively per RFC 6750.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

// ErrorHandler writes a response for a rejected request.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// RequirePrincipal rejects anonymous requests with ErrUnauthorized.
func RequirePrincipal(errorHandler ErrorHandler) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = defaultErrorHandler
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := PrincipalFromContext(r.Context()); !ok {
				errorHandler(w, r, ErrUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrForbidden):
		http.Error(w, "Forbidden", http.StatusForbidden)
	default:
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}
}
