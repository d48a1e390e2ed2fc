package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// signingMethod is HMAC-SHA512, matching the 64-byte derived keys.
var signingMethod = jwtv5.SigningMethodHS512

// Service issues and verifies stateless access and refresh tokens.
// It holds no mutable state after construction.
type Service struct {
	keys       Keys
	accessTTL  time.Duration
	refreshTTL time.Duration
	issuer     string
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New validates the configuration and derives both signing keys.
// Any error here must be treated as fatal by the caller.
func New(cfg Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	keys, err := DeriveKeys(cfg.AccessSecret, cfg.RefreshSecret)
	if err != nil {
		return nil, err
	}

	s := &Service{
		keys:       keys,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		issuer:     cfg.Issuer,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// AccessTTL returns the configured access token lifetime.
func (s *Service) AccessTTL() time.Duration { return s.accessTTL }

// RefreshTTL returns the configured refresh token lifetime.
func (s *Service) RefreshTTL() time.Duration { return s.refreshTTL }

// IssueAccessToken signs a short-lived token with the access key.
func (s *Service) IssueAccessToken(id Identity) (string, error) {
	return s.issue(id, UseAccess, s.keys.access, s.accessTTL)
}

// IssueRefreshToken signs a long-lived token with the refresh key.
func (s *Service) IssueRefreshToken(id Identity) (string, error) {
	return s.issue(id, UseRefresh, s.keys.refresh, s.refreshTTL)
}

// VerifyAccessToken checks signature, issuer, token use and expiration.
// It returns only ErrInvalidToken or ErrExpiredToken on failure.
func (s *Service) VerifyAccessToken(token string) (*Claims, error) {
	return s.verify(token, UseAccess, s.keys.access)
}

// VerifyRefreshToken is VerifyAccessToken for the refresh key.
func (s *Service) VerifyRefreshToken(token string) (*Claims, error) {
	return s.verify(token, UseRefresh, s.keys.refresh)
}

func (s *Service) issue(id Identity, use TokenUse, key []byte, ttl time.Duration) (string, error) {
	if id.Email == "" {
		return "", ErrMissingSubject
	}

	now := s.now()
	claims := Claims{
		OwnerID:  id.OwnerID,
		FullName: id.FullName,
		TokenUse: use,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   id.Email,
			Issuer:    s.issuer,
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwtv5.NewWithClaims(signingMethod, claims).SignedString(key)
	if err != nil {
		return "", errors.Join(ErrSigningFailed, err)
	}
	return signed, nil
}

func (s *Service) verify(token string, use TokenUse, key []byte) (*Claims, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	opts := []jwtv5.ParserOption{
		jwtv5.WithValidMethods([]string{signingMethod.Alg()}),
		jwtv5.WithTimeFunc(s.now),
		jwtv5.WithExpirationRequired(),
		jwtv5.WithIssuedAt(),
		// Non-canonical base64 would let a modified signature decode to the same bytes.
		jwtv5.WithStrictDecoding(),
	}
	if s.issuer != "" {
		opts = append(opts, jwtv5.WithIssuer(s.issuer))
	}

	claims := &Claims{}
	_, err := jwtv5.ParseWithClaims(token, claims, func(*jwtv5.Token) (any, error) {
		return key, nil
	}, opts...)
	switch {
	case err == nil:
	case errors.Is(err, jwtv5.ErrTokenExpired):
		return nil, ErrExpiredToken
	default:
		return nil, ErrInvalidToken
	}

	if claims.TokenUse != use || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
