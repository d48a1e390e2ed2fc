package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/storekit/pkg/auth"
	"github.com/dmitrymomot/storekit/pkg/jwt"
	"github.com/dmitrymomot/storekit/pkg/logger"
	"github.com/dmitrymomot/storekit/pkg/validator"
)

// Input limits. bcrypt rejects passwords longer than 72 bytes.
const (
	maxEmailLength   = 254
	maxPasswordBytes = 72
	maxNameLength    = 200
	minCodeLength    = 3
	maxCodeLength    = 64
)

// RegisterInput holds the fields for a new owner.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

// NormalizeEmail trims an email address and lower-cases it with Unicode
// rules, so internationalized addresses compare equal regardless of case.
func NormalizeEmail(email string) string {
	// A Caser is stateful; one per call.
	return cases.Lower(language.Und).String(strings.TrimSpace(email))
}

// Register creates an active owner with a hashed password.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Owner, error) {
	email := NormalizeEmail(in.Email)
	fullName := strings.TrimSpace(in.FullName)
	if err := validator.Apply(
		validator.ValidEmail("email", email),
		validator.MaxLenString("email", email, maxEmailLength),
		validator.RequiredString("password", in.Password),
		validator.MaxLenString("password", in.Password, maxPasswordBytes),
		validator.MaxLenString("full_name", fullName, maxNameLength),
	); err != nil {
		return nil, errors.Join(ErrInvalidInput, err)
	}

	_, err := s.owners.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrEmailAlreadyExists
	case !errors.Is(err, ErrOwnerNotFound):
		return nil, fmt.Errorf("lookup owner: %w", err)
	}

	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	owner := &Owner{
		ID:           s.newID(),
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		StoreIDs:     []string{},
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.owners.Save(ctx, owner); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("save owner: %w", err)
	}

	s.logger.InfoContext(ctx, "owner registered", logger.OwnerID(owner.ID))
	return owner.Clone(), nil
}

// Login verifies the credentials and issues a token pair. Unknown emails,
// wrong passwords and deactivated owners all return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (TokenPair, *Owner, error) {
	email = NormalizeEmail(email)

	owner, err := s.owners.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrOwnerNotFound) {
			s.observeLogin("error")
			return TokenPair{}, nil, fmt.Errorf("lookup owner: %w", err)
		}
		s.burnPassword(password)
		s.observeLogin("invalid_credentials")
		return TokenPair{}, nil, ErrInvalidCredentials
	}

	if !s.passwords.Matches(password, owner.PasswordHash) || !owner.Active {
		s.observeLogin("invalid_credentials")
		s.logger.DebugContext(ctx, "login rejected", logger.OwnerID(owner.ID))
		return TokenPair{}, nil, ErrInvalidCredentials
	}

	now := s.now().UTC()
	if err := s.owners.RecordLogin(ctx, owner.ID, now); err != nil {
		s.observeLogin("error")
		return TokenPair{}, nil, fmt.Errorf("record login: %w", err)
	}
	owner.LastLoginAt = &now
	owner.UpdatedAt = now

	pair, err := s.issuePair(owner)
	if err != nil {
		s.observeLogin("error")
		return TokenPair{}, nil, err
	}

	s.observeLogin("success")
	s.logger.InfoContext(ctx, "owner logged in", logger.OwnerID(owner.ID))
	return pair, owner.Clone(), nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued from the owner's current state. A token can be rotated once.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		s.observeRefresh("invalid")
		return TokenPair{}, err
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.observeRefresh("error")
		return TokenPair{}, err
	}
	if revoked {
		s.observeRefresh("revoked")
		s.logger.WarnContext(ctx, "revoked refresh token presented", logger.OwnerID(claims.OwnerID))
		return TokenPair{}, ErrTokenRevoked
	}

	owner, err := s.owners.FindByID(ctx, claims.OwnerID)
	if err != nil {
		if errors.Is(err, ErrOwnerNotFound) {
			s.observeRefresh("revoked")
			return TokenPair{}, ErrTokenRevoked
		}
		s.observeRefresh("error")
		return TokenPair{}, fmt.Errorf("lookup owner: %w", err)
	}
	if !owner.Active || !strings.EqualFold(owner.Email, claims.Email()) {
		s.observeRefresh("revoked")
		return TokenPair{}, ErrTokenRevoked
	}

	first, err := s.denylist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
	if err != nil {
		s.observeRefresh("error")
		return TokenPair{}, err
	}
	if !first {
		// Lost a race with a concurrent rotation of the same token.
		s.observeRefresh("revoked")
		return TokenPair{}, ErrTokenRevoked
	}

	pair, err := s.issuePair(owner)
	if err != nil {
		s.observeRefresh("error")
		return TokenPair{}, err
	}

	s.observeRefresh("success")
	return pair, nil
}

// Logout revokes the presented refresh token. An expired token is already
// unusable and is accepted silently.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil
		}
		return err
	}

	if _, err := s.denylist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "owner logged out", logger.OwnerID(claims.OwnerID))
	return nil
}

// Me returns the current state of the authenticated owner.
func (s *Service) Me(ctx context.Context, p *auth.Principal) (*Owner, error) {
	if p == nil || p.OwnerID == "" {
		return nil, auth.ErrUnauthorized
	}

	owner, err := s.owners.FindByID(ctx, p.OwnerID)
	if err != nil {
		if errors.Is(err, ErrOwnerNotFound) {
			return nil, auth.ErrUnauthorized
		}
		return nil, fmt.Errorf("lookup owner: %w", err)
	}
	if !owner.Active {
		return nil, auth.ErrUnauthorized
	}
	return owner, nil
}

func (s *Service) requireOwner(ctx context.Context, p *auth.Principal) (*Owner, error) {
	owner, err := s.Me(ctx, p)
	if err != nil {
		s.logger.DebugContext(ctx, "principal has no active owner", slog.String("reason", err.Error()))
		return nil, err
	}
	return owner, nil
}
