package account

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/storekit/pkg/jwt"
	"github.com/dmitrymomot/storekit/pkg/logger"
	"github.com/dmitrymomot/storekit/pkg/tenant"
)

// TokenIssuer issues token pairs and verifies refresh tokens.
// Implemented by *jwt.Service.
type TokenIssuer interface {
	IssueAccessToken(id jwt.Identity) (string, error)
	IssueRefreshToken(id jwt.Identity) (string, error)
	VerifyRefreshToken(token string) (*jwt.Claims, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

// Observer receives login and refresh results, e.g. for metrics.
// Implemented by *metrics.Metrics.
type Observer interface {
	ObserveLogin(result string)
	ObserveRefresh(result string)
}

// Service implements the owner lifecycle: registration, login, token
// rotation and store management. It holds no per-request state.
type Service struct {
	owners     OwnerRepository
	stores     StoreRepository
	passwords  PasswordHasher
	tokens     TokenIssuer
	denylist   Denylist
	authorizer *tenant.Authorizer
	observer   Observer
	logger     *slog.Logger
	now        func() time.Time
	newID      func() string

	dummyOnce sync.Once
	dummyHash string
}

// Option configures a Service.
type Option func(*Service)

// WithDenylist replaces the default in-memory denylist.
func WithDenylist(d Denylist) Option {
	return func(s *Service) {
		if d != nil {
			s.denylist = d
		}
	}
}

// WithPasswordHasher replaces the default bcrypt hasher.
func WithPasswordHasher(h PasswordHasher) Option {
	return func(s *Service) {
		if h != nil {
			s.passwords = h
		}
	}
}

// WithObserver registers an observer for login and refresh results.
func WithObserver(o Observer) Option {
	return func(s *Service) {
		s.observer = o
	}
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides id generation for owners and stores.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewService creates the account service.
func NewService(owners OwnerRepository, stores StoreRepository, tokens TokenIssuer, opts ...Option) *Service {
	s := &Service{
		owners:     owners,
		stores:     stores,
		tokens:     tokens,
		passwords:  NewBcryptHasher(0),
		authorizer: tenant.NewAuthorizer(stores),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.denylist == nil {
		s.denylist = NewMemoryDenylist(s.now)
	}
	s.logger = s.logger.With(logger.Component("account"))
	return s
}

// Authorizer returns the ownership authorizer bound to the store repository.
func (s *Service) Authorizer() *tenant.Authorizer {
	return s.authorizer
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken      string        `json:"access_token"`
	RefreshToken     string        `json:"refresh_token"`
	ExpiresIn        time.Duration `json:"-"`
	RefreshExpiresIn time.Duration `json:"-"`
}

func (s *Service) issuePair(o *Owner) (TokenPair, error) {
	id := o.Identity()
	access, err := s.tokens.IssueAccessToken(id)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.tokens.IssueRefreshToken(id)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		ExpiresIn:        s.tokens.AccessTTL(),
		RefreshExpiresIn: s.tokens.RefreshTTL(),
	}, nil
}

func (s *Service) observeLogin(result string) {
	if s.observer != nil {
		s.observer.ObserveLogin(result)
	}
}

func (s *Service) observeRefresh(result string) {
	if s.observer != nil {
		s.observer.ObserveRefresh(result)
	}
}

// burnPassword spends one hash comparison on a fixed hash. Unknown emails
// must cost the same as wrong passwords.
func (s *Service) burnPassword(plaintext string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.passwords.Hash("storekit-timing-equalizer")
	})
	_ = s.passwords.Matches(plaintext, s.dummyHash)
}
