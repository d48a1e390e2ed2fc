package account_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/storekit/pkg/auth"
	"github.com/dmitrymomot/storekit/pkg/jwt"
	"github.com/dmitrymomot/storekit/pkg/tenant"
	"github.com/dmitrymomot/storekit/svc/account"
	"github.com/dmitrymomot/storekit/svc/memstore"
)

const testPassword = "Passw0rd1"

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingObserver struct {
	mu      sync.Mutex
	logins  []string
	refresh []string
}

func (o *recordingObserver) ObserveLogin(result string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.logins = append(o.logins, result)
}

func (o *recordingObserver) ObserveRefresh(result string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.refresh = append(o.refresh, result)
}

func (o *recordingObserver) Logins() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.logins...)
}

func (o *recordingObserver) Refreshes() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.refresh...)
}

type fixture struct {
	svc      *account.Service
	owners   *memstore.Owners
	stores   *memstore.Stores
	tokens   *jwt.Service
	clock    *testClock
	observer *recordingObserver
	resolver *tenant.Resolver
}

func newFixture(t *testing.T, opts ...account.Option) *fixture {
	t.Helper()

	clock := newTestClock()
	tokens, err := jwt.New(jwt.Config{
		AccessSecret:  "access-secret-for-tests",
		RefreshSecret: "refresh-secret-for-tests",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    24 * time.Hour,
		Issuer:        "storekit-test",
	}, jwt.WithClock(clock.Now))
	require.NoError(t, err)

	f := &fixture{
		owners:   memstore.NewOwners(),
		stores:   memstore.NewStores(),
		tokens:   tokens,
		clock:    clock,
		observer: &recordingObserver{},
	}
	f.resolver = tenant.NewResolver(f.stores)

	base := []account.Option{
		account.WithClock(clock.Now),
		account.WithPasswordHasher(account.NewBcryptHasher(bcrypt.MinCost)),
		account.WithObserver(f.observer),
	}
	f.svc = account.NewService(f.owners, f.stores, tokens, append(base, opts...)...)
	return f
}

func (f *fixture) register(t *testing.T, email string) *account.Owner {
	t.Helper()
	owner, err := f.svc.Register(context.Background(), account.RegisterInput{
		Email:    email,
		Password: testPassword,
		FullName: "Owner " + email,
	})
	require.NoError(t, err)
	return owner
}

func (f *fixture) principal(t *testing.T, owner *account.Owner) *auth.Principal {
	t.Helper()
	token, err := f.tokens.IssueAccessToken(owner.Identity())
	require.NoError(t, err)
	claims, err := f.tokens.VerifyAccessToken(token)
	require.NoError(t, err)
	return auth.PrincipalFromClaims(claims)
}

func (f *fixture) createStore(t *testing.T, p *auth.Principal, code string) *tenant.Store {
	t.Helper()
	store, err := f.svc.CreateStore(context.Background(), p, account.CreateStoreInput{Code: code, Name: "Store " + code})
	require.NoError(t, err)
	return store
}

func (f *fixture) storeContext(t *testing.T, storeID string) tenant.StoreContext {
	t.Helper()
	sc, err := f.resolver.Resolve(context.Background(), storeID)
	require.NoError(t, err)
	return sc
}
