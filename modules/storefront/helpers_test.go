package storefront_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/storekit/handler"
	"github.com/dmitrymomot/storekit/modules/storefront"
	"github.com/dmitrymomot/storekit/pkg/cookie"
	"github.com/dmitrymomot/storekit/pkg/jwt"
	"github.com/dmitrymomot/storekit/pkg/metrics"
	"github.com/dmitrymomot/storekit/pkg/ratelimiter"
	"github.com/dmitrymomot/storekit/pkg/tenant"
	"github.com/dmitrymomot/storekit/svc/account"
	"github.com/dmitrymomot/storekit/svc/catalog"
	"github.com/dmitrymomot/storekit/svc/memstore"
)

const password = "Passw0rd1"

type testEnv struct {
	router  http.Handler
	tokens  *jwt.Service
	metrics *metrics.Metrics
	cookies *cookie.Manager
}

type envConfig struct {
	storeOpts []memstore.StoresOption
	limiter   *ratelimiter.Bucket
}

type envOption func(*envConfig)

func withStoreOptions(opts ...memstore.StoresOption) envOption {
	return func(c *envConfig) { c.storeOpts = append(c.storeOpts, opts...) }
}

func withAuthLimiter(b *ratelimiter.Bucket) envOption {
	return func(c *envConfig) { c.limiter = b }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	var cfg envConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	tokens, err := jwt.New(jwt.Config{
		AccessSecret:  "storefront-access-secret",
		RefreshSecret: "storefront-refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    24 * time.Hour,
		Issuer:        "storekit-test",
	})
	require.NoError(t, err)

	m, err := metrics.New("storekit")
	require.NoError(t, err)

	log := slog.New(slog.DiscardHandler)
	owners := memstore.NewOwners()
	stores := memstore.NewStores(cfg.storeOpts...)
	accounts := account.NewService(owners, stores, tokens,
		account.WithPasswordHasher(account.NewBcryptHasher(bcrypt.MinCost)),
		account.WithObserver(m),
		account.WithLogger(log),
	)
	products := catalog.NewService(memstore.NewProducts(), accounts.Authorizer(),
		catalog.WithObserver(m),
		catalog.WithLogger(log),
	)
	cookies := cookie.New()

	return &testEnv{
		router: storefront.Router(storefront.Options{
			Accounts: accounts,
			Catalog:  products,
			Tokens:   tokens,
			Resolver: tenant.NewResolver(stores),
			Cookies:  cookies,
			Metrics:  m,
			Logger:   log,

			AuthLimiter: cfg.limiter,
		}),
		tokens:  tokens,
		metrics: m,
		cookies: cookies,
	}
}

type requestOption func(*http.Request)

func bearer(token string) requestOption {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

func withCookies(cookies []*http.Cookie) requestOption {
	return func(r *http.Request) {
		for _, c := range cookies {
			r.AddCookie(c)
		}
	}
}

func withContext(ctx context.Context) requestOption {
	return func(r *http.Request) {
		*r = *r.WithContext(ctx)
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string, opts ...requestOption) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Data  json.RawMessage      `json:"data"`
	Meta  map[string]any       `json:"meta"`
	Error *handler.ErrorDetail `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &v), rec.Body.String())
	return v
}

type tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type idOnly struct {
	ID      string `json:"id"`
	StoreID string `json:"store_id"`
}

// signUp registers and logs in an owner, creates one store with one product
// and returns the access token, store id and product id.
func (e *testEnv) signUp(t *testing.T, email, storeCode string) (access, storeID, productID string) {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/auth/register", `{"email":"`+email+`","password":"`+password+`","full_name":"Owner"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = e.do(t, http.MethodPost, "/auth/login", `{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	access = decodeData[tokens](t, rec).AccessToken

	rec = e.do(t, http.MethodPost, "/stores", `{"code":"`+storeCode+`","name":"Shop"}`, bearer(access))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	storeID = decodeData[idOnly](t, rec).ID

	rec = e.do(t, http.MethodPost, "/stores/"+storeID+"/products", `{"name":"Mug","price_cents":1200}`, bearer(access))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	productID = decodeData[idOnly](t, rec).ID

	return access, storeID, productID
}
