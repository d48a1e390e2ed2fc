package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/auth"
	"github.com/dmitrymomot/storekit/pkg/jwt"
)

func newTokens(t *testing.T, now func() time.Time) *jwt.Service {
	t.Helper()
	svc, err := jwt.New(jwt.Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
		Issuer:        "storekit",
	}, jwt.WithClock(now))
	require.NoError(t, err)
	return svc
}

func identity(email string) jwt.Identity {
	return jwt.Identity{OwnerID: "id-" + email, Email: email, FullName: "Owner " + email}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc", "abc", true},
		{"  Bearer   abc  ", "abc", true},
		{"Basic dXNlcjpwYXNz", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Bearer a b", "", false},
		{"", "", false},
		{"abc", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, ok := auth.BearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	now := time.Now()
	clock := func() time.Time { return now }
	tokens := newTokens(t, clock)

	var (
		mu       sync.Mutex
		outcomes []auth.Outcome
	)
	authn := auth.NewAuthenticator(tokens, auth.WithObserver(func(o auth.Outcome) {
		mu.Lock()
		outcomes = append(outcomes, o)
		mu.Unlock()
	}))

	access, err := tokens.IssueAccessToken(identity("a@x.com"))
	require.NoError(t, err)
	refresh, err := tokens.IssueRefreshToken(identity("a@x.com"))
	require.NoError(t, err)

	p, ok := authn.Authenticate("Bearer " + access)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", p.Email)
	assert.Equal(t, "id-a@x.com", p.OwnerID)

	p, ok = authn.Authenticate("")
	assert.False(t, ok)
	assert.Nil(t, p)

	_, ok = authn.Authenticate("Bearer " + refresh)
	assert.False(t, ok, "refresh token must not authenticate a request")

	_, ok = authn.Authenticate("Bearer " + access[:len(access)-2] + "xx")
	assert.False(t, ok)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []auth.Outcome{
		auth.OutcomeAuthenticated,
		auth.OutcomeAnonymous,
		auth.OutcomeInvalid,
		auth.OutcomeInvalid,
	}, outcomes)
}

func TestAuthenticate_Expired(t *testing.T) {
	t.Parallel()

	var (
		mu  sync.Mutex
		now = time.Now()
	)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	tokens := newTokens(t, clock)

	var last auth.Outcome
	authn := auth.NewAuthenticator(tokens, auth.WithObserver(func(o auth.Outcome) { last = o }))

	access, err := tokens.IssueAccessToken(identity("a@x.com"))
	require.NoError(t, err)

	mu.Lock()
	now = now.Add(2 * time.Minute)
	mu.Unlock()

	_, ok := authn.Authenticate("Bearer " + access)
	assert.False(t, ok)
	assert.Equal(t, auth.OutcomeExpired, last)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tokens := newTokens(t, time.Now)
	authn := auth.NewAuthenticator(tokens, auth.WithCookie("access_token"))
	access, err := tokens.IssueAccessToken(identity("a@x.com"))
	require.NoError(t, err)

	var seen *auth.Principal
	handler := authn.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = auth.PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("valid header attaches principal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "a@x.com", seen.Email)
	})

	t.Run("invalid header falls back to anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Nil(t, seen)
	})

	t.Run("cookie used only without header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: access})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.NotNil(t, seen)

		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic xyz")
		req.AddCookie(&http.Cookie{Name: "access_token", Value: access})
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Nil(t, seen)
	})
}

func TestRequirePrincipal(t *testing.T) {
	t.Parallel()

	handler := auth.RequirePrincipal(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(auth.WithPrincipal(req.Context(), &auth.Principal{Email: "a@x.com"}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequirePrincipalFromContext(t *testing.T) {
	t.Parallel()

	_, err := auth.RequirePrincipalFromContext(context.Background())
	require.ErrorIs(t, err, auth.ErrUnauthorized)

	ctx := auth.WithPrincipal(context.Background(), nil)
	_, err = auth.RequirePrincipalFromContext(ctx)
	require.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestMiddleware_ConcurrentRequestsKeepOwnPrincipal(t *testing.T) {
	t.Parallel()

	tokens := newTokens(t, time.Now)
	authn := auth.NewAuthenticator(tokens)

	emails := []string{"a@x.com", "b@y.com", "c@z.com"}
	headers := make(map[string]string, len(emails))
	for _, e := range emails {
		tok, err := tokens.IssueAccessToken(identity(e))
		require.NoError(t, err)
		headers[e] = "Bearer " + tok
	}

	handler := authn.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := auth.PrincipalFromContext(r.Context())
		if !ok || p.Email != r.Header.Get("X-Expect") {
			w.WriteHeader(http.StatusConflict)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	const goroutines = 60
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := range goroutines {
		go func(i int) {
			defer wg.Done()
			email := emails[i%len(emails)]
			for range 50 {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set("Authorization", headers[email])
				req.Header.Set("X-Expect", email)
				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, req)
				assert.Equal(t, http.StatusOK, rec.Code)
			}
		}(i)
	}
	wg.Wait()
}
