package tenant_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/tenant"
)

func newRouter(stores tenant.StoreFinder, opts ...tenant.Option) http.Handler {
	r := chi.NewRouter()
	r.Route("/stores/{storeID}", func(r chi.Router) {
		r.Use(tenant.Middleware(tenant.NewResolver(stores), tenant.URLParam("storeID"), opts...))
		r.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
			sc, ok := tenant.FromContext(r.Context())
			if !ok {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(sc.StoreID()))
		})
	})
	return r
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	s := newStore("a@x.com")
	router := newRouter(newMockStores(s))

	tests := []struct {
		name   string
		path   string
		status int
		body   string
	}{
		{"existing store", "/stores/" + s.ID + "/whoami", http.StatusOK, s.ID},
		{"unknown store", "/stores/" + uuid.NewString() + "/whoami", http.StatusNotFound, ""},
		{"malformed id", "/stores/abc/whoami", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestMiddleware_Unavailable(t *testing.T) {
	t.Parallel()

	s := newStore("a@x.com")
	m := newMockStores(s)
	m.delay = time.Second
	router := newRouter(m)

	req := httptest.NewRequest(http.MethodGet, "/stores/"+s.ID+"/whoami", nil)
	ctx, cancel := contextWithTimeout(req, 10*time.Millisecond)
	defer cancel()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req.WithContext(ctx))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMiddleware_CustomErrorHandler(t *testing.T) {
	t.Parallel()

	var got error
	router := newRouter(newMockStores(), tenant.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
		got = err
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stores/"+uuid.NewString()+"/whoami", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	require.ErrorIs(t, got, tenant.ErrStoreNotFound)
}

func TestPathSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		position int
		want     string
	}{
		{"/stores/abc/products", 2, "abc"},
		{"/stores/abc/", 2, "abc"},
		{"/stores", 2, ""},
		{"/", 1, ""},
		{"/stores/abc", 0, ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		assert.Equal(t, tt.want, tenant.PathSegment(tt.position)(req), tt.path)
	}
}

func TestRequireStoreContext(t *testing.T) {
	t.Parallel()

	h := tenant.RequireStoreContext(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
