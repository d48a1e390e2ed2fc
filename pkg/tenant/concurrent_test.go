package tenant_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/tenant"
)

// A resource of store S1 must never validate against a context for S2,
// however requests for the two stores interleave.
func TestIsolation_ConcurrentAlternatingStores(t *testing.T) {
	t.Parallel()

	s1 := newStore("a@x.com")
	s2 := newStore("b@y.com")
	stores := newMockStores(s1, s2)
	resolver := tenant.NewResolver(stores)

	resource := &item{ID: "r-1", StoreID: s1.ID}

	const goroutines = 64
	const iterations = 200

	var (
		wg         sync.WaitGroup
		accepted   atomic.Int64
		rejected   atomic.Int64
		violations atomic.Int64
	)
	wg.Add(goroutines)

	for g := range goroutines {
		go func(g int) {
			defer wg.Done()
			for i := range iterations {
				target := s1
				if (g+i)%2 == 1 {
					target = s2
				}

				sc, err := resolver.Resolve(context.Background(), target.ID)
				if !assert.NoError(t, err) {
					return
				}
				if sc.StoreID() != target.ID {
					violations.Add(1)
				}

				err = tenant.Check(resource, sc)
				switch {
				case target.ID == s1.ID && err == nil:
					accepted.Add(1)
				case target.ID == s2.ID && err != nil:
					rejected.Add(1)
				default:
					violations.Add(1)
				}
			}
		}(g)
	}
	wg.Wait()

	assert.Zero(t, violations.Load())
	assert.Equal(t, int64(goroutines*iterations/2), accepted.Load())
	assert.Equal(t, int64(goroutines*iterations/2), rejected.Load())
}

// The same property through the HTTP middleware: a shared router serving
// interleaved requests for two stores answers each with its own store only.
func TestIsolation_ConcurrentRequestsThroughMiddleware(t *testing.T) {
	t.Parallel()

	s1 := newStore("a@x.com")
	s2 := newStore("b@y.com")
	stores := newMockStores(s1, s2)
	stores.delay = time.Millisecond // widen the interleaving window

	resources := map[string]*item{
		"r-1": {ID: "r-1", StoreID: s1.ID},
		"r-2": {ID: "r-2", StoreID: s2.ID},
	}

	r := chi.NewRouter()
	r.Route("/stores/{storeID}", func(r chi.Router) {
		r.Use(tenant.Middleware(tenant.NewResolver(stores), tenant.URLParam("storeID")))
		r.Get("/items/{itemID}", func(w http.ResponseWriter, r *http.Request) {
			sc, _ := tenant.FromContext(r.Context())
			time.Sleep(time.Millisecond)
			res := resources[chi.URLParam(r, "itemID")]
			if err := tenant.Check(res, sc); err != nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = fmt.Fprint(w, res.ID)
		})
	})

	const goroutines = 40
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := range goroutines {
		go func(g int) {
			defer wg.Done()
			for i := range 10 {
				storeID, own, foreign := s1.ID, "r-1", "r-2"
				if (g+i)%2 == 1 {
					storeID, own, foreign = s2.ID, "r-2", "r-1"
				}

				rec := httptest.NewRecorder()
				r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stores/"+storeID+"/items/"+own, nil))
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, own, rec.Body.String())

				rec = httptest.NewRecorder()
				r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stores/"+storeID+"/items/"+foreign, nil))
				assert.Equal(t, http.StatusNotFound, rec.Code)
			}
		}(g)
	}
	wg.Wait()

	require.Positive(t, stores.calls.Load())
}
