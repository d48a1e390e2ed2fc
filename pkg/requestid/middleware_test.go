package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storekit/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		inbound string
		keep    bool
	}{
		{name: "missing header", inbound: ""},
		{name: "valid id is propagated", inbound: "req_01-abc", keep: true},
		{name: "max length is accepted", inbound: strings.Repeat("a", 128), keep: true},
		{name: "too long", inbound: strings.Repeat("a", 129)},
		{name: "spaces", inbound: "a b"},
		{name: "header injection", inbound: "abc\r\nSet-Cookie: x=1"},
		{name: "unicode", inbound: "идентификатор"},
		{name: "punctuation", inbound: "abc@def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = requestid.FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.inbound != "" {
				req.Header[requestid.Header] = []string{tt.inbound}
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, seen, rec.Header().Get(requestid.Header))
			if tt.keep {
				assert.Equal(t, tt.inbound, seen)
				return
			}
			_, err := uuid.Parse(seen)
			assert.NoError(t, err, "a fresh uuid replaces %q", tt.inbound)
		})
	}
}

func TestMiddleware_DistinctIDs(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[requestid.FromContext(r.Context())] = struct{}{}
	}))
	for range 50 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	assert.Len(t, seen, 50)
}
