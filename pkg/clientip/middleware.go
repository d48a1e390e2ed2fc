package clientip

import "net/http"

// Middleware resolves the client address once per request and stores it in
// the request context.
func Middleware(trustedHeaders ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), FromRequest(r, trustedHeaders...))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
