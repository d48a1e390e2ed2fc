// Package clientip resolves the originating client address of an
// *http.Request.
//
// Forwarding headers are spoofable by any client that reaches the service
// directly, so none is trusted unless named explicitly. Deployments behind a
// proxy list the headers it sets, in priority order:
//
//	r.Use(clientip.Middleware("CF-Connecting-IP", "X-Forwarded-For"))
//
// For X-Forwarded-For the first valid entry is used. When no trusted header
// carries a valid address the TCP peer address is returned.
//
// The resolved address is stored in the request context and can be read with
// FromContext. LoggerExtractor adds it to log records as "client_ip".
package clientip
