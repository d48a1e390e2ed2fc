// Package requestid correlates log records and error responses of a single
// HTTP request.
//
// Middleware reuses a well-formed client supplied X-Request-ID header or
// generates a UUID, stores it in the request context and echoes it in the
// response. Error envelopes rendered by the storefront module include the same
// id, and LoggerExtractor adds it to every log record written with the request
// context.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
