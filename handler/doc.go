// Package handler provides type-safe JSON HTTP handlers.
//
// A handler is a generic function from a typed request to a Response.
// Wrap turns it into an http.HandlerFunc: binders fill the request struct,
// decorators add cross-cutting behavior and the error handler renders
// failures.
//
//	type loginRequest struct {
//		Email    string `json:"email"`
//		Password string `json:"password"`
//	}
//
//	func login(ctx handler.Context, req loginRequest) handler.Response {
//		pair, _, err := accounts.Login(ctx, req.Email, req.Password)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(pair)
//	}
//
//	errorHandler := handler.NewErrorHandler(log, handler.WithErrorMapper(mapDomainError))
//	r.Post("/auth/login", handler.Wrap(login,
//		handler.WithBinders[loginRequest](binder.JSON()),
//		handler.WithErrorHandler[loginRequest](errorHandler),
//	))
//
// # Responses
//
//	handler.JSON(v)                                   // 200 {"data": v}
//	handler.JSON(v, handler.WithJSONStatus(201))      // custom status
//	handler.Empty()                                   // 204
//	handler.Error(err)                                // routed to the error handler
//
// # Errors
//
// Every error is rendered as the envelope
//
//	{"error": {"code": "not_found", "message": "Not Found"}, "meta": {"request_id": "..."}}
//
// HTTPError values carry the status and the stable code. ValidationError
// renders as 422 with per-field details. Binder failures become 400 or 415.
// Anything else is a 500 with a generic message; the original error is only
// logged. An ErrorMapper translates domain sentinels to HTTPError values so
// that the same error always produces the same status, code and message.
package handler
