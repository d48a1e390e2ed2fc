package storefront

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/storekit/handler"
	"github.com/dmitrymomot/storekit/pkg/binder"
)

func wrap[R any](a *api, h handler.HandlerFunc[R]) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithErrorHandler[R](a.errorHandler),
	)
}

func wrapPath[R any](a *api, h handler.HandlerFunc[R]) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[R](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[R](a.errorHandler),
	)
}

func wrapJSON[R any](a *api, h handler.HandlerFunc[R]) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[R](binder.Path(chi.URLParam), binder.JSON()),
		handler.WithErrorHandler[R](a.errorHandler),
	)
}
