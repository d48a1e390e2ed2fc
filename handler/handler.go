package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/storekit/pkg/binder"
)

// HandlerFunc handles a request already bound into R.
//
//	func login(ctx handler.Context, req loginRequest) handler.Response {
//		pair, _, err := accounts.Login(ctx, req.Email, req.Password)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(pair)
//	}
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response renders itself to an http.ResponseWriter. A non-nil error is
// passed to the ErrorHandler instead of being written.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind populates v from r. Binders return binder.ErrBinderNotApplicable
// when the request carries nothing for them.
type Bind func(r *http.Request, v any) error

// ErrorHandler writes the response for binding, handler and render errors.
type ErrorHandler func(ctx Context, err error)

// Decorator wraps a HandlerFunc. The first decorator passed to
// WithDecorators is the outermost.
type Decorator[R any] func(HandlerFunc[R]) HandlerFunc[R]

// WrapOption configures Wrap.
type WrapOption[R any] func(*wrapConfig[R])

type wrapConfig[R any] struct {
	binders      []Bind
	errorHandler ErrorHandler
	decorators   []Decorator[R]
}

// WithBinders appends binders applied in order; each handles its own tags.
//
//	handler.WithBinders[createProductRequest](binder.Path(chi.URLParam), binder.JSON())
func WithBinders[R any](binders ...Bind) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		for _, b := range binders {
			if b != nil {
				c.binders = append(c.binders, b)
			}
		}
	}
}

// WithErrorHandler replaces the default error handler.
func WithErrorHandler[R any](h ErrorHandler) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithDecorators appends decorators.
func WithDecorators[R any](decorators ...Decorator[R]) WrapOption[R] {
	return func(c *wrapConfig[R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler renders the JSON error envelope without logging.
func defaultErrorHandler(ctx Context, err error) {
	writeError(ctx.ResponseWriter(), ctx.Request(), classifyError(err))
}

// Wrap adapts a HandlerFunc to http.HandlerFunc: it binds R, runs the
// decorated handler and renders the response.
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption[R]) http.HandlerFunc {
	cfg := &wrapConfig[R]{errorHandler: defaultErrorHandler}
	for _, opt := range opts {
		opt(cfg)
	}
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		h = cfg.decorators[i](h)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		for _, bind := range cfg.binders {
			err := bind(r, &req)
			if errors.Is(err, binder.ErrBinderNotApplicable) {
				continue
			}
			if err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		resp := h(ctx, req)
		if resp == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
