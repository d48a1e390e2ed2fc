package storefront

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/storekit/handler"
	"github.com/dmitrymomot/storekit/pkg/auth"
	"github.com/dmitrymomot/storekit/pkg/clientip"
	"github.com/dmitrymomot/storekit/pkg/cookie"
	"github.com/dmitrymomot/storekit/pkg/httpserver"
	"github.com/dmitrymomot/storekit/pkg/logger"
	"github.com/dmitrymomot/storekit/pkg/metrics"
	"github.com/dmitrymomot/storekit/pkg/ratelimiter"
	"github.com/dmitrymomot/storekit/pkg/requestid"
	"github.com/dmitrymomot/storekit/pkg/tenant"
	"github.com/dmitrymomot/storekit/svc/account"
	"github.com/dmitrymomot/storekit/svc/catalog"
)

// Options holds the collaborators of the storefront API.
// Accounts, Catalog, Tokens, Resolver and Cookies are required.
type Options struct {
	Accounts *account.Service
	Catalog  *catalog.Service
	Tokens   auth.TokenVerifier
	Resolver *tenant.Resolver
	Cookies  *cookie.Manager

	// Metrics is optional; when set, /metrics is mounted.
	Metrics *metrics.Metrics
	Logger  *slog.Logger

	// AuthLimiter, when set, throttles register and login per client address
	// as resolved from RemoteAddr and TrustedIPHeaders.
	AuthLimiter      *ratelimiter.Bucket
	TrustedIPHeaders []string

	HealthChecks  []httpserver.HealthCheck
	HealthTimeout time.Duration
}

type api struct {
	accounts     *account.Service
	catalog      *catalog.Service
	cookies      *cookie.Manager
	errorHandler handler.ErrorHandler
}

// Router builds the storefront router.
//
//	srv.Run(ctx, storefront.Router(storefront.Options{
//		Accounts: accounts,
//		Catalog:  products,
//		Tokens:   tokens,
//		Resolver: tenant.NewResolver(repos.Stores),
//		Cookies:  cookies,
//		Metrics:  m,
//		Logger:   log,
//	}))
func Router(opts Options) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	healthTimeout := opts.HealthTimeout
	if healthTimeout <= 0 {
		healthTimeout = 2 * time.Second
	}

	writeError := handler.NewHTTPErrorHandler(log, handler.WithErrorMapper(MapError))
	a := &api{
		accounts:     opts.Accounts,
		catalog:      opts.Catalog,
		cookies:      opts.Cookies,
		errorHandler: handler.NewErrorHandler(log, handler.WithErrorMapper(MapError)),
	}

	authenticator := auth.NewAuthenticator(opts.Tokens,
		auth.WithCookie(opts.Cookies.AccessName()),
		auth.WithLogger(log),
		auth.WithObserver(func(o auth.Outcome) { opts.Metrics.ObserveAuth(string(o)) }),
	)
	requirePrincipal := auth.RequirePrincipal(writeError)
	storeContext := tenant.Middleware(opts.Resolver, tenant.URLParam("storeID"),
		tenant.WithErrorHandler(writeError),
		tenant.WithLogger(log),
	)

	throttle := func(route string) func(http.Handler) http.Handler {
		if opts.AuthLimiter == nil {
			return func(next http.Handler) http.Handler { return next }
		}
		return ratelimiter.Middleware(opts.AuthLimiter, ratelimiter.ByClientIP(route),
			ratelimiter.WithErrorHandler(writeError),
			ratelimiter.WithLogger(log),
			ratelimiter.WithOnLimited(func(*http.Request) { opts.Metrics.ObserveRateLimited(route) }),
		)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(opts.TrustedIPHeaders...))
	r.Use(opts.Metrics.Middleware)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, handler.ErrMethodNotAllowed)
	})

	r.Get("/healthz", httpserver.HealthCheckHandler(log, healthTimeout, opts.HealthChecks...))
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Group(func(r chi.Router) {
		r.Use(authenticator.Middleware)

		r.Route("/auth", func(r chi.Router) {
			r.With(throttle("/auth/register")).Post("/register", wrapJSON(a, a.register))
			r.With(throttle("/auth/login")).Post("/login", wrapJSON(a, a.login))
			r.Post("/refresh", wrapJSON(a, a.refresh))
			r.Post("/logout", wrapJSON(a, a.logout))
			r.With(requirePrincipal).Get("/me", wrap(a, a.me))
		})

		r.Route("/stores", func(r chi.Router) {
			r.With(requirePrincipal).Post("/", wrapJSON(a, a.createStore))

			r.Route("/{storeID}", func(r chi.Router) {
				r.Use(storeContext)

				r.Get("/", wrap(a, a.getStore))
				r.Get("/products", wrap(a, a.listProducts))
				r.Get("/products/{productID}", wrapPath(a, a.getProduct))

				// Ownership is checked by the services on every call.
				r.Group(func(r chi.Router) {
					r.Use(requirePrincipal)
					r.Patch("/", wrapJSON(a, a.updateStore))
					r.Delete("/", wrap(a, a.deleteStore))
					r.Post("/activate", wrap(a, a.activateStore))
					r.Post("/products", wrapJSON(a, a.createProduct))
					r.Delete("/products/{productID}", wrapPath(a, a.deleteProduct))
				})
			})
		})
	})

	log.Debug("storefront routes mounted", logger.Component("storefront"))
	return r
}
