// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, readiness checks and slog logging.
//
// Run binds the listener before serving, so address errors are returned
// immediately, and blocks until the context is cancelled. It then calls
// http.Server.Shutdown with the configured deadline. Stop hooks run on every
// exit path and are the place to disconnect storage clients. Listener errors
// are joined with ErrStart and shutdown errors with ErrShutdown. Signal
// handling belongs to the caller, usually via signal.NotifyContext.
//
// # Usage
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStopHook(func(*slog.Logger) { _ = client.Disconnect(context.Background()) }),
//	)
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log, cfg.HealthTimeout,
//		httpserver.HealthCheck{Name: "mongo", Check: mongo.Healthcheck(client)},
//	))
//
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
