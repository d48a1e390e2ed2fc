package httpserver

import (
	"log/slog"
	"time"
)

// Option configures the HTTP server. Empty addresses and non-positive
// durations are ignored so that zero config values keep the defaults.
type Option func(*config)

// WithAddr sets the listen address. ":0" picks a free port; see Server.Addr.
func WithAddr(addr string) Option {
	return func(c *config) {
		if addr != "" {
			c.addr = addr
		}
	}
}

func positive(dst *time.Duration, d time.Duration) {
	if d > 0 {
		*dst = d
	}
}

// WithReadTimeout bounds reading the entire request.
func WithReadTimeout(d time.Duration) Option {
	return func(c *config) { positive(&c.readTimeout, d) }
}

// WithReadHeaderTimeout bounds reading the request headers.
func WithReadHeaderTimeout(d time.Duration) Option {
	return func(c *config) { positive(&c.readHeaderTimeout, d) }
}

// WithWriteTimeout bounds writing the response.
func WithWriteTimeout(d time.Duration) Option {
	return func(c *config) { positive(&c.writeTimeout, d) }
}

// WithIdleTimeout bounds keep-alive idle time.
func WithIdleTimeout(d time.Duration) Option {
	return func(c *config) { positive(&c.idleTimeout, d) }
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) { positive(&c.shutdownTimeout, d) }
}

// WithLogger sets the logger. Without it logs are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStartHook registers a callback run once the listener is bound.
func WithStartHook(h func(*slog.Logger)) Option {
	return func(c *config) {
		if h != nil {
			c.startHooks = append(c.startHooks, h)
		}
	}
}

// WithStopHook registers a callback run after the server stopped, whatever
// the reason. Storage clients are closed here.
func WithStopHook(h func(*slog.Logger)) Option {
	return func(c *config) {
		if h != nil {
			c.stopHooks = append(c.stopHooks, h)
		}
	}
}
