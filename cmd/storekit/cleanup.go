package main

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/storekit/pkg/httpserver"
)

// cleanup collects release functions for resources opened during startup.
// Until handoff they are run by run on a failed startup; after handoff the
// server owns them as stop hooks.
type cleanup struct {
	mu      sync.Mutex
	fns     []func(*slog.Logger)
	handed  bool
	stopped bool
}

func (c *cleanup) add(fn func(*slog.Logger)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fns = append(c.fns, fn)
}

// run releases resources in reverse order of acquisition. It is a no-op after
// handoff or a previous run.
func (c *cleanup) run(log *slog.Logger) {
	c.mu.Lock()
	if c.handed || c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	fns := c.fns
	c.mu.Unlock()

	for i := len(fns) - 1; i >= 0; i-- {
		fns[i](log)
	}
}

// handoff returns the collected functions as server stop hooks.
func (c *cleanup) handoff() []httpserver.Option {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handed = true

	opts := make([]httpserver.Option, 0, len(c.fns))
	for i := len(c.fns) - 1; i >= 0; i-- {
		opts = append(opts, httpserver.WithStopHook(c.fns[i]))
	}
	return opts
}
