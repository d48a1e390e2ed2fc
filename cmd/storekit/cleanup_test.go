package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/httpserver"
)

func TestCleanup_RunsInReverseOnce(t *testing.T) {
	t.Parallel()

	var order []string
	var c cleanup
	c.add(func(*slog.Logger) { order = append(order, "mongo") })
	c.add(func(*slog.Logger) { order = append(order, "redis") })

	c.run(slog.New(slog.DiscardHandler))
	c.run(slog.New(slog.DiscardHandler))

	assert.Equal(t, []string{"redis", "mongo"}, order)
}

func TestCleanup_HandoffTransfersOwnership(t *testing.T) {
	t.Parallel()

	var order []string
	var c cleanup
	c.add(func(*slog.Logger) { order = append(order, "mongo") })
	c.add(func(*slog.Logger) { order = append(order, "redis") })

	opts := c.handoff()
	require.Len(t, opts, 2)

	c.run(slog.New(slog.DiscardHandler))
	assert.Empty(t, order, "handed off functions belong to the server")

	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	srv := httpserver.New(append(opts, httpserver.WithAddr(taken.Addr().String()))...)
	err = srv.Run(context.Background(), http.NotFoundHandler())
	require.ErrorIs(t, err, httpserver.ErrStart)
	assert.Equal(t, []string{"redis", "mongo"}, order)
}
