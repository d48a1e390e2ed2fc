package handler

import (
	"context"
	"net/http"
)

// Context is the request context handed to a HandlerFunc. It can be passed
// anywhere a context.Context is expected.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

type httpContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

// NewContext binds w and r; context methods delegate to r.Context().
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{Context: r.Context(), w: w, r: r}
}

func (c *httpContext) Request() *http.Request { return c.r }

func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }
