package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/handler"
	"github.com/dmitrymomot/storekit/pkg/binder"
)

type createRequest struct {
	StoreID string `json:"-" path:"storeID"`
	Name    string `json:"name"`
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) handler.JSONResponse {
	t.Helper()
	var body handler.JSONResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestWrap(t *testing.T) {
	t.Parallel()

	pathParams := func(_ *http.Request, key string) string {
		if key == "storeID" {
			return "store-1"
		}
		return ""
	}

	echo := func(ctx handler.Context, req createRequest) handler.Response {
		return handler.JSON(req, handler.WithJSONStatus(http.StatusCreated))
	}

	h := handler.Wrap(echo,
		handler.WithBinders[createRequest](binder.Path(pathParams), binder.JSON()),
	)

	t.Run("binds path and body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/stores/store-1/products", strings.NewReader(`{"name":"Mug"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, map[string]any{"name": "Mug"}, body.Data)
	})

	t.Run("bodyless request skips JSON binder", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/stores/store-1/products", nil))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad_request", decodeBody(t, rec).Error.Code)
	})
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.Wrap(
		func(handler.Context, struct{}) handler.Response { return nil },
		handler.WithErrorHandler[struct{}](func(ctx handler.Context, err error) {
			got = err
			ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
		}),
	)
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.ErrorIs(t, got, handler.ErrNilResponse)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestWrap_ErrorResponse(t *testing.T) {
	t.Parallel()

	errDomain := errors.New("domain failure")
	var got error
	h := handler.Wrap(
		func(handler.Context, struct{}) handler.Response { return handler.Error(errDomain) },
		handler.WithErrorHandler[struct{}](func(ctx handler.Context, err error) {
			got = err
		}),
	)
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, got, errDomain)
}

func TestWrap_DecoratorOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	mark := func(name string) handler.Decorator[struct{}] {
		return func(next handler.HandlerFunc[struct{}]) handler.HandlerFunc[struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				calls = append(calls, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(
		func(handler.Context, struct{}) handler.Response {
			calls = append(calls, "handler")
			return handler.Empty()
		},
		handler.WithDecorators(mark("outer"), mark("inner")),
	)
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodDelete, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, calls)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
