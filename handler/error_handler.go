package handler

import (
	"errors"
	"log/slog"
	"maps"
	"net/http"

	"github.com/dmitrymomot/storekit/pkg/binder"
	"github.com/dmitrymomot/storekit/pkg/logger"
	"github.com/dmitrymomot/storekit/pkg/requestid"
)

// ErrorMapper translates domain errors into HTTPError or ValidationError
// values. Errors it returns unchanged are classified as-is.
type ErrorMapper func(err error) error

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string][]string
	LogLevel   slog.Level
}

// ErrorHandlerOption configures NewErrorHandler.
type ErrorHandlerOption func(*errorHandlerConfig)

type errorHandlerConfig struct {
	mapper ErrorMapper
}

// WithErrorMapper registers the domain error mapper.
func WithErrorMapper(m ErrorMapper) ErrorHandlerOption {
	return func(c *errorHandlerConfig) {
		c.mapper = m
	}
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if statusCode < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError analyzes the error and returns structured error information.
// Unclassified errors become a generic 500 so internals never reach clients.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternalServerError.Code,
		Code:       ErrInternalServerError.Key,
		Message:    http.StatusText(http.StatusInternalServerError),
	}

	var httpErr HTTPError
	var validationErr ValidationError
	switch {
	case errors.As(err, &validationErr):
		info.StatusCode = http.StatusUnprocessableEntity
		info.Code = "validation"
		info.Message = "validation failed"
		if len(validationErr) > 0 {
			info.Details = make(map[string][]string, len(validationErr))
			maps.Copy(info.Details, validationErr)
		}
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Code = httpErr.Key
		info.Message = http.StatusText(httpErr.Code)
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		info.StatusCode = ErrUnsupportedMediaType.Code
		info.Code = ErrUnsupportedMediaType.Key
		info.Message = http.StatusText(ErrUnsupportedMediaType.Code)
	case errors.Is(err, binder.ErrFailedToParseJSON), errors.Is(err, binder.ErrFailedToParsePath):
		info.StatusCode = ErrBadRequest.Code
		info.Code = ErrBadRequest.Key
		info.Message = "malformed request"
	}

	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

func writeError(w http.ResponseWriter, r *http.Request, info ErrorInfo) {
	detail := &ErrorDetail{Code: info.Code, Message: info.Message, Details: info.Details}
	opts := []JSONOption{WithJSONStatus(info.StatusCode)}
	if id := requestid.FromContext(r.Context()); id != "" {
		opts = append(opts, WithJSONMeta(map[string]any{"request_id": id}))
	}
	_ = JSONError(detail, opts...).Render(w, r)
}

// NewHTTPErrorHandler returns a plain net/http error writer: the error is
// mapped, classified, logged and rendered as the JSON error envelope.
// Its signature fits the error handler hooks of the auth and tenant middleware.
func NewHTTPErrorHandler(log *slog.Logger, opts ...ErrorHandlerOption) func(http.ResponseWriter, *http.Request, error) {
	cfg := &errorHandlerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))

	return func(w http.ResponseWriter, r *http.Request, err error) {
		mapped := err
		if cfg.mapper != nil {
			mapped = cfg.mapper(err)
		}
		info := classifyError(mapped)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("code", info.Code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		writeError(w, r, info)
	}
}

// NewErrorHandler adapts NewHTTPErrorHandler to Wrap's ErrorHandler.
// Configure it once in main.go and pass it to every wrapped handler.
func NewErrorHandler(log *slog.Logger, opts ...ErrorHandlerOption) ErrorHandler {
	write := NewHTTPErrorHandler(log, opts...)
	return func(ctx Context, err error) {
		write(ctx.ResponseWriter(), ctx.Request(), err)
	}
}
