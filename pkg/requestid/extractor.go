package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/storekit/pkg/logger"
)

// LoggerExtractor returns a logger context extractor that adds request_id.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return logger.RequestID(requestID), true
		}
		return slog.Attr{}, false
	}
}
