package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// classify maps driver errors to package sentinels. ErrNoDocuments becomes
// notFound; timeouts, network failures and cancellation are joined with
// unavailable. A nil sentinel leaves that class wrapped as-is.
func classify(op string, err, notFound, unavailable error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, mongo.ErrNoDocuments):
		return notFound
	case unavailable != nil && isTransient(err):
		return errors.Join(unavailable, fmt.Errorf("%s: %w", op, err))
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func isTransient(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		mongo.IsTimeout(err) ||
		mongo.IsNetworkError(err)
}
