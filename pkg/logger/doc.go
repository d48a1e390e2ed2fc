// Package logger builds the service's *slog.Logger: JSON output in production,
// text in development, static attributes, and a handler decorator that pulls
// request-scoped values (request id, owner id, store id) out of
// context.Context on every record.
//
// Values of sensitive keys (see DefaultRedactedKeys) are replaced with
// "[REDACTED]" before output, so a careless log call cannot leak a password,
// bearer token or cookie. Extend the list with WithRedactedKeys.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, "storekit"),
//		logger.WithConfig(logCfg),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			auth.LoggerExtractor(),
//			tenant.LoggerExtractor(),
//		),
//	)
//	slog.SetDefault(log)
//
//	log.InfoContext(ctx, "store created",
//		logger.StoreID(store.ID),
//		logger.Component("account"),
//	)
//
// Error and Errors produce attributes only for non-nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
