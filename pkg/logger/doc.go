// Package logger builds the storefront's *slog.Logger.
//
// New takes functional options: output format, level, static attributes and
// context extractors. Extractors run for every record, so request-scoped
// values such as the chi request id appear on every line logged with a
// request context:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "storefront"),
//		logger.WithRequestID(),
//	)
//	log.WarnContext(r.Context(), "order submission failed",
//		logger.Component("checkout"),
//		logger.CartKey(key),
//		logger.Error(err),
//	)
//
// Config carries the APP_ENV, APP_NAME, LOG_LEVEL and LOG_FORMAT variables;
// FromConfig converts it into options.
//
// Attribute helpers in attr.go keep key names consistent. Error, Errors,
// RequestID and CartKey return an empty slog.Attr for zero input, which slog
// drops.
package logger
