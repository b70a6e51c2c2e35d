// Package logger builds *slog.Logger instances for the service and the CLI.
//
// New applies Option values (format, level, static attributes, context
// extractors) and wraps the chosen slog handler in a ContextHandler, which
// injects request-scoped attributes such as the request id on every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "hangulform"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "form validated",
//	    logger.FieldCount(len(record)),
//	    logger.InvalidFields(res.Failures().Fields()),
//	)
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally. Field values are never logged, only field names.
package logger
