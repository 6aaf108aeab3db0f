// Package logger builds slog loggers from functional options and provides
// attribute helpers with consistent keys.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which pulls request-scoped attributes (such
// as the request id) from the context of every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "liekit"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "pass finished",
//	    logger.PassID(v.ID),
//	    logger.Passed(v.Passed),
//	    logger.Duration(v.Elapsed),
//	)
//
// Error, Errors and the id helpers return an empty Attr for nil input, so
// they can be passed unconditionally.
package logger
