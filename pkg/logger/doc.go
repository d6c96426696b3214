// Package logger builds *slog.Logger values configured with functional
// options and provides attribute helpers with consistent key names.
//
// New selects a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which runs registered ContextExtractor
// callbacks on every record:
//
//	log := logger.New(
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithEnvironment(cfg.Env, "formdemo"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "submission rejected",
//	    logger.FormID(sess.ID),
//	    logger.ErrorCount(len(sess.Errors)),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally. Nop returns a logger that drops everything and is
// the default for components constructed without one.
package logger
