// Package logger builds slog loggers with context extraction and optional
// Sentry reporting.
//
// # Basic Usage
//
//	log := logger.New(logger.Config{Level: "debug", Format: "text"},
//		middlewares.RequestIDExtractor(),
//		cookiepack.JarSizeExtractor(),
//	)
//
//	log.InfoContext(r.Context(), "request packed")
//	// level=INFO msg="request packed" request_id=... cookie_jar_size=3
//
// # Context Extractors
//
// A ContextExtractor pulls one attribute out of a context.Context. Extractors
// run on every log call made with a context, so request-scoped values stay
// fresh. Return false to skip the attribute.
//
// NewLogHandlerDecorator adds extractors to any slog.Handler.
//
// # Sentry
//
// Setting Config.Sentry.DSN sends warnings and errors to Sentry as well;
// errors become issues. Without a DSN, or if Sentry fails to initialize,
// the logger writes to its output only.
//
// # No-op Logger
//
// NewNope returns a logger that discards everything. Library code uses it
// when no logger is configured.
package logger
