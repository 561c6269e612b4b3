// Package middlewares provides net/http middleware used around a cookiepack
// Packer. Every middleware has the func(http.Handler) http.Handler shape, so
// it plugs into chi's Use or wraps a handler directly.
//
// # Request ID
//
// RequestID assigns an ID to each request for tracing. It reuses an ID from
// the incoming headers when present and generates a UUID otherwise.
//
//	r := chi.NewRouter()
//	r.Use(middlewares.RequestID())
//
// Use RequestIDExtractor() with logger.New for automatic request_id in logs:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//
// # Recover
//
// Recover catches panics, logs them with the stack trace and answers 500.
//
//	r.Use(middlewares.Recover(
//	    middlewares.WithRecoverLogger(log),
//	))
//
// A custom handler receives the *PanicError:
//
//	middlewares.Recover(
//	    middlewares.WithRecoverHandler(func(w http.ResponseWriter, r *http.Request, err *middlewares.PanicError) {
//	        http.Error(w, "something went wrong", http.StatusInternalServerError)
//	    }),
//	)
//
// # Recommended Middleware Order
//
//	r.Use(
//	    middlewares.RequestID(), // First: assign ID for all subsequent logging
//	    middlewares.Recover(),   // Second: catch panics from the packer and handlers
//	    packer.Handler,          // Last: pack cookies around the application
//	)
package middlewares
