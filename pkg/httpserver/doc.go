// Package httpserver runs an http.Handler with graceful shutdown and exposes
// liveness and readiness probes.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled, SIGINT/SIGTERM arrives, or the listener
// fails. Shutdown may be called from another goroutine and is idempotent.
package httpserver
