// Package httpserver runs an http.Handler with graceful shutdown and
// provides liveness and readiness handlers.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// Run returns when ctx is canceled, SIGINT or SIGTERM arrives, or Shutdown
// is called. Start failures wrap ErrStart.
//
// ReadyHandler runs named checks concurrently and reports each result as
// JSON, answering 503 when any fails.
package httpserver
