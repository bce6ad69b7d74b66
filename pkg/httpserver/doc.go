// Package httpserver runs the service's HTTP listener with graceful
// shutdown and provides a health check handler.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.New(cfg, log)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// Cancelling ctx stops accepting connections and waits up to
// Config.ShutdownTimeout for in-flight requests. Failures wrap ErrStart or
// ErrShutdown.
package httpserver
