// Package httpserver runs the storefront gateway's HTTP listener with
// signal-driven graceful shutdown, and provides liveness and readiness
// handlers for the cart stores and upstream API.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
