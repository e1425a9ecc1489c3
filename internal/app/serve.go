package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/observability"
	"github.com/eugene-petrov-me/nhl-commentary-core/internal/platform/logging"
)

const defaultShutdownTimeout = 10 * time.Second

// Serve runs the HTTP server, plus the pprof server when enabled, until
// ctx is cancelled, then shuts both down gracefully.
func Serve(ctx context.Context, c *Container) error {
	srv, err := NewHTTPServer(c)
	if err != nil {
		return err
	}
	logger := c.Logger

	var metricsHandler []http.Handler
	if c.Metrics != nil {
		metricsHandler = append(metricsHandler, c.Metrics.Handler())
	}
	pprofSrv, err := observability.StartPprofServer(c.Config, logger, metricsHandler...)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
		if serveErr != nil {
			logger.Error("http server failed", "error", serveErr)
		}
	}

	shutdownErr := shutdown(srv, logger)
	if err := observability.StopPprofServer(pprofSrv, logger, 0); err != nil {
		logger.Warn("pprof shutdown failed", "error", err)
	}
	if serveErr != nil {
		return serveErr
	}
	return shutdownErr
}

func shutdown(srv *http.Server, logger *logging.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		return err
	}
	logger.Info("http server stopped")
	return nil
}
