package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"mybuddy/mybuddy/utils/logging"

	"go.uber.org/zap"
)

// Serve runs the HTTP server on addr until ctx is cancelled, then shuts it
// down gracefully.
func (a *App) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
		return err
	}
	logging.AppLogger.Info("server shutdown complete")
	return nil
}
