package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mybuddy/mybuddy/app"
	"mybuddy/mybuddy/config"
	"mybuddy/mybuddy/utils/logging"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	if err := logging.InitLogger(cfg.LogDir); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialise logging:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, cfg)
	stop()
	logging.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run serves until ctx is cancelled. The store is closed on every return path.
func run(ctx context.Context, cfg config.Config) error {
	startCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	a, err := app.New(startCtx, cfg)
	cancel()
	if err != nil {
		logging.ErrorLogger.Error("startup error", zap.Error(err))
		return err
	}
	defer a.Close()

	fmt.Printf("MyBuddy listening on http://%s\n", cfg.Addr())
	if err := a.Serve(ctx, cfg.Addr()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
