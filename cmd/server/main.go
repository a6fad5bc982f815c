package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

// run serves the relay until SIGINT/SIGTERM or a listener failure and returns
// the process exit code.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := InitializeApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hipchat relay: init: %v\n", err)
		return 1
	}
	logger := app.Logger()
	// Flushes the rotated file and stdout; the room sink posts synchronously.
	defer func() { _ = logger.Sync() }()

	runErr := make(chan error, 1)
	go func() {
		runErr <- app.Run(ctx)
	}()

	code := 0
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-runErr:
		if err != nil {
			logger.Error("hipchat relay stopped", zap.Error(err))
			code = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.ShutdownTimeout())
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err), zap.Duration("timeout", app.ShutdownTimeout()))
		code = 1
	}
	return code
}
