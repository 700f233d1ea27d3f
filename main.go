package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/locvowork/hrms_lite/internal/bootstrap"
	"github.com/locvowork/hrms_lite/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		logger.ErrorLog(ctx, "Failed to initialize application: %v", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.ErrorLog(ctx, "Server stopped with error: %v", err)
		os.Exit(1)
	}
}
