// Command server runs the treatment-plan board HTTP API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment. The process exits 1 on startup or serve errors.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
