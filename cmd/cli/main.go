package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/warnwave/warnwave-cli/internal/client/cli"
	"github.com/warnwave/warnwave-cli/internal/client/config"
	"github.com/warnwave/warnwave-cli/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := logging.NewSlogLogger(slog.New(handler))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
