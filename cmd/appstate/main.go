package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/mkravets/appstate/internal/buildinfo"
	"github.com/mkravets/appstate/internal/cli"
	"github.com/mkravets/appstate/internal/config"
	"github.com/mkravets/appstate/internal/kvstore"
	"github.com/mkravets/appstate/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})
	logger := logging.NewSlogLogger(slog.New(h))

	kv, err := kvstore.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("error opening local database: %v", err)
	}
	defer kv.Close()

	app := cli.NewApp(kv, logger)
	app.Restore(ctx)
	app.Run(ctx)
}
