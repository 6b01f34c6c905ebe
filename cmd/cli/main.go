package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/ligadeportiva/ligacli/internal/buildinfo"
	"github.com/ligadeportiva/ligacli/internal/client/cli"
	"github.com/ligadeportiva/ligacli/internal/client/config"
	"github.com/ligadeportiva/ligacli/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
