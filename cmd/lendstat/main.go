package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/mtlprog/lendstat/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}
	cfg := config.Load()

	app := &cli.App{
		Name:  "lendstat",
		Usage: "aggregate lending investments into per-token totals and dashboard panels",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: cfg.LogLevel.String(), Usage: "debug, info, warn or error"},
			&cli.IntFlag{Name: "limit", Value: cfg.PanelLimit, Usage: "maximum rows per panel"},
			&cli.StringFlag{Name: "currency", Value: cfg.DefaultCurrency, Usage: "currency shown when a panel is empty"},
		},
		Before: func(c *cli.Context) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
				return cli.Exit("invalid --log-level: "+err.Error(), 2)
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
		Commands: []*cli.Command{
			summaryCommand(cfg),
			exportCommand(cfg),
			serveCommand(cfg),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatalf("lendstat: %v", err)
	}
}
