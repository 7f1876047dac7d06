package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mtlprog/lendstat/internal/api"
	"github.com/mtlprog/lendstat/internal/config"
	"github.com/mtlprog/lendstat/internal/domain"
	"github.com/mtlprog/lendstat/internal/export"
	"github.com/mtlprog/lendstat/internal/investment"
	"github.com/mtlprog/lendstat/internal/metrics"
	"github.com/mtlprog/lendstat/internal/snapshot"
	"github.com/mtlprog/lendstat/internal/worker"
)

func inputFlag(cfg config.Config) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Usage:    "path to a JSON document with investments and tokens",
		Value:    cfg.InputPath,
		Required: cfg.InputPath == "",
	}
}

func options(c *cli.Context) investment.Options {
	return investment.Options{
		PanelLimit:      c.Int("limit"),
		DefaultCurrency: c.String("currency"),
	}
}

// computeFromFile loads the input document and computes a dashboard. Missing
// collections are treated as empty since there is no previous result to keep.
func computeFromFile(c *cli.Context) (investment.Dashboard, error) {
	doc, err := snapshot.LoadFile(c.String("input"))
	if err != nil {
		return investment.Dashboard{}, err
	}
	d := investment.Compute(doc.Investments, doc.Tokens, options(c))
	if d.SkippedInvestments > 0 {
		slog.Warn("investments with unknown principal token were skipped", "count", d.SkippedInvestments)
	}
	return d, nil
}

func summaryCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "print the Total Lended and Total Earned panels",
		Flags: []cli.Flag{
			inputFlag(cfg),
			&cli.BoolFlag{Name: "json", Usage: "print the full dashboard as JSON"},
		},
		Action: func(c *cli.Context) error {
			d, err := computeFromFile(c)
			if err != nil {
				return err
			}
			if c.Bool("json") {
				enc := json.NewEncoder(c.App.Writer)
				enc.SetIndent("", "  ")
				return enc.Encode(d)
			}
			printSummary(c.App.Writer, d)
			return nil
		},
	}
}

func printSummary(w io.Writer, d investment.Dashboard) {
	for _, p := range []domain.Panel{d.TotalLended, d.TotalEarned} {
		fmt.Fprintln(w, p.Label)
		for _, row := range p.Rows {
			fmt.Fprintf(w, "  %s\n", row)
		}
	}
}

func exportCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write token balances and panels to an Excel workbook and/or Google Sheet",
		Flags: []cli.Flag{
			inputFlag(cfg),
			&cli.StringFlag{Name: "xlsx", Value: cfg.XLSXPath, Usage: "workbook path, empty to skip"},
			&cli.StringFlag{Name: "sheet-id", Value: cfg.GoogleSheetID, Usage: "Google spreadsheet ID"},
		},
		Action: func(c *cli.Context) error {
			d, err := computeFromFile(c)
			if err != nil {
				return err
			}

			writers, err := exportWriters(c.Context, c.String("xlsx"), c.String("sheet-id"), cfg.GoogleCredentialsJSON)
			if err != nil {
				return err
			}
			if len(writers) == 0 {
				return cli.Exit("nothing to export: set --xlsx or --sheet-id", 2)
			}

			if err := export.NewService(writers...).Export(c.Context, d); err != nil {
				return fmt.Errorf("exporting dashboard: %w", err)
			}
			slog.Info("export completed", "writers", len(writers), "symbols", d.TokenBalances.Len())
			return nil
		},
	}
}

func exportWriters(ctx context.Context, xlsxPath, sheetID, credentialsJSON string) ([]export.SheetWriter, error) {
	var writers []export.SheetWriter
	if xlsxPath != "" {
		writers = append(writers, export.NewXLSXWriter(xlsxPath))
	}
	if sheetID != "" {
		if credentialsJSON == "" {
			return nil, errors.New("GOOGLE_CREDENTIALS_JSON is required for Google Sheets export")
		}
		sw, err := export.NewSheetsWriter(ctx, sheetID, credentialsJSON)
		if err != nil {
			return nil, err
		}
		writers = append(writers, sw)
	}
	return writers, nil
}

func serveCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the dashboard over HTTP and reload the input document periodically",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Value: cfg.HTTPPort, Usage: "HTTP listen port"},
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Value: cfg.InputPath, Usage: "input document to reload, empty to rely on PUT"},
			&cli.DurationFlag{Name: "interval", Value: cfg.ReloadInterval, Usage: "reload interval"},
		},
		Action: func(c *cli.Context) error {
			return serve(c, cfg)
		},
	}
}

func serve(c *cli.Context, cfg config.Config) error {
	ctx, stop := context.WithCancel(c.Context)
	defer stop()

	opts := options(c)
	tracker := investment.NewTracker(opts, metrics.Recorder{})

	if path := c.String("input"); path != "" {
		var hook worker.AfterReloadHook
		if cfg.SheetsEnabled() {
			sw, err := export.NewSheetsWriter(ctx, cfg.GoogleSheetID, cfg.GoogleCredentialsJSON)
			if err != nil {
				return fmt.Errorf("creating sheets writer: %w", err)
			}
			hook = export.NewService(sw)
		}
		reloadWorker := worker.NewReloadWorker(snapshot.NewFileSource(path), tracker, c.Duration("interval"), hook)
		go reloadWorker.Run(ctx)
	} else {
		slog.Warn("no input document configured, dashboard changes only via PUT /api/v1/dashboard")
	}

	if cfg.AdminAPIKey == "" {
		slog.Warn("ADMIN_API_KEY not set, dashboard update endpoint is unprotected")
	}

	port := c.String("port")
	srv := api.NewServer(port, tracker, opts, cfg.AdminAPIKey)

	go func() {
		slog.Info("HTTP server listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}

	slog.Info("shutdown complete")
	return nil
}
