package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/mtlprog/lendstat/internal/domain"
	"github.com/mtlprog/lendstat/internal/investment"
	"github.com/mtlprog/lendstat/internal/snapshot"
)

// DashboardUpdater applies a new investments/tokens pair.
type DashboardUpdater interface {
	Update(investments []domain.Investment, tokens []domain.Token) (investment.Dashboard, bool)
}

// AfterReloadHook is called after each reload that recomputed the dashboard.
type AfterReloadHook interface {
	Export(ctx context.Context, d investment.Dashboard) error
}

// ReloadWorker periodically reloads the input document into the dashboard.
type ReloadWorker struct {
	source   snapshot.Source
	updater  DashboardUpdater
	interval time.Duration
	hook     AfterReloadHook // optional
}

// NewReloadWorker creates a new ReloadWorker with an optional post-reload hook.
func NewReloadWorker(source snapshot.Source, updater DashboardUpdater, interval time.Duration, hook AfterReloadHook) *ReloadWorker {
	return &ReloadWorker{
		source:   source,
		updater:  updater,
		interval: interval,
		hook:     hook,
	}
}

// runHook calls the post-reload hook if one is configured.
func (w *ReloadWorker) runHook(ctx context.Context, d investment.Dashboard) {
	if w.hook == nil {
		return
	}
	if err := w.hook.Export(ctx, d); err != nil {
		slog.Error("ReloadWorker: export hook failed", "error", err)
	} else {
		slog.Info("ReloadWorker: export hook completed")
	}
}

// reload loads the document once. Load errors and incomplete documents keep the
// current dashboard.
func (w *ReloadWorker) reload(ctx context.Context) {
	doc, err := w.source.Load(ctx)
	if err != nil {
		slog.Error("ReloadWorker: loading input failed, keeping previous dashboard", "error", err)
		return
	}

	if !doc.Complete() {
		slog.Warn("ReloadWorker: input incomplete, keeping previous dashboard",
			"investmentsPresent", doc.Investments != nil,
			"tokensPresent", doc.Tokens != nil,
		)
	}

	d, applied := w.updater.Update(doc.Investments, doc.Tokens)
	if !applied {
		return
	}

	slog.Info("ReloadWorker: dashboard updated",
		"symbols", d.TokenBalances.Len(),
		"investments", len(doc.Investments),
		"skipped", d.SkippedInvestments,
	)
	w.runHook(ctx, d)
}

// Run starts the reload loop. It blocks until the context is cancelled.
func (w *ReloadWorker) Run(ctx context.Context) {
	slog.Info("ReloadWorker: starting", "interval", w.interval)

	// Load immediately on startup
	w.reload(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("ReloadWorker: shutting down")
			return
		case <-ticker.C:
			w.reload(ctx)
		}
	}
}
