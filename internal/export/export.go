package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/mtlprog/lendstat/internal/domain"
	"github.com/mtlprog/lendstat/internal/investment"
)

// Sheet names shared by all writers.
const (
	SheetTotals  = "TOKEN_BALANCES"
	SheetPanels  = "PANELS"
	SheetHistory = "HISTORY"
)

// TotalsRow is one symbol of the aggregation.
type TotalsRow struct {
	Symbol      string
	TotalLended decimal.Decimal
	TotalEarned decimal.Decimal
}

// PanelRow is one rendered row of a dashboard panel.
type PanelRow struct {
	Panel    string
	Position int
	Value    string
}

// Report is the exportable form of a dashboard.
type Report struct {
	GeneratedAt time.Time
	Totals      []TotalsRow
	Panels      []PanelRow
}

// SheetWriter writes a report to a spreadsheet destination.
type SheetWriter interface {
	Write(ctx context.Context, report Report) error
}

// Service converts dashboards into reports and hands them to every configured writer.
type Service struct {
	writers []SheetWriter
}

// NewService creates a new export Service.
func NewService(writers ...SheetWriter) *Service {
	return &Service{writers: writers}
}

// Export writes the dashboard through every writer. Implements worker.AfterReloadHook.
// All writers run even if one fails; the errors are joined.
func (s *Service) Export(ctx context.Context, d investment.Dashboard) error {
	if len(s.writers) == 0 {
		return errors.New("no export destination configured")
	}

	report := BuildReport(d, time.Now().UTC())

	var errs []error
	for i, w := range s.writers {
		if err := w.Write(ctx, report); err != nil {
			errs = append(errs, fmt.Errorf("writer %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// BuildReport flattens a dashboard into sheet rows.
func BuildReport(d investment.Dashboard, at time.Time) Report {
	totals := lo.Map(d.TokenBalances.Entries(), func(e investment.SymbolTotals, _ int) TotalsRow {
		return TotalsRow{Symbol: e.Symbol, TotalLended: e.TotalLended, TotalEarned: e.TotalEarned}
	})

	var panels []PanelRow
	for _, p := range []domain.Panel{d.TotalLended, d.TotalEarned} {
		for i, row := range p.Rows {
			panels = append(panels, PanelRow{Panel: p.Label, Position: i + 1, Value: row})
		}
	}

	return Report{GeneratedAt: at, Totals: totals, Panels: panels}
}

// buildTotalsValues builds the TOKEN_BALANCES sheet data.
// Columns: Symbol | Total Lended | Total Earned
func buildTotalsValues(r Report) [][]any {
	data := make([][]any, 0, len(r.Totals)+1)
	data = append(data, []any{"Symbol", "Total Lended", "Total Earned"})
	for _, row := range r.Totals {
		data = append(data, []any{row.Symbol, toFloat(row.TotalLended), toFloat(row.TotalEarned)})
	}
	return data
}

// buildPanelValues builds the PANELS sheet data.
// Columns: Panel | Row | Value
func buildPanelValues(r Report) [][]any {
	data := make([][]any, 0, len(r.Panels)+1)
	data = append(data, []any{"Panel", "Row", "Value"})
	for _, row := range r.Panels {
		data = append(data, []any{row.Panel, row.Position, row.Value})
	}
	return data
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
