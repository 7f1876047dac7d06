package export

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	sheets "google.golang.org/api/sheets/v4"
)

// historyHeader is the first row of the HISTORY sheet.
var historyHeader = []any{"Date", "Symbol", "Total Lended", "Total Earned"}

// buildHistoryRows builds one dated row per symbol for the HISTORY sheet.
// A report without symbols still produces a single row so every run leaves a trace.
func buildHistoryRows(r Report) [][]any {
	date := r.GeneratedAt.UTC().Format(time.DateOnly)
	if len(r.Totals) == 0 {
		return [][]any{{date, "", float64(0), float64(0)}}
	}
	return lo.Map(r.Totals, func(row TotalsRow, _ int) []any {
		return []any{date, row.Symbol, toFloat(row.TotalLended), toFloat(row.TotalEarned)}
	})
}

// appendHistory writes the header if the HISTORY sheet is empty, then appends this run's rows.
func (w *SheetsWriter) appendHistory(ctx context.Context, r Report) error {
	existing, err := w.svc.Spreadsheets.Values.Get(
		w.spreadsheetID, SheetHistory+"!A1:A1",
	).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("reading %s header: %w", SheetHistory, err)
	}

	if len(existing.Values) == 0 {
		_, err = w.svc.Spreadsheets.Values.Update(
			w.spreadsheetID,
			SheetHistory+"!A1",
			&sheets.ValueRange{Values: [][]any{historyHeader}},
		).ValueInputOption("USER_ENTERED").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("writing %s header: %w", SheetHistory, err)
		}
	}

	_, err = w.svc.Spreadsheets.Values.Append(
		w.spreadsheetID,
		SheetHistory+"!A:D",
		&sheets.ValueRange{Values: buildHistoryRows(r)},
	).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("appending %s rows: %w", SheetHistory, err)
	}

	return nil
}
