package investment

import (
	"github.com/samber/lo"

	"github.com/mtlprog/lendstat/internal/domain"
)

const (
	// DefaultPanelLimit is the number of rows a panel shows, sentinel included.
	DefaultPanelLimit = 4
	// DefaultCurrency denominates the zero row of an empty panel.
	DefaultCurrency = "ETH"
)

// Select builds the rows of one panel from an aggregation.
//
// Only symbols whose field amount is strictly positive are shown, in registry order.
// When more than limit symbols qualify, the first limit-1 are followed by the
// "AND MORE" sentinel. When none qualify, a single "0 <fallbackCurrency>" row is
// returned. A limit below 1 means DefaultPanelLimit; an empty currency means
// DefaultCurrency.
func Select(agg Aggregation, field domain.Field, limit int, fallbackCurrency string) []domain.DisplayEntry {
	if limit < 1 {
		limit = DefaultPanelLimit
	}
	if fallbackCurrency == "" {
		fallbackCurrency = DefaultCurrency
	}

	entries := lo.FilterMap(agg.Entries(), func(e SymbolTotals, _ int) (domain.DisplayEntry, bool) {
		amount := e.Amount(field)
		return domain.TokenEntry(e.Symbol, amount), amount.IsPositive()
	})

	if len(entries) == 0 {
		return []domain.DisplayEntry{domain.FallbackEntry(fallbackCurrency)}
	}
	if len(entries) > limit {
		return append(entries[:limit-1:limit-1], domain.MoreEntry())
	}
	return entries
}
