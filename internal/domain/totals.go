package domain

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// TokenTotals accumulates lending activity for one token symbol.
type TokenTotals struct {
	TotalLended decimal.Decimal `json:"totalLended"`
	TotalEarned decimal.Decimal `json:"totalEarned"`
}

// Field selects which TokenTotals amount a panel shows.
type Field string

const (
	FieldLended Field = "totalLended"
	FieldEarned Field = "totalEarned"
)

// Label returns the panel title for the field.
func (f Field) Label() string {
	switch f {
	case FieldLended:
		return "Total Lended"
	case FieldEarned:
		return "Total Earned"
	default:
		return string(f)
	}
}

// Amount returns the value of the given field.
func (t TokenTotals) Amount(f Field) decimal.Decimal {
	switch f {
	case FieldLended:
		return t.TotalLended
	case FieldEarned:
		return t.TotalEarned
	default:
		return decimal.Zero
	}
}

// EntryKind discriminates panel rows.
type EntryKind string

const (
	EntryToken    EntryKind = "token"
	EntryMore     EntryKind = "more"    // overflow sentinel
	EntryFallback EntryKind = "default" // shown when no token has a positive amount
)

// MoreLabel is the text of the overflow sentinel row.
const MoreLabel = "AND MORE"

// DisplayEntry is one row of a display panel.
type DisplayEntry struct {
	Kind   EntryKind       `json:"kind"`
	Symbol string          `json:"symbol,omitempty"`
	Amount decimal.Decimal `json:"amount"`
}

// TokenEntry creates a row for a resolved token.
func TokenEntry(symbol string, amount decimal.Decimal) DisplayEntry {
	return DisplayEntry{Kind: EntryToken, Symbol: symbol, Amount: amount}
}

// MoreEntry creates the overflow sentinel.
func MoreEntry() DisplayEntry {
	return DisplayEntry{Kind: EntryMore}
}

// FallbackEntry creates the zero row denominated in currency.
func FallbackEntry(currency string) DisplayEntry {
	return DisplayEntry{Kind: EntryFallback, Symbol: currency, Amount: decimal.Zero}
}

// IsSentinel reports whether the entry is the overflow sentinel.
func (e DisplayEntry) IsSentinel() bool {
	return e.Kind == EntryMore
}

// String renders the row as shown on the dashboard: "<amount> <symbol>" or "AND MORE".
func (e DisplayEntry) String() string {
	if e.IsSentinel() {
		return MoreLabel
	}
	return fmt.Sprintf("%s %s", FormatAmount(e.Amount), e.Symbol)
}

// Panel is one of the two bounded dashboard views.
type Panel struct {
	Field   Field          `json:"field"`
	Label   string         `json:"label"`
	Entries []DisplayEntry `json:"entries"`
	Rows    []string       `json:"rows"`
}

// NewPanel builds a panel with rendered rows for the given entries.
func NewPanel(field Field, entries []DisplayEntry) Panel {
	return Panel{
		Field:   field,
		Label:   field.Label(),
		Entries: entries,
		Rows: lo.Map(entries, func(e DisplayEntry, _ int) string {
			return e.String()
		}),
	}
}
