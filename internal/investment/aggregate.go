package investment

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"

	"github.com/mtlprog/lendstat/internal/domain"
)

// SymbolTotals pairs a symbol with its accumulated totals.
type SymbolTotals struct {
	Symbol string
	domain.TokenTotals
}

// Aggregation is an ordered mapping from token symbol to totals.
// Iteration order is the order in which symbols first appear in the token registry.
type Aggregation struct {
	symbols []string
	totals  map[string]domain.TokenTotals
	skipped int
}

func newAggregation(symbols []string) Aggregation {
	totals := lo.SliceToMap(symbols, func(s string) (string, domain.TokenTotals) {
		return s, domain.TokenTotals{}
	})
	return Aggregation{symbols: symbols, totals: totals}
}

// Aggregate folds investments into per-symbol totals.
// Every registry symbol gets an entry, zero if nothing references it. Investments whose
// principal token is not in the registry contribute nothing and are counted as skipped.
// The denormalized PrincipalTokenSymbol is never consulted.
func Aggregate(investments []domain.Investment, tokens []domain.Token) Aggregation {
	registry := Resolve(tokens)
	agg := newAggregation(lo.Uniq(lo.Map(tokens, func(t domain.Token, _ int) string {
		return t.Symbol
	})))

	for _, inv := range investments {
		symbol, ok := registry.Symbol(inv.PrincipalToken())
		if !ok {
			agg.skipped++
			continue
		}
		current := agg.totals[symbol]
		agg.totals[symbol] = domain.TokenTotals{
			TotalLended: domain.SafeSum(current.TotalLended, inv.PrincipalAmount()),
			TotalEarned: domain.SafeSum(current.TotalEarned, inv.EarnedAmount),
		}
	}

	return agg
}

// Len returns the number of symbols.
func (a Aggregation) Len() int {
	return len(a.symbols)
}

// Skipped returns how many investments referenced tokens outside the registry.
func (a Aggregation) Skipped() int {
	return a.skipped
}

// Symbols returns the symbols in registry order.
func (a Aggregation) Symbols() []string {
	return append([]string(nil), a.symbols...)
}

// Get returns the totals for a symbol.
func (a Aggregation) Get(symbol string) (domain.TokenTotals, bool) {
	t, ok := a.totals[symbol]
	return t, ok
}

// Entries returns all symbols with their totals in registry order.
func (a Aggregation) Entries() []SymbolTotals {
	return lo.Map(a.symbols, func(s string, _ int) SymbolTotals {
		return SymbolTotals{Symbol: s, TokenTotals: a.totals[s]}
	})
}

// MarshalJSON encodes the aggregation as a JSON object keyed by symbol, keeping registry order.
func (a Aggregation) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, symbol := range a.symbols {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(symbol)
		if err != nil {
			return nil, fmt.Errorf("encoding symbol %q: %w", symbol, err)
		}
		value, err := json.Marshal(a.totals[symbol])
		if err != nil {
			return nil, fmt.Errorf("encoding totals for %s: %w", symbol, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
