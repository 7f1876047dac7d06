package investment

import (
	"github.com/mtlprog/lendstat/internal/domain"
)

// Options controls panel rendering.
type Options struct {
	PanelLimit      int
	DefaultCurrency string
}

// DefaultOptions returns a four-row limit and an ETH fallback.
func DefaultOptions() Options {
	return Options{PanelLimit: DefaultPanelLimit, DefaultCurrency: DefaultCurrency}
}

// Dashboard is the full investments summary: per-symbol totals plus both panels.
type Dashboard struct {
	TokenBalances      Aggregation  `json:"tokenBalances"`
	TotalLended        domain.Panel `json:"totalLended"`
	TotalEarned        domain.Panel `json:"totalEarned"`
	SkippedInvestments int          `json:"skippedInvestments"`
}

// Compute aggregates investments against the token registry and builds both panels.
// Nil and empty inputs are treated alike; callers that must keep a previous result on
// nil input should go through a Tracker.
func Compute(investments []domain.Investment, tokens []domain.Token, opts Options) Dashboard {
	return BuildDashboard(Aggregate(investments, tokens), opts)
}

// BuildDashboard builds both panels from an existing aggregation.
func BuildDashboard(agg Aggregation, opts Options) Dashboard {
	return Dashboard{
		TokenBalances:      agg,
		TotalLended:        domain.NewPanel(domain.FieldLended, Select(agg, domain.FieldLended, opts.PanelLimit, opts.DefaultCurrency)),
		TotalEarned:        domain.NewPanel(domain.FieldEarned, Select(agg, domain.FieldEarned, opts.PanelLimit, opts.DefaultCurrency)),
		SkippedInvestments: agg.Skipped(),
	}
}
