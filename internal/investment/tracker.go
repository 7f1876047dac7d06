package investment

import (
	"log/slog"
	"sync"

	"github.com/mtlprog/lendstat/internal/domain"
)

// Observer is notified after every Tracker update attempt.
type Observer interface {
	ObserveUpdate(d Dashboard, applied bool)
}

// Tracker keeps the last good Dashboard for long-lived callers.
// A nil investments or tokens slice means "input not available yet" and leaves the
// current dashboard untouched; empty non-nil slices recompute.
type Tracker struct {
	mu        sync.RWMutex
	opts      Options
	current   Dashboard
	observers []Observer
}

// NewTracker creates a Tracker whose initial dashboard is computed from empty inputs.
// Every observer is notified after each update attempt, in the order given.
func NewTracker(opts Options, observers ...Observer) *Tracker {
	return &Tracker{
		opts:      opts,
		current:   Compute(nil, nil, opts),
		observers: observers,
	}
}

// Update recomputes the dashboard when both inputs are present.
// It returns the dashboard now current and whether a recomputation happened.
// Updates are serialized: the last call to return is the one left current.
func (t *Tracker) Update(investments []domain.Investment, tokens []domain.Token) (Dashboard, bool) {
	if investments == nil || tokens == nil {
		slog.Debug("dashboard update skipped, input missing",
			"investmentsPresent", investments != nil,
			"tokensPresent", tokens != nil,
		)
		current := t.Current()
		t.notify(current, false)
		return current, false
	}

	t.mu.Lock()
	d := Compute(investments, tokens, t.opts)
	t.current = d
	t.mu.Unlock()

	if d.SkippedInvestments > 0 {
		slog.Warn("investments reference tokens outside the registry",
			"skipped", d.SkippedInvestments,
			"investments", len(investments),
		)
	}

	t.notify(d, true)
	return d, true
}

// Current returns the last computed dashboard.
func (t *Tracker) Current() Dashboard {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

func (t *Tracker) notify(d Dashboard, applied bool) {
	for _, o := range t.observers {
		if o != nil {
			o.ObserveUpdate(d, applied)
		}
	}
}
