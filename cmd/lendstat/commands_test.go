package main

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mtlprog/lendstat/internal/domain"
	"github.com/mtlprog/lendstat/internal/investment"
)

func TestPrintSummary(t *testing.T) {
	const addr = "0x9b62bd396837417ce319e2e5c8845a5a960010ea"
	d := investment.Compute(
		[]domain.Investment{{
			JSON:         `{"principalToken":"` + addr + `","principalAmount":"10"}`,
			EarnedAmount: decimal.NewFromInt(4),
		}},
		[]domain.Token{{Address: addr, Symbol: "REP"}},
		investment.DefaultOptions(),
	)

	var buf bytes.Buffer
	printSummary(&buf, d)

	want := "Total Lended\n  10 REP\nTotal Earned\n  4 REP\n"
	if got := buf.String(); got != want {
		t.Errorf("printSummary() = %q, want %q", got, want)
	}
}

func TestPrintSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, investment.Compute(nil, nil, investment.DefaultOptions()))

	want := "Total Lended\n  0 ETH\nTotal Earned\n  0 ETH\n"
	if got := buf.String(); got != want {
		t.Errorf("printSummary() = %q, want %q", got, want)
	}
}

func TestExportWritersRequiresCredentialsForSheets(t *testing.T) {
	if _, err := exportWriters(t.Context(), "", "sheet-id", ""); err == nil {
		t.Error("exportWriters() without credentials should fail")
	}
}

func TestExportWritersXLSXOnly(t *testing.T) {
	writers, err := exportWriters(t.Context(), "out.xlsx", "", "")
	if err != nil {
		t.Fatalf("exportWriters() error = %v", err)
	}
	if len(writers) != 1 {
		t.Errorf("len(writers) = %d, want 1", len(writers))
	}
}
