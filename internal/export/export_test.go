package export

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mtlprog/lendstat/internal/domain"
	"github.com/mtlprog/lendstat/internal/investment"
)

const (
	addrMKR = "0x07e93e27ac8a1c114f1931f65e3c8b5186b9b77e"
	addrZRX = "0xc3017eb5cd063bf6745723895edead65257a5f6e"
)

func sampleDashboard() investment.Dashboard {
	investments := []domain.Investment{
		{JSON: `{"principalToken":"` + addrMKR + `","principalAmount":"345"}`, EarnedAmount: decimal.Zero},
		{JSON: `{"principalToken":"` + addrZRX + `","principalAmount":"345"}`, EarnedAmount: decimal.NewFromInt(10)},
	}
	tokens := []domain.Token{
		{Address: addrMKR, Symbol: "MKR", NumDecimals: 18},
		{Address: addrZRX, Symbol: "ZRX", NumDecimals: 18},
	}
	return investment.Compute(investments, tokens, investment.DefaultOptions())
}

type mockWriter struct {
	reports []Report
	err     error
}

func (m *mockWriter) Write(_ context.Context, r Report) error {
	m.reports = append(m.reports, r)
	return m.err
}

func TestBuildReport(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := BuildReport(sampleDashboard(), at)

	if !r.GeneratedAt.Equal(at) {
		t.Errorf("GeneratedAt = %v, want %v", r.GeneratedAt, at)
	}
	if len(r.Totals) != 2 {
		t.Fatalf("len(Totals) = %d, want 2", len(r.Totals))
	}
	if r.Totals[0].Symbol != "MKR" || !r.Totals[0].TotalLended.Equal(decimal.NewFromInt(345)) {
		t.Errorf("Totals[0] = %+v, want MKR 345", r.Totals[0])
	}
	if r.Totals[1].Symbol != "ZRX" || !r.Totals[1].TotalEarned.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Totals[1] = %+v, want ZRX earned 10", r.Totals[1])
	}

	want := []PanelRow{
		{Panel: "Total Lended", Position: 1, Value: "345 MKR"},
		{Panel: "Total Lended", Position: 2, Value: "345 ZRX"},
		{Panel: "Total Earned", Position: 1, Value: "10 ZRX"},
	}
	if len(r.Panels) != len(want) {
		t.Fatalf("len(Panels) = %d, want %d: %+v", len(r.Panels), len(want), r.Panels)
	}
	for i, w := range want {
		if r.Panels[i] != w {
			t.Errorf("Panels[%d] = %+v, want %+v", i, r.Panels[i], w)
		}
	}
}

func TestBuildReportEmptyDashboard(t *testing.T) {
	r := BuildReport(investment.Compute(nil, nil, investment.DefaultOptions()), time.Now())

	if len(r.Totals) != 0 {
		t.Errorf("len(Totals) = %d, want 0", len(r.Totals))
	}
	if len(r.Panels) != 2 {
		t.Fatalf("len(Panels) = %d, want 2", len(r.Panels))
	}
	for _, p := range r.Panels {
		if p.Value != "0 ETH" {
			t.Errorf("panel %s value = %q, want %q", p.Panel, p.Value, "0 ETH")
		}
	}
}

func TestBuildTotalsValues(t *testing.T) {
	data := buildTotalsValues(BuildReport(sampleDashboard(), time.Now()))

	if len(data) != 3 {
		t.Fatalf("len(data) = %d, want 3", len(data))
	}
	if data[0][0] != "Symbol" || data[0][1] != "Total Lended" || data[0][2] != "Total Earned" {
		t.Errorf("header = %v", data[0])
	}
	if data[1][0] != "MKR" {
		t.Errorf("data[1][0] = %v, want MKR", data[1][0])
	}
	if v, ok := data[1][1].(float64); !ok || v != 345 {
		t.Errorf("data[1][1] = %v, want 345", data[1][1])
	}
	if v, ok := data[2][2].(float64); !ok || v != 10 {
		t.Errorf("data[2][2] = %v, want 10", data[2][2])
	}
}

func TestBuildPanelValues(t *testing.T) {
	data := buildPanelValues(BuildReport(sampleDashboard(), time.Now()))

	if len(data) != 4 {
		t.Fatalf("len(data) = %d, want 4", len(data))
	}
	if data[0][0] != "Panel" || data[0][1] != "Row" || data[0][2] != "Value" {
		t.Errorf("header = %v", data[0])
	}
	if data[3][0] != "Total Earned" || data[3][1] != 1 || data[3][2] != "10 ZRX" {
		t.Errorf("data[3] = %v, want [Total Earned 1 10 ZRX]", data[3])
	}
}

func TestBuildHistoryRows(t *testing.T) {
	at := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)

	data := buildHistoryRows(BuildReport(sampleDashboard(), at))
	if len(data) != 2 {
		t.Fatalf("len(data) = %d, want 2", len(data))
	}
	if data[0][0] != "2026-03-01" || data[0][1] != "MKR" {
		t.Errorf("data[0] = %v, want date and MKR", data[0])
	}

	empty := buildHistoryRows(Report{GeneratedAt: at})
	if len(empty) != 1 {
		t.Fatalf("len(empty) = %d, want 1", len(empty))
	}
	if empty[0][1] != "" {
		t.Errorf("empty[0][1] = %v, want empty symbol", empty[0][1])
	}
}

func TestServiceExport(t *testing.T) {
	first := &mockWriter{}
	second := &mockWriter{}
	svc := NewService(first, second)

	if err := svc.Export(context.Background(), sampleDashboard()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if len(first.reports) != 1 || len(second.reports) != 1 {
		t.Fatalf("writes = %d/%d, want 1/1", len(first.reports), len(second.reports))
	}
	if len(first.reports[0].Totals) != 2 {
		t.Errorf("len(Totals) = %d, want 2", len(first.reports[0].Totals))
	}
}

func TestServiceExportContinuesAfterWriterError(t *testing.T) {
	errBoom := errors.New("boom")
	failing := &mockWriter{err: errBoom}
	ok := &mockWriter{}
	svc := NewService(failing, ok)

	err := svc.Export(context.Background(), sampleDashboard())
	if !errors.Is(err, errBoom) {
		t.Fatalf("Export() error = %v, want %v", err, errBoom)
	}
	if len(ok.reports) != 1 {
		t.Errorf("second writer calls = %d, want 1", len(ok.reports))
	}
}

func TestServiceExportWithoutWriters(t *testing.T) {
	if err := NewService().Export(context.Background(), sampleDashboard()); err == nil {
		t.Error("Export() with no writers should fail")
	}
}
