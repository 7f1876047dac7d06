package export

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestXLSXWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.xlsx")
	w := NewXLSXWriter(path)

	if err := w.Write(context.Background(), BuildReport(sampleDashboard(), time.Now())); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != SheetTotals || sheets[1] != SheetPanels {
		t.Fatalf("sheets = %v, want [%s %s]", sheets, SheetTotals, SheetPanels)
	}

	totals, err := f.GetRows(SheetTotals)
	if err != nil {
		t.Fatalf("GetRows(%s) error = %v", SheetTotals, err)
	}
	wantTotals := [][]string{
		{"Symbol", "Total Lended", "Total Earned"},
		{"MKR", "345", "0"},
		{"ZRX", "345", "10"},
	}
	assertRows(t, SheetTotals, totals, wantTotals)

	panels, err := f.GetRows(SheetPanels)
	if err != nil {
		t.Fatalf("GetRows(%s) error = %v", SheetPanels, err)
	}
	wantPanels := [][]string{
		{"Panel", "Row", "Value"},
		{"Total Lended", "1", "345 MKR"},
		{"Total Lended", "2", "345 ZRX"},
		{"Total Earned", "1", "10 ZRX"},
	}
	assertRows(t, SheetPanels, panels, wantPanels)
}

func TestXLSXWriterCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "dashboard.xlsx")
	if err := NewXLSXWriter(path).Write(ctx, Report{}); err == nil {
		t.Error("Write() with cancelled context should fail")
	}
}

func TestXLSXWriterBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "dashboard.xlsx")
	if err := NewXLSXWriter(path).Write(context.Background(), Report{}); err == nil {
		t.Error("Write() to missing directory should fail")
	}
}

func assertRows(t *testing.T, sheet string, got, want [][]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s rows = %v, want %v", sheet, got, want)
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Errorf("%s row %d = %v, want %v", sheet, i+1, got[i], want[i])
			continue
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("%s cell (%d,%d) = %q, want %q", sheet, i+1, j+1, got[i][j], want[i][j])
			}
		}
	}
}
