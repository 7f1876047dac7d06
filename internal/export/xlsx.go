package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXWriter implements SheetWriter by writing an Excel workbook to disk.
type XLSXWriter struct {
	path string
}

// NewXLSXWriter creates an XLSXWriter that overwrites path on every Write.
func NewXLSXWriter(path string) *XLSXWriter {
	return &XLSXWriter{path: path}
}

// Write builds a workbook with the TOKEN_BALANCES and PANELS sheets and saves it.
func (w *XLSXWriter) Write(ctx context.Context, report Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetTotals); err != nil {
		return fmt.Errorf("renaming default sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetPanels); err != nil {
		return fmt.Errorf("creating %s sheet: %w", SheetPanels, err)
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := writeRows(f, SheetTotals, buildTotalsValues(report), header); err != nil {
		return err
	}
	if err := writeRows(f, SheetPanels, buildPanelValues(report), header); err != nil {
		return err
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", w.path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, values [][]any, headerStyle int) error {
	for i, row := range values {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("addressing %s row %d: %w", sheet, i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("styling %s header: %w", sheet, err)
	}
	return nil
}
