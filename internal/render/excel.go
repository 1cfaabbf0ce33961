// Package render holds the thin adapters that materialize report sheets
// into concrete output formats. No business logic lives here; values come
// from the layout engine untouched.
package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/kathiroli/travel-claim/internal/report"
)

// ExcelRenderer serializes report sheets into an xlsx workbook.
type ExcelRenderer struct {
	logger *zap.Logger
}

// NewExcelRenderer creates a new Excel renderer.
func NewExcelRenderer(logger *zap.Logger) *ExcelRenderer {
	return &ExcelRenderer{logger: logger}
}

// Workbook builds an in-memory workbook with one worksheet per sheet, in
// order. The caller owns closing the returned file.
func (r *ExcelRenderer) Workbook(sheets []*report.Sheet) (*excelize.File, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets to render")
	}

	f := excelize.NewFile()
	for i, sh := range sheets {
		if i == 0 {
			// Rename the default sheet so the first report sheet keeps
			// workbook position 0.
			if err := f.SetSheetName(f.GetSheetName(0), sh.Name); err != nil {
				return nil, fmt.Errorf("failed to name sheet %q: %w", sh.Name, err)
			}
		} else {
			if _, err := f.NewSheet(sh.Name); err != nil {
				return nil, fmt.Errorf("failed to add sheet %q: %w", sh.Name, err)
			}
		}
		if err := r.fillSheet(f, sh); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Bytes serializes the sheets into xlsx file contents.
func (r *ExcelRenderer) Bytes(sheets []*report.Sheet) ([]byte, error) {
	f, err := r.Workbook(sheets)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile builds the workbook and saves it to path.
func (r *ExcelRenderer) WriteFile(sheets []*report.Sheet, path string) error {
	f, err := r.Workbook(sheets)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	r.logger.Info("Workbook written", zap.String("path", path), zap.Int("sheets", len(sheets)))
	return nil
}

// fillSheet writes column widths and cells in row-major order.
func (r *ExcelRenderer) fillSheet(f *excelize.File, sh *report.Sheet) error {
	for i, width := range sh.ColWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("invalid column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(sh.Name, col, col, width); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", col, err)
		}
	}

	for row := 1; row <= sh.Rows; row++ {
		for col := 1; col <= sh.Cols; col++ {
			addr := report.Addr(report.ColumnName(col), row)
			cell, ok := sh.Cell(addr)
			if !ok {
				continue
			}
			var value interface{}
			if cell.Kind == report.CellNumber {
				value = cell.Number
			} else {
				value = cell.Text
			}
			if err := f.SetCellValue(sh.Name, addr, value); err != nil {
				return fmt.Errorf("failed to set cell %s!%s: %w", sh.Name, addr, err)
			}
		}
	}
	return nil
}
