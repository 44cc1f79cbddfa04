// Package export writes the ledger to spreadsheet files.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"kakeibo/internal/core"
	"kakeibo/internal/log"
)

// Excel exports the record sequence into a single-sheet XLSX workbook.
type Excel struct {
	path   string
	sheet  string
	logger *log.Logger
}

func NewExcel(path, sheet string, logger *log.Logger) *Excel {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Excel{path: path, sheet: sheet, logger: logger.WithComponent("export")}
}

// Path returns the workbook path.
func (e *Excel) Path() string {
	return e.path
}

// Export writes a header row and one row per record, with the amount as
// a numeric cell, then saves the workbook. It returns the number of
// data rows written. Any failure is returned to the caller to report;
// the ledger itself is never touched.
func (e *Excel) Export(records []core.Transaction) (int, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(e.sheet)
	if err != nil {
		return 0, fmt.Errorf("create sheet %s: %w", e.sheet, err)
	}
	f.SetActiveSheet(index)
	if e.sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return 0, fmt.Errorf("drop default sheet: %w", err)
		}
	}

	for i, label := range core.FieldLabels() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return 0, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(e.sheet, cell, label); err != nil {
			return 0, fmt.Errorf("write header: %w", err)
		}
	}

	count := 0
	for i, r := range records {
		row := i + 2
		if err := f.SetCellValue(e.sheet, fmt.Sprintf("A%d", row), r.Date.String()); err != nil {
			return count, fmt.Errorf("write row %d: %w", row, err)
		}
		if err := f.SetCellValue(e.sheet, fmt.Sprintf("B%d", row), r.Category.String()); err != nil {
			return count, fmt.Errorf("write row %d: %w", row, err)
		}
		if err := f.SetCellValue(e.sheet, fmt.Sprintf("C%d", row), r.Amount.Yen); err != nil {
			return count, fmt.Errorf("write row %d: %w", row, err)
		}
		count++
	}

	if err := f.SaveAs(e.path); err != nil {
		return 0, fmt.Errorf("save workbook %s: %w", e.path, err)
	}

	e.logger.Info("Ledger exported", "path", e.path, "sheet", e.sheet, "rows", count)
	return count, nil
}
