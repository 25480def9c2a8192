package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"impactindex/internal/model"
	"impactindex/internal/report"
)

// Workbook sheet names.
const (
	SheetGroupImpact = "Group Impact"
	SheetOASummary   = "OA Summary"
	SheetOADetails   = "OA Details"
)

// Workbook renders the assessment into the three-sheet spreadsheet: the
// group impact table, the OA summary and the per-question OA detail.
// Numeric values are written as numbers, not formatted strings.
func Workbook(result *model.AssessmentResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetGroupImpact); err != nil {
		return nil, fmt.Errorf("failed to name group impact sheet: %w", err)
	}
	if err := writeTable(f, SheetGroupImpact, report.GroupImpactTable(result.Groups)); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(SheetOASummary); err != nil {
		return nil, fmt.Errorf("failed to add OA summary sheet: %w", err)
	}
	if err := writeTable(f, SheetOASummary, report.SummaryTable("OA", result.OA)); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(SheetOADetails); err != nil {
		return nil, fmt.Errorf("failed to add OA details sheet: %w", err)
	}
	if err := writeTable(f, SheetOADetails, report.DetailTable(result.OADetails)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeTable writes the header on row 1 and the table rows below it.
func writeTable(f *excelize.File, sheet string, t report.Table) error {
	for col, name := range t.Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("failed to write %s header: %w", sheet, err)
		}
	}

	for r, row := range t.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write %s row %d: %w", sheet, r+1, err)
			}
		}
	}

	return nil
}
