// Package convert turns a CSV table into a spreadsheet workbook with
// auto-sized columns.
package convert

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	// DefaultInput is the CSV file read from the working directory.
	DefaultInput = "comparison_table.csv"
	// SheetName is the single sheet the workbook contains.
	SheetName = "Comparison Table"
	// widthPadding is the extra display width added to every column.
	widthPadding = 2
)

// OutputName returns the timestamped workbook filename for t.
func OutputName(t time.Time) string {
	return fmt.Sprintf("comparison_table_%s.xlsx", t.Format("20060102_150405"))
}

// Run reads the CSV file at csvPath and writes it as an xlsx workbook at
// xlsxPath. The first CSV record becomes the header row. Each column's
// display width is the longer of its header and its longest cell value,
// plus a little extra space.
func Run(csvPath, xlsxPath string) error {
	input, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("opening CSV file: %w", err)
	}
	defer input.Close()

	records, err := csv.NewReader(input).ReadAll()
	if err != nil {
		return fmt.Errorf("reading CSV file %q: %w", csvPath, err)
	}

	if len(records) == 0 {
		return fmt.Errorf("CSV file %q has no rows", csvPath)
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	// The default sheet is "Sheet1"; rename it rather than juggling indexes.
	if err := workbook.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	// Header lengths seed the widths since records[0] is the header row.
	widths := make([]int, len(records[0]))

	for rowIdx, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
		if err != nil {
			return fmt.Errorf("computing cell name for row %d: %w", rowIdx+1, err)
		}

		row := make([]any, len(record))

		for colIdx, value := range record {
			row[colIdx] = value

			if colIdx < len(widths) && len(value) > widths[colIdx] {
				widths[colIdx] = len(value)
			}
		}

		if err := workbook.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", rowIdx+1, err)
		}
	}

	for colIdx, width := range widths {
		col, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return fmt.Errorf("computing column name: %w", err)
		}

		if err := workbook.SetColWidth(SheetName, col, col, float64(width+widthPadding)); err != nil {
			return fmt.Errorf("sizing column %s: %w", col, err)
		}
	}

	if err := workbook.SaveAs(xlsxPath); err != nil {
		return fmt.Errorf("saving workbook %q: %w", xlsxPath, err)
	}

	return nil
}
