package sink

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lepinkainen/gamecrawl/internal/catalog"
	"github.com/lepinkainen/gamecrawl/internal/fileutil"
)

// SheetName is the name of the single worksheet in the workbook.
const SheetName = "sheet"

// defaultSheet is the sheet excelize creates in a new file.
const defaultSheet = "Sheet1"

// WriteWorkbook writes records to a single-sheet workbook at path: a header
// row of column names followed by one row per record.
func WriteWorkbook(path string, records []catalog.EnrichedRecord) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", closeErr)
		}
	}()

	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet writer: %w", err)
	}

	if err := writeRow(sw, 1, catalog.Columns()); err != nil {
		return err
	}
	for i, rec := range records {
		if err := writeRow(sw, i+2, rec.Row()); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	if err := fileutil.EnsureParentDir(path); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeRow(sw *excelize.StreamWriter, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := sw.SetRow(cell, cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
