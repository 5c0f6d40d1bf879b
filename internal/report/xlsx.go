package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes a workbook with a "Shear" sheet of segments and a
// "Forces" sheet of net point forces.
func WriteXLSX(path string, r *Report) error {
	res := r.Result

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Shear"); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet("Forces"); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	shearRows := [][]any{{"start", "end", "shear"}}
	for _, s := range res.Segments {
		shearRows = append(shearRows, []any{s.Start, s.End, s.Shear})
	}
	if err := writeRows(f, "Shear", shearRows); err != nil {
		return err
	}

	forceRows := [][]any{{"position", "magnitude"}}
	for _, fc := range res.Forces {
		forceRows = append(forceRows, []any{fc.Position, fc.Magnitude})
	}
	if err := writeRows(f, "Forces", forceRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
