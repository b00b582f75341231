package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gotank/internal/errors"
)

// CapacitySheet is the worksheet name of the XLSX capacity table
const CapacitySheet = "Capacity"

// CapacityXLSX writes the capacity table to an XLSX workbook. Values are
// stored as numbers rounded like the CSV columns.
func CapacityXLSX(path string, rows []CapacityRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CapacitySheet); err != nil {
		return errors.Wrap(errors.TypeExport, "naming sheet", err)
	}
	if err := f.SetSheetRow(CapacitySheet, "A1", &CapacityHeaders); err != nil {
		return errors.Wrap(errors.TypeExport, "writing XLSX header", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(errors.TypeExport, "addressing XLSX row", err)
		}
		values := []interface{}{
			round(r.HeightM, 2),
			round(r.CapacityKL, 3),
			round(r.PercentFull, 1),
			round(r.AddedKL, 3),
		}
		if err := f.SetSheetRow(CapacitySheet, cell, &values); err != nil {
			return errors.Wrap(errors.TypeExport, "writing XLSX row", err)
		}
	}
	if err := f.SetColWidth(CapacitySheet, "A", "D", 18); err != nil {
		return errors.Wrap(errors.TypeExport, "sizing columns", err)
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrap(errors.TypeExport, "saving "+path, err)
	}
	return nil
}
