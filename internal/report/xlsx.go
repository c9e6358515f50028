package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/IceTiki/cfst-builder/internal/constitutive"
)

// NamedCurve is a curve written to its own worksheet
type NamedCurve struct {
	Name  string
	Curve constitutive.Curve
}

// WriteXLSX writes each curve to a sheet with strain and stress columns and
// the elastic modulus in D2
func WriteXLSX(filename string, curves []NamedCurve) error {
	if len(curves) == 0 {
		return fmt.Errorf("no curves to write")
	}
	f := excelize.NewFile()
	defer f.Close()

	for i, nc := range curves {
		sheet := nc.Name
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}

		if err := f.SetSheetRow(sheet, "A1", &[]any{"Strain", "Stress (MPa)", "", "Elastic modulus (MPa)"}); err != nil {
			return err
		}
		if err := f.SetCellFloat(sheet, "D2", nc.Curve.Modulus, -1, 64); err != nil {
			return err
		}
		for j := range nc.Curve.Strain {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &[]any{nc.Curve.Strain[j], nc.Curve.Stress[j]}); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(filename)
}
