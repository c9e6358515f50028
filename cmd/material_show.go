package cmd

import (
	"fmt"
	"strings"

	"github.com/IceTiki/cfst-builder/internal/material"
	"github.com/spf13/cobra"
)

var (
	materialShowClass     string
	materialShowGrade     string
	materialShowThickness float64
)

var materialShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a material grade",
	Long: `Print the tabulated properties of a material grade. Without --grade
the grades of the class are listed.

Structural steel rows are selected by plate thickness (--thickness, or
CFST_STEEL_THICKNESS, default 100 mm).

Examples:
  cfst material show --class concrete --grade C50
  cfst material show --class steel --grade Q355 --thickness 20
  cfst material show --class steel_bar`,
	RunE: runMaterialShow,
}

func init() {
	materialCmd.AddCommand(materialShowCmd)

	materialShowCmd.Flags().StringVarP(&materialShowClass, "class", "c", "", "Material class: concrete, steel, steel_bar [required]")
	materialShowCmd.Flags().StringVarP(&materialShowGrade, "grade", "g", "", "Grade name, e.g. C50, Q355, HRB400")
	materialShowCmd.Flags().Float64VarP(&materialShowThickness, "thickness", "t", 0, "Plate thickness for structural steel (mm)")
	materialShowCmd.MarkFlagRequired("class")
}

func runMaterialShow(cmd *cobra.Command, args []string) error {
	if materialShowGrade == "" {
		t, err := store.Table(materialShowClass)
		if err != nil {
			return err
		}
		fmt.Printf("\n  %s grades: %s\n\n", materialShowClass, strings.Join(t.Grades(), ", "))
		return nil
	}

	thk := materialShowThickness
	if thk <= 0 {
		thk = cfg.SteelThickness
	}
	e, err := material.Lookup(store, materialShowClass, materialShowGrade, thk)
	if err != nil {
		return fmt.Errorf("failed to look up %s: %w", materialShowGrade, err)
	}
	printEntry(e)
	return nil
}
