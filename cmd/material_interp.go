package cmd

import (
	"fmt"

	"github.com/IceTiki/cfst-builder/internal/material"
	"github.com/spf13/cobra"
)

var (
	materialInterpClass     string
	materialInterpProperty  string
	materialInterpValue     float64
	materialInterpThickness float64
)

var materialInterpCmd = &cobra.Command{
	Use:   "interp",
	Short: "Interpolate a material grade by a property value",
	Long: `Synthesize the material record whose property equals the target value.

Grades are ordered by the property; a grade with exactly the target value
is returned as is, otherwise the two bracketing grades are blended
linearly. The name of a blended record describes the blend, e.g.
((C30*0.5)+(C35*0.5)).

Examples:
  cfst material interp --class concrete --property strength_pressure --value 20
  cfst material interp --class steel_bar --property strength_criterion_yield --value 450`,
	RunE: runMaterialInterp,
}

func init() {
	materialCmd.AddCommand(materialInterpCmd)

	materialInterpCmd.Flags().StringVarP(&materialInterpClass, "class", "c", "", "Material class: concrete, steel, steel_bar [required]")
	materialInterpCmd.Flags().StringVarP(&materialInterpProperty, "property", "p", "", "Property to match, e.g. strength_pressure [required]")
	materialInterpCmd.Flags().Float64Var(&materialInterpValue, "value", 0, "Target property value [required]")
	materialInterpCmd.Flags().Float64VarP(&materialInterpThickness, "thickness", "t", 0, "Plate thickness for structural steel (mm)")
	materialInterpCmd.MarkFlagRequired("class")
	materialInterpCmd.MarkFlagRequired("property")
	materialInterpCmd.MarkFlagRequired("value")
}

func runMaterialInterp(cmd *cobra.Command, args []string) error {
	thk := materialInterpThickness
	if thk <= 0 {
		thk = cfg.SteelThickness
	}
	e, err := material.Interpolate(store, materialInterpClass, materialInterpProperty, materialInterpValue, thk)
	if err != nil {
		return fmt.Errorf("failed to interpolate %s = %g: %w", materialInterpProperty, materialInterpValue, err)
	}
	printEntry(e)
	return nil
}
