package cmd

import (
	"fmt"

	"github.com/IceTiki/cfst-builder/internal/constitutive"
	"github.com/IceTiki/cfst-builder/internal/gbcode"
	"github.com/IceTiki/cfst-builder/internal/material"
	"github.com/spf13/cobra"
)

var (
	curveTubeGrade     string
	curveTubeThickness float64
	curveBarGrade      string
)

var curveTubeCmd = &cobra.Command{
	Use:   "tube",
	Short: "Stress-strain curve of the steel tube",
	Long: `Tabulate the four-segment steel tube model:

  ε <= εy          σ = E·ε
  εy < ε <= 10εy   σ = fy
  10εy < ε <= 100εy  linear hardening from fy to fu
  ε > 100εy        σ = fu

Examples:
  cfst curve tube --grade Q355 --thickness 6
  cfst curve tube --prms "fy=355,fu=470,E=206000" --ascii`,
	RunE: runCurveTube,
}

var curveBarCmd = &cobra.Command{
	Use:   "bar",
	Short: "Stress-strain curve of the tie bars",
	Long: `Tabulate the bilinear tie bar model with a post-yield slope of E/100.

Examples:
  cfst curve bar --grade HRB400
  cfst curve bar --prms "fy=400,E=200000" -o bar.png`,
	RunE: runCurveBar,
}

func init() {
	curveCmd.AddCommand(curveTubeCmd)
	curveCmd.AddCommand(curveBarCmd)

	curveTubeCmd.Flags().StringVarP(&curveTubeGrade, "grade", "g", "", "Structural steel grade, e.g. Q355")
	curveTubeCmd.Flags().Float64VarP(&curveTubeThickness, "thickness", "t", 0, "Tube wall thickness (mm)")
	curveBarCmd.Flags().StringVarP(&curveBarGrade, "grade", "g", "", "Rebar grade, e.g. HRB400")
}

func runCurveTube(cmd *cobra.Command, args []string) error {
	var m constitutive.Model
	var err error
	title := "STEEL TUBE"
	switch {
	case curveTubeGrade != "":
		thk := curveTubeThickness
		if thk <= 0 {
			thk = cfg.SteelThickness
		}
		st, lookupErr := material.FromGrade[material.Steel](store, material.SteelKind{Thickness: thk}, curveTubeGrade)
		if lookupErr != nil {
			return lookupErr
		}
		m, err = constitutive.NewSteelTube(st.StrengthYield, st.StrengthTensile, st.ElasticModulus)
		if err != nil {
			return err
		}
		title = fmt.Sprintf("STEEL TUBE - %s, t = %g mm", st.Grade, thk)
	case curvePrms != "":
		if m, err = modelFromPrms("steel-tube"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("either --grade or --prms is required")
	}
	return emitCurve("steel-tube", title, m, gbcode.SteelStrainUpper)
}

func runCurveBar(cmd *cobra.Command, args []string) error {
	var m constitutive.Model
	var err error
	title := "TIE BAR"
	switch {
	case curveBarGrade != "":
		bar, lookupErr := material.FromGrade[material.SteelBar](store, material.SteelBarKind{}, curveBarGrade)
		if lookupErr != nil {
			return lookupErr
		}
		m, err = constitutive.NewTieBar(bar.StrengthCriterionYield, bar.ElasticModulus)
		if err != nil {
			return err
		}
		title = "TIE BAR - " + bar.Grade
	case curvePrms != "":
		if m, err = modelFromPrms("tie-bar"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("either --grade or --prms is required")
	}
	return emitCurve("tie-bar", title, m, gbcode.SteelStrainUpper)
}
