package cmd

import (
	"fmt"

	"github.com/IceTiki/cfst-builder/internal/constitutive"
	"github.com/IceTiki/cfst-builder/internal/gbcode"
	"github.com/IceTiki/cfst-builder/internal/specimen"
	"github.com/spf13/cobra"
)

var curveConcreteFile string

var curveConcreteCmd = &cobra.Command{
	Use:   "concrete",
	Short: "Stress-strain curve of the confined core concrete",
	Long: `Tabulate the confined core concrete model, x = ε/ε0, y = σ/σ0:

  x <= 1   y = 2x - x²
  x > 1    y = x / (β0·(x-1)^η + x),  η = 1.6 + 1.5/x

The confinement comes from a specimen file (--file) or from parameters:
  b, h  core section sides (mm)      fcc, fck  fc' and fc (MPa)
  As, fy  tube area and yield        Ab, fyb   tie area and yield
  bs  tie layer spacing (mm)         ns        ties per layer

Examples:
  cfst curve concrete --file column.json --ascii
  cfst curve concrete --prms "b=150,h=300,fcc=28.9,fck=23.1,As=3600,fy=355,Ab=78.5,fyb=400,bs=109,ns=2"`,
	RunE: runCurveConcrete,
}

func init() {
	curveCmd.AddCommand(curveConcreteCmd)

	curveConcreteCmd.Flags().StringVarP(&curveConcreteFile, "file", "f", "", "Path to specimen JSON file")
}

func runCurveConcrete(cmd *cobra.Command, args []string) error {
	var m constitutive.Model
	title := "CONFINED CORE CONCRETE"
	switch {
	case curveConcreteFile != "":
		s, err := specimen.LoadFromFile(curveConcreteFile)
		if err != nil {
			return err
		}
		res, err := specimen.Build(store, s, cfg.Samples)
		if err != nil {
			return err
		}
		m = res.Core
		title = fmt.Sprintf("CONFINED CORE CONCRETE - %s (%s)", s.Name, res.Concrete.Grade)
	case curvePrms != "":
		var err error
		if m, err = modelFromPrms("confined-concrete"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("either --file or --prms is required")
	}

	if core, ok := m.(*constitutive.ConfinedConcrete); ok {
		fmt.Println()
		fmt.Printf("  ξ = %.4f   ζ = %.4f   ε0 = %.6f   β0 = %.4f\n",
			core.Xi(), core.Zeta(), core.Epsilon0(), core.Beta0())
	}
	return emitCurve("confined-concrete", title, m, gbcode.ConcreteStrainUpper)
}
