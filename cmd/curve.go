package cmd

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/IceTiki/cfst-builder/internal/constitutive"
	"github.com/IceTiki/cfst-builder/internal/diagram"
	"github.com/IceTiki/cfst-builder/internal/report"
	"github.com/spf13/cobra"
)

var (
	curveSamples    int
	curveMaxStrain  float64
	curvePrms       string
	curveShowASCII  bool
	curveExportFile string
	curveXLSXFile   string
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Tabulate stress-strain curves",
	Long: `Evaluate a constitutive model over an evenly spaced strain domain.

Available subcommands:
  tube      - Steel tube, four-segment model with a yield plateau
  bar       - Tie bar, bilinear model with E/100 hardening
  concrete  - Core concrete confined by the tube and the tie rods

Models are built either from a material grade or directly from
parameters given as --prms "name=value,...".`,
}

func init() {
	rootCmd.AddCommand(curveCmd)

	curveCmd.PersistentFlags().IntVarP(&curveSamples, "samples", "n", 0, "Number of strain samples (default CFST_SAMPLES or 50)")
	curveCmd.PersistentFlags().Float64Var(&curveMaxStrain, "max", 0, "Largest strain (default 0.2 for steel, 0.3 for concrete)")
	curveCmd.PersistentFlags().StringVar(&curvePrms, "prms", "", "Model parameters, e.g. \"fy=355,fu=470,E=206000\"")
	curveCmd.PersistentFlags().BoolVar(&curveShowASCII, "ascii", false, "Show an ASCII chart")
	curveCmd.PersistentFlags().StringVarP(&curveExportFile, "output", "o", "", "Export chart to file (png, svg, pdf)")
	curveCmd.PersistentFlags().StringVar(&curveXLSXFile, "xlsx", "", "Write the curve to an Excel workbook")
}

// modelFromPrms builds a registered model from the --prms flag
func modelFromPrms(name string) (constitutive.Model, error) {
	prms, err := constitutive.ParsePrms(curvePrms)
	if err != nil {
		return nil, err
	}
	m, err := constitutive.New(name)
	if err != nil {
		return nil, err
	}
	if err := m.Init(prms); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

// emitCurve samples m from 0 to the largest strain and writes the requested
// outputs
func emitCurve(name, title string, m constitutive.Model, maxStrain float64) error {
	n := curveSamples
	if n <= 0 {
		n = cfg.Samples
	}
	if curveMaxStrain > 0 {
		maxStrain = curveMaxStrain
	}
	strain, err := constitutive.Linspace(0, maxStrain, n)
	if err != nil {
		return err
	}
	c, err := constitutive.Sample(m, strain)
	if err != nil {
		return err
	}
	log.Printf("curve: %s, %d samples up to %g", name, n, maxStrain)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Model: %s\n", name)
	fmt.Printf("  Elastic modulus: %.0f MPa\n", c.Modulus)
	if i := c.Peak(); i >= 0 {
		fmt.Printf("  Peak: σ = %.2f MPa at ε = %.6f\n", c.Stress[i], c.Strain[i])
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Strain\tStress (MPa)\t\n")
	fmt.Fprintf(w, "  ──────\t────────────\t\n")
	for i := range c.Strain {
		fmt.Fprintf(w, "  %.6f\t%.3f\t\n", c.Strain[i], c.Stress[i])
	}
	w.Flush()
	fmt.Println()

	series := diagram.Series{Name: name, Strain: c.Strain, Stress: c.Stress}
	if curveShowASCII {
		fmt.Println(diagram.ASCIICurve(series, 60, 15))
		fmt.Println()
	}
	if curveExportFile != "" {
		if err := diagram.ExportCurves(title, []diagram.Series{series}, curveExportFile); err != nil {
			return fmt.Errorf("failed to export chart: %w", err)
		}
		fmt.Printf("  ✓ Chart exported to: %s\n", curveExportFile)
	}
	if curveXLSXFile != "" {
		if err := report.WriteXLSX(curveXLSXFile, []report.NamedCurve{{Name: name, Curve: c}}); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		fmt.Printf("  ✓ Curve written to: %s\n", curveXLSXFile)
	}
	return nil
}
