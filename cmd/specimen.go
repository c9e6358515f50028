package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/IceTiki/cfst-builder/internal/diagram"
	"github.com/IceTiki/cfst-builder/internal/report"
	"github.com/IceTiki/cfst-builder/internal/specimen"
	"github.com/spf13/cobra"
)

var (
	specimenFile        string
	specimenJSONFile    string
	specimenPDFFile     string
	specimenChartFile   string
	specimenXLSXFile    string
	specimenAuthor      string
	specimenShowDiagram bool
)

var specimenCmd = &cobra.Command{
	Use:   "specimen",
	Short: "Build the material set of a CFST specimen",
	Long: `Resolve the materials of a specimen defined in a JSON file and tabulate
the steel tube, tie bar and core concrete curves.

Steel tube and tie bar curves start at the yield strain and report plastic
strains. The core concrete curve uses fc' = 1.25·fc and carries the
fracture strength fc'/10 and the fracture energy Gf.

Materials are given by grade ("C50") or by a target property
({"property": "strength_pressure", "value": 20}).

Examples:
  cfst specimen --file column.json
  cfst specimen -f column.json --json materials.json --pdf column.pdf --chart column.png`,
	RunE: runSpecimen,
}

func init() {
	rootCmd.AddCommand(specimenCmd)

	specimenCmd.Flags().StringVarP(&specimenFile, "file", "f", "", "Path to specimen JSON file [required]")
	specimenCmd.MarkFlagRequired("file")

	specimenCmd.Flags().StringVar(&specimenJSONFile, "json", "", "Write the material set as JSON")
	specimenCmd.Flags().StringVar(&specimenPDFFile, "pdf", "", "Write a PDF summary")
	specimenCmd.Flags().StringVar(&specimenChartFile, "chart", "", "Export the curves to an image (png, svg, pdf)")
	specimenCmd.Flags().StringVar(&specimenXLSXFile, "xlsx", "", "Write the curves to an Excel workbook")
	specimenCmd.Flags().StringVar(&specimenAuthor, "author", "", "Author printed on the PDF summary")
	specimenCmd.Flags().BoolVar(&specimenShowDiagram, "diagram", false, "Show ASCII charts of the curves")
}

func runSpecimen(cmd *cobra.Command, args []string) error {
	s, err := specimen.LoadFromFile(specimenFile)
	if err != nil {
		return fmt.Errorf("failed to load specimen: %w", err)
	}
	res, err := specimen.Build(store, s, cfg.Samples)
	if err != nil {
		return fmt.Errorf("failed to build specimen %s: %w", s.Name, err)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CFST SPECIMEN MATERIAL SET")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if s.Name != "" {
		fmt.Printf("  Specimen: %s\n", s.Name)
	}
	if s.Description != "" {
		fmt.Printf("  Description: %s\n", s.Description)
	}
	fmt.Println()

	g, tie := s.Geometry, s.Tie
	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  B × D × H:\t%g × %g × %g mm\n", g.LenX, g.LenY, g.LenZ)
	fmt.Fprintf(w, "  Tube thickness (t):\t%g mm\n", g.TubeThickness)
	fmt.Fprintf(w, "  Tube area (As):\t%.1f mm²\n", g.TubeArea())
	fmt.Fprintf(w, "  Tie area (Ab):\t%.2f mm²\n", tie.CalculationArea())
	fmt.Fprintf(w, "  Ties per layer (ns):\t%d\n", tie.Count())
	fmt.Fprintf(w, "  Tie spacing (bs):\t%.2f mm\n", tie.Spacing(g))
	fmt.Fprintf(w, "  Tie distances (x, y):\t%.2f, %.2f mm\n", tie.XDistance(g), tie.YDistance(g))
	w.Flush()
	fmt.Println()

	fmt.Println("MATERIALS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Concrete:\t%s\tfc = %.2f MPa\tEc = %.0f MPa\n", res.Concrete.Grade, res.Concrete.StrengthPressure, res.Concrete.ElasticModulus)
	fmt.Fprintf(w, "  Steel tube:\t%s\tfy = %.1f MPa\tfu = %.1f MPa\n", res.Steel.Grade, res.Steel.StrengthYield, res.Steel.StrengthTensile)
	fmt.Fprintf(w, "  Tie bar:\t%s\tfyk = %.1f MPa\tEs = %.0f MPa\n", res.SteelBar.Grade, res.SteelBar.StrengthCriterionYield, res.SteelBar.ElasticModulus)
	w.Flush()
	fmt.Println()

	core := res.Core
	fmt.Print(diagram.DrawSummaryBox("CORE CONCRETE", []string{
		fmt.Sprintf("fc' = %.3f MPa   σ0 = %.2f MPa", core.FcCylinder, core.Sigma0()),
		fmt.Sprintf("ξ = %.4f   ζ = %.4f", core.Xi(), core.Zeta()),
		fmt.Sprintf("ε0 = %.6f   β0 = %.4f", core.Epsilon0(), core.Beta0()),
		fmt.Sprintf("ft = %.3f MPa   Gf = %.2f N/m", res.Materials.Concrete.StrengthFracture, res.Materials.Concrete.Gfi),
	}))
	fmt.Println()

	series := []diagram.Series{
		{Name: "concrete", Strain: res.Materials.Concrete.Strain, Stress: res.Materials.Concrete.Stress},
		{Name: "steel tube", Strain: res.Materials.Steel.Strain, Stress: res.Materials.Steel.Stress},
		{Name: "tie bar", Strain: res.Materials.SteelBar.Strain, Stress: res.Materials.SteelBar.Stress},
	}
	if specimenShowDiagram {
		for _, sr := range series {
			fmt.Println(diagram.ASCIICurve(sr, 60, 12))
			fmt.Println()
		}
	}

	if specimenJSONFile != "" {
		data, err := json.MarshalIndent(res.Materials, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(specimenJSONFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
		fmt.Printf("  ✓ Material set written to: %s\n", specimenJSONFile)
	}
	if specimenXLSXFile != "" {
		curves := []report.NamedCurve{
			{Name: "concrete", Curve: res.Materials.Concrete.Curve},
			{Name: "steel", Curve: res.Materials.Steel},
			{Name: "steelbar", Curve: res.Materials.SteelBar},
		}
		if err := report.WriteXLSX(specimenXLSXFile, curves); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		fmt.Printf("  ✓ Curves written to: %s\n", specimenXLSXFile)
	}
	if specimenChartFile != "" {
		if err := diagram.ExportCurves(s.Name, series, specimenChartFile); err != nil {
			return fmt.Errorf("failed to export chart: %w", err)
		}
		fmt.Printf("  ✓ Chart exported to: %s\n", specimenChartFile)
	}
	if specimenPDFFile != "" {
		f, err := os.Create(specimenPDFFile)
		if err != nil {
			return err
		}
		defer f.Close()

		opts := report.Options{Author: specimenAuthor}
		if filepath.Ext(specimenChartFile) == ".png" {
			opts.Chart = specimenChartFile
		}
		if err := report.Write(f, res, opts); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		fmt.Printf("  ✓ PDF summary written to: %s\n", specimenPDFFile)
	}
	return nil
}
