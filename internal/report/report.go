// Package report writes a PDF summary of a specimen's materials and curves.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/IceTiki/cfst-builder/internal/constitutive"
	"github.com/IceTiki/cfst-builder/internal/specimen"
)

// Options controls the report header and the optional chart
type Options struct {
	Title  string
	Author string
	Chart  string // PNG image drawn below the tables, empty for none
	Date   time.Time
}

// Write renders the summary of res as PDF to w
func Write(w io.Writer, res *specimen.Result, opts Options) error {
	if opts.Title == "" {
		opts.Title = "CFST Material Summary"
	}
	if opts.Date.IsZero() {
		opts.Date = time.Now()
	}
	s := res.Specimen

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, opts.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Specimen: %s", s.Name))
	pdf.Ln(6)
	if opts.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", opts.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", opts.Date.Format("2006-01-02")))
	pdf.Ln(10)
	if s.Description != "" {
		pdf.MultiCell(0, 6, s.Description, "", "L", false)
		pdf.Ln(4)
	}

	g, tie := s.Geometry, s.Tie
	section(pdf, "Geometry")
	table(pdf, [][]string{
		{"B x D x H (mm)", fmt.Sprintf("%g x %g x %g", g.LenX, g.LenY, g.LenZ)},
		{"Tube thickness t (mm)", fmt.Sprintf("%g", g.TubeThickness)},
		{"Tube area As (mm2)", fmt.Sprintf("%.1f", g.TubeArea())},
		{"Tie area Ab (mm2)", fmt.Sprintf("%.2f%s", tie.CalculationArea(), ushape(tie.UShape))},
		{"Ties per layer ns", fmt.Sprintf("%d", tie.Count())},
		{"Tie spacing bs (mm)", fmt.Sprintf("%.2f", tie.Spacing(g))},
	})

	section(pdf, "Materials")
	table(pdf, [][]string{
		{"Concrete", res.Concrete.Grade, fmt.Sprintf("fc = %.2f MPa", res.Concrete.StrengthPressure), fmt.Sprintf("Ec = %.0f MPa", res.Concrete.ElasticModulus)},
		{"Steel tube", res.Steel.Grade, fmt.Sprintf("fy = %.1f MPa", res.Steel.StrengthYield), fmt.Sprintf("fu = %.1f MPa", res.Steel.StrengthTensile)},
		{"Tie bar", res.SteelBar.Grade, fmt.Sprintf("fyk = %.1f MPa", res.SteelBar.StrengthCriterionYield), fmt.Sprintf("Es = %.0f MPa", res.SteelBar.ElasticModulus)},
	})

	core := res.Core
	section(pdf, "Core concrete model")
	table(pdf, [][]string{
		{"Cylinder strength fc' (MPa)", fmt.Sprintf("%.3f", core.FcCylinder)},
		{"Tube confinement factor xi", fmt.Sprintf("%.4f", core.Xi())},
		{"Tie confinement factor zeta", fmt.Sprintf("%.4f", core.Zeta())},
		{"Peak strain eps0", fmt.Sprintf("%.6f", core.Epsilon0())},
		{"Peak stress sigma0 (MPa)", fmt.Sprintf("%.2f", core.Sigma0())},
		{"Softening parameter beta0", fmt.Sprintf("%.4f", core.Beta0())},
		{"Fracture strength (MPa)", fmt.Sprintf("%.3f", res.Materials.Concrete.StrengthFracture)},
		{"Fracture energy Gf (N/m)", fmt.Sprintf("%.2f", res.Materials.Concrete.Gfi)},
	})

	section(pdf, "Curves")
	rows := [][]string{{"Material", "Points", "Peak strain", "Peak stress (MPa)", "E (MPa)"}}
	for _, c := range []struct {
		name  string
		curve constitutive.Curve
	}{
		{"Concrete", res.Materials.Concrete.Curve},
		{"Steel tube", res.Materials.Steel},
		{"Tie bar", res.Materials.SteelBar},
	} {
		rows = append(rows, curveRow(c.name, c.curve))
	}
	table(pdf, rows)

	if opts.Chart != "" {
		pdf.Ln(4)
		pdf.ImageOptions(opts.Chart, pdf.GetX(), pdf.GetY(), 170, 0, true,
			gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
}

// table draws rows with equal column widths across the page
func table(pdf *gofpdf.Fpdf, rows [][]string) {
	for _, row := range rows {
		w := 180 / float64(len(row))
		for _, cell := range row {
			pdf.CellFormat(w, 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func curveRow(name string, c constitutive.Curve) []string {
	i := c.Peak()
	if i < 0 {
		return []string{name, "0", "-", "-", fmt.Sprintf("%.0f", c.Modulus)}
	}
	return []string{
		name,
		fmt.Sprintf("%d", c.Len()),
		fmt.Sprintf("%.5f", c.Strain[i]),
		fmt.Sprintf("%.2f", c.Stress[i]),
		fmt.Sprintf("%.0f", c.Modulus),
	}
}

func ushape(u bool) string {
	if u {
		return " (U-shaped, doubled)"
	}
	return ""
}
