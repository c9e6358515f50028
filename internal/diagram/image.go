package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var palette = []color.Color{
	color.RGBA{R: 0, G: 0, B: 139, A: 255},
	color.RGBA{R: 139, G: 69, B: 19, A: 255},
	color.RGBA{R: 0, G: 100, B: 0, A: 255},
	color.RGBA{R: 255, G: 0, B: 0, A: 255},
}

// ExportCurves draws stress-strain curves to an image file. The format
// follows the extension (.png, .svg, .pdf); other names get ".png" appended.
func ExportCurves(title string, series []Series, filename string) error {
	if len(series) == 0 {
		return fmt.Errorf("no curves to draw")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Strain"
	p.Y.Label.Text = "Stress (MPa)"
	p.Legend.Top = true

	for i, s := range series {
		if len(s.Strain) == 0 {
			return fmt.Errorf("curve %q has no points", s.Name)
		}
		if len(s.Strain) != len(s.Stress) {
			return fmt.Errorf("curve %q: %d strains for %d stresses", s.Name, len(s.Strain), len(s.Stress))
		}
		pts := make(plotter.XYs, len(s.Strain))
		peak := 0
		for j := range s.Strain {
			pts[j] = plotter.XY{X: s.Strain[j], Y: s.Stress[j]}
			if s.Stress[j] > s.Stress[peak] {
				peak = j
			}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = palette[i%len(palette)]
		p.Add(line)
		p.Legend.Add(s.Name, line)

		// Mark the peak stress
		mark, err := plotter.NewScatter(plotter.XYs{pts[peak]})
		if err != nil {
			return err
		}
		mark.GlyphStyle.Color = palette[i%len(palette)]
		mark.GlyphStyle.Radius = vg.Points(4)
		mark.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(mark)

		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{pts[peak]},
			Labels: []string{fmt.Sprintf("%.1f MPa", pts[peak].Y)},
		})
		if err != nil {
			return err
		}
		p.Add(label)
	}
	p.Add(plotter.NewGrid())

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
