package specimen

import (
	"fmt"

	"github.com/IceTiki/cfst-builder/internal/rigid"
)

// End selects an end face of the column
type End int

const (
	Bottom End = iota // z = 0
	Top               // z = len_z
)

func (e End) String() string {
	if e == Top {
		return "top"
	}
	return "bottom"
}

// ParseEnd reads "top" or "bottom"
func ParseEnd(s string) (End, error) {
	switch s {
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	}
	return Bottom, fmt.Errorf("end must be top or bottom, got %q", s)
}

// TubeArea returns the steel tube area As = 2(B+D)t (mm²)
func (g Geometry) TubeArea() float64 {
	return 2 * (g.LenX + g.LenY) * g.TubeThickness
}

// CoreArea returns the concrete area B·D used by the confinement model (mm²)
func (g Geometry) CoreArea() float64 {
	return g.LenX * g.LenY
}

// ConcreteSeed returns the concrete element size per direction (mm)
func (g Geometry) ConcreteSeed() [3]float64 {
	return seed(g, g.ConcreteMesh)
}

// SteelSeed returns the steel element size per direction (mm)
func (g Geometry) SteelSeed() [3]float64 {
	return seed(g, g.SteelMesh)
}

func seed(g Geometry, mesh [3]int) [3]float64 {
	lens := [3]float64{g.LenX, g.LenY, g.LenZ}
	var out [3]float64
	for i, n := range mesh {
		if n > 0 {
			out[i] = lens[i] / float64(n)
		}
	}
	return out
}

// HasX reports whether rods run along x
func (t TieLayout) HasX() bool {
	return t.XExist == nil || *t.XExist
}

// HasY reports whether rods run along y
func (t TieLayout) HasY() bool {
	return t.YExist == nil || *t.YExist
}

// Count returns ns, the number of rods within one spacing
func (t TieLayout) Count() int {
	n := 0
	if t.HasX() {
		n += t.XNumber
	}
	if t.HasY() {
		n += t.YNumber
	}
	return n
}

// CalculationArea returns the rod area used by the confinement model.
// A U-shaped tie counts twice.
func (t TieLayout) CalculationArea() float64 {
	if t.UShape {
		return 2 * t.Area
	}
	return t.Area
}

// Spacing returns bs, the distance between tie layers along the column (mm)
func (t TieLayout) Spacing(g Geometry) float64 {
	return g.LenZ / float64(t.ZNumber+1)
}

// XDistance returns the distance between rods running along x (mm)
func (t TieLayout) XDistance(g Geometry) float64 {
	if !t.HasX() {
		return g.LenY / 2
	}
	return g.LenY / float64(t.XNumber+1)
}

// YDistance returns the distance between rods running along y (mm)
func (t TieLayout) YDistance(g Geometry) float64 {
	if !t.HasY() {
		return g.LenX / 2
	}
	return g.LenX / float64(t.YNumber+1)
}

// ReferencePosition returns the undeformed position of the reference point
// of an end face
func (s *Specimen) ReferencePosition(end End) rigid.Vec {
	g := s.Geometry
	rp, z := s.Bottom, 0.0
	if end == Top {
		rp, z = s.Top, g.LenZ
	}
	return rigid.Vec{g.LenX/2 + rp.Shift[0], g.LenY/2 + rp.Shift[1], z + rp.Shift[2]}
}

// EndFacePoint returns the position of the point at fractions (x, y) of the
// end face, (0, 0) being the corner at the origin
func (s *Specimen) EndFacePoint(x, y float64, end End) rigid.Vec {
	g := s.Geometry
	z := 0.0
	if end == Top {
		z = g.LenZ
	}
	return rigid.Vec{g.LenX * x, g.LenY * y, z}
}

// EndFaceOffset returns the offset of an end-face point from the reference
// point of that face
func (s *Specimen) EndFaceOffset(x, y float64, end End) rigid.Vec {
	p := s.EndFacePoint(x, y, end)
	r := s.ReferencePosition(end)
	return rigid.Vec{p[0] - r[0], p[1] - r[1], p[2] - r[2]}
}
