package constitutive

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Curve is a tabulated stress-strain relation
type Curve struct {
	Strain  []float64 `json:"epsilon"`
	Stress  []float64 `json:"sigma"`
	Modulus float64   `json:"elastic_modulus"`
}

// Len returns the number of points
func (c Curve) Len() int {
	return len(c.Strain)
}

// Sample evaluates m at every strain; the curve modulus is m.Modulus()
func Sample(m Model, strain []float64) (Curve, error) {
	stress, err := Evaluate(m, strain)
	if err != nil {
		return Curve{}, err
	}
	return Curve{
		Strain:  append([]float64(nil), strain...),
		Stress:  stress,
		Modulus: m.Modulus(),
	}, nil
}

// Plastic returns a copy with every strain reduced by offset. With zeroFirst
// the first strain is reported as exactly 0, as required for the first row of
// a plasticity table.
func (c Curve) Plastic(offset float64, zeroFirst bool) Curve {
	out := Curve{
		Strain:  make([]float64, len(c.Strain)),
		Stress:  append([]float64(nil), c.Stress...),
		Modulus: c.Modulus,
	}
	for i, ε := range c.Strain {
		out.Strain[i] = ε - offset
	}
	if zeroFirst && len(out.Strain) > 0 {
		out.Strain[0] = 0
	}
	return out
}

// Peak returns the index of the maximum stress
func (c Curve) Peak() int {
	best := -1
	for i, σ := range c.Stress {
		if best < 0 || σ > c.Stress[best] {
			best = i
		}
	}
	return best
}

// Linspace returns n evenly spaced values from start to stop inclusive
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidDomain, n)
	}
	if !(stop > start) {
		return nil, fmt.Errorf("%w: stop %g must exceed start %g", ErrInvalidDomain, stop, start)
	}
	return floats.Span(make([]float64, n), start, stop), nil
}
