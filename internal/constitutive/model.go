// Package constitutive implements the uniaxial stress-strain relations of the
// materials of a concrete-filled steel tube column with tie rods:
//
//	steel-tube         four-segment model with a yield plateau
//	tie-bar            bilinear model with 1% hardening
//	confined-concrete  core concrete confined by the tube and the tie rods
//
// Strains are compressive-positive for concrete and tensile-positive for
// steel; all models are defined for ε >= 0 only. Units are N and mm (MPa).
package constitutive

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidDomain is returned when a strain is negative or not a number
var ErrInvalidDomain = errors.New("invalid strain domain")

// Model defines a monotonic uniaxial stress-strain relation
type Model interface {
	Init(prms Prms) error     // initialises model
	GetPrms() Prms            // gets (an example) of parameters
	Stress(ε float64) float64 // stress at a non-negative strain
	Modulus() float64         // initial elastic modulus
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// New returns a new, uninitialised model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, fmt.Errorf("model %q is not available in 'constitutive' database", name)
	}
	return allocator(), nil
}

// Names lists the registered models
func Names() []string {
	names := make([]string, 0, len(allocators))
	for n := range allocators {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Evaluate computes the stresses of model m at every strain
func Evaluate(m Model, strain []float64) ([]float64, error) {
	if err := checkDomain(strain); err != nil {
		return nil, err
	}
	stress := make([]float64, len(strain))
	for i, ε := range strain {
		stress[i] = m.Stress(ε)
	}
	return stress, nil
}

func checkDomain(strain []float64) error {
	for i, ε := range strain {
		if ε < 0 || math.IsNaN(ε) {
			return fmt.Errorf("%w: strain[%d] = %g, strains must be non-negative", ErrInvalidDomain, i, ε)
		}
	}
	return nil
}

// Prm is a named model parameter
type Prm struct {
	N string  // name
	V float64 // value
}

// Prms is a list of parameters
type Prms []*Prm

// Find returns the parameter called name or nil
func (o Prms) Find(name string) *Prm {
	for _, p := range o {
		if p.N == name {
			return p
		}
	}
	return nil
}

// String formats the parameters as "n1=v1,n2=v2"
func (o Prms) String() string {
	parts := make([]string, len(o))
	for i, p := range o {
		parts[i] = fmt.Sprintf("%s=%g", p.N, p.V)
	}
	return strings.Join(parts, ",")
}

// ParsePrms reads parameters written as "n1=v1,n2=v2"
func ParsePrms(s string) (Prms, error) {
	var prms Prms
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("parameter %q must be written as name=value", part)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %v", name, err)
		}
		prms = append(prms, &Prm{N: strings.TrimSpace(name), V: v})
	}
	return prms, nil
}

// ValidationError reports invalid model parameters
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return &ValidationError{msg: fmt.Sprintf("%s must be positive and finite, got %g", name, v)}
	}
	return nil
}

func nonNegative(name string, v float64) error {
	if !(v >= 0) || math.IsInf(v, 0) {
		return &ValidationError{msg: fmt.Sprintf("%s must be non-negative and finite, got %g", name, v)}
	}
	return nil
}
