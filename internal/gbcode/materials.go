// Package gbcode collects the code constants and small material relations
// (GB 50010 / GB 50017 and the confined-concrete literature model) shared by
// the material and specimen packages.
package gbcode

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

const (
	// Plate thickness used to select structural steel rows when none is given (mm)
	DefaultSteelThickness = 100.0

	// Cylinder strength of the core concrete relative to the design
	// compressive strength, fc' ≈ 1.25 fc
	CylinderStrengthFactor = 1.25

	// Tensile (cracking) strength of the core concrete relative to fc'
	FractureStrengthRatio = 0.1

	// Strain domains of the plasticity tables
	SteelStrainUpper    = 0.2
	ConcreteStrainStart = 1e-5
	ConcreteStrainUpper = 0.3

	// Default number of points per tabulated curve
	DefaultSamples = 50
)

// YieldStrain returns εy = fy / E
func YieldStrain(fy, e float64) float64 {
	return fy / e
}

// CylinderStrength converts a design compressive strength to fc'
func CylinderStrength(fc float64) float64 {
	return CylinderStrengthFactor * fc
}

// ConcreteModulus estimates Ec = 4730·√fc' (MPa)
func ConcreteModulus(fcCylinder float64) float64 {
	return 4730 * math.Sqrt(fcCylinder)
}

// fractureEnergy holds Gf = 40 N/m at fc' = 20 MPa and 120 N/m at 40 MPa
var fractureEnergy interp.PiecewiseLinear

func init() {
	if err := fractureEnergy.Fit([]float64{20, 40}, []float64{40, 120}); err != nil {
		panic(err)
	}
}

// FractureEnergy estimates the concrete fracture energy Gf (N/m) by linear
// interpolation between 40 N/m at fc' = 20 MPa and 120 N/m at fc' = 40 MPa,
// clamped outside that range
func FractureEnergy(fcCylinder float64) float64 {
	return fractureEnergy.Predict(fcCylinder)
}
