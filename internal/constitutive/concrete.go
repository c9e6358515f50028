package constitutive

import (
	"math"

	"github.com/IceTiki/cfst-builder/internal/gbcode"
)

// Confinement holds the cross-section and restraint data of the core
// concrete (N, mm)
type Confinement struct {
	Width      float64 // Dc, core section short side
	Height     float64 // Bc, core section long side
	FcCylinder float64 // fc', cylinder compressive strength
	FcAxial    float64 // fck, axial compressive strength
	TubeArea   float64 // As, steel tube cross-section area
	TubeYield  float64 // fy, tube yield strength
	TieArea    float64 // Ab, area of one tie rod
	TieYield   float64 // fyb, tie rod yield strength
	TieSpacing float64 // bs, spacing of the tie layers along the column
	TieCount   float64 // ns, tie rods within one spacing
}

// Validate checks the confinement data
func (c Confinement) Validate() error {
	checks := []error{
		positive("width", c.Width),
		positive("height", c.Height),
		positive("fc'", c.FcCylinder),
		positive("fck", c.FcAxial),
		nonNegative("tube area", c.TubeArea),
		nonNegative("tube yield", c.TubeYield),
		nonNegative("tie area", c.TieArea),
		nonNegative("tie yield", c.TieYield),
		nonNegative("tie spacing", c.TieSpacing),
		nonNegative("tie count", c.TieCount),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	if c.tieForce() > 0 && c.TieSpacing == 0 {
		return &ValidationError{msg: "tie spacing must be positive when tie rods are present"}
	}
	return nil
}

// Area returns the core concrete area Ac
func (c Confinement) Area() float64 {
	return c.Width * c.Height
}

// Xi returns the tube confinement factor ξ = As·fy / (Ac·fck)
func (c Confinement) Xi() float64 {
	return c.TubeArea * c.TubeYield / (c.Area() * c.FcAxial)
}

// Zeta returns the tie confinement factor ζ = ns·Ab·fyb / ((Dc+Bc)·bs·fck)
func (c Confinement) Zeta() float64 {
	force := c.tieForce()
	if force == 0 {
		return 0
	}
	return force / ((c.Width + c.Height) * c.TieSpacing * c.FcAxial)
}

func (c Confinement) tieForce() float64 {
	return c.TieCount * c.TieArea * c.TieYield
}

// ConfinedConcrete implements the core concrete model
//
//	x = ε/ε0, y = σ/σ0
//	x <= 1 : y = 2x - x²
//	x > 1  : y = x / (β0·(x-1)^η + x),  η = 1.6 + 1.5/x
//
// with
//
//	εc = (1300 + 12.5·fc')·1e-6
//	ε0 = εc + 800·ξ^0.2·(1 + 48.5·ζ)·1e-6
//	β0 = fc'^0.1 / (1.2·√(1+ξ)·√(1+2ζ))
//	σ0 = fck
type ConfinedConcrete struct {
	Confinement

	// derived
	ξ  float64
	ζ  float64
	ε0 float64
	β0 float64
}

// add model to factory
func init() {
	allocators["confined-concrete"] = func() Model { return new(ConfinedConcrete) }
}

// NewConfinedConcrete returns an initialised model
func NewConfinedConcrete(c Confinement) (*ConfinedConcrete, error) {
	o := &ConfinedConcrete{Confinement: c}
	if err := o.init(); err != nil {
		return nil, err
	}
	return o, nil
}

// Init initialises model
func (o *ConfinedConcrete) Init(prms Prms) error {
	for _, p := range prms {
		switch p.N {
		case "b":
			o.Width = p.V
		case "h":
			o.Height = p.V
		case "fcc":
			o.FcCylinder = p.V
		case "fck":
			o.FcAxial = p.V
		case "As":
			o.TubeArea = p.V
		case "fy":
			o.TubeYield = p.V
		case "Ab":
			o.TieArea = p.V
		case "fyb":
			o.TieYield = p.V
		case "bs":
			o.TieSpacing = p.V
		case "ns":
			o.TieCount = p.V
		}
	}
	return o.init()
}

func (o *ConfinedConcrete) init() error {
	if err := o.Validate(); err != nil {
		return err
	}
	o.ξ = o.Xi()
	o.ζ = o.Zeta()
	o.ε0 = o.EpsilonC() + 800*math.Pow(o.ξ, 0.2)*(1+48.5*o.ζ)*1e-6
	o.β0 = math.Pow(o.FcCylinder, 0.1) / (1.2 * math.Sqrt(1+o.ξ) * math.Sqrt(1+2*o.ζ))
	return nil
}

// GetPrms gets (an example) of parameters
func (o ConfinedConcrete) GetPrms() Prms {
	return Prms{
		{N: "b", V: 150},
		{N: "h", V: 300},
		{N: "fcc", V: 31.625},
		{N: "fck", V: 25.3},
		{N: "As", V: 5400},
		{N: "fy", V: 400},
		{N: "Ab", V: 153.94},
		{N: "fyb", V: 400},
		{N: "bs", V: 109.09},
		{N: "ns", V: 2},
	}
}

// EpsilonC returns the peak strain of unconfined concrete εc
func (o ConfinedConcrete) EpsilonC() float64 {
	return (1300 + 12.5*o.FcCylinder) * 1e-6
}

// Epsilon0 returns the peak strain ε0
func (o ConfinedConcrete) Epsilon0() float64 {
	return o.ε0
}

// Sigma0 returns the peak stress σ0, taken as the axial strength fck rather
// than the cylinder strength fc'
func (o ConfinedConcrete) Sigma0() float64 {
	return o.FcAxial
}

// Beta0 returns the softening parameter β0
func (o ConfinedConcrete) Beta0() float64 {
	return o.β0
}

// Eta returns the softening exponent η(x) = 1.6 + 1.5/x
func (o ConfinedConcrete) Eta(x float64) float64 {
	return 1.6 + 1.5/x
}

// Stress implements Model
func (o ConfinedConcrete) Stress(ε float64) float64 {
	x := ε / o.ε0
	if x <= 1 {
		return o.Sigma0() * (2*x - x*x)
	}
	return o.Sigma0() * x / (o.β0*math.Pow(x-1, o.Eta(x)) + x)
}

// Modulus implements Model
func (o ConfinedConcrete) Modulus() float64 {
	return gbcode.ConcreteModulus(o.FcCylinder)
}
