package constitutive

import "github.com/IceTiki/cfst-builder/internal/gbcode"

// SteelTube implements the simplified four-segment model of the tube steel:
// elastic up to εy, plateau up to 10εy, linear hardening to fu at 100εy,
// then constant
type SteelTube struct {
	Fy float64 // yield strength
	Fu float64 // ultimate strength
	E  float64 // elastic modulus
}

// add model to factory
func init() {
	allocators["steel-tube"] = func() Model { return new(SteelTube) }
}

// NewSteelTube returns an initialised model
func NewSteelTube(fy, fu, e float64) (*SteelTube, error) {
	o := new(SteelTube)
	err := o.Init(Prms{{N: "fy", V: fy}, {N: "fu", V: fu}, {N: "E", V: e}})
	return o, err
}

// Init initialises model
func (o *SteelTube) Init(prms Prms) error {
	for _, p := range prms {
		switch p.N {
		case "fy":
			o.Fy = p.V
		case "fu":
			o.Fu = p.V
		case "E":
			o.E = p.V
		}
	}
	for _, err := range []error{positive("fy", o.Fy), positive("fu", o.Fu), positive("E", o.E)} {
		if err != nil {
			return err
		}
	}
	return nil
}

// GetPrms gets (an example) of parameters
func (o SteelTube) GetPrms() Prms {
	return Prms{
		{N: "fy", V: 355},
		{N: "fu", V: 470},
		{N: "E", V: 206000},
	}
}

// EpsilonYield returns εy = fy/E
func (o SteelTube) EpsilonYield() float64 {
	return gbcode.YieldStrain(o.Fy, o.E)
}

// Stress implements Model
func (o SteelTube) Stress(ε float64) float64 {
	εy := o.EpsilonYield()
	switch {
	case ε <= εy:
		return o.E * ε
	case ε <= 10*εy:
		return o.Fy
	case ε <= 100*εy:
		return o.Fy + (o.Fu-o.Fy)*(ε-10*εy)/(90*εy)
	}
	return o.Fu
}

// Modulus implements Model
func (o SteelTube) Modulus() float64 {
	return o.E
}

// TieBar implements the bilinear model of the tie rods with a post-yield
// slope of E/100
type TieBar struct {
	Fy float64 // yield strength
	E  float64 // elastic modulus
}

// add model to factory
func init() {
	allocators["tie-bar"] = func() Model { return new(TieBar) }
}

// NewTieBar returns an initialised model
func NewTieBar(fy, e float64) (*TieBar, error) {
	o := new(TieBar)
	err := o.Init(Prms{{N: "fy", V: fy}, {N: "E", V: e}})
	return o, err
}

// Init initialises model
func (o *TieBar) Init(prms Prms) error {
	for _, p := range prms {
		switch p.N {
		case "fy":
			o.Fy = p.V
		case "E":
			o.E = p.V
		}
	}
	if err := positive("fy", o.Fy); err != nil {
		return err
	}
	return positive("E", o.E)
}

// GetPrms gets (an example) of parameters
func (o TieBar) GetPrms() Prms {
	return Prms{
		{N: "fy", V: 400},
		{N: "E", V: 200000},
	}
}

// EpsilonYield returns εy = fy/E
func (o TieBar) EpsilonYield() float64 {
	return gbcode.YieldStrain(o.Fy, o.E)
}

// Stress implements Model
func (o TieBar) Stress(ε float64) float64 {
	εy := o.EpsilonYield()
	if ε <= εy {
		return o.E * ε
	}
	return o.Fy + o.E*(ε-εy)/100
}

// Modulus implements Model
func (o TieBar) Modulus() float64 {
	return o.E
}
