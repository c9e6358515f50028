package specimen

import (
	"fmt"
	"log"

	"github.com/IceTiki/cfst-builder/internal/constitutive"
	"github.com/IceTiki/cfst-builder/internal/gbcode"
	"github.com/IceTiki/cfst-builder/internal/material"
	"github.com/IceTiki/cfst-builder/internal/table"
)

// ConcreteCurve is the core concrete curve with its damage parameters
type ConcreteCurve struct {
	constitutive.Curve
	StrengthFracture float64 `json:"strength_fracture"` // MPa
	Gfi              float64 `json:"gfi"`               // fracture energy (N/m)
}

// MaterialSet holds the tabulated curves of the three materials
type MaterialSet struct {
	Concrete ConcreteCurve      `json:"concrete"`
	Steel    constitutive.Curve `json:"steel"`
	SteelBar constitutive.Curve `json:"steelbar"`
}

// Result is the outcome of Build
type Result struct {
	Specimen *Specimen

	Concrete material.Concrete
	Steel    material.Steel
	SteelBar material.SteelBar

	Core      *constitutive.ConfinedConcrete
	Materials MaterialSet
}

// Build resolves the materials of s and tabulates the three curves with n
// points each (s.Samples when set, then n, then gbcode.DefaultSamples).
// Structural steel rows are selected by the tube thickness.
func Build(store *table.Store, s *Specimen, n int) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	switch {
	case s.Samples > 0:
		n = s.Samples
	case n <= 0:
		n = gbcode.DefaultSamples
	}

	res := &Result{Specimen: s}
	var err error
	if res.Concrete, err = resolve[material.Concrete](store, material.ConcreteKind{}, s.Concrete); err != nil {
		return nil, fmt.Errorf("concrete: %w", err)
	}
	steelKind := material.SteelKind{Thickness: s.Geometry.TubeThickness}
	if res.Steel, err = resolve[material.Steel](store, steelKind, s.Steel); err != nil {
		return nil, fmt.Errorf("steel: %w", err)
	}
	if res.SteelBar, err = resolve[material.SteelBar](store, material.SteelBarKind{}, s.SteelBar); err != nil {
		return nil, fmt.Errorf("steel bar: %w", err)
	}
	log.Printf("specimen %s: concrete %s, steel %s, steel bar %s",
		s.Name, res.Concrete.Grade, res.Steel.Grade, res.SteelBar.Grade)

	if res.Materials.Steel, err = tubeCurve(res.Steel, n); err != nil {
		return nil, fmt.Errorf("steel: %w", err)
	}
	if res.Materials.SteelBar, err = barCurve(res.SteelBar, n); err != nil {
		return nil, fmt.Errorf("steel bar: %w", err)
	}

	res.Core, err = constitutive.NewConfinedConcrete(s.Confinement(res.Concrete, res.Steel, res.SteelBar))
	if err != nil {
		return nil, fmt.Errorf("concrete: %w", err)
	}
	if res.Materials.Concrete, err = concreteCurve(res.Core, res.Concrete, n); err != nil {
		return nil, fmt.Errorf("concrete: %w", err)
	}
	return res, nil
}

// Confinement assembles the confined-concrete inputs of the specimen
func (s *Specimen) Confinement(c material.Concrete, st material.Steel, bar material.SteelBar) constitutive.Confinement {
	g, t := s.Geometry, s.Tie
	return constitutive.Confinement{
		Width:      g.LenX,
		Height:     g.LenY,
		FcCylinder: gbcode.CylinderStrength(c.StrengthPressure),
		FcAxial:    c.StrengthPressure,
		TubeArea:   g.TubeArea(),
		TubeYield:  st.StrengthYield,
		TieArea:    t.CalculationArea(),
		TieYield:   bar.StrengthCriterionYield,
		TieSpacing: t.Spacing(g),
		TieCount:   float64(t.Count()),
	}
}

func resolve[R material.Record[R]](store *table.Store, kind material.Kind[R], ref MaterialRef) (R, error) {
	if ref.Grade != "" {
		return material.FromGrade(store, kind, ref.Grade)
	}
	return material.FromProperty(store, kind, ref.Property, ref.Value)
}

func tubeCurve(st material.Steel, n int) (constitutive.Curve, error) {
	m, err := constitutive.NewSteelTube(st.StrengthYield, st.StrengthTensile, st.ElasticModulus)
	if err != nil {
		return constitutive.Curve{}, err
	}
	return plasticCurve(m, m.EpsilonYield(), n)
}

func barCurve(bar material.SteelBar, n int) (constitutive.Curve, error) {
	m, err := constitutive.NewTieBar(bar.StrengthCriterionYield, bar.ElasticModulus)
	if err != nil {
		return constitutive.Curve{}, err
	}
	return plasticCurve(m, m.EpsilonYield(), n)
}

// plasticCurve samples m from its yield strain on and reports plastic strains
func plasticCurve(m constitutive.Model, εy float64, n int) (constitutive.Curve, error) {
	strain, err := constitutive.Linspace(εy, gbcode.SteelStrainUpper, n)
	if err != nil {
		return constitutive.Curve{}, err
	}
	c, err := constitutive.Sample(m, strain)
	if err != nil {
		return constitutive.Curve{}, err
	}
	return c.Plastic(εy, false), nil
}

func concreteCurve(core *constitutive.ConfinedConcrete, c material.Concrete, n int) (ConcreteCurve, error) {
	strain, err := constitutive.Linspace(gbcode.ConcreteStrainStart, gbcode.ConcreteStrainUpper, n)
	if err != nil {
		return ConcreteCurve{}, err
	}
	curve, err := constitutive.Sample(core, strain)
	if err != nil {
		return ConcreteCurve{}, err
	}
	curve = curve.Plastic(0, true)
	curve.Modulus = c.ElasticModulus
	return ConcreteCurve{
		Curve:            curve,
		StrengthFracture: core.FcCylinder * gbcode.FractureStrengthRatio,
		Gfi:              gbcode.FractureEnergy(core.FcCylinder),
	}, nil
}
