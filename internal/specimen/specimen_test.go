package specimen

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/IceTiki/cfst-builder/internal/material"
	"github.com/IceTiki/cfst-builder/internal/rigid"
	"github.com/IceTiki/cfst-builder/internal/table"
)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
		t.Errorf("%s = %.12g, want %.12g", name, got, want)
	}
}

func column() *Specimen {
	s := Default()
	s.Name = "test"
	s.Concrete = MaterialRef{Grade: "C50"}
	s.Steel = MaterialRef{Grade: "Q355"}
	s.SteelBar = MaterialRef{Grade: "HRB400"}
	s.Geometry.LenX, s.Geometry.LenY, s.Geometry.LenZ = 150, 300, 1200
	s.Geometry.TubeThickness = 4
	s.Tie.Area = 78.5
	return &s
}

func TestLoadFromFile(t *testing.T) {
	s, err := LoadFromFile("testdata/column.json")
	if err != nil {
		t.Fatal(err)
	}
	if s.Concrete.Grade != "C50" || s.Steel.Grade != "Q355" || s.SteelBar.Grade != "HRB400" {
		t.Errorf("materials = %v %v %v", s.Concrete, s.Steel, s.SteelBar)
	}
	if s.Tie.ZNumber != 10 || s.Geometry.ConcreteMesh != [3]int{6, 6, 10} {
		t.Errorf("defaults lost: z_number %d, mesh %v", s.Tie.ZNumber, s.Geometry.ConcreteMesh)
	}
	if !s.Tie.HasX() || !s.Tie.HasY() {
		t.Errorf("ties should exist in both directions by default")
	}
	if d := s.Top.Displacement; len(d) != 6 || d[3] != nil || *d[2] != -30 {
		t.Errorf("top displacement = %v", d)
	}
	if s.Samples != 40 {
		t.Errorf("samples = %d", s.Samples)
	}

	if _, err := LoadFromFile("testdata/missing.json"); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestMaterialRefJSON(t *testing.T) {
	var refs []MaterialRef
	data := `["C40", {"property": "strength_pressure", "value": 20}]`
	if err := json.Unmarshal([]byte(data), &refs); err != nil {
		t.Fatal(err)
	}
	if refs[0].Grade != "C40" || refs[1].Property != "strength_pressure" || refs[1].Value != 20 {
		t.Errorf("refs = %+v", refs)
	}
	if refs[1].String() != "strength_pressure=20" {
		t.Errorf("String() = %q", refs[1].String())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *Specimen)
	}{
		{"no concrete", func(s *Specimen) { s.Concrete = MaterialRef{} }},
		{"property without value", func(s *Specimen) { s.Steel = MaterialRef{Property: "strength_yield"} }},
		{"zero height", func(s *Specimen) { s.Geometry.LenZ = 0 }},
		{"thick tube", func(s *Specimen) { s.Geometry.TubeThickness = 75 }},
		{"negative tie area", func(s *Specimen) { s.Tie.Area = -1 }},
		{"negative ties", func(s *Specimen) { s.Tie.XNumber = -1 }},
		{"short displacement", func(s *Specimen) { s.Top.Displacement = make([]*float64, 5) }},
		{"one sample", func(s *Specimen) { s.Samples = 1 }},
	}
	for _, tt := range tests {
		s := column()
		tt.modify(s)
		var verr *ValidationError
		if err := s.Validate(); !errors.As(err, &verr) {
			t.Errorf("%s: got %v, want *ValidationError", tt.name, err)
		}
	}
	if err := column().Validate(); err != nil {
		t.Errorf("valid specimen rejected: %v", err)
	}
}

func TestTieLayout(t *testing.T) {
	s := column()
	g, tie := s.Geometry, s.Tie

	approx(t, "tube area", g.TubeArea(), 3600)
	approx(t, "core area", g.CoreArea(), 45000)
	if tie.Count() != 2 {
		t.Errorf("count = %d, want 2", tie.Count())
	}
	approx(t, "spacing", tie.Spacing(g), 1200.0/11)
	approx(t, "x distance", tie.XDistance(g), 150)
	approx(t, "y distance", tie.YDistance(g), 75)
	approx(t, "area", tie.CalculationArea(), 78.5)

	no := false
	tie.XExist = &no
	tie.YNumber = 3
	tie.UShape = true
	if tie.Count() != 3 {
		t.Errorf("count without x ties = %d, want 3", tie.Count())
	}
	approx(t, "x distance without x ties", tie.XDistance(g), 150)
	approx(t, "y distance", tie.YDistance(g), 37.5)
	approx(t, "u-shape area", tie.CalculationArea(), 157)

	seed := g.SteelSeed()
	approx(t, "steel seed z", seed[2], 150)
}

func TestEndFace(t *testing.T) {
	s := column()
	s.Top.Shift = [3]float64{0, 0, 50}
	s.Bottom.Shift = [3]float64{10, 0, -50}

	if got := s.ReferencePosition(Top); got != (rigid.Vec{75, 150, 1250}) {
		t.Errorf("top reference = %v", got)
	}
	if got := s.ReferencePosition(Bottom); got != (rigid.Vec{85, 150, -50}) {
		t.Errorf("bottom reference = %v", got)
	}
	if got := s.EndFacePoint(1, 1, Top); got != (rigid.Vec{150, 300, 1200}) {
		t.Errorf("corner = %v", got)
	}
	if got := s.EndFaceOffset(1, 1, Top); got != (rigid.Vec{75, 150, -50}) {
		t.Errorf("offset = %v", got)
	}
	if got := s.EndFaceOffset(0, 0, Bottom); got != (rigid.Vec{-85, -150, 50}) {
		t.Errorf("offset = %v", got)
	}

	for _, name := range []string{"top", "bottom"} {
		end, err := ParseEnd(name)
		if err != nil || end.String() != name {
			t.Errorf("ParseEnd(%q) = %v, %v", name, end, err)
		}
	}
	if _, err := ParseEnd("side"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestBuild(t *testing.T) {
	store := table.NewStore(table.Embedded())
	res, err := Build(store, column(), 0)
	if err != nil {
		t.Fatal(err)
	}

	steel := res.Materials.Steel
	if steel.Len() != 50 {
		t.Fatalf("steel points = %d, want 50", steel.Len())
	}
	εy := 355.0 / 206000
	approx(t, "steel ε[0]", steel.Strain[0], 0)
	approx(t, "steel σ[0]", steel.Stress[0], 355)
	approx(t, "steel ε[last]", steel.Strain[49], 0.2-εy)
	approx(t, "steel σ[last]", steel.Stress[49], 470)
	approx(t, "steel E", steel.Modulus, 206000)

	bar := res.Materials.SteelBar
	approx(t, "bar σ[last]", bar.Stress[49], 400+200000*(0.2-0.002)/100)
	approx(t, "bar E", bar.Modulus, 200000)

	core := res.Materials.Concrete
	fcc := 1.25 * 23.1
	approx(t, "concrete ε[0]", core.Strain[0], 0)
	approx(t, "concrete ε[last]", core.Strain[49], 0.3)
	approx(t, "concrete E", core.Modulus, 34500)
	approx(t, "strength fracture", core.StrengthFracture, fcc/10)
	approx(t, "gfi", core.Gfi, 40+80*(fcc-20)/20)

	approx(t, "ξ", res.Core.Xi(), 3600*355/(45000*23.1))
	approx(t, "ζ", res.Core.Zeta(), 2*78.5*400/(450*(1200.0/11)*23.1))
	if peak := core.Peak(); core.Strain[peak] > 3*res.Core.Epsilon0() {
		t.Errorf("peak at %g, ε0 = %g", core.Strain[peak], res.Core.Epsilon0())
	}
}

func TestBuildInterpolatedMaterial(t *testing.T) {
	store := table.NewStore(table.Embedded())
	s := column()
	s.Concrete = MaterialRef{Property: "strength_pressure", Value: 15.5}
	s.Samples = 10

	res, err := Build(store, s, 0)
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "fc", res.Concrete.StrengthPressure, 15.5)
	approx(t, "fc'", res.Core.FcCylinder, 1.25*15.5)
	if res.Materials.Concrete.Len() != 10 {
		t.Errorf("points = %d, want 10", res.Materials.Concrete.Len())
	}
}

func TestBuildThicknessBand(t *testing.T) {
	store := table.NewStore(table.Embedded())
	s := column()
	s.Steel = MaterialRef{Grade: "Q345GJ"}
	if _, err := Build(store, s, 5); !errors.Is(err, material.ErrGradeNotFound) {
		t.Errorf("4 mm Q345GJ: got %v, want ErrGradeNotFound", err)
	}

	s.Steel = MaterialRef{Grade: "Q355"}
	s.Geometry.TubeThickness = 20
	res, err := Build(store, s, 5)
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "fy", res.Steel.StrengthYield, 345)
}

func TestMaterialSetJSON(t *testing.T) {
	store := table.NewStore(table.Embedded())
	res, err := Build(store, column(), 5)
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(res.Materials)
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"epsilon", "sigma", "elastic_modulus", "strength_fracture", "gfi"} {
		if _, ok := out["concrete"][key]; !ok {
			t.Errorf("concrete JSON lacks %q", key)
		}
	}
	if _, ok := out["steelbar"]["gfi"]; ok {
		t.Errorf("steelbar JSON should not carry gfi")
	}
}
