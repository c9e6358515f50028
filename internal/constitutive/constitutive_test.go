package constitutive

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func near(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.15g, want %.15g (tol %g)", name, got, want, tol)
	}
}

func TestSteelTubeBranches(t *testing.T) {
	fy, fu, E := 355.0, 470.0, 206000.0
	m, err := NewSteelTube(fy, fu, E)
	if err != nil {
		t.Fatal(err)
	}
	εy := fy / E

	tests := []struct {
		ε    float64
		want float64
	}{
		{0, 0},
		{0.5 * εy, E * 0.5 * εy},
		{0.001, E * 0.001},
		{2 * εy, fy},
		{9.99 * εy, fy},
		{55 * εy, fy + (fu-fy)*(55*εy-10*εy)/(90*εy)},
		{0.1, fy + (fu-fy)*(0.1-10*εy)/(90*εy)},
		{150 * εy, fu},
		{0.3, fu},
	}
	for _, tt := range tests {
		near(t, fmt.Sprintf("σ(%g)", tt.ε), m.Stress(tt.ε), tt.want, 1e-9)
	}
}

func TestSteelTubeContinuity(t *testing.T) {
	fy, fu, E := 355.0, 470.0, 206000.0
	m, _ := NewSteelTube(fy, fu, E)
	εy := m.EpsilonYield()

	elastic := func(ε float64) float64 { return E * ε }
	plateau := func(float64) float64 { return fy }
	hardening := func(ε float64) float64 { return fy + (fu-fy)*(ε-10*εy)/(90*εy) }
	ultimate := func(float64) float64 { return fu }

	bounds := []struct {
		ε           float64
		left, right func(float64) float64
	}{
		{εy, elastic, plateau},
		{10 * εy, plateau, hardening},
		{100 * εy, hardening, ultimate},
	}
	for _, b := range bounds {
		got := m.Stress(b.ε)
		near(t, "left", got, b.left(b.ε), 1e-9)
		near(t, "right", got, b.right(b.ε), 1e-9)
		near(t, "just above", m.Stress(b.ε*(1+1e-12)), got, 1e-6)
	}
}

func TestTieBar(t *testing.T) {
	fy, E := 400.0, 200000.0
	m, err := NewTieBar(fy, E)
	if err != nil {
		t.Fatal(err)
	}
	εy := fy / E
	near(t, "εy", m.EpsilonYield(), 0.002, 1e-18)
	near(t, "σ(0)", m.Stress(0), 0, 0)
	near(t, "σ(εy/2)", m.Stress(εy/2), fy/2, 1e-9)
	near(t, "σ(εy)", m.Stress(εy), fy, 1e-9)
	near(t, "σ(2εy)", m.Stress(2*εy), fy+E*εy/100, 1e-9)
	near(t, "σ(0.2)", m.Stress(0.2), fy+E*(0.2-εy)/100, 1e-9)
}

func baseConfinement() Confinement {
	return Confinement{
		Width:      150,
		Height:     300,
		FcCylinder: 31.625,
		FcAxial:    25.3,
		TubeArea:   5400,
		TubeYield:  400,
		TieArea:    153.94,
		TieYield:   400,
		TieSpacing: 109.09,
		TieCount:   2,
	}
}

func TestConfinedConcreteDerived(t *testing.T) {
	c := baseConfinement()
	m, err := NewConfinedConcrete(c)
	if err != nil {
		t.Fatal(err)
	}

	ξ := c.TubeArea * c.TubeYield / (c.Width * c.Height * c.FcAxial)
	ζ := c.TieCount * c.TieArea * c.TieYield / ((c.Width + c.Height) * c.TieSpacing * c.FcAxial)
	εc := (1300 + 12.5*c.FcCylinder) / 1e6
	ε0 := εc + 800*math.Pow(ξ, 0.2)*(1+48.5*ζ)/1e6
	β0 := math.Pow(c.FcCylinder, 0.1) / (1.2 * math.Sqrt(1+ξ) * math.Sqrt(1+2*ζ))

	near(t, "ξ", m.Xi(), ξ, 1e-12)
	near(t, "ζ", m.Zeta(), ζ, 1e-12)
	near(t, "εc", m.EpsilonC(), εc, 1e-15)
	near(t, "ε0", m.Epsilon0(), ε0, 1e-15)
	near(t, "β0", m.Beta0(), β0, 1e-12)
	near(t, "σ0", m.Sigma0(), c.FcAxial, 0)
	near(t, "E", m.Modulus(), 4730*math.Sqrt(c.FcCylinder), 1e-9)

	// ascending, peak and descending branches
	near(t, "σ(ε0/2)", m.Stress(ε0/2), c.FcAxial*(2*0.5-0.25), 1e-9)
	near(t, "σ(ε0)", m.Stress(ε0), c.FcAxial, 1e-9)
	x := 3.0
	want := c.FcAxial * x / (β0*math.Pow(x-1, 1.6+1.5/x) + x)
	near(t, "σ(3ε0)", m.Stress(x*ε0), want, 1e-9)
}

func TestConfinedConcreteNearZeroAndTail(t *testing.T) {
	m, _ := NewConfinedConcrete(baseConfinement())
	near(t, "σ(0)", m.Stress(0), 0, 0)
	if σ := m.Stress(1e-9); σ <= 0 || σ > 1e-3 {
		t.Errorf("σ(1e-9) = %g, want a small positive stress", σ)
	}
	prev := m.Stress(m.Epsilon0())
	for _, ε := range []float64{0.01, 0.05, 0.1, 0.3} {
		σ := m.Stress(ε)
		if σ <= 0 || σ >= prev {
			t.Errorf("σ(%g) = %g, want positive and below %g", ε, σ, prev)
		}
		prev = σ
	}
}

func TestConfinementMonotonicity(t *testing.T) {
	base := baseConfinement()
	ref, _ := NewConfinedConcrete(base)

	moreTube := base
	moreTube.TubeArea *= 2
	moreTies := base
	moreTies.TieCount *= 2

	for name, c := range map[string]Confinement{"ξ": moreTube, "ζ": moreTies} {
		m, err := NewConfinedConcrete(c)
		if err != nil {
			t.Fatal(err)
		}
		if m.Epsilon0() <= ref.Epsilon0() {
			t.Errorf("more %s: ε0 %g <= %g", name, m.Epsilon0(), ref.Epsilon0())
		}
		if m.Beta0() >= ref.Beta0() {
			t.Errorf("more %s: β0 %g >= %g", name, m.Beta0(), ref.Beta0())
		}
		for _, x := range []float64{1.5, 2, 5, 20} {
			got := m.Stress(x*m.Epsilon0()) / m.Sigma0()
			was := ref.Stress(x*ref.Epsilon0()) / ref.Sigma0()
			if got <= was {
				t.Errorf("more %s: y(%g) = %g, want above %g", name, x, got, was)
			}
		}
	}
}

func TestConfinementWithoutTies(t *testing.T) {
	c := baseConfinement()
	c.TieCount, c.TieSpacing = 0, 0
	m, err := NewConfinedConcrete(c)
	if err != nil {
		t.Fatal(err)
	}
	if m.Zeta() != 0 {
		t.Errorf("ζ = %g, want 0", m.Zeta())
	}

	c = baseConfinement()
	c.TieSpacing = 0
	var verr *ValidationError
	if _, err := NewConfinedConcrete(c); !errors.As(err, &verr) {
		t.Errorf("got %v, want *ValidationError", err)
	}
}

func TestZeroStrainGivesZeroStress(t *testing.T) {
	tube, _ := NewSteelTube(355, 470, 206000)
	bar, _ := NewTieBar(400, 200000)
	core, _ := NewConfinedConcrete(baseConfinement())
	for _, m := range []Model{tube, bar, core} {
		got, err := Evaluate(m, []float64{0})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0] != 0 {
			t.Errorf("%T: model([0]) = %v", m, got)
		}
	}
}

func TestNegativeStrainIsRejected(t *testing.T) {
	tube, _ := NewSteelTube(355, 470, 206000)
	for _, strain := range [][]float64{{0, -1e-6}, {math.NaN()}} {
		if _, err := Evaluate(tube, strain); !errors.Is(err, ErrInvalidDomain) {
			t.Errorf("%v: got %v, want ErrInvalidDomain", strain, err)
		}
		if _, err := Sample(tube, strain); !errors.Is(err, ErrInvalidDomain) {
			t.Errorf("%v: got %v, want ErrInvalidDomain", strain, err)
		}
	}
}

func TestInvalidParameters(t *testing.T) {
	var verr *ValidationError
	if _, err := NewSteelTube(0, 470, 206000); !errors.As(err, &verr) {
		t.Errorf("fy=0: got %v", err)
	}
	if _, err := NewTieBar(400, math.Inf(1)); !errors.As(err, &verr) {
		t.Errorf("E=inf: got %v", err)
	}
	c := baseConfinement()
	c.FcAxial = -1
	if _, err := NewConfinedConcrete(c); !errors.As(err, &verr) {
		t.Errorf("fck<0: got %v", err)
	}
}

func TestFactory(t *testing.T) {
	want := []string{"confined-concrete", "steel-tube", "tie-bar"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	for _, name := range want {
		m, err := New(name)
		if err != nil {
			t.Fatal(err)
		}
		if err := m.Init(m.GetPrms()); err != nil {
			t.Errorf("%s: example parameters rejected: %v", name, err)
		}
		if m.Modulus() <= 0 {
			t.Errorf("%s: modulus %g", name, m.Modulus())
		}
	}

	if _, err := New("drucker-prager"); err == nil {
		t.Errorf("expected an error for an unknown model")
	}
}

func TestParsePrms(t *testing.T) {
	prms, err := ParsePrms("fy=355, fu = 470,E=2.06e5")
	if err != nil {
		t.Fatal(err)
	}
	if prms.String() != "fy=355,fu=470,E=206000" {
		t.Errorf("String() = %q", prms.String())
	}
	if p := prms.Find("E"); p == nil || p.V != 206000 {
		t.Errorf("Find(E) = %v", p)
	}
	if prms.Find("nu") != nil {
		t.Errorf("Find(nu) should be nil")
	}

	m, _ := New("steel-tube")
	if err := m.Init(prms); err != nil {
		t.Fatal(err)
	}
	near(t, "σ(0.001)", m.Stress(0.001), 206, 1e-9)

	for _, bad := range []string{"fy", "fy=abc"} {
		if _, err := ParsePrms(bad); err == nil {
			t.Errorf("%q: expected an error", bad)
		}
	}
}

func TestCurveHelpers(t *testing.T) {
	xs, err := Linspace(0.001, 0.2, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(xs) != 5 || xs[0] != 0.001 || xs[4] != 0.2 {
		t.Errorf("Linspace = %v", xs)
	}
	for i := range xs {
		near(t, fmt.Sprintf("xs[%d]", i), xs[i], 0.001+float64(i)*(0.2-0.001)/4, 1e-15)
	}

	if _, err := Linspace(0, 1, 1); !errors.Is(err, ErrInvalidDomain) {
		t.Errorf("n=1: got %v", err)
	}
	if _, err := Linspace(1, 1, 3); !errors.Is(err, ErrInvalidDomain) {
		t.Errorf("empty range: got %v", err)
	}

	bar, _ := NewTieBar(400, 200000)
	c, err := Sample(bar, xs)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 5 || c.Modulus != 200000 {
		t.Errorf("curve = %+v", c)
	}
	if c.Peak() != 4 {
		t.Errorf("Peak() = %d, want 4", c.Peak())
	}

	p := c.Plastic(0.001, false)
	near(t, "plastic[0]", p.Strain[0], 0, 1e-18)
	near(t, "plastic[4]", p.Strain[4], 0.199, 1e-15)
	if c.Strain[0] != 0.001 {
		t.Errorf("Plastic modified the source curve")
	}

	z := c.Plastic(0.0005, true)
	if z.Strain[0] != 0 || z.Stress[0] != c.Stress[0] {
		t.Errorf("zeroFirst: %v %v", z.Strain[0], z.Stress[0])
	}
}

func ExampleSteelTube() {
	m, _ := NewSteelTube(355, 470, 206000)
	for _, ε := range []float64{0.001, 0.01, 0.1, 0.2} {
		fmt.Printf("ε = %.3f  σ = %.1f MPa\n", ε, m.Stress(ε))
	}
	// Output:
	// ε = 0.001  σ = 206.0 MPa
	// ε = 0.010  σ = 355.0 MPa
	// ε = 0.100  σ = 416.4 MPa
	// ε = 0.200  σ = 470.0 MPa
}
