package material

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/IceTiki/cfst-builder/internal/table"
)

type fakeSource map[string]*table.GradeTable

func (s fakeSource) Load(class string) (*table.GradeTable, error) {
	t, ok := s[class]
	if !ok {
		return nil, table.ErrTableNotFound
	}
	return t, nil
}

func newStore() *table.Store {
	return table.NewStore(table.Embedded())
}

func near(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.15g, want %.15g (tol %g)", name, got, want, tol)
	}
}

func TestConcreteFromGrade(t *testing.T) {
	c, err := FromGrade[Concrete](newStore(), ConcreteKind{}, "C50")
	if err != nil {
		t.Fatal(err)
	}
	want := Concrete{
		Grade:                     "C50",
		StrengthCriterionPressure: 32.4,
		StrengthCriterionTensile:  2.64,
		StrengthPressure:          23.1,
		StrengthTensile:           1.89,
		ElasticModulus:            34500,
		Density:                   2400,
	}
	if c != want {
		t.Errorf("got %+v\nwant %+v", c, want)
	}
}

func TestFromGradeNotFound(t *testing.T) {
	_, err := FromGrade[Concrete](newStore(), ConcreteKind{}, "C100")
	if !errors.Is(err, ErrGradeNotFound) {
		t.Fatalf("got %v, want ErrGradeNotFound", err)
	}
	_, err = FromGrade[SteelBar](newStore(), SteelBarKind{}, "HRB600")
	if !errors.Is(err, ErrGradeNotFound) {
		t.Fatalf("got %v, want ErrGradeNotFound", err)
	}
}

func TestSteelThicknessBands(t *testing.T) {
	store := newStore()
	tests := []struct {
		thickness float64
		fy        float64
	}{
		{10, 355},
		{16, 355},
		{20, 345},
		{50, 335},
		{70, 325},
		{0, 315},
		{100, 315},
	}
	for _, tt := range tests {
		s, err := FromGrade[Steel](store, SteelKind{Thickness: tt.thickness}, "Q355")
		if err != nil {
			t.Fatalf("thickness %g: %v", tt.thickness, err)
		}
		if s.StrengthYield != tt.fy {
			t.Errorf("thickness %g: fy = %g, want %g", tt.thickness, s.StrengthYield, tt.fy)
		}
	}

	_, err := FromGrade[Steel](store, SteelKind{Thickness: 120}, "Q355")
	if !errors.Is(err, ErrGradeNotFound) {
		t.Errorf("got %v, want ErrGradeNotFound", err)
	}
	// Q345GJ starts above 6 mm
	_, err = FromGrade[Steel](store, SteelKind{Thickness: 5}, "Q345GJ")
	if !errors.Is(err, ErrGradeNotFound) {
		t.Errorf("got %v, want ErrGradeNotFound", err)
	}
}

func TestFromPropertyExactMatchIsUnmodified(t *testing.T) {
	store := newStore()
	tab, err := store.Table(table.Concrete)
	if err != nil {
		t.Fatal(err)
	}
	for _, g := range tab.Grades() {
		want, err := FromGrade[Concrete](store, ConcreteKind{}, g)
		if err != nil {
			t.Fatal(err)
		}
		got, err := FromProperty[Concrete](store, ConcreteKind{}, "strength_pressure", want.StrengthPressure)
		if err != nil {
			t.Fatalf("%s: %v", g, err)
		}
		if got != want {
			t.Errorf("%s: got %+v, want %+v", g, got, want)
		}
	}
}

func TestFromPropertyOutOfRange(t *testing.T) {
	store := newStore()
	for _, v := range []float64{7.1, 35.91, -1, math.NaN()} {
		_, err := FromProperty[Concrete](store, ConcreteKind{}, "strength_pressure", v)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("%g: got %v, want ErrOutOfRange", v, err)
		}
	}
	// the bounds themselves are in range
	for _, v := range []float64{7.2, 35.9} {
		if _, err := FromProperty[Concrete](store, ConcreteKind{}, "strength_pressure", v); err != nil {
			t.Errorf("%g: %v", v, err)
		}
	}
}

func TestFromPropertyBlendsNeighbours(t *testing.T) {
	store := newStore()
	c30, _ := FromGrade[Concrete](store, ConcreteKind{}, "C30")
	c35, _ := FromGrade[Concrete](store, ConcreteKind{}, "C35")

	target := 15.5
	alpha := (target - c30.StrengthPressure) / (c35.StrengthPressure - c30.StrengthPressure)

	got, err := FromProperty[Concrete](store, ConcreteKind{}, "strength_pressure", target)
	if err != nil {
		t.Fatal(err)
	}
	near(t, "strength_pressure", got.StrengthPressure, target, 1e-12)
	near(t, "elastic_modulus", got.ElasticModulus, c30.ElasticModulus*(1-alpha)+c35.ElasticModulus*alpha, 1e-9)
	near(t, "strength_tensile", got.StrengthTensile, c30.StrengthTensile*(1-alpha)+c35.StrengthTensile*alpha, 1e-12)
	near(t, "density", got.Density, 2400, 1e-9)
	if !strings.HasPrefix(got.Grade, "((C30*") || !strings.Contains(got.Grade, ")+(C35*") {
		t.Errorf("grade = %q", got.Grade)
	}
}

func TestFromPropertyAcrossDuplicateValues(t *testing.T) {
	got, err := FromProperty[SteelBar](newStore(), SteelBarKind{}, "strength_criterion_yield", 450)
	if err != nil {
		t.Fatal(err)
	}
	if got.Grade != "((RRB400*0.5)+(HRB500*0.5))" {
		t.Errorf("grade = %q", got.Grade)
	}
	if got.DiameterRange != "((6~50*0.5)+(6~50*0.5))" {
		t.Errorf("diameter range = %q", got.DiameterRange)
	}
	near(t, "strength_criterion_ultimate", got.StrengthCriterionUltimate, 585, 1e-12)
	near(t, "elongation_ultimate", got.ElongationUltimate, 6.25, 1e-12)
}

func TestFromPropertySteelAtDefaultThickness(t *testing.T) {
	got, err := FromProperty[Steel](newStore(), SteelKind{}, "strength_yield", 320)
	if err != nil {
		t.Fatal(err)
	}
	alpha := (320.0 - 315.0) / (330.0 - 315.0)
	near(t, "strength_tensile", got.StrengthTensile, 470*(1-alpha)+490*alpha, 1e-9)
	if !strings.Contains(got.Grade, "Q355") || !strings.Contains(got.Grade, "Q390") {
		t.Errorf("grade = %q", got.Grade)
	}
}

func TestFromPropertyUnknownProperty(t *testing.T) {
	store := newStore()
	for _, prop := range []string{"poisson_ratio", "grade"} {
		_, err := FromProperty[Concrete](store, ConcreteKind{}, prop, 10)
		if !errors.Is(err, ErrUnknownProperty) {
			t.Errorf("%s: got %v, want ErrUnknownProperty", prop, err)
		}
	}
}

func TestBracket(t *testing.T) {
	keys := []float64{1, 2, 4, 8, 16}
	tests := []struct {
		target       float64
		exact, lo, hi int
	}{
		{1, 0, 0, 0},
		{8, 3, 3, 3},
		{16, 4, 4, 4},
		{1.5, -1, 0, 1},
		{3, -1, 1, 2},
		{5, -1, 2, 3},
		{15, -1, 3, 4},
	}
	for _, tt := range tests {
		exact, lo, hi := bracket(keys, tt.target)
		if exact != tt.exact {
			t.Errorf("%g: exact = %d, want %d", tt.target, exact, tt.exact)
			continue
		}
		if exact < 0 && (lo != tt.lo || hi != tt.hi) {
			t.Errorf("%g: bracket = [%d, %d], want [%d, %d]", tt.target, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestInterpolateAmbiguous(t *testing.T) {
	a := Concrete{Grade: "A", StrengthPressure: 10, ElasticModulus: 1}
	b := Concrete{Grade: "B", StrengthPressure: 10, ElasticModulus: 2}
	_, err := interpolate(a, b, 10, 10, 10)
	if !errors.Is(err, ErrAmbiguousInterpolation) {
		t.Fatalf("got %v, want ErrAmbiguousInterpolation", err)
	}
}

func TestRecordArithmetic(t *testing.T) {
	a := Concrete{Grade: "A", StrengthPressure: 10, ElasticModulus: 100, Density: 2}
	b := Concrete{Grade: "B", StrengthPressure: 4, ElasticModulus: 50, Density: 1}

	sum := a.Add(b)
	if sum.Grade != "(A+B)" || sum.StrengthPressure != 14 || sum.ElasticModulus != 150 {
		t.Errorf("Add = %+v", sum)
	}
	diff := a.Sub(b)
	if diff.Grade != "(A-B)" || diff.StrengthPressure != 6 || diff.Density != 1 {
		t.Errorf("Sub = %+v", diff)
	}
	half := a.Div(2)
	if half.Grade != "(A/2)" || half.ElasticModulus != 50 {
		t.Errorf("Div = %+v", half)
	}
	mid := Blend(a, b, 0.25)
	near(t, "blend", mid.StrengthPressure, 10*0.75+4*0.25, 1e-12)
	if mid.Grade != "((A*0.75)+(B*0.25))" {
		t.Errorf("blend grade = %q", mid.Grade)
	}

	s := Steel{Grade: "Q1", Type: "t"}.Scale(2)
	if s.Type != "(t*2)" {
		t.Errorf("steel type = %q", s.Type)
	}
}

func TestMalformedRecords(t *testing.T) {
	missing := &table.GradeTable{
		Class:  table.Concrete,
		Header: []string{"Grade", "Elastic modulus"},
		Rows:   [][]string{{"C1", "100"}},
	}
	store := table.NewStore(fakeSource{table.Concrete: missing})
	if _, err := FromGrade[Concrete](store, ConcreteKind{}, "C1"); !errors.Is(err, table.ErrMalformedTable) {
		t.Errorf("missing column: got %v", err)
	}

	header := []string{
		"Grade",
		"Characteristic compressive strength fck (MPa)",
		"Characteristic tensile strength ftk (MPa)",
		"Design compressive strength fc (MPa)",
		"Design tensile strength ft (MPa)",
		"Elastic modulus Ec (MPa)",
		"Density (kg/m3)",
	}
	zeroModulus := &table.GradeTable{
		Class:  table.Concrete,
		Header: header,
		Rows:   [][]string{{"C1", "10", "1", "7", "0.9", "0", "2400"}},
	}
	store = table.NewStore(fakeSource{table.Concrete: zeroModulus})
	if _, err := FromGrade[Concrete](store, ConcreteKind{}, "C1"); !errors.Is(err, table.ErrMalformedTable) {
		t.Errorf("zero modulus: got %v", err)
	}
}

func TestLookupDispatch(t *testing.T) {
	store := newStore()
	e, err := Lookup(store, table.SteelBar, "HRB400", 0)
	if err != nil {
		t.Fatal(err)
	}
	fy, err := Property(e, "strength_criterion_yield")
	if err != nil || fy != 400 {
		t.Errorf("fyk = %g, %v", fy, err)
	}

	if _, err := Lookup(store, "timber", "T1", 0); !errors.Is(err, table.ErrTableNotFound) {
		t.Errorf("got %v, want ErrTableNotFound", err)
	}

	e, err = Interpolate(store, table.Steel, "strength_yield", 235, 10)
	if err != nil {
		t.Fatal(err)
	}
	if e.Name() != "Q235" {
		t.Errorf("name = %q, want Q235", e.Name())
	}
}
