package material

import (
	"github.com/IceTiki/cfst-builder/internal/table"
)

// SteelBar holds the tabulated properties of a reinforcing bar grade
type SteelBar struct {
	Grade                     string
	DiameterRange             string  // nominal diameters, "min~max" (mm)
	StrengthCriterionYield    float64 // fyk (MPa)
	StrengthCriterionUltimate float64 // fstk (MPa)
	StrengthTensile           float64 // fy, design tensile strength (MPa)
	StrengthPressure          float64 // fy', design compressive strength (MPa)
	ElasticModulus            float64 // Es (MPa)
	ElongationUltimate        float64 // δgt, total elongation at maximum force (%)
	Density                   float64 // kg/m³
}

var steelBarColumns = map[string]string{
	"grade":                       "Grade",
	"diameter_range":              "Nominal diameter",
	"strength_criterion_yield":    "Characteristic yield",
	"strength_criterion_ultimate": "Characteristic ultimate",
	"strength_tensile":            "Design tensile",
	"strength_pressure":           "Design compressive",
	"elastic_modulus":             "Elastic modulus",
	"elongation_ultimate":         "Total elongation",
	"density":                     "Density",
}

var steelBarPositive = map[string]bool{
	"strength_criterion_yield":    true,
	"strength_criterion_ultimate": true,
	"strength_tensile":            true,
	"strength_pressure":           true,
	"elastic_modulus":             true,
}

func (s SteelBar) Name() string { return s.Grade }

func (s SteelBar) Fields() []Field {
	return []Field{
		{Name: "grade", Text: s.Grade, IsText: true},
		{Name: "diameter_range", Text: s.DiameterRange, IsText: true},
		{Name: "strength_criterion_yield", Unit: "MPa", Value: s.StrengthCriterionYield},
		{Name: "strength_criterion_ultimate", Unit: "MPa", Value: s.StrengthCriterionUltimate},
		{Name: "strength_tensile", Unit: "MPa", Value: s.StrengthTensile},
		{Name: "strength_pressure", Unit: "MPa", Value: s.StrengthPressure},
		{Name: "elastic_modulus", Unit: "MPa", Value: s.ElasticModulus},
		{Name: "elongation_ultimate", Unit: "%", Value: s.ElongationUltimate},
		{Name: "density", Unit: "kg/m³", Value: s.Density},
	}
}

func (s SteelBar) combine(o SteelBar, grade, diameters string, op func(a, b float64) float64) SteelBar {
	return SteelBar{
		Grade:                     grade,
		DiameterRange:             diameters,
		StrengthCriterionYield:    op(s.StrengthCriterionYield, o.StrengthCriterionYield),
		StrengthCriterionUltimate: op(s.StrengthCriterionUltimate, o.StrengthCriterionUltimate),
		StrengthTensile:           op(s.StrengthTensile, o.StrengthTensile),
		StrengthPressure:          op(s.StrengthPressure, o.StrengthPressure),
		ElasticModulus:            op(s.ElasticModulus, o.ElasticModulus),
		ElongationUltimate:        op(s.ElongationUltimate, o.ElongationUltimate),
		Density:                   op(s.Density, o.Density),
	}
}

func (s SteelBar) apply(grade, diameters string, op func(a float64) float64) SteelBar {
	return SteelBar{
		Grade:                     grade,
		DiameterRange:             diameters,
		StrengthCriterionYield:    op(s.StrengthCriterionYield),
		StrengthCriterionUltimate: op(s.StrengthCriterionUltimate),
		StrengthTensile:           op(s.StrengthTensile),
		StrengthPressure:          op(s.StrengthPressure),
		ElasticModulus:            op(s.ElasticModulus),
		ElongationUltimate:        op(s.ElongationUltimate),
		Density:                   op(s.Density),
	}
}

func (s SteelBar) Add(o SteelBar) SteelBar {
	return s.combine(o, joinPair(s.Grade, o.Grade, "+"), joinPair(s.DiameterRange, o.DiameterRange, "+"),
		func(a, b float64) float64 { return a + b })
}

func (s SteelBar) Sub(o SteelBar) SteelBar {
	return s.combine(o, joinPair(s.Grade, o.Grade, "-"), joinPair(s.DiameterRange, o.DiameterRange, "-"),
		func(a, b float64) float64 { return a - b })
}

func (s SteelBar) Scale(k float64) SteelBar {
	return s.apply(joinScalar(s.Grade, "*", k), joinScalar(s.DiameterRange, "*", k),
		func(a float64) float64 { return a * k })
}

func (s SteelBar) Div(k float64) SteelBar {
	return s.apply(joinScalar(s.Grade, "/", k), joinScalar(s.DiameterRange, "/", k),
		func(a float64) float64 { return a / k })
}

// SteelBarKind reads SteelBar records from the "steel_bar" table
type SteelBarKind struct{}

func (SteelBarKind) Class() string { return table.SteelBar }

func (SteelBarKind) Grades(t *table.GradeTable) []string { return t.Grades() }

func (SteelBarKind) Decode(t *table.GradeTable, grade string) (SteelBar, error) {
	cols, err := t.Columns(steelBarColumns)
	if err != nil {
		return SteelBar{}, err
	}
	row, err := findRow(t, cols["grade"], grade, nil)
	if err != nil {
		return SteelBar{}, err
	}
	v, err := readFloats(t, row, cols, "diameter_range")
	if err != nil {
		return SteelBar{}, err
	}

	s := SteelBar{
		Grade:                     grade,
		DiameterRange:             t.Text(row, cols["diameter_range"]),
		StrengthCriterionYield:    v["strength_criterion_yield"],
		StrengthCriterionUltimate: v["strength_criterion_ultimate"],
		StrengthTensile:           v["strength_tensile"],
		StrengthPressure:          v["strength_pressure"],
		ElasticModulus:            v["elastic_modulus"],
		ElongationUltimate:        v["elongation_ultimate"],
		Density:                   v["density"],
	}
	return s, checkFields(grade, s.Fields(), steelBarPositive)
}
