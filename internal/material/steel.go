package material

import (
	"fmt"

	"github.com/IceTiki/cfst-builder/internal/gbcode"
	"github.com/IceTiki/cfst-builder/internal/table"
)

// Steel holds the tabulated properties of a structural steel grade within
// one plate-thickness band
type Steel struct {
	Grade                        string
	Type                         string
	Strength                     float64 // f, tension/compression/bending design strength (MPa)
	StrengthShearing             float64 // fv (MPa)
	StrengthCE                   float64 // fce, end bearing (MPa)
	StrengthYield                float64 // fy (MPa)
	StrengthTensile              float64 // fu (MPa)
	ElasticModulus               float64 // E (MPa)
	ShearModulus                 float64 // G (MPa)
	CoefficientOfLinearExpansion float64 // 1/°C
	Density                      float64 // kg/m³
}

var steelColumns = map[string]string{
	"grade":                           "Grade",
	"type":                            "Type",
	"thickness_min":                   "Thickness lower",
	"thickness_max":                   "Thickness upper",
	"strength":                        "Design strength (",
	"strength_shearing":               "Shear design",
	"strength_ce":                     "End bearing",
	"strength_yield":                  "Yield strength",
	"strength_tensile":                "Tensile strength",
	"elastic_modulus":                 "Elastic modulus",
	"shear_modulus":                   "Shear modulus",
	"coefficient_of_linear_expansion": "Linear expansion",
	"density":                         "Density",
}

var steelPositive = map[string]bool{
	"strength":          true,
	"strength_shearing": true,
	"strength_ce":       true,
	"strength_yield":    true,
	"strength_tensile":  true,
	"elastic_modulus":   true,
	"shear_modulus":     true,
}

func (s Steel) Name() string { return s.Grade }

func (s Steel) Fields() []Field {
	return []Field{
		{Name: "grade", Text: s.Grade, IsText: true},
		{Name: "type", Text: s.Type, IsText: true},
		{Name: "strength", Unit: "MPa", Value: s.Strength},
		{Name: "strength_shearing", Unit: "MPa", Value: s.StrengthShearing},
		{Name: "strength_ce", Unit: "MPa", Value: s.StrengthCE},
		{Name: "strength_yield", Unit: "MPa", Value: s.StrengthYield},
		{Name: "strength_tensile", Unit: "MPa", Value: s.StrengthTensile},
		{Name: "elastic_modulus", Unit: "MPa", Value: s.ElasticModulus},
		{Name: "shear_modulus", Unit: "MPa", Value: s.ShearModulus},
		{Name: "coefficient_of_linear_expansion", Unit: "1/°C", Value: s.CoefficientOfLinearExpansion},
		{Name: "density", Unit: "kg/m³", Value: s.Density},
	}
}

func (s Steel) combine(o Steel, grade, typ string, op func(a, b float64) float64) Steel {
	return Steel{
		Grade:                        grade,
		Type:                         typ,
		Strength:                     op(s.Strength, o.Strength),
		StrengthShearing:             op(s.StrengthShearing, o.StrengthShearing),
		StrengthCE:                   op(s.StrengthCE, o.StrengthCE),
		StrengthYield:                op(s.StrengthYield, o.StrengthYield),
		StrengthTensile:              op(s.StrengthTensile, o.StrengthTensile),
		ElasticModulus:               op(s.ElasticModulus, o.ElasticModulus),
		ShearModulus:                 op(s.ShearModulus, o.ShearModulus),
		CoefficientOfLinearExpansion: op(s.CoefficientOfLinearExpansion, o.CoefficientOfLinearExpansion),
		Density:                      op(s.Density, o.Density),
	}
}

func (s Steel) apply(grade, typ string, op func(a float64) float64) Steel {
	return Steel{
		Grade:                        grade,
		Type:                         typ,
		Strength:                     op(s.Strength),
		StrengthShearing:             op(s.StrengthShearing),
		StrengthCE:                   op(s.StrengthCE),
		StrengthYield:                op(s.StrengthYield),
		StrengthTensile:              op(s.StrengthTensile),
		ElasticModulus:               op(s.ElasticModulus),
		ShearModulus:                 op(s.ShearModulus),
		CoefficientOfLinearExpansion: op(s.CoefficientOfLinearExpansion),
		Density:                      op(s.Density),
	}
}

func (s Steel) Add(o Steel) Steel {
	return s.combine(o, joinPair(s.Grade, o.Grade, "+"), joinPair(s.Type, o.Type, "+"),
		func(a, b float64) float64 { return a + b })
}

func (s Steel) Sub(o Steel) Steel {
	return s.combine(o, joinPair(s.Grade, o.Grade, "-"), joinPair(s.Type, o.Type, "-"),
		func(a, b float64) float64 { return a - b })
}

func (s Steel) Scale(k float64) Steel {
	return s.apply(joinScalar(s.Grade, "*", k), joinScalar(s.Type, "*", k),
		func(a float64) float64 { return a * k })
}

func (s Steel) Div(k float64) Steel {
	return s.apply(joinScalar(s.Grade, "/", k), joinScalar(s.Type, "/", k),
		func(a float64) float64 { return a / k })
}

// SteelKind reads Steel records from the "steel" table. Rows are selected by
// grade and by the thickness band min < Thickness <= max; a zero Thickness
// means gbcode.DefaultSteelThickness.
type SteelKind struct {
	Thickness float64 // mm
}

func (SteelKind) Class() string { return table.Steel }

func (SteelKind) Grades(t *table.GradeTable) []string { return t.Grades() }

func (k SteelKind) thickness() float64 {
	if k.Thickness <= 0 {
		return gbcode.DefaultSteelThickness
	}
	return k.Thickness
}

func (k SteelKind) Decode(t *table.GradeTable, grade string) (Steel, error) {
	cols, err := t.Columns(steelColumns)
	if err != nil {
		return Steel{}, err
	}

	thk := k.thickness()
	row, err := findRow(t, cols["grade"], grade, func(i int) (bool, error) {
		lo, err := t.Float(i, cols["thickness_min"])
		if err != nil {
			return false, err
		}
		hi, err := t.Float(i, cols["thickness_max"])
		if err != nil {
			return false, err
		}
		return lo < thk && thk <= hi, nil
	})
	if err != nil {
		return Steel{}, fmt.Errorf("%w (thickness %g mm)", err, thk)
	}
	v, err := readFloats(t, row, cols, "type")
	if err != nil {
		return Steel{}, err
	}

	s := Steel{
		Grade:                        grade,
		Type:                         t.Text(row, cols["type"]),
		Strength:                     v["strength"],
		StrengthShearing:             v["strength_shearing"],
		StrengthCE:                   v["strength_ce"],
		StrengthYield:                v["strength_yield"],
		StrengthTensile:              v["strength_tensile"],
		ElasticModulus:               v["elastic_modulus"],
		ShearModulus:                 v["shear_modulus"],
		CoefficientOfLinearExpansion: v["coefficient_of_linear_expansion"],
		Density:                      v["density"],
	}
	return s, checkFields(grade, s.Fields(), steelPositive)
}
