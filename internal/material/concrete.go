package material

import (
	"github.com/IceTiki/cfst-builder/internal/table"
)

// Concrete holds the tabulated properties of a concrete grade
type Concrete struct {
	Grade                     string
	StrengthCriterionPressure float64 // fck, characteristic compressive strength (MPa)
	StrengthCriterionTensile  float64 // ftk, characteristic tensile strength (MPa)
	StrengthPressure          float64 // fc, design compressive strength (MPa)
	StrengthTensile           float64 // ft, design tensile strength (MPa)
	ElasticModulus            float64 // Ec (MPa)
	Density                   float64 // kg/m³
}

// column keywords of the concrete table
var concreteColumns = map[string]string{
	"grade":                       "Grade",
	"strength_criterion_pressure": "Characteristic compressive",
	"strength_criterion_tensile":  "Characteristic tensile",
	"strength_pressure":           "Design compressive",
	"strength_tensile":            "Design tensile",
	"elastic_modulus":             "Elastic modulus",
	"density":                     "Density",
}

var concretePositive = map[string]bool{
	"strength_criterion_pressure": true,
	"strength_criterion_tensile":  true,
	"strength_pressure":           true,
	"strength_tensile":            true,
	"elastic_modulus":             true,
}

// Name returns the grade
func (c Concrete) Name() string { return c.Grade }

// Fields lists the record fields in table order
func (c Concrete) Fields() []Field {
	return []Field{
		{Name: "grade", Text: c.Grade, IsText: true},
		{Name: "strength_criterion_pressure", Unit: "MPa", Value: c.StrengthCriterionPressure},
		{Name: "strength_criterion_tensile", Unit: "MPa", Value: c.StrengthCriterionTensile},
		{Name: "strength_pressure", Unit: "MPa", Value: c.StrengthPressure},
		{Name: "strength_tensile", Unit: "MPa", Value: c.StrengthTensile},
		{Name: "elastic_modulus", Unit: "MPa", Value: c.ElasticModulus},
		{Name: "density", Unit: "kg/m³", Value: c.Density},
	}
}

func (c Concrete) combine(o Concrete, grade string, op func(a, b float64) float64) Concrete {
	return Concrete{
		Grade:                     grade,
		StrengthCriterionPressure: op(c.StrengthCriterionPressure, o.StrengthCriterionPressure),
		StrengthCriterionTensile:  op(c.StrengthCriterionTensile, o.StrengthCriterionTensile),
		StrengthPressure:          op(c.StrengthPressure, o.StrengthPressure),
		StrengthTensile:           op(c.StrengthTensile, o.StrengthTensile),
		ElasticModulus:            op(c.ElasticModulus, o.ElasticModulus),
		Density:                   op(c.Density, o.Density),
	}
}

func (c Concrete) apply(grade string, op func(a float64) float64) Concrete {
	return Concrete{
		Grade:                     grade,
		StrengthCriterionPressure: op(c.StrengthCriterionPressure),
		StrengthCriterionTensile:  op(c.StrengthCriterionTensile),
		StrengthPressure:          op(c.StrengthPressure),
		StrengthTensile:           op(c.StrengthTensile),
		ElasticModulus:            op(c.ElasticModulus),
		Density:                   op(c.Density),
	}
}

func (c Concrete) Add(o Concrete) Concrete {
	return c.combine(o, joinPair(c.Grade, o.Grade, "+"), func(a, b float64) float64 { return a + b })
}

func (c Concrete) Sub(o Concrete) Concrete {
	return c.combine(o, joinPair(c.Grade, o.Grade, "-"), func(a, b float64) float64 { return a - b })
}

func (c Concrete) Scale(k float64) Concrete {
	return c.apply(joinScalar(c.Grade, "*", k), func(a float64) float64 { return a * k })
}

func (c Concrete) Div(k float64) Concrete {
	return c.apply(joinScalar(c.Grade, "/", k), func(a float64) float64 { return a / k })
}

// ConcreteKind reads Concrete records from the "concrete" table
type ConcreteKind struct{}

func (ConcreteKind) Class() string { return table.Concrete }

func (ConcreteKind) Grades(t *table.GradeTable) []string { return t.Grades() }

func (ConcreteKind) Decode(t *table.GradeTable, grade string) (Concrete, error) {
	cols, err := t.Columns(concreteColumns)
	if err != nil {
		return Concrete{}, err
	}
	row, err := findRow(t, cols["grade"], grade, nil)
	if err != nil {
		return Concrete{}, err
	}
	v, err := readFloats(t, row, cols)
	if err != nil {
		return Concrete{}, err
	}

	c := Concrete{
		Grade:                     grade,
		StrengthCriterionPressure: v["strength_criterion_pressure"],
		StrengthCriterionTensile:  v["strength_criterion_tensile"],
		StrengthPressure:          v["strength_pressure"],
		StrengthTensile:           v["strength_tensile"],
		ElasticModulus:            v["elastic_modulus"],
		Density:                   v["density"],
	}
	return c, checkFields(grade, c.Fields(), concretePositive)
}

// readFloats parses every non-text column of a row; text columns are the
// ones listed in skip
func readFloats(t *table.GradeTable, row int, cols map[string]int, skip ...string) (map[string]float64, error) {
	text := map[string]bool{"grade": true}
	for _, s := range skip {
		text[s] = true
	}
	v := make(map[string]float64, len(cols))
	for field, col := range cols {
		if text[field] {
			continue
		}
		f, err := t.Float(row, col)
		if err != nil {
			return nil, err
		}
		v[field] = f
	}
	return v, nil
}
