// Package material implements the material records read from the grade
// tables and the interpolation of intermediate grades on a numeric property.
package material

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/IceTiki/cfst-builder/internal/table"
)

var (
	ErrGradeNotFound          = errors.New("grade not found")
	ErrOutOfRange             = errors.New("target value out of table range")
	ErrAmbiguousInterpolation = errors.New("ambiguous interpolation")
	ErrUnknownProperty        = errors.New("unknown property")
)

// Field is one named value of a record
type Field struct {
	Name   string  // logical field name, e.g. "elastic_modulus"
	Unit   string  // unit of Value; empty for text fields
	Value  float64 // numeric value
	Text   string  // text value, set for text fields only
	IsText bool
}

// Entry is the read-only view shared by all record types
type Entry interface {
	Name() string
	Fields() []Field
}

// Record is a material record with field-wise arithmetic.
// Text fields are combined by a descriptive join, e.g. "(C30+C35)".
type Record[R any] interface {
	Entry
	Add(o R) R
	Sub(o R) R
	Scale(k float64) R
	Div(k float64) R
}

// Kind reads records of one material class from its grade table
type Kind[R Record[R]] interface {
	Class() string
	Grades(t *table.GradeTable) []string
	Decode(t *table.GradeTable, grade string) (R, error)
}

// Property returns the numeric field called name
func Property(e Entry, name string) (float64, error) {
	for _, f := range e.Fields() {
		if f.Name != name {
			continue
		}
		if f.IsText {
			return 0, fmt.Errorf("%w: %q is a text field", ErrUnknownProperty, name)
		}
		return f.Value, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
}

// FromGrade reads the record of an exact grade
func FromGrade[R Record[R]](store *table.Store, kind Kind[R], grade string) (R, error) {
	var zero R
	t, err := store.Table(kind.Class())
	if err != nil {
		return zero, err
	}
	return kind.Decode(t, grade)
}

// FromProperty returns the record whose property equals target. A grade
// with exactly that value is returned as is; otherwise the two grades
// bracketing target are blended linearly.
func FromProperty[R Record[R]](store *table.Store, kind Kind[R], property string, target float64) (R, error) {
	var zero R
	t, err := store.Table(kind.Class())
	if err != nil {
		return zero, err
	}

	grades := kind.Grades(t)
	if len(grades) == 0 {
		return zero, fmt.Errorf("%w: %q has no grades", table.ErrMalformedTable, kind.Class())
	}
	records := make([]R, len(grades))
	values := make([]float64, len(grades))
	for i, g := range grades {
		if records[i], err = kind.Decode(t, g); err != nil {
			return zero, err
		}
		if values[i], err = Property(records[i], property); err != nil {
			return zero, err
		}
	}

	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

	sorted := make([]R, len(order))
	keys := make([]float64, len(order))
	for i, j := range order {
		sorted[i], keys[i] = records[j], values[j]
	}

	lo, hi := keys[0], keys[len(keys)-1]
	if math.IsNaN(target) || target < lo || target > hi {
		return zero, fmt.Errorf("%w: %s = %g not in [%g, %g]", ErrOutOfRange, property, target, lo, hi)
	}

	exact, lower, upper := bracket(keys, target)
	if exact >= 0 {
		return sorted[exact], nil
	}
	return interpolate(sorted[lower], sorted[upper], keys[lower], keys[upper], target)
}

// bracket binary-searches ascending keys for target. It returns the index of
// an exact match, or -1 and the pair (end, start) left when the search ends
// with start == end+1, so that keys[end] < target < keys[start].
func bracket(keys []float64, target float64) (exact, lower, upper int) {
	start, end := 0, len(keys)-1
	for start <= end {
		mid := (start + end) / 2
		switch {
		case keys[mid] == target:
			return mid, mid, mid
		case keys[mid] < target:
			start = mid + 1
		default:
			end = mid - 1
		}
	}
	return -1, end, start
}

func interpolate[R Record[R]](lower, upper R, lowerKey, upperKey, target float64) (R, error) {
	var zero R
	if upperKey == lowerKey {
		return zero, fmt.Errorf("%w: %s and %s share the value %g",
			ErrAmbiguousInterpolation, lower.Name(), upper.Name(), lowerKey)
	}
	alpha := (target - lowerKey) / (upperKey - lowerKey)
	return Blend(lower, upper, alpha), nil
}

// Blend returns lower*(1-alpha) + upper*alpha
func Blend[R Record[R]](lower, upper R, alpha float64) R {
	return lower.Scale(1 - alpha).Add(upper.Scale(alpha))
}

// joins used for text fields
func joinPair(a, b, op string) string {
	return fmt.Sprintf("(%s%s%s)", a, op, b)
}

func joinScalar(a string, op string, k float64) string {
	return fmt.Sprintf("(%s%s%g)", a, op, k)
}

// checkFields enforces finite values and strictly positive strengths/moduli
func checkFields(grade string, fields []Field, positive map[string]bool) error {
	for _, f := range fields {
		if f.IsText {
			continue
		}
		if math.IsNaN(f.Value) || math.IsInf(f.Value, 0) {
			return fmt.Errorf("%w: %s %s is not finite", table.ErrMalformedTable, grade, f.Name)
		}
		if positive[f.Name] && f.Value <= 0 {
			return fmt.Errorf("%w: %s %s must be positive, got %g", table.ErrMalformedTable, grade, f.Name, f.Value)
		}
	}
	return nil
}

// findRow returns the first row whose grade column equals grade and which
// satisfies accept (nil accepts every row)
func findRow(t *table.GradeTable, gradeCol int, grade string, accept func(row int) (bool, error)) (int, error) {
	for i := range t.Rows {
		if t.Text(i, gradeCol) != grade {
			continue
		}
		if accept == nil {
			return i, nil
		}
		ok, err := accept(i)
		if err != nil {
			return -1, err
		}
		if ok {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q in %q table", ErrGradeNotFound, grade, t.Class)
}
