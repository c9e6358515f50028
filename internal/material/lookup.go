package material

import (
	"fmt"

	"github.com/IceTiki/cfst-builder/internal/table"
)

// Lookup reads a grade of any shipped material class.
// thickness only applies to structural steel.
func Lookup(store *table.Store, class, grade string, thickness float64) (Entry, error) {
	switch class {
	case table.Concrete:
		return FromGrade[Concrete](store, ConcreteKind{}, grade)
	case table.Steel:
		return FromGrade[Steel](store, SteelKind{Thickness: thickness}, grade)
	case table.SteelBar:
		return FromGrade[SteelBar](store, SteelBarKind{}, grade)
	}
	return nil, fmt.Errorf("%w: %q", table.ErrTableNotFound, class)
}

// Interpolate synthesizes a record of any shipped material class whose
// property equals target
func Interpolate(store *table.Store, class, property string, target, thickness float64) (Entry, error) {
	switch class {
	case table.Concrete:
		return FromProperty[Concrete](store, ConcreteKind{}, property, target)
	case table.Steel:
		return FromProperty[Steel](store, SteelKind{Thickness: thickness}, property, target)
	case table.SteelBar:
		return FromProperty[SteelBar](store, SteelBarKind{}, property, target)
	}
	return nil, fmt.Errorf("%w: %q", table.ErrTableNotFound, class)
}
