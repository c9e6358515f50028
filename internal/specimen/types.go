package specimen

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Specimen describes a rectangular concrete-filled steel tube column with
// tie rods
type Specimen struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Materials, each chosen by grade or by a target property value
	Concrete MaterialRef `json:"concrete"`
	Steel    MaterialRef `json:"steel"`
	SteelBar MaterialRef `json:"steel_bar"`

	Geometry Geometry  `json:"geometry"`
	Tie      TieLayout `json:"tie"`

	// Reference points driving the end faces
	Top    ReferencePoint `json:"top"`
	Bottom ReferencePoint `json:"bottom"`

	// Points per tabulated curve (default from configuration)
	Samples int `json:"samples,omitempty"`
}

// MaterialRef selects a material record. Grade takes precedence; otherwise
// the record whose Property equals Value is interpolated from the table.
type MaterialRef struct {
	Grade    string  `json:"grade,omitempty"`
	Property string  `json:"property,omitempty"`
	Value    float64 `json:"value,omitempty"`
}

// UnmarshalJSON accepts either a bare grade string or an object
func (m *MaterialRef) UnmarshalJSON(data []byte) error {
	var grade string
	if err := json.Unmarshal(data, &grade); err == nil {
		*m = MaterialRef{Grade: grade}
		return nil
	}
	type plain MaterialRef
	return json.Unmarshal(data, (*plain)(m))
}

func (m MaterialRef) String() string {
	if m.Grade != "" {
		return m.Grade
	}
	return fmt.Sprintf("%s=%g", m.Property, m.Value)
}

func (m MaterialRef) validate(name string) error {
	if m.Grade == "" && m.Property == "" {
		return &ValidationError{msg: name + " must name a grade or a property"}
	}
	if m.Grade == "" && !(m.Value > 0) {
		return &ValidationError{msg: fmt.Sprintf("%s %s must be positive", name, m.Property)}
	}
	return nil
}

// Geometry holds the outer dimensions of the column (mm)
type Geometry struct {
	LenX          float64 `json:"len_x"`          // B, short side of the section
	LenY          float64 `json:"len_y"`          // D, long side of the section
	LenZ          float64 `json:"len_z"`          // H, column height
	TubeThickness float64 `json:"tube_thickness"` // t

	// Mesh seeds per direction (x, y, z)
	ConcreteMesh [3]int `json:"concrete_mesh"`
	SteelMesh    [3]int `json:"steel_mesh"`
}

// TieLayout describes the tie rods
type TieLayout struct {
	// Area of one rod before bending (mm²); U-shaped ties count twice
	Area float64 `json:"area"`

	XNumber int `json:"x_number"` // rods per layer along x
	YNumber int `json:"y_number"` // rods per layer along y
	ZNumber int `json:"z_number"` // layers along the column

	UShape bool  `json:"ushape"`
	XExist *bool `json:"x_exist,omitempty"` // default true
	YExist *bool `json:"y_exist,omitempty"` // default true
}

// ReferencePoint is the rigid control point of an end face, placed at the
// face centre plus Shift
type ReferencePoint struct {
	Shift [3]float64 `json:"shift"`

	// Prescribed U1, U2, U3, UR1, UR2, UR3; null leaves a DOF free
	Displacement []*float64 `json:"displacement,omitempty"`
}

// Default returns a specimen with the tie and mesh defaults filled in
func Default() Specimen {
	return Specimen{
		Geometry: Geometry{
			ConcreteMesh: [3]int{6, 6, 10},
			SteelMesh:    [3]int{5, 5, 8},
		},
		Tie: TieLayout{XNumber: 1, YNumber: 1, ZNumber: 10},
	}
}

// LoadFromFile reads a specimen from a JSON file on top of Default
func LoadFromFile(filename string) (*Specimen, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid specimen: %w", err)
	}
	return &s, nil
}

// Validate checks if the specimen definition is valid
func (s *Specimen) Validate() error {
	refs := []struct {
		name string
		ref  MaterialRef
	}{
		{"concrete", s.Concrete},
		{"steel", s.Steel},
		{"steel_bar", s.SteelBar},
	}
	for _, r := range refs {
		if err := r.ref.validate(r.name); err != nil {
			return err
		}
	}
	if err := s.Geometry.Validate(); err != nil {
		return err
	}
	if err := s.Tie.Validate(); err != nil {
		return err
	}
	for name, rp := range map[string]ReferencePoint{"top": s.Top, "bottom": s.Bottom} {
		if n := len(rp.Displacement); n != 0 && n != 6 {
			return &ValidationError{msg: fmt.Sprintf("%s displacement must have 6 components, got %d", name, n)}
		}
	}
	if s.Samples < 0 || s.Samples == 1 {
		return &ValidationError{msg: "samples must be at least 2"}
	}
	return nil
}

// Validate checks the dimensions
func (g Geometry) Validate() error {
	dims := []struct {
		name string
		v    float64
	}{
		{"len_x", g.LenX},
		{"len_y", g.LenY},
		{"len_z", g.LenZ},
		{"tube_thickness", g.TubeThickness},
	}
	for _, d := range dims {
		if !(d.v > 0) || math.IsInf(d.v, 0) {
			return &ValidationError{msg: d.name + " must be positive"}
		}
	}
	if 2*g.TubeThickness >= math.Min(g.LenX, g.LenY) {
		return &ValidationError{msg: "tube_thickness must be less than half the section side"}
	}
	for i := range 3 {
		if g.ConcreteMesh[i] < 0 || g.SteelMesh[i] < 0 {
			return &ValidationError{msg: "mesh seeds must not be negative"}
		}
	}
	return nil
}

// Validate checks the tie layout
func (t TieLayout) Validate() error {
	if t.Area < 0 || math.IsNaN(t.Area) || math.IsInf(t.Area, 0) {
		return &ValidationError{msg: "tie area must not be negative"}
	}
	if t.XNumber < 0 || t.YNumber < 0 || t.ZNumber < 0 {
		return &ValidationError{msg: "tie counts must not be negative"}
	}
	return nil
}

// ValidationError represents a specimen validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
