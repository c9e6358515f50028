// Package table holds the grade tables of the material classes and the
// process-wide cache they are served from.
package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Material classes with a grade table
const (
	Concrete = "concrete"
	Steel    = "steel"
	SteelBar = "steel_bar"
)

// Classes lists the material classes shipped with the embedded tables
func Classes() []string {
	return []string{Concrete, Steel, SteelBar}
}

var (
	// ErrTableNotFound is returned when no storage exists for a material class
	ErrTableNotFound = errors.New("table not found")

	// ErrMalformedTable is returned when header and row shapes disagree
	ErrMalformedTable = errors.New("malformed table")
)

// GradeTable is the raw content of one material class table.
// Rows keep the cell text; numeric cells are parsed on demand.
type GradeTable struct {
	Class  string
	Header []string
	Rows   [][]string
}

// Validate checks that every row has one cell per header column
func (t *GradeTable) Validate() error {
	if len(t.Header) == 0 {
		return fmt.Errorf("%w: %q has an empty header", ErrMalformedTable, t.Class)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("%w: %q row %d has %d cells, header has %d",
				ErrMalformedTable, t.Class, i+1, len(row), len(t.Header))
		}
	}
	return nil
}

// Column returns the index of the first header containing keyword
func (t *GradeTable) Column(keyword string) (int, error) {
	for i, head := range t.Header {
		if strings.Contains(head, keyword) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q has no column matching %q", ErrMalformedTable, t.Class, keyword)
}

// Columns resolves a logical field -> keyword mapping into column positions
func (t *GradeTable) Columns(keywords map[string]string) (map[string]int, error) {
	index := make(map[string]int, len(keywords))
	for field, keyword := range keywords {
		col, err := t.Column(keyword)
		if err != nil {
			return nil, err
		}
		index[field] = col
	}
	return index, nil
}

// Float parses the cell at (row, col) as a number
func (t *GradeTable) Float(row, col int) (float64, error) {
	cell := strings.TrimSpace(t.Rows[row][col])
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q row %d column %q: %q is not a number",
			ErrMalformedTable, t.Class, row+1, t.Header[col], cell)
	}
	return v, nil
}

// Text returns the trimmed cell text at (row, col)
func (t *GradeTable) Text(row, col int) string {
	return strings.TrimSpace(t.Rows[row][col])
}

// Grades returns the distinct values of the first column in table order
func (t *GradeTable) Grades() []string {
	seen := make(map[string]bool, len(t.Rows))
	var grades []string
	for i := range t.Rows {
		g := t.Text(i, 0)
		if seen[g] {
			continue
		}
		seen[g] = true
		grades = append(grades, g)
	}
	return grades
}
