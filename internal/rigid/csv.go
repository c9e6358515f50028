package rigid

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Columns is the header of a motion record file
var Columns = []string{"time", "u1", "u2", "u3", "ur1", "ur2", "ur3"}

// ReadCSV reads a motion record written with the Columns header. The header
// row is optional.
func ReadCSV(r io.Reader) (Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Columns)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var rec Record
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMotionRecord, err)
		}
		line++
		if line == 1 && strings.EqualFold(strings.TrimSpace(row[0]), Columns[0]) {
			continue
		}
		var v [7]float64
		for i, cell := range row {
			v[i], err = strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %s: %v", ErrInvalidMotionRecord, line, Columns[i], err)
			}
		}
		rec = append(rec, Sample{
			Time: v[0],
			U:    Vec{v[1], v[2], v[3]},
			UR:   Vec{v[4], v[5], v[6]},
		})
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// WriteCSV writes rec with the Columns header
func WriteCSV(w io.Writer, rec Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return err
	}
	format := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, s := range rec {
		row := []string{
			format(s.Time),
			format(s.U[0]), format(s.U[1]), format(s.U[2]),
			format(s.UR[0]), format(s.UR[1]), format(s.UR[2]),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
