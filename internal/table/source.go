package table

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

//go:embed tables/*.json
var embedded embed.FS

// Source reads the grade table of a material class from storage
type Source interface {
	Load(class string) (*GradeTable, error)
}

// Embedded returns the tables compiled into the binary
func Embedded() Source {
	sub, err := fs.Sub(embedded, "tables")
	if err != nil {
		panic(err)
	}
	return FSSource{FS: sub}
}

// FSSource reads <class>.json files from a file system
type FSSource struct {
	FS fs.FS
}

// Load implements Source
func (s FSSource) Load(class string) (*GradeTable, error) {
	data, err := fs.ReadFile(s.FS, class+".json")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrTableNotFound, class)
		}
		return nil, err
	}
	return decodeJSON(class, data)
}

// DirSource reads <class>.json or, failing that, <class>.xlsx from a directory
type DirSource struct {
	Dir string
}

// Load implements Source
func (s DirSource) Load(class string) (*GradeTable, error) {
	t, err := FSSource{FS: os.DirFS(s.Dir)}.Load(class)
	if err == nil || !errors.Is(err, ErrTableNotFound) {
		return t, err
	}
	path := filepath.Join(s.Dir, class+".xlsx")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %q in %s", ErrTableNotFound, class, s.Dir)
	}
	return readXLSX(class, path)
}

// jsonTable is the on-disk layout: a header list and rows of mixed cells
type jsonTable struct {
	Index  []string `json:"index"`
	Values [][]any  `json:"values"`
}

func decodeJSON(class string, data []byte) (*GradeTable, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw jsonTable
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedTable, class, err)
	}

	t := &GradeTable{Class: class, Header: raw.Index}
	for _, values := range raw.Values {
		row := make([]string, len(values))
		for j, v := range values {
			switch cell := v.(type) {
			case nil:
				row[j] = ""
			case string:
				row[j] = cell
			case json.Number:
				row[j] = cell.String()
			default:
				row[j] = fmt.Sprint(cell)
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// readXLSX reads the first sheet of a workbook; row 1 is the header
func readXLSX(class, path string) (*GradeTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedTable, class, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedTable, class, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q has no header row", ErrMalformedTable, class)
	}

	t := &GradeTable{Class: class, Header: rows[0]}
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		// GetRows drops trailing empty cells
		for len(row) < len(t.Header) {
			row = append(row, "")
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
