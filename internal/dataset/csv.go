// Package dataset loads the training CSVs: one file per target, a header of
// feature columns (X1..X4) plus exactly one target column, numeric rows.
// Empty cells become NaN and are left for the pipeline's imputer.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Table is one loaded CSV: a header and float rows in file order.
type Table struct {
	Columns []string
	Rows    [][]float64
}

// Load reads the CSV at path into a Table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return t, nil
}

// Read parses CSV content from r.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	var rows [][]float64
	line := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++
		row := make([]float64, len(columns))
		for j, cell := range rec {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				row[j] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %q is not numeric", line, columns[j], cell)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data rows")
	}
	return &Table{Columns: columns, Rows: rows}, nil
}

// Has reports whether the table carries the named column.
func (t *Table) Has(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns the values of one column.
func (t *Table) Column(name string) ([]float64, error) {
	for j, c := range t.Columns {
		if c != name {
			continue
		}
		out := make([]float64, len(t.Rows))
		for i := range t.Rows {
			out[i] = t.Rows[i][j]
		}
		return out, nil
	}
	return nil, fmt.Errorf("no column %q", name)
}

// Select returns the rows restricted to the named columns, in that order.
func (t *Table) Select(names []string) ([][]float64, error) {
	idx := make([]int, len(names))
	for k, name := range names {
		found := -1
		for j, c := range t.Columns {
			if c == name {
				found = j
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("no column %q", name)
		}
		idx[k] = found
	}
	out := make([][]float64, len(t.Rows))
	for i, row := range t.Rows {
		sel := make([]float64, len(idx))
		for k, j := range idx {
			sel[k] = row[j]
		}
		out[i] = sel
	}
	return out, nil
}

// Others returns the column names not listed in exclude, in header order.
func (t *Table) Others(exclude []string) []string {
	skip := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		skip[e] = true
	}
	var out []string
	for _, c := range t.Columns {
		if !skip[c] {
			out = append(out, c)
		}
	}
	return out
}
