package ej309plot

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/csvutil"
)

const maxLineSize = 1 << 20

// Column holds one positional column of a whitespace-delimited table.
type Column struct {
	Index  int
	Values []float64
}

// Len returns the number of rows in the column.
func (c Column) Len() int { return len(c.Values) }

// ReadColumns reads the requested 0-based columns from r.
// Fields are separated by runs of spaces or tabs and blank lines are
// ignored. If header is true, the first non-empty line is discarded.
// Every requested column must be present and hold a finite number on
// every row.
func ReadColumns(r io.Reader, header bool, indices ...int) ([]Column, error) {
	if len(indices) == 0 {
		return nil, errors.New("ej309plot: no columns requested")
	}
	width := 0
	for _, idx := range indices {
		if idx < 0 {
			return nil, errors.Errorf("ej309plot: invalid column index %d", idx)
		}
		if idx >= width {
			width = idx + 1
		}
	}

	buf, err := squeeze(r)
	if err != nil {
		return nil, errors.Wrap(err, "ej309plot: could not read table")
	}

	csvr := csv.NewReader(buf)
	csvr.Comma = ' '
	csvr.FieldsPerRecord = -1
	csvr.LazyQuotes = true

	tbl := &csvutil.Table{Reader: csvr}
	defer tbl.Close()

	var beg int64
	if header {
		beg = 1
	}
	rows, err := tbl.ReadRows(beg, -1)
	if err != nil {
		return nil, errors.Wrap(err, "ej309plot: could not read rows")
	}
	defer rows.Close()

	cols := make([]Column, len(indices))
	for i, idx := range indices {
		cols[i].Index = idx
	}

	fields := make([]string, width)
	dest := make([]interface{}, width)
	for i := range fields {
		dest[i] = &fields[i]
	}

	row := 0
	for rows.Next() {
		row++
		for i := range fields {
			fields[i] = ""
		}
		err = rows.Scan(dest...)
		if err != nil {
			return nil, errors.Wrapf(err, "ej309plot: could not scan row %d", row)
		}
		for i, idx := range indices {
			txt := fields[idx]
			if txt == "" {
				return nil, errors.Errorf("ej309plot: row %d has too few columns (need at least %d)", row, width)
			}
			v, err := strconv.ParseFloat(txt, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "ej309plot: row %d, column %d", row, idx)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.Errorf("ej309plot: row %d, column %d: non-finite value %q", row, idx, txt)
			}
			cols[i].Values = append(cols[i].Values, v)
		}
	}

	if err := rows.Err(); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "ej309plot: error while processing rows")
	}

	return cols, nil
}

// LoadColumns is ReadColumns on the named file. Any failure is
// returned as a *LoadError.
func LoadColumns(fname string, header bool, indices ...int) ([]Column, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, &LoadError{Filename: fname, Err: err}
	}
	defer f.Close()

	cols, err := ReadColumns(f, header, indices...)
	if err != nil {
		return nil, &LoadError{Filename: fname, Err: err}
	}
	return cols, nil
}

// squeeze rewrites r with blank lines dropped and every run of
// whitespace collapsed into a single space, so that the csv reader sees
// one delimiter between fields.
func squeeze(r io.Reader) (*bytes.Buffer, error) {
	out := new(bytes.Buffer)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		out.WriteString(strings.Join(fields, " "))
		out.WriteByte('\n')
	}
	return out, sc.Err()
}
