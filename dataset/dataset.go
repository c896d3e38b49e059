// Package dataset reads and writes headerless CSV tables of float64 values.
//
// Parsing rejects non-numeric fields but accepts rows of differing length; the
// noise pipeline reports ragged input as a shape mismatch itself.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/noisegen/pkg/errors"
)

// Stdin is the path that selects standard input (or output, for writers).
const Stdin = "-"

// ParseError reports a field that is not a floating-point number.
type ParseError struct {
	Line   int // 1-based line where the field starts
	Column int // 0-based field index
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("noisegen: line %d, column %d: field %q is not a float: %v", e.Line, e.Column, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds the parse location to a zerolog event.
func (e *ParseError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("line", e.Line).
		Int("column", e.Column).
		Str("field", e.Field).
		Str("type", "ParseError")
}

// Read parses every record of r into a row of float64 values.
// Leading and trailing spaces around a field are ignored.
func Read(r io.Reader) ([][]float64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	var rows [][]float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read CSV record")
		}

		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				line, _ := reader.FieldPos(j)
				return nil, errors.WithStack(&ParseError{Line: line, Column: j, Field: field, Err: err})
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Write emits one line per row with comma-separated fields in their shortest
// round-trip representation.
func Write(w io.Writer, rows [][]float64) error {
	writer := csv.NewWriter(w)
	record := make([]string, 0)
	for _, row := range rows {
		record = record[:0]
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "failed to write CSV row")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "failed to flush CSV output")
	}
	return nil
}

// Open returns a reader for path; "" and "-" select standard input.
// Closing the standard-input reader is a no-op.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open input %s", path)
	}
	return f, nil
}

// Load reads the dataset at path ("" or "-" for standard input).
func Load(path string) ([][]float64, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Read(rc)
}

// Clone returns a deep copy of rows.
func Clone(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
