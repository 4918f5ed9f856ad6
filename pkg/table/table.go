// Package table formats evaluated routes as rows of a CSV route table for
// bulk import into a graph database.
//
// The layout is fixed: a KEY column with the 1-based sequence number, one
// STATE_n column per stop of the route, and a DISTANCE column formatted to one
// decimal. The header is written once, before the first row.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/matzehuels/routeperm/pkg/errors"
)

// Column names.
const (
	KeyColumn      = "KEY"
	DistanceColumn = "DISTANCE"
	StopPrefix     = "STATE_"
)

// Header returns k column names: KEY, STATE_1 … STATE_{k-2}, DISTANCE.
// For a route of length n, k is n+2. Header(1) is just KEY and Header(0) is
// empty.
func Header(k int) []string {
	header := make([]string, 0, max(k, 0))
	for i := 0; i < k; i++ {
		switch {
		case i == 0:
			header = append(header, KeyColumn)
		case i == k-1:
			header = append(header, DistanceColumn)
		default:
			header = append(header, StopPrefix+strconv.Itoa(i))
		}
	}
	return header
}

// Row returns [index] + stops + [distance], with the distance formatted to
// one decimal.
func Row(index int, distance float64, stops []string) []string {
	row := make([]string, 0, len(stops)+2)
	row = append(row, strconv.Itoa(index))
	row = append(row, stops...)
	return append(row, FormatDistance(distance))
}

// FormatDistance renders a distance with one decimal digit.
func FormatDistance(d float64) string {
	return fmt.Sprintf("%.1f", d)
}

// Writer streams route rows as CSV.
// It is not safe for concurrent use.
type Writer struct {
	csv    *csv.Writer
	rows   int
	width  int
	header bool
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// Write appends one route as the next row, emitting the header first if no
// row has been written yet. Every route written must have the same number of
// stops as the first one.
func (w *Writer) Write(index int, distance float64, stops []string) error {
	row := Row(index, distance, stops)
	if !w.header {
		w.width = len(row)
		if err := w.csv.Write(Header(w.width)); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write route table header")
		}
		w.header = true
	}
	if len(row) != w.width {
		return errors.New(errors.ErrCodeInternal,
			"route %d has %d stops, table has %d stop columns", index, len(stops), w.width-2)
	}
	if err := w.csv.Write(row); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write route %d", index)
	}
	w.rows++
	return nil
}

// Rows returns the number of data rows written.
func (w *Writer) Rows() int { return w.rows }

// Flush writes buffered rows to the underlying writer and reports any error
// from this or an earlier write.
func (w *Writer) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "flush route table")
	}
	return nil
}
