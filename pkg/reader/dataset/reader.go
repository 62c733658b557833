// Package dataset provides streaming readers for tabular lipid abundance data
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/smz-lab/lipres/pkg/table"
)

// Row is one line of an abundance table: a lipid identifier label and its
// per-sample measurements. Cells that are not numeric come back as NaN.
type Row struct {
	Label  string
	Values []float64
}

// Reader provides streaming access to tab- or comma-separated abundance
// tables with lipid identifiers in the first column and one column per
// sample.
type Reader struct {
	scanner    *bufio.Scanner
	sep        string
	samples    []string
	lineNum    int
	currentRow *Row
	err        error
}

// NewReader creates a reader and consumes the header line. The cell
// separator is detected from the header (tab when present, comma otherwise).
func NewReader(r io.Reader) (*Reader, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("empty input, expected a header line")
	}

	header := scanner.Text()
	sep := ","
	if strings.Contains(header, "\t") {
		sep = "\t"
	}

	fields := strings.Split(header, sep)
	if len(fields) < 2 {
		return nil, fmt.Errorf("header has no sample columns")
	}

	samples := make([]string, 0, len(fields)-1)
	for _, f := range fields[1:] {
		samples = append(samples, strings.TrimSpace(f))
	}

	return &Reader{
		scanner: scanner,
		sep:     sep,
		samples: samples,
		lineNum: 1,
	}, nil
}

// Samples returns the sample column names from the header.
func (r *Reader) Samples() []string {
	return r.samples
}

// Next advances to the next data row. Returns false when no more rows or error.
func (r *Reader) Next() bool {
	r.currentRow = nil

	for r.scanner.Scan() {
		r.lineNum++
		line := strings.TrimRight(r.scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, r.sep)
		if len(fields)-1 != len(r.samples) {
			r.err = fmt.Errorf("line %d: expected %d sample cells, got %d", r.lineNum, len(r.samples), len(fields)-1)
			return false
		}

		row := &Row{Label: strings.TrimSpace(fields[0])}
		for _, cell := range fields[1:] {
			row.Values = append(row.Values, parseCell(cell))
		}

		r.currentRow = row
		return true
	}

	if err := r.scanner.Err(); err != nil {
		r.err = err
	}
	return false
}

// Row returns the current row.
func (r *Reader) Row() *Row {
	return r.currentRow
}

// Err returns any error encountered during reading.
func (r *Reader) Err() error {
	return r.err
}

// parseCell parses one measurement cell; anything non-numeric becomes NaN.
func parseCell(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// ReadAll reads a whole abundance table into a Dataset, dropping columns
// that contain no numeric data at all (free-text metadata columns).
func ReadAll(r io.Reader) (*table.Dataset, error) {
	reader, err := NewReader(r)
	if err != nil {
		return nil, err
	}

	samples := reader.Samples()
	numericCount := make([]int, len(samples))

	var labels []string
	var rows [][]float64

	for reader.Next() {
		row := reader.Row()
		labels = append(labels, row.Label)
		rows = append(rows, row.Values)
		for i, v := range row.Values {
			if !math.IsNaN(v) {
				numericCount[i]++
			}
		}
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}

	var keep []int
	for i, n := range numericCount {
		if n > 0 {
			keep = append(keep, i)
		}
	}
	if len(keep) == 0 {
		return nil, fmt.Errorf("table does not contain numerical data")
	}

	ds := &table.Dataset{Labels: labels}
	for _, i := range keep {
		ds.Samples = append(ds.Samples, samples[i])
	}
	for _, row := range rows {
		kept := make([]float64, 0, len(keep))
		for _, i := range keep {
			kept = append(kept, row[i])
		}
		ds.Values = append(ds.Values, kept)
	}

	return ds, nil
}
