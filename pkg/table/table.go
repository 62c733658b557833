// Package table aggregates measured lipid abundances by individual residue
package table

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/smz-lab/lipres/pkg/core"
)

// Dataset is an abundance table: lipid identifiers as row labels, samples
// as columns. Missing measurements are NaN.
type Dataset struct {
	Labels  []string
	Samples []string
	Values  [][]float64 // indexed [row][column]
}

// DefaultUnwanted lists row labels excluded by default before residue
// extraction: per-class totals and free/total cholesterol rows.
var DefaultUnwanted = []string{"total", "fc", "tc"}

// Options configures the residue-table transform.
type Options struct {
	// DropAmbiguous rejects multi-isomer identifiers entirely instead of
	// dividing their contribution by the ambiguity degree.
	DropAmbiguous bool

	// MissingValue replaces NaN measurements (default 0).
	MissingValue float64

	// NoCleanup keeps rows whose label is in the unwanted set.
	NoCleanup bool

	// Unwanted overrides the default unwanted row labels (matched
	// case-insensitively against the whole label).
	Unwanted []string

	// AbsoluteAmount converts aggregated amounts to absolute molecule
	// counts using Unit.
	AbsoluteAmount bool

	// Unit is the unit of the measured amounts (default picomole).
	Unit core.Unit

	// Vocabulary resolves free-text row labels; nil uses the default.
	Vocabulary *core.Vocabulary

	// Warnings receives one line per skipped row; nil discards them.
	Warnings func(format string, args ...any)
}

// Result is the transformed table: residues as rows, samples as columns.
type Result struct {
	Residues []string
	Samples  []string
	Values   [][]float64 // indexed [residue][sample]

	// Skipped lists row labels that could not be parsed or resolved.
	Skipped []string
}

// MakeResiduesTable aggregates per-sample abundances by individual residue.
// The contribution of each residue is divided by the ambiguity degree of
// its parent identifier, so that isobar hypotheses do not inflate totals.
// Unparseable rows are skipped and reported, never fatal.
func MakeResiduesTable(ds *Dataset, opts Options) (*Result, error) {
	if ds == nil || len(ds.Samples) == 0 {
		return nil, fmt.Errorf("dataset does not contain numerical data")
	}
	if len(ds.Labels) != len(ds.Values) {
		return nil, fmt.Errorf("dataset has %d labels but %d value rows", len(ds.Labels), len(ds.Values))
	}

	unwanted := opts.Unwanted
	if unwanted == nil {
		unwanted = DefaultUnwanted
	}
	unit := opts.Unit
	if unit == "" {
		unit = core.Picomole
	}
	warnf := opts.Warnings
	if warnf == nil {
		warnf = func(string, ...any) {}
	}

	amounts := make(map[core.Residue][]float64)
	var skipped []string
	seenSkipped := make(map[string]bool)

	for row, label := range ds.Labels {
		if !opts.NoCleanup && isUnwanted(label, unwanted) {
			continue
		}

		id, err := core.Parse(label, opts.Vocabulary)
		if err != nil {
			if !seenSkipped[label] {
				seenSkipped[label] = true
				skipped = append(skipped, label)
				warnf("skipping row %q: %v", label, err)
			}
			continue
		}

		residues, degree := id.Residues(opts.DropAmbiguous)
		if degree == 0 {
			continue
		}

		for col := range ds.Samples {
			amount := ds.Values[row][col]
			if math.IsNaN(amount) {
				amount = opts.MissingValue
			}
			if opts.AbsoluteAmount {
				amount, err = core.Molecules(amount, unit)
				if err != nil {
					return nil, err
				}
			}

			for _, residue := range residues {
				if amounts[residue] == nil {
					amounts[residue] = make([]float64, len(ds.Samples))
				}
				amounts[residue][col] += amount / float64(degree)
			}
		}
	}

	result := &Result{
		Samples: ds.Samples,
		Skipped: skipped,
	}

	ordered := make([]core.Residue, 0, len(amounts))
	for residue := range amounts {
		ordered = append(ordered, residue)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Less(ordered[j]) })

	for _, residue := range ordered {
		result.Residues = append(result.Residues, residue.String())
		result.Values = append(result.Values, amounts[residue])
	}

	return result, nil
}

func isUnwanted(label string, unwanted []string) bool {
	lowered := strings.ToLower(strings.TrimSpace(label))
	for _, u := range unwanted {
		if lowered == strings.ToLower(u) {
			return true
		}
	}
	return false
}

// WriteCSV writes the result as a tab-separated table with residues as the
// row index, matching the shape of the input abundance tables.
func (r *Result) WriteCSV(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "residue\t%s\n", strings.Join(r.Samples, "\t")); err != nil {
		return err
	}
	for i, residue := range r.Residues {
		cells := make([]string, len(r.Values[i]))
		for j, v := range r.Values[i] {
			cells[j] = fmt.Sprintf("%g", v)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", residue, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}
