// Package refmet provides streaming readers for RefMet-derived vocabulary tables
package refmet

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/smz-lab/lipres/pkg/core"
)

// Reader provides streaming access to the tab-separated compound tables
// exported from the RefMet database (name / exactmass / main_class
// columns, located by header name so extra columns are tolerated).
type Reader struct {
	scanner      *bufio.Scanner
	nameCol      int
	massCol      int
	classCol     int
	lineNum      int
	currentEntry *core.ReferenceEntry
	currentClass string
	skipped      int
	err          error
}

// NewReader creates a RefMet reader and consumes the header line.
func NewReader(r io.Reader) (*Reader, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("empty input, expected a header line")
	}

	rd := &Reader{
		scanner:  scanner,
		nameCol:  -1,
		massCol:  -1,
		classCol: -1,
		lineNum:  1,
	}

	for i, field := range strings.Split(scanner.Text(), "\t") {
		switch strings.ToLower(strings.TrimSpace(field)) {
		case "name":
			rd.nameCol = i
		case "exactmass", "exact_mass":
			rd.massCol = i
		case "main_class", "mainclass":
			rd.classCol = i
		}
	}
	if rd.nameCol < 0 {
		return nil, fmt.Errorf("header has no 'name' column")
	}

	return rd, nil
}

// Next advances to the next vocabulary entry. Rows whose names carry no
// residue tokens are counted and skipped, not surfaced as errors. Returns
// false when no more entries or error.
func (r *Reader) Next() bool {
	r.currentEntry = nil
	r.currentClass = ""

	for r.scanner.Scan() {
		r.lineNum++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if r.nameCol >= len(fields) {
			r.err = fmt.Errorf("line %d: missing name column", r.lineNum)
			return false
		}

		name := strings.TrimSpace(fields[r.nameCol])
		residues := core.ExtractResidues(name)
		if name == "" || len(residues) == 0 {
			r.skipped++
			continue
		}

		entry := &core.ReferenceEntry{
			Name:     name,
			Residues: residues,
		}

		if r.massCol >= 0 && r.massCol < len(fields) {
			if mass, err := strconv.ParseFloat(strings.TrimSpace(fields[r.massCol]), 64); err == nil {
				entry.ExactMass = &mass
			}
		}
		if r.classCol >= 0 && r.classCol < len(fields) {
			r.currentClass = strings.TrimSpace(fields[r.classCol])
		}

		r.currentEntry = entry
		return true
	}

	if err := r.scanner.Err(); err != nil {
		r.err = err
	}
	return false
}

// Entry returns the current vocabulary entry.
func (r *Reader) Entry() *core.ReferenceEntry {
	return r.currentEntry
}

// MainClass returns the main_class cell of the current row, when present.
func (r *Reader) MainClass() string {
	return r.currentClass
}

// Skipped returns how many rows were dropped for carrying no residue tokens.
func (r *Reader) Skipped() int {
	return r.skipped
}

// Err returns any error encountered during reading.
func (r *Reader) Err() error {
	return r.err
}

// LoadVocabulary reads a whole RefMet table into a Vocabulary.
func LoadVocabulary(r io.Reader) (*core.Vocabulary, error) {
	reader, err := NewReader(r)
	if err != nil {
		return nil, err
	}

	vocab := core.NewVocabulary()
	for reader.Next() {
		vocab.AddEntry(*reader.Entry())
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}

	return vocab, nil
}
