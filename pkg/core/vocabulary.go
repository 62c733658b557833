// Package core provides the reference vocabulary for free-text compound names
package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReferenceEntry is one authored vocabulary record: a compound name, its
// residues in authored order (more than one for composite compounds such as
// esters), and an optional exact mass.
type ReferenceEntry struct {
	Name      string
	Residues  []Residue
	ExactMass *float64
}

// UnknownCompoundError reports a free-text name absent from the vocabulary.
type UnknownCompoundError struct {
	Name string
}

func (e *UnknownCompoundError) Error() string {
	return fmt.Sprintf("unknown compound %q", e.Name)
}

// Vocabulary is an immutable-once-loaded lookup table from normalized
// compound names to reference entries. It is injected into the parser and
// resolver rather than held as process-wide state.
type Vocabulary struct {
	entries map[string]ReferenceEntry
}

// NewVocabulary creates an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		entries: make(map[string]ReferenceEntry),
	}
}

// NormalizeName case-folds a compound name and collapses internal
// whitespace. Vocabulary keys are stored pre-normalized identically.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Add records a compound name resolving to the given residues.
func (v *Vocabulary) Add(name string, residues ...Residue) {
	v.AddEntry(ReferenceEntry{Name: name, Residues: residues})
}

// AddEntry records a full reference entry, keyed by its normalized name.
func (v *Vocabulary) AddEntry(e ReferenceEntry) {
	v.entries[NormalizeName(e.Name)] = e
}

// Lookup returns the entry for a name, if present.
func (v *Vocabulary) Lookup(name string) (ReferenceEntry, bool) {
	e, ok := v.entries[NormalizeName(name)]
	return e, ok
}

// Resolve returns the residues of a free-text compound name in authored
// order. Composite names resolve to their multi-residue entry as-is; the
// resolver performs no re-ordering or chemical inference.
func (v *Vocabulary) Resolve(name string) ([]Residue, error) {
	e, ok := v.Lookup(name)
	if !ok {
		return nil, &UnknownCompoundError{Name: name}
	}
	return e.Residues, nil
}

// Len returns the number of entries.
func (v *Vocabulary) Len() int {
	return len(v.entries)
}

// Each calls fn for every entry, in no particular order.
func (v *Vocabulary) Each(fn func(ReferenceEntry)) {
	for _, e := range v.entries {
		fn(e)
	}
}

// LoadFromCSV loads custom vocabulary entries from a CSV file
// (format: name,residues with residues slash-delimited, e.g.
// "oleyl arachidonate,18:1/20:4"). Later entries override earlier ones.
func (v *Vocabulary) LoadFromCSV(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	// Skip header line
	scanner.Scan()

	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, ",", 2)
		if len(parts) < 2 {
			return fmt.Errorf("line %d: invalid format, expected 'name,residues'", lineNum)
		}

		name := strings.TrimSpace(parts[0])
		var residues []Residue
		for _, token := range strings.Split(parts[1], "/") {
			residue, err := ParseResidue(token)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNum, err)
			}
			residues = append(residues, residue)
		}
		if name == "" || len(residues) == 0 {
			return fmt.Errorf("line %d: entry needs a name and at least one residue", lineNum)
		}

		v.Add(name, residues...)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading CSV: %w", err)
	}

	return nil
}

func res(carbons, bonds uint) Residue {
	return Residue{Carbons: carbons, DoubleBonds: bonds}
}

// DefaultVocabulary returns a Vocabulary pre-loaded with common fatty
// acids, their trivial-name synonyms, and a set of authored composite
// (ester/amide) entries. Composite entries list the alcohol-derived residue
// first and the acid-derived residue second.
func DefaultVocabulary() *Vocabulary {
	v := NewVocabulary()

	// Saturated series with trivial names
	v.Add("Acetic acid", res(2, 0))
	v.Add("Propionic acid", res(3, 0))
	v.Add("Butyric acid", res(4, 0))
	v.Add("Valeric acid", res(5, 0))
	v.Add("Caproic acid", res(6, 0))
	v.Add("Enanthic acid", res(7, 0))
	v.Add("Caprylic acid", res(8, 0))
	v.Add("Pelargonic acid", res(9, 0))
	v.Add("Capric acid", res(10, 0))
	v.Add("Undecylic acid", res(11, 0))
	v.Add("Lauric acid", res(12, 0))
	v.Add("Dodecanoic acid", res(12, 0))
	v.Add("Tridecylic acid", res(13, 0))
	v.Add("Myristic acid", res(14, 0))
	v.Add("Tetradecanoic acid", res(14, 0))
	v.Add("Pentadecanoic acid", res(15, 0))
	v.Add("Palmitic acid", res(16, 0))
	v.Add("Hexadecanoic acid", res(16, 0))
	v.Add("Margaric acid", res(17, 0))
	v.Add("Heptadecanoic acid", res(17, 0))
	v.Add("Stearic acid", res(18, 0))
	v.Add("Octadecanoic acid", res(18, 0))
	v.Add("Nonadecylic acid", res(19, 0))
	v.Add("Arachidic acid", res(20, 0))
	v.Add("Eicosanoic acid", res(20, 0))
	v.Add("Heneicosylic acid", res(21, 0))
	v.Add("Behenic acid", res(22, 0))
	v.Add("Docosanoic acid", res(22, 0))
	v.Add("Tricosylic acid", res(23, 0))
	v.Add("Lignoceric acid", res(24, 0))
	v.Add("Tetracosanoic acid", res(24, 0))
	v.Add("Pentacosylic acid", res(25, 0))
	v.Add("Cerotic acid", res(26, 0))
	v.Add("Hexacosanoic acid", res(26, 0))
	v.Add("Carboceric acid", res(27, 0))
	v.Add("Montanic acid", res(28, 0))
	v.Add("Melissic acid", res(30, 0))
	v.Add("Lacceroic acid", res(32, 0))
	v.Add("Psyllic acid", res(33, 0))
	v.Add("Gheddic acid", res(34, 0))
	v.Add("Ceroplastic acid", res(35, 0))

	// Unsaturated series
	v.Add("Acrylic acid", res(3, 1))
	v.Add("Caproleic acid", res(10, 1))
	v.Add("Lauroleic acid", res(12, 1))
	v.Add("Myristoleic acid", res(14, 1))
	v.Add("Tetradecenoic acid", res(14, 1))
	v.Add("Palmitoleic acid", res(16, 1))
	v.Add("Hexadecenoic acid", res(16, 1))
	v.Add("Sapienic acid", res(16, 1))
	v.Add("Oleic acid", res(18, 1))
	v.Add("Octadecenoic acid", res(18, 1))
	v.Add("Vaccenic acid", res(18, 1))
	v.Add("Elaidic acid", res(18, 1))
	v.Add("Linoleic acid", res(18, 2))
	v.Add("Octadecadienoic acid", res(18, 2))
	v.Add("Linolelaidic acid", res(18, 2))
	v.Add("Linolenic acid", res(18, 3))
	v.Add("Octadecatrienoic acid", res(18, 3))
	v.Add("Columbinic acid", res(18, 3))
	v.Add("Stearidonic acid", res(18, 4))
	v.Add("Parinaric acid", res(18, 4))
	v.Add("Octadecatetraenoic acid", res(18, 4))
	v.Add("Gadoleic acid", res(20, 1))
	v.Add("Gondoic acid", res(20, 1))
	v.Add("Eicosenoic acid", res(20, 1))
	v.Add("Eicosadienoic acid", res(20, 2))
	v.Add("Mead acid", res(20, 3))
	v.Add("Eicosatrienoic acid", res(20, 3))
	v.Add("Arachidonic acid", res(20, 4))
	v.Add("Eicosatetraenoic acid", res(20, 4))
	v.Add("Eicosapentaenoic acid", res(20, 5))
	v.Add("Timnodonic acid", res(20, 5))
	v.Add("EPA", res(20, 5))
	v.Add("Erucic acid", res(22, 1))
	v.Add("Brassidic acid", res(22, 1))
	v.Add("Docosenoic acid", res(22, 1))
	v.Add("Brassic acid", res(22, 2))
	v.Add("Docosadienoic acid", res(22, 2))
	v.Add("Docosatetraenoic acid", res(22, 4))
	v.Add("Docosapentaenoic acid", res(22, 5))
	v.Add("Clupanodonic acid", res(22, 5))
	v.Add("DPA", res(22, 5))
	v.Add("Docosahexaenoic acid", res(22, 6))
	v.Add("DHA", res(22, 6))
	v.Add("Nervonic acid", res(24, 1))
	v.Add("Tetracosenoic acid", res(24, 1))
	v.Add("THA", res(24, 6))

	// Composite compounds: alcohol residue first, acid residue second.
	v.Add("Oleyl arachidonate", res(18, 1), res(20, 4))
	v.Add("Linoleyl palmitate", res(18, 1), res(16, 0))
	v.Add("Cetyl palmitate", res(16, 0), res(16, 0))
	v.Add("Stearyl stearate", res(18, 0), res(18, 0))
	v.Add("Oleyl oleate", res(18, 1), res(18, 1))
	v.Add("Myristyl myristate", res(14, 0), res(14, 0))
	v.Add("Behenyl behenate", res(22, 0), res(22, 0))

	// Fatty amides
	v.Add("Oleamide", res(18, 1))
	v.Add("Palmitoleamide", res(16, 1))
	v.Add("Linoleamide", res(18, 2))
	v.Add("Anandamide", res(20, 4))
	v.Add("Palmitoylethanolamide", res(16, 0))

	return v
}
