// Package core provides the lipid identifier models, residue grammar and
// mass calculations for lipres.
package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// residuePattern matches a single fatty-acid residue token ("carbons:doubleBonds").
var residuePattern = regexp.MustCompile(`(\d+):(\d+)`)

// Residue represents a single fatty-acid-like carbon chain.
type Residue struct {
	Carbons     uint
	DoubleBonds uint
}

// ParseResidue parses a canonical residue token like "18:1".
func ParseResidue(s string) (Residue, error) {
	s = strings.TrimSpace(s)
	m := residuePattern.FindStringSubmatch(s)
	if m == nil || m[0] != s {
		return Residue{}, fmt.Errorf("invalid residue token %q, expected 'carbons:doubleBonds'", s)
	}

	carbons, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return Residue{}, fmt.Errorf("invalid carbon count in %q: %w", s, err)
	}
	bonds, err := strconv.ParseUint(m[2], 10, 32)
	if err != nil {
		return Residue{}, fmt.Errorf("invalid double bond count in %q: %w", s, err)
	}

	return Residue{Carbons: uint(carbons), DoubleBonds: uint(bonds)}, nil
}

// String returns the canonical text form "carbons:doubleBonds".
func (r Residue) String() string {
	return fmt.Sprintf("%d:%d", r.Carbons, r.DoubleBonds)
}

// Saturated reports whether the residue has no double bonds.
func (r Residue) Saturated() bool {
	return r.DoubleBonds == 0
}

// MaxCarbon reports whether the residue chain is within the given carbon limit.
func (r Residue) MaxCarbon(limit uint) bool {
	return r.Carbons <= limit
}

// Less orders residues by carbon count, then by double bond count.
func (r Residue) Less(other Residue) bool {
	if r.Carbons != other.Carbons {
		return r.Carbons < other.Carbons
	}
	return r.DoubleBonds < other.DoubleBonds
}

// ExtractResidues scans free-form text for residue tokens in left-to-right order.
func ExtractResidues(s string) []Residue {
	var residues []Residue
	for _, m := range residuePattern.FindAllStringSubmatch(s, -1) {
		carbons, err := strconv.ParseUint(m[1], 10, 32)
		if err != nil {
			continue
		}
		bonds, err := strconv.ParseUint(m[2], 10, 32)
		if err != nil {
			continue
		}
		residues = append(residues, Residue{Carbons: uint(carbons), DoubleBonds: uint(bonds)})
	}
	return residues
}

// Saturated reports whether a residue token like "20:3" denotes a saturated chain.
func Saturated(token string) (bool, error) {
	r, err := ParseResidue(token)
	if err != nil {
		return false, err
	}
	return r.Saturated(), nil
}

// MaxCarbon reports whether a residue token is within the allowed carbon count.
func MaxCarbon(token string, limit uint) (bool, error) {
	r, err := ParseResidue(token)
	if err != nil {
		return false, err
	}
	return r.MaxCarbon(limit), nil
}
