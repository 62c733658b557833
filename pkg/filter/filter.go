// Package filter provides residue filtering predicates and batch filters
package filter

import (
	"github.com/smz-lab/lipres/pkg/core"
)

// Config holds residue filtering configuration
type Config struct {
	SaturatedOnly   bool // Keep only residues without double bonds
	UnsaturatedOnly bool // Keep only residues with at least one double bond
	MaxCarbons      uint // Keep only residues with at most this many carbons (0 = no limit)
	MinCarbons      uint // Keep only residues with at least this many carbons
}

// Keep reports whether a single residue passes all configured predicates.
func (c *Config) Keep(r core.Residue) bool {
	if c.SaturatedOnly && !r.Saturated() {
		return false
	}
	if c.UnsaturatedOnly && r.Saturated() {
		return false
	}
	if c.MaxCarbons > 0 && !r.MaxCarbon(c.MaxCarbons) {
		return false
	}
	if r.Carbons < c.MinCarbons {
		return false
	}
	return true
}

// Apply filters a residue list, preserving order.
func (c *Config) Apply(residues []core.Residue) []core.Residue {
	var filtered []core.Residue
	for _, r := range residues {
		if c.Keep(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ApplyIdentifier filters the flattened residues of a parsed identifier.
// With dropAmbiguous set, multi-isomer identifiers yield no residues at all.
func (c *Config) ApplyIdentifier(id *core.LipidIdentifier, dropAmbiguous bool) ([]core.Residue, int) {
	residues, degree := id.Residues(dropAmbiguous)
	if degree == 0 {
		return nil, 0
	}
	return c.Apply(residues), degree
}
