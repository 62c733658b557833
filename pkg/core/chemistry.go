// Package core provides mass and molecule-count calculations for lipids
package core

import (
	"fmt"
	"strings"
)

const (
	// Avogadro constant (2019 SI exact value)
	Avogadro = 6.02214076e23

	// Backbone building blocks (Sigma-Aldrich average masses)
	MassH2O         = 18.02
	MassGlycerol    = 92.09
	MassCholesterol = 386.3549
)

// DefaultResidueMasses maps canonical residue tokens to average fatty-acid
// masses. Values are Sigma-Aldrich catalogue masses where available;
// "predicted" entries are derived from the nearest saturated homolog
// (-2.0155 per double bond, +14.0156 per carbon).
var DefaultResidueMasses = map[string]float64{
	"12:0": 200.32,   // dodecanoic acid
	"13:0": 214.34,   // tridecanoic acid
	"14:0": 231.39,   // myristic acid
	"14:1": 229.3745, // predicted
	"15:0": 242.40,   // pentadecanoic acid
	"16:0": 256.42,   // palmitic acid
	"16:1": 254.41,   // palmitoleic acid
	"17:0": 270.45,   // margaric acid
	"18:0": 284.48,   // stearic acid
	"18:1": 282.46,   // vaccenic acid
	"18:2": 280.45,   // linoleic acid
	"18:3": 278.4345, // predicted
	"18:4": 276.419,  // predicted
	"19:0": 298.50,   // nonadecanoic acid
	"20:0": 312.53,   // arachidic acid
	"20:1": 310.51,   // gondoic acid
	"20:2": 308.4945, // predicted
	"20:3": 306.479,  // predicted
	"20:4": 304.4635, // predicted
	"20:5": 302.448,  // predicted
	"21:0": 326.56,   // heneicosanoic acid
	"22:0": 340.58,   // behenic acid
	"22:1": 338.5645, // predicted
	"22:2": 336.549,  // predicted
	"22:4": 332.518,  // predicted
	"22:5": 330.5024, // predicted
	"22:6": 328.4869, // predicted
	"23:0": 354.5956, // predicted
	"24:0": 368.6112, // predicted
	"24:1": 366.5957, // predicted
	"26:0": 396.6423, // predicted
	"26:1": 394.6268, // predicted
	"27:0": 410.6579, // predicted
	"28:0": 424.6735, // predicted
	"28:1": 422.658,  // predicted
	"30:0": 452.7047, // predicted
}

// DefaultClassMasses maps lipid class tags to backbone mass contributions:
// what remains of the molecule once its fatty-acid residues are accounted for.
var DefaultClassMasses = map[string]float64{
	"TAG":    MassGlycerol - 3*MassH2O,
	"TG":     MassGlycerol - 3*MassH2O,
	"DAG":    MassGlycerol - 2*MassH2O,
	"DG":     MassGlycerol - 2*MassH2O,
	"MG":     MassGlycerol - MassH2O,
	"CE":     MassCholesterol - MassH2O,
	"FC":     MassCholesterol,
	"PE P":   162.5847, // predicted
	"Gb3":    484.7905, // predicted
	"GlcCer": 160.6848, // predicted
	"GalCer": 160.6848, // predicted
	"HexCer": 160.6848, // predicted
}

// UnknownResidueError reports a parsed residue absent from the residue-mass
// table; it indicates a grammar/table inconsistency, not a bad input string.
type UnknownResidueError struct {
	Residue Residue
}

func (e *UnknownResidueError) Error() string {
	return fmt.Sprintf("residue %s not present in the residue-mass table", e.Residue)
}

// UnknownClassError reports a lipid class absent from the class-mass table.
type UnknownClassError struct {
	Class string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("lipid class %q not present in the class-mass table", e.Class)
}

// MassCalculator computes total molecular masses from a class backbone
// table and a residue-mass table. Both tables are treated as read-only.
type MassCalculator struct {
	ClassMasses   map[string]float64
	ResidueMasses map[string]float64

	// RequireKnownClass makes Mass fail with UnknownClassError instead of
	// treating a missing class contribution as zero.
	RequireKnownClass bool
}

// NewMassCalculator returns a calculator backed by the default tables, with
// the lenient unknown-class policy.
func NewMassCalculator() *MassCalculator {
	return &MassCalculator{
		ClassMasses:   DefaultClassMasses,
		ResidueMasses: DefaultResidueMasses,
	}
}

// Mass computes the molecular mass of one representative structure: the
// class backbone contribution plus the residues of the first isomer group
// only. Mass is never summed across ambiguity variants.
func (c *MassCalculator) Mass(id *LipidIdentifier) (float64, error) {
	mass := 0.0

	if id.Class != "" {
		contribution, ok := c.ClassMasses[id.Class]
		if !ok && c.RequireKnownClass {
			return 0, &UnknownClassError{Class: id.Class}
		}
		mass += contribution
	}

	if len(id.Groups) == 0 {
		return 0, &MalformedIdentifierError{Input: id.RawText, Reason: "identifier has no isomer groups"}
	}

	for _, residue := range id.Groups[0] {
		residueMass, ok := c.ResidueMasses[residue.String()]
		if !ok {
			return 0, &UnknownResidueError{Residue: residue}
		}
		mass += residueMass
	}

	return mass, nil
}

// Unit is an amount-of-substance unit for molecule-count conversions.
type Unit string

const (
	Zeptomole Unit = "zeptomole"
	Attomole  Unit = "attomole"
	Femtomole Unit = "femtomole"
	Picomole  Unit = "picomole"
	Nanomole  Unit = "nanomole"
	Micromole Unit = "micromole"
	Millimole Unit = "millimole"
	Mole      Unit = "mole"
)

// unitScales maps each unit to its power-of-ten fraction of a mole.
var unitScales = map[Unit]float64{
	Zeptomole: 1e-21,
	Attomole:  1e-18,
	Femtomole: 1e-15,
	Picomole:  1e-12,
	Nanomole:  1e-9,
	Micromole: 1e-6,
	Millimole: 1e-3,
	Mole:      1,
}

// InvalidUnitError reports a unit token outside the supported enumeration.
type InvalidUnitError struct {
	Unit string
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("invalid unit %q", e.Unit)
}

// ParseUnit parses a unit token, case-insensitively and accepting plural
// forms. An empty token defaults to picomole.
func ParseUnit(s string) (Unit, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	if token == "" {
		return Picomole, nil
	}
	token = strings.TrimSuffix(token, "s")

	unit := Unit(token)
	if _, ok := unitScales[unit]; !ok {
		return "", &InvalidUnitError{Unit: s}
	}
	return unit, nil
}

// Molecules converts an amount in the given unit to an absolute molecule
// count: amount x scale(unit) x Avogadro. This is a pure unit conversion
// and does not consult any identifier.
func Molecules(amount float64, unit Unit) (float64, error) {
	scale, ok := unitScales[unit]
	if !ok {
		return 0, &InvalidUnitError{Unit: string(unit)}
	}
	return amount * scale * Avogadro, nil
}
