package core

import (
	"errors"
	"math"
	"testing"
)

func TestMass(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantMass  float64
		tolerance float64
	}{
		{
			name:      "tripalmitin",
			input:     "TAG 16:0/16:0/16:0",
			wantMass:  807.29,
			tolerance: 0.01,
		},
		{
			name:      "cholesteryl ester",
			input:     "CE 18:1",
			wantMass:  MassCholesterol - MassH2O + 282.46,
			tolerance: 0.001,
		},
		{
			name:      "diacylglycerol",
			input:     "DAG 16:0/18:1",
			wantMass:  MassGlycerol - 2*MassH2O + 256.42 + 282.46,
			tolerance: 0.001,
		},
		{
			name:      "free fatty acid no class contribution",
			input:     "FA(18:3)",
			wantMass:  278.4345,
			tolerance: 0.001,
		},
		{
			name:      "globotriaosylceramide",
			input:     "Gb3(d18:1/16:0)",
			wantMass:  484.7905 + 282.46 + 256.42,
			tolerance: 0.001,
		},
	}

	calc := NewMassCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input, nil)
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			got, err := calc.Mass(id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.wantMass) > tt.tolerance {
				t.Errorf("mass = %.4f, want %.4f (tolerance %.4f)", got, tt.wantMass, tt.tolerance)
			}
		})
	}
}

func TestMassFirstIsomerGroupOnly(t *testing.T) {
	id, err := Parse("TAG 48:2 total (14:0/16:0/18:2)(14:0/16:1/18:1)(16:0/16:1/16:1)", nil)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	calc := NewMassCalculator()
	got, err := calc.Mass(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := MassGlycerol - 3*MassH2O + 231.39 + 256.42 + 280.45
	if math.Abs(got-want) > 0.001 {
		t.Errorf("mass = %.4f, want %.4f (first arrangement only)", got, want)
	}
}

func TestMassUnknownClass(t *testing.T) {
	id, err := Parse("XYZ 18:1/20:1", nil)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	t.Run("lenient default", func(t *testing.T) {
		calc := NewMassCalculator()
		got, err := calc.Mass(id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := 282.46 + 310.51
		if math.Abs(got-want) > 0.001 {
			t.Errorf("mass = %.4f, want %.4f (unknown class contributes zero)", got, want)
		}
	})

	t.Run("strict", func(t *testing.T) {
		calc := NewMassCalculator()
		calc.RequireKnownClass = true
		_, err := calc.Mass(id)
		var unknown *UnknownClassError
		if !errors.As(err, &unknown) {
			t.Fatalf("expected UnknownClassError, got %v", err)
		}
		if unknown.Class != "XYZ" {
			t.Errorf("error carries class %q", unknown.Class)
		}
	})
}

func TestMassUnknownResidue(t *testing.T) {
	id, err := Parse("TAG 16:0/16:0/31:7", nil)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	calc := NewMassCalculator()
	_, err = calc.Mass(id)
	var unknown *UnknownResidueError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownResidueError, got %v", err)
	}
	if unknown.Residue.String() != "31:7" {
		t.Errorf("error carries residue %s", unknown.Residue)
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    Unit
		wantErr bool
	}{
		{"picomole", Picomole, false},
		{"Picomoles", Picomole, false},
		{"FEMTOMOLE", Femtomole, false},
		{"nanomole", Nanomole, false},
		{"zeptomole", Zeptomole, false},
		{"attomole", Attomole, false},
		{"mole", Mole, false},
		{"", Picomole, false},
		{"furlong", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if tt.wantErr {
				var invalid *InvalidUnitError
				if !errors.As(err, &invalid) {
					t.Errorf("expected InvalidUnitError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMolecules(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		unit   Unit
		want   float64
	}{
		{"one picomole", 1, Picomole, 6.02214076e11},
		{"one mole", 1, Mole, Avogadro},
		{"half femtomole", 0.5, Femtomole, 3.01107038e8},
		{"zero", 0, Picomole, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Molecules(tt.amount, tt.unit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > tt.want*1e-9 {
				t.Errorf("got %e, want %e", got, tt.want)
			}
		})
	}

	t.Run("linear in amount", func(t *testing.T) {
		one, _ := Molecules(1, Picomole)
		three, _ := Molecules(3, Picomole)
		if math.Abs(three-3*one) > one*1e-9 {
			t.Errorf("Molecules(3) = %e, want 3 x Molecules(1) = %e", three, 3*one)
		}
	})

	t.Run("invalid unit", func(t *testing.T) {
		_, err := Molecules(1, Unit("bucket"))
		var invalid *InvalidUnitError
		if !errors.As(err, &invalid) {
			t.Errorf("expected InvalidUnitError, got %v", err)
		}
	})
}
