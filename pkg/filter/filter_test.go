package filter

import (
	"testing"

	"github.com/smz-lab/lipres/pkg/core"
)

func TestKeep(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		residue core.Residue
		want    bool
	}{
		{
			name:    "no filters keeps everything",
			config:  Config{},
			residue: core.Residue{Carbons: 18, DoubleBonds: 2},
			want:    true,
		},
		{
			name:    "saturated only keeps saturated",
			config:  Config{SaturatedOnly: true},
			residue: core.Residue{Carbons: 16, DoubleBonds: 0},
			want:    true,
		},
		{
			name:    "saturated only rejects unsaturated",
			config:  Config{SaturatedOnly: true},
			residue: core.Residue{Carbons: 18, DoubleBonds: 1},
			want:    false,
		},
		{
			name:    "unsaturated only rejects saturated",
			config:  Config{UnsaturatedOnly: true},
			residue: core.Residue{Carbons: 16, DoubleBonds: 0},
			want:    false,
		},
		{
			name:    "max carbons",
			config:  Config{MaxCarbons: 16},
			residue: core.Residue{Carbons: 21, DoubleBonds: 3},
			want:    false,
		},
		{
			name:    "max carbons boundary",
			config:  Config{MaxCarbons: 16},
			residue: core.Residue{Carbons: 16, DoubleBonds: 1},
			want:    true,
		},
		{
			name:    "min carbons",
			config:  Config{MinCarbons: 16},
			residue: core.Residue{Carbons: 14, DoubleBonds: 0},
			want:    false,
		},
		{
			name:    "combined",
			config:  Config{SaturatedOnly: true, MaxCarbons: 20},
			residue: core.Residue{Carbons: 22, DoubleBonds: 0},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.Keep(tt.residue); got != tt.want {
				t.Errorf("Keep(%v) = %v, want %v", tt.residue, got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	residues := []core.Residue{
		{Carbons: 14, DoubleBonds: 0},
		{Carbons: 18, DoubleBonds: 1},
		{Carbons: 22, DoubleBonds: 0},
	}

	config := Config{SaturatedOnly: true}
	filtered := config.Apply(residues)

	if len(filtered) != 2 {
		t.Fatalf("got %d residues, want 2", len(filtered))
	}
	if filtered[0].Carbons != 14 || filtered[1].Carbons != 22 {
		t.Errorf("order not preserved: %v", filtered)
	}
}

func TestApplyIdentifier(t *testing.T) {
	ambiguous, err := core.Parse("TAG 48:2 total (14:0/16:0/18:2)(14:0/16:1/18:1)(16:0/16:1/16:1)", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	config := Config{}

	t.Run("flattens all groups", func(t *testing.T) {
		residues, degree := config.ApplyIdentifier(ambiguous, false)
		if degree != 3 {
			t.Errorf("degree = %d, want 3", degree)
		}
		if len(residues) != 9 {
			t.Errorf("got %d residues, want 9", len(residues))
		}
	})

	t.Run("drop ambiguous", func(t *testing.T) {
		residues, degree := config.ApplyIdentifier(ambiguous, true)
		if residues != nil || degree != 0 {
			t.Errorf("got (%v, %d), want (nil, 0)", residues, degree)
		}
	})

	t.Run("filter applies after flattening", func(t *testing.T) {
		saturated := Config{SaturatedOnly: true}
		residues, degree := saturated.ApplyIdentifier(ambiguous, false)
		if degree != 3 {
			t.Errorf("degree = %d, want 3", degree)
		}
		for _, r := range residues {
			if !r.Saturated() {
				t.Errorf("unsaturated residue %s passed the filter", r)
			}
		}
		if len(residues) != 4 {
			t.Errorf("got %d saturated residues, want 4", len(residues))
		}
	})
}
