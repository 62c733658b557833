package refmet

import (
	"math"
	"strings"
	"testing"
)

const sampleTable = "name\texactmass\tformula\tmain_class\n" +
	"TG(18:4_20:4_27:0)\t1036.876543\tC68H116O6\tTriradylglycerols\n" +
	"Cholesterol\t386.354866\tC27H46O\tSterols\n" +
	"PC(16:0/18:1)\t759.577968\tC42H82NO8P\tGlycerophosphocholines\n" +
	"FA(18:3)\t\tC18H30O2\tFatty acids\n"

func TestReader(t *testing.T) {
	r, err := NewReader(strings.NewReader(sampleTable))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	type want struct {
		name    string
		tokens  []string
		mass    float64
		hasMass bool
		class   string
	}
	wants := []want{
		{"TG(18:4_20:4_27:0)", []string{"18:4", "20:4", "27:0"}, 1036.876543, true, "Triradylglycerols"},
		{"PC(16:0/18:1)", []string{"16:0", "18:1"}, 759.577968, true, "Glycerophosphocholines"},
		{"FA(18:3)", []string{"18:3"}, 0, false, "Fatty acids"},
	}

	for _, w := range wants {
		if !r.Next() {
			t.Fatalf("expected entry %q, err: %v", w.name, r.Err())
		}
		e := r.Entry()
		if e.Name != w.name {
			t.Errorf("name: got %q, want %q", e.Name, w.name)
		}
		if len(e.Residues) != len(w.tokens) {
			t.Fatalf("%s: got %d residues, want %d", w.name, len(e.Residues), len(w.tokens))
		}
		for i, res := range e.Residues {
			if res.String() != w.tokens[i] {
				t.Errorf("%s residue %d: got %s, want %s", w.name, i, res, w.tokens[i])
			}
		}
		if w.hasMass {
			if e.ExactMass == nil || math.Abs(*e.ExactMass-w.mass) > 1e-6 {
				t.Errorf("%s: mass = %v, want %g", w.name, e.ExactMass, w.mass)
			}
		} else if e.ExactMass != nil {
			t.Errorf("%s: unexpected mass %g", w.name, *e.ExactMass)
		}
		if r.MainClass() != w.class {
			t.Errorf("%s: class = %q, want %q", w.name, r.MainClass(), w.class)
		}
	}

	if r.Next() {
		t.Errorf("unexpected extra entry %+v", r.Entry())
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Cholesterol carries no residue tokens.
	if r.Skipped() != 1 {
		t.Errorf("skipped = %d, want 1", r.Skipped())
	}
}

func TestReaderHeaderErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		if _, err := NewReader(strings.NewReader("")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("missing name column", func(t *testing.T) {
		if _, err := NewReader(strings.NewReader("id\tmass\n")); err == nil {
			t.Error("expected error")
		}
	})
}

func TestLoadVocabulary(t *testing.T) {
	vocab, err := LoadVocabulary(strings.NewReader(sampleTable))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vocab.Len() != 3 {
		t.Errorf("got %d entries, want 3", vocab.Len())
	}

	residues, err := vocab.Resolve("tg(18:4_20:4_27:0)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(residues) != 3 {
		t.Errorf("got %v", residues)
	}
}
