package core

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Linolenic acid", "linolenic acid"},
		{"  OLEYL   ARACHIDONATE ", "oleyl arachidonate"},
		{"palmitic\tacid", "palmitic acid"},
		{"already normal", "already normal"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVocabularyResolve(t *testing.T) {
	vocab := DefaultVocabulary()

	tests := []struct {
		name       string
		query      string
		wantTokens []string
	}{
		{"trivial name", "Palmitic acid", []string{"16:0"}},
		{"synonym", "Octadecatrienoic acid", []string{"18:3"}},
		{"case insensitive", "pALMITIC aCID", []string{"16:0"}},
		{"composite ester", "Oleyl arachidonate", []string{"18:1", "20:4"}},
		{"wax ester", "Cetyl palmitate", []string{"16:0", "16:0"}},
		{"polyunsaturated", "Docosahexaenoic acid", []string{"22:6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			residues, err := vocab.Resolve(tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(residues) != len(tt.wantTokens) {
				t.Fatalf("got %d residues, want %d", len(residues), len(tt.wantTokens))
			}
			for i, r := range residues {
				if r.String() != tt.wantTokens[i] {
					t.Errorf("residue %d: got %s, want %s", i, r, tt.wantTokens[i])
				}
			}
		})
	}

	t.Run("unknown compound", func(t *testing.T) {
		_, err := vocab.Resolve("Uranium phosphate")
		var unknown *UnknownCompoundError
		if !errors.As(err, &unknown) {
			t.Fatalf("expected UnknownCompoundError, got %v", err)
		}
	})
}

func TestVocabularyAddOverrides(t *testing.T) {
	vocab := NewVocabulary()
	vocab.Add("test compound", Residue{16, 0})
	vocab.Add("Test Compound", Residue{18, 1})

	residues, err := vocab.Resolve("test compound")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(residues) != 1 || residues[0].String() != "18:1" {
		t.Errorf("later entry should override, got %v", residues)
	}
	if vocab.Len() != 1 {
		t.Errorf("expected a single entry, got %d", vocab.Len())
	}
}

func TestVocabularyLoadFromCSV(t *testing.T) {
	input := `name,residues
oleyl arachidonate,18:1/20:4
custom acid,17:1
`

	vocab := NewVocabulary()
	if err := vocab.LoadFromCSV(strings.NewReader(input)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vocab.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", vocab.Len())
	}

	residues, err := vocab.Resolve("Oleyl Arachidonate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(residues) != 2 || residues[0].String() != "18:1" || residues[1].String() != "20:4" {
		t.Errorf("got %v", residues)
	}
}

func TestVocabularyLoadFromCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "missing residues column",
			input: "name,residues\njust a name\n",
		},
		{
			name:  "bad residue token",
			input: "name,residues\nbroken,18:x\n",
		},
		{
			name:  "empty name",
			input: "name,residues\n,18:1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vocab := NewVocabulary()
			if err := vocab.LoadFromCSV(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDefaultVocabularyEach(t *testing.T) {
	vocab := DefaultVocabulary()
	count := 0
	vocab.Each(func(e ReferenceEntry) {
		if e.Name == "" || len(e.Residues) == 0 {
			t.Errorf("entry %+v lacks a name or residues", e)
		}
		count++
	})
	if count != vocab.Len() {
		t.Errorf("Each visited %d entries, Len reports %d", count, vocab.Len())
	}
}
