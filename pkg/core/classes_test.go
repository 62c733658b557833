package core

import (
	"testing"
)

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		class string
		want  string
	}{
		{"TG", "Triradylglycerols"},
		{"TAG", "Triradylglycerols"},
		{"PC", "Glycerophosphocholines"},
		{"Cer", "Ceramides"},
		{"CE", "Sterol esters"},
		{"XYZ", UnknownLipidType},
		{"", UnknownLipidType},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			if got := FamilyOf(tt.class); got != tt.want {
				t.Errorf("FamilyOf(%q) = %q, want %q", tt.class, got, tt.want)
			}
		})
	}
}

func TestIdentifierFamily(t *testing.T) {
	id, err := Parse("PG 18:1/20:1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := id.Family(); got != "Glycerophosphoglycerols" {
		t.Errorf("got %q", got)
	}

	globoside, err := Parse("Gb3(d18:1/16:0)", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := globoside.Family(); got != "Glycosphingolipids" {
		t.Errorf("got %q", got)
	}

	freeText, err := Parse("Linolenic acid", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := freeText.Family(); got != UnknownLipidType {
		t.Errorf("free-text identifiers carry no class, got %q", got)
	}
}
