package measure

import "testing"

func TestClassifyClosedTable(t *testing.T) {
	tests := []struct {
		word string
		kind Kind
	}{
		{"g", Dry},
		{"kg", Dry},
		{"pinch", Dry},
		{"pinches", Dry},
		{"cup", Dry},
		{"cups", Dry},
		{"ml", Liquid},
		{"l", Liquid},
		{"dash", Liquid},
		{"dashes", Liquid},
	}
	for _, tt := range tests {
		kind, ok := Classify(tt.word)
		if !ok {
			t.Errorf("Classify(%q): expected a match", tt.word)
			continue
		}
		if kind != tt.kind {
			t.Errorf("Classify(%q) = %v, want %v", tt.word, kind, tt.kind)
		}
	}
}

func TestIsMeasureType(t *testing.T) {
	if !IsMeasureType("heaped") || !IsMeasureType("level") {
		t.Errorf("expected heaped/level to be measure-type words")
	}
	if IsMeasureType("cup") {
		t.Errorf("cup is a measure, not a measure-type word")
	}
}

func TestClassifyUnknownWord(t *testing.T) {
	if _, ok := Classify("egg"); ok {
		t.Errorf("expected \"egg\" to not classify as a measure word")
	}
}
