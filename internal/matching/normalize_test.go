package matching

import (
	"sort"
	"testing"
)

func tokens(set TokenSet) []string {
	out := make([]string, 0, len(set))
	for tok := range set {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"brief with punctuation", "Best coffee and pastries in Austin!", []string{"and", "austin", "best", "coffee", "in", "pastries"}},
		{"mixed case", "COFFEE Coffee coffee", []string{"coffee"}},
		{"surrounding whitespace", "  tacos   bbq  ", []string{"bbq", "tacos"}},
		{"punctuation stripped mid-word", "co-op, well-known.", []string{"coop", "wellknown"}},
		{"empty", "", nil},
		{"only punctuation", "!!! ... ???", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokens(Tokenize(tt.input))
			if !equal(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTokenizeCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"trims and lowercases", "Food, Coffee , RESTAURANTS", []string{"coffee", "food", "restaurants"}},
		{"keeps embedded punctuation", "tex-mex, brunch", []string{"brunch", "tex-mex"}},
		{"skips empty entries", "food,,coffee,", []string{"coffee", "food"}},
		{"empty", "", nil},
		{"only commas", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokens(TokenizeCSV(tt.input))
			if !equal(got, tt.expected) {
				t.Errorf("TokenizeCSV(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		brief    string
		keywords string
		expected int
	}{
		{"single overlap", "Best coffee and pastries in Austin!", "food, coffee, restaurants", 1},
		{"multiple overlaps", "Showcase local food and coffee spots", "food, coffee, restaurants", 2},
		{"no overlap", "Fitness challenge for the new year", "food, coffee, restaurants", 0},
		{"case insensitive", "COFFEE tour", "Coffee", 1},
		{"duplicate brief words count once", "coffee coffee coffee", "coffee", 1},
		{"empty brief", "", "food, coffee", 0},
		{"empty keywords", "coffee and food", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.brief, tt.keywords)
			if got != tt.expected {
				t.Errorf("Score(%q, %q) = %d, want %d", tt.brief, tt.keywords, got, tt.expected)
			}
		})
	}
}

func TestOverlapCommutative(t *testing.T) {
	a := Tokenize("best coffee and pastries in austin")
	b := TokenizeCSV("food, coffee, pastries, austin")

	if Overlap(a, b) != Overlap(b, a) {
		t.Errorf("Overlap is not commutative: %d vs %d", Overlap(a, b), Overlap(b, a))
	}
	if Overlap(a, b) != 3 {
		t.Errorf("Overlap = %d, want 3", Overlap(a, b))
	}
}
