package dto

import "testing"

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
		wantErr  bool
	}{
		{"json number", float64(5000), 5000, false},
		{"numeric string", "5000", 5000, false},
		{"decimal string", "1234.56", 1234.56, false},
		{"nil", nil, 0, false},
		{"int", 42, 42, false},
		{"garbage string", "a lot", 0, true},
		{"bool", true, 0, true},
		{"object", map[string]any{}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceFloat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("CoerceFloat(%v) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("CoerceFloat(%v) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("CoerceFloat(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
