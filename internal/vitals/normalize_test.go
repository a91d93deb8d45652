package vitals

import (
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		expected float64
		valid    bool
	}{
		{
			name:     "Native float",
			raw:      98.6,
			expected: 98.6,
			valid:    true,
		},
		{
			name:     "Integer string",
			raw:      "70",
			expected: 70,
			valid:    true,
		},
		{
			name:     "Decimal string",
			raw:      "101.5",
			expected: 101.5,
			valid:    true,
		},
		{
			name:     "String with surrounding whitespace",
			raw:      " 99.6 ",
			expected: 99.6,
			valid:    true,
		},
		{
			name:     "Fraction-only string",
			raw:      ".5",
			expected: 0.5,
			valid:    true,
		},
		{
			name:  "Empty string",
			raw:   "",
			valid: false,
		},
		{
			name:  "Whitespace-only string",
			raw:   "   ",
			valid: false,
		},
		{
			name:  "Trailing dot",
			raw:   "120.",
			valid: false,
		},
		{
			name:  "Bare dot",
			raw:   ".",
			valid: false,
		},
		{
			name:  "Signed number",
			raw:   "-5",
			valid: false,
		},
		{
			name:  "Scientific notation",
			raw:   "1e2",
			valid: false,
		},
		{
			name:  "Non-numeric string",
			raw:   "abc",
			valid: false,
		},
		{
			name:  "NaN",
			raw:   math.NaN(),
			valid: false,
		},
		{
			name:  "Infinity",
			raw:   math.Inf(1),
			valid: false,
		},
		{
			name:  "Boolean",
			raw:   true,
			valid: false,
		},
		{
			name:  "Nil",
			raw:   nil,
			valid: false,
		},
		{
			name:  "Object",
			raw:   map[string]any{"value": 98.6},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := ParseNumber(tt.raw)
			if n.Valid != tt.valid {
				t.Fatalf("Expected valid=%v, got %v", tt.valid, n.Valid)
			}
			if tt.valid && n.Value != tt.expected {
				t.Errorf("Expected value %v, got %v", tt.expected, n.Value)
			}
			if !tt.valid && n.Value != 0 {
				t.Errorf("Invalid result should carry zero value, got %v", n.Value)
			}
		})
	}
}

func TestParseBloodPressure(t *testing.T) {
	tests := []struct {
		name      string
		raw       any
		systolic  float64
		diastolic float64
		valid     bool
	}{
		{
			name:      "Normal reading",
			raw:       "120/80",
			systolic:  120,
			diastolic: 80,
			valid:     true,
		},
		{
			name:      "Reading with spaces",
			raw:       " 145 / 95 ",
			systolic:  145,
			diastolic: 95,
			valid:     true,
		},
		{
			name:      "Decimal segments",
			raw:       "119.5/79.5",
			systolic:  119.5,
			diastolic: 79.5,
			valid:     true,
		},
		{
			name:  "Missing diastolic",
			raw:   "150/",
			valid: false,
		},
		{
			name:  "Missing systolic",
			raw:   "/90",
			valid: false,
		},
		{
			name:  "No slash",
			raw:   "abc",
			valid: false,
		},
		{
			name:  "Non-numeric systolic",
			raw:   "abc/90",
			valid: false,
		},
		{
			name:  "Multiple slashes",
			raw:   "120/80/60",
			valid: false,
		},
		{
			name:  "Empty string",
			raw:   "",
			valid: false,
		},
		{
			name:  "Signed segment",
			raw:   "-120/80",
			valid: false,
		},
		{
			name:  "Non-string number",
			raw:   120.80,
			valid: false,
		},
		{
			name:  "Nil",
			raw:   nil,
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bp := ParseBloodPressure(tt.raw)
			if bp.Valid != tt.valid {
				t.Fatalf("Expected valid=%v, got %v", tt.valid, bp.Valid)
			}
			if tt.valid {
				if bp.Systolic != tt.systolic {
					t.Errorf("Expected systolic %v, got %v", tt.systolic, bp.Systolic)
				}
				if bp.Diastolic != tt.diastolic {
					t.Errorf("Expected diastolic %v, got %v", tt.diastolic, bp.Diastolic)
				}
			}
		})
	}
}
