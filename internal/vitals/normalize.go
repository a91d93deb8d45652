package vitals

import (
	"math"
	"strconv"
	"strings"
)

// Number is the result of normalizing a loosely-typed numeric field.
// Invalid values carry a zero Value and must not contribute to scoring.
type Number struct {
	Value float64
	Valid bool
}

// BloodPressure is a parsed "SYS/DIA" reading.
type BloodPressure struct {
	Systolic  float64
	Diastolic float64
	Valid     bool
}

// ParseNumber normalizes a raw JSON field into a Number. Native numbers must
// be finite; strings are trimmed and must be unsigned decimal numerals (no
// sign, no exponent). Any other type is invalid.
func ParseNumber(raw any) Number {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Number{}
		}
		return Number{Value: v, Valid: true}
	case string:
		s := strings.TrimSpace(v)
		if !isDecimalNumeral(s) {
			return Number{}
		}
		value, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Number{}
		}
		return Number{Value: value, Valid: true}
	default:
		return Number{}
	}
}

// ParseBloodPressure parses a raw blood pressure field. Only strings that
// split on a single '/' into two decimal numerals are accepted; forms like
// "150/", "/90" or "abc/90" are invalid.
func ParseBloodPressure(raw any) BloodPressure {
	s, ok := raw.(string)
	if !ok {
		return BloodPressure{}
	}

	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return BloodPressure{}
	}

	systolic := ParseNumber(parts[0])
	diastolic := ParseNumber(parts[1])
	if !systolic.Valid || !diastolic.Valid {
		return BloodPressure{}
	}

	return BloodPressure{
		Systolic:  systolic.Value,
		Diastolic: diastolic.Value,
		Valid:     true,
	}
}

// isDecimalNumeral reports whether s is digits with an optional fractional
// part ("120", "98.6", ".5"). A bare or trailing dot is rejected.
func isDecimalNumeral(s string) bool {
	if s == "" {
		return false
	}

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == len(s) {
		return true
	}
	if s[i] != '.' {
		return false
	}
	i++

	fracDigits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		fracDigits++
	}
	return i == len(s) && fracDigits > 0
}
