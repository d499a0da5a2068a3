package validation

import "strings"

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func NonNegativeFloat(field string, val float64, v Violations) {
	if val < 0 {
		v[field] = "must_be_positive"
	}
}

// Unique records field as duplicate when value was already seen.
func Unique(field, value string, seen map[string]bool, v Violations) {
	if seen[value] {
		v[field] = "duplicate"
		return
	}
	seen[value] = true
}
