// Package validation provides the pure rule checks used by input forms.
// Rules are checked independently and conjunctively; a rule that does not
// apply to the value's type is skipped rather than failing.
package validation

// Rules configures the constraints applied by Validate.
// Nil pointer fields mean the rule is not configured.
type Rules struct {
	// Required rejects empty strings and is satisfied by any number
	Required bool

	// MinLength and MaxLength apply to string values only
	MinLength *int
	MaxLength *int

	// Min and Max apply to numeric values only
	Min *float64
	Max *float64
}

// Validate reports whether value satisfies every configured rule.
// value must be a string, an int, or a float64; string-only rules are
// skipped for numbers and numeric rules are skipped for strings. It never
// returns an error: a mismatched rule/value pairing simply does not apply.
func Validate(value any, r Rules) bool {
	switch v := value.(type) {
	case string:
		return validateString(v, r)
	case int:
		return validateNumber(float64(v), r)
	case float64:
		return validateNumber(v, r)
	default:
		return false
	}
}

func validateString(v string, r Rules) bool {
	if r.Required && len(v) == 0 {
		return false
	}
	if r.MinLength != nil && len(v) < *r.MinLength {
		return false
	}
	if r.MaxLength != nil && len(v) > *r.MaxLength {
		return false
	}
	return true
}

func validateNumber(v float64, r Rules) bool {
	// Required is trivially satisfied: a number is always present
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// MinLen returns a pointer for Rules.MinLength / Rules.MaxLength
func MinLen(n int) *int {
	return &n
}

// Bound returns a pointer for Rules.Min / Rules.Max
func Bound(n float64) *float64 {
	return &n
}
