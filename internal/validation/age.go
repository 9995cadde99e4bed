package validation

import "time"

// AgeRule validates that a birth date yields a whole-year age within bounds.
// It is used both as the declarative "age" validator tag and as the explicit
// business check in the employee service, so both paths share one arithmetic.
type AgeRule struct {
	Min int
	Max int
}

// DefaultAgeRule carries the bounds for municipal employees.
var DefaultAgeRule = AgeRule{Min: 18, Max: 75}

// Age returns the whole-year difference between birth and at
// (calendar-year difference, not elapsed days divided by 365).
func Age(birth, at time.Time) int {
	years := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		years--
	}
	return years
}

// Valid reports whether the birth date satisfies the rule as of today.
func (r AgeRule) Valid(birth *time.Time) bool {
	return r.ValidAt(birth, time.Now())
}

// ValidAt reports whether the birth date satisfies the rule as of the given
// date. A nil birth date is valid at this rule's level; required-ness is
// enforced separately.
func (r AgeRule) ValidAt(birth *time.Time, at time.Time) bool {
	if birth == nil {
		return true
	}
	age := Age(*birth, at)
	return age >= r.Min && age <= r.Max
}
