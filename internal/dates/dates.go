// Package dates implements the calendar-day value type and the canonical
// DD/MM/YYYY string codec used for all persisted job and payment dates.
package dates

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Layout is the canonical persisted representation of a calendar day.
const Layout = "02/01/2006"

// ErrInvalidFormat is returned when a date string is not a valid DD/MM/YYYY
// calendar day.
var ErrInvalidFormat = errors.New("invalid date format, expected DD/MM/YYYY")

var canonicalPattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Day is a calendar day with no time-of-day component. The zero value is not
// a valid day; use Parse, FromTime or Today to construct one.
type Day struct {
	Year  int
	Month time.Month
	Dom   int
}

// Parse parses a canonical DD/MM/YYYY string into a Day. The string must
// match the pattern exactly and denote a real calendar day: out-of-range
// components such as "31/02/2024" are rejected.
func Parse(s string) (Day, error) {
	if !canonicalPattern.MatchString(s) {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	// time.Parse normalizes overflow (31/02 becomes 02/03), so a valid day
	// must survive the round trip unchanged.
	if t.Format(Layout) != s {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return FromTime(t), nil
}

// FromTime truncates t to its calendar day in t's location.
func FromTime(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Dom: d}
}

// Today returns the current calendar day in local time.
func Today() Day {
	return FromTime(time.Now())
}

// String formats the day in the canonical DD/MM/YYYY representation.
func (d Day) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Dom, int(d.Month), d.Year)
}

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool {
	return d == Day{}
}

// Compare returns -1 if d is before other, 0 if equal, 1 if after.
func (d Day) Compare(other Day) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Dom - other.Dom)
	}
}

// Before reports whether d falls strictly before other.
func (d Day) Before(other Day) bool { return d.Compare(other) < 0 }

// After reports whether d falls strictly after other.
func (d Day) After(other Day) bool { return d.Compare(other) > 0 }

// Equal reports whether d and other denote the same calendar day.
func (d Day) Equal(other Day) bool { return d.Compare(other) == 0 }

// Canonical normalizes a date input to the canonical DD/MM/YYYY string.
// A string already in valid canonical form is returned unchanged. Anything
// else gets a single fallback parse as an ISO timestamp or ISO date before
// reformatting; inputs that survive neither path fail with ErrInvalidFormat.
func Canonical(input string) (string, error) {
	if canonicalPattern.MatchString(input) {
		d, err := Parse(input)
		if err != nil {
			return "", err
		}
		return d.String(), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, input); err == nil {
			return FromTime(t).String(), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFormat, input)
}

// SameDay reports whether the canonical string s denotes the same calendar
// day as t, ignoring time-of-day. Invalid strings never match.
func SameDay(s string, t time.Time) bool {
	d, err := Parse(s)
	if err != nil {
		return false
	}
	return d.Equal(FromTime(t))
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
