package form

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	dateLayout = "2006-01-02"
	// datetime-local inputs submit without seconds; the remote API returns
	// them with seconds.
	datetimeLayout        = "2006-01-02T15:04"
	datetimeSecondsLayout = "2006-01-02T15:04:05"
)

// Required rejects empty or whitespace-only values.
func Required(msg string) Validator {
	return func(value string, _ *Form) string {
		if strings.TrimSpace(value) == "" {
			return msg
		}
		return ""
	}
}

// Email checks basic address shape.
func Email(msg string) Validator {
	return func(value string, _ *Form) string {
		if !emailRe.MatchString(value) {
			return msg
		}
		return ""
	}
}

// MinLen rejects values shorter than n characters.
func MinLen(n int, msg string) Validator {
	return func(value string, _ *Form) string {
		if len(value) < n {
			return msg
		}
		return ""
	}
}

// MinNumber rejects values that do not parse as a number >= min.
func MinNumber(min float64, msg string) Validator {
	return func(value string, _ *Form) string {
		n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || n < min {
			return msg
		}
		return ""
	}
}

// Date rejects values that are not calendar dates.
func Date(msg string) Validator {
	return func(value string, _ *Form) string {
		if _, err := time.Parse(dateLayout, value); err != nil {
			return msg
		}
		return ""
	}
}

// Datetime rejects values that are not datetime-local timestamps.
func Datetime(msg string) Validator {
	return func(value string, _ *Form) string {
		if _, err := parseDatetime(value); err != nil {
			return msg
		}
		return ""
	}
}

// Optional skips validation for empty values and defers to v otherwise.
func Optional(v Validator) Validator {
	return func(value string, f *Form) string {
		if strings.TrimSpace(value) == "" {
			return ""
		}
		return v(value, f)
	}
}

// All chains validators, returning the first error.
func All(vs ...Validator) Validator {
	return func(value string, f *Form) string {
		for _, v := range vs {
			if msg := v(value, f); msg != "" {
				return msg
			}
		}
		return ""
	}
}

// DateAfter enforces that the value, when present alongside the other
// field, is strictly later than it. Both fields are calendar dates.
func DateAfter(other, msg string) Validator {
	return func(value string, f *Form) string {
		otherVal := f.Value(other)
		if value == "" || otherVal == "" {
			return ""
		}
		a, errA := time.Parse(dateLayout, otherVal)
		b, errB := time.Parse(dateLayout, value)
		if errA != nil || errB != nil {
			return ""
		}
		if !b.After(a) {
			return msg
		}
		return ""
	}
}

// DatetimeAfter is DateAfter for datetime-local values.
func DatetimeAfter(other, msg string) Validator {
	return func(value string, f *Form) string {
		otherVal := f.Value(other)
		if value == "" || otherVal == "" {
			return ""
		}
		a, errA := parseDatetime(otherVal)
		b, errB := parseDatetime(value)
		if errA != nil || errB != nil {
			return ""
		}
		if !b.After(a) {
			return msg
		}
		return ""
	}
}

// RequiredWith makes a field mandatory only when another field is non-empty.
func RequiredWith(other, msg string) Validator {
	return func(value string, f *Form) string {
		if f.Value(other) != "" && strings.TrimSpace(value) == "" {
			return msg
		}
		return ""
	}
}

// Matches enforces equality with another field's value.
func Matches(other, msg string) Validator {
	return func(value string, f *Form) string {
		if value != f.Value(other) {
			return msg
		}
		return ""
	}
}

func parseDatetime(value string) (time.Time, error) {
	for _, layout := range []string{datetimeLayout, datetimeSecondsLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", value)
}
