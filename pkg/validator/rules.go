package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates rules and returns ValidationErrors when any fail, nil otherwise.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if r.Check == nil || r.Check() {
			continue
		}
		errs = append(errs, r.Error)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func rule(field, key, message string, values map[string]any, check func() bool) Rule {
	if values == nil {
		values = map[string]any{}
	}
	values["field"] = field
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: values,
		},
	}
}

// RequiredString fails when v is empty after trimming whitespace.
func RequiredString(field, v string) Rule {
	return rule(field, "validation.required", "is required", nil, func() bool {
		return strings.TrimSpace(v) != ""
	})
}

// MinLenString fails when v has fewer than n characters.
func MinLenString(field, v string, n int) Rule {
	return rule(field, "validation.min_length",
		fmt.Sprintf("must be at least %d characters long", n),
		map[string]any{"min": n},
		func() bool { return utf8.RuneCountInString(v) >= n })
}

// MaxLenString fails when v has more than n characters.
func MaxLenString(field, v string, n int) Rule {
	return rule(field, "validation.max_length",
		fmt.Sprintf("must not exceed %d characters", n),
		map[string]any{"max": n},
		func() bool { return utf8.RuneCountInString(v) <= n })
}

// emailPattern accepts "local@domain.tld" with no whitespace and a single @
// on each side of the separator.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// EmailString fails when v is not an email address. Empty values fail too;
// combine with Optional for optional fields.
func EmailString(field, v string) Rule {
	return rule(field, "validation.email", "must be a valid email address", nil, func() bool {
		return IsEmail(v)
	})
}

// CountDigits returns the number of ASCII digits in s.
func CountDigits(s string) int {
	n := 0
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// MinDigits fails when v contains fewer than n digits.
func MinDigits(field, v string, n int) Rule {
	return rule(field, "validation.min_digits",
		fmt.Sprintf("must contain at least %d digits", n),
		map[string]any{"min": n},
		func() bool { return CountDigits(v) >= n })
}

// Optional skips r when v is blank.
func Optional(v string, r Rule) Rule {
	check := r.Check
	r.Check = func() bool {
		return strings.TrimSpace(v) == "" || check == nil || check()
	}
	return r
}

// Any passes when at least one of rules passes. The reported error uses field
// and message, not the errors of the individual rules.
func Any(field, message string, rules ...Rule) Rule {
	return rule(field, "validation.any", message, nil, func() bool {
		for _, r := range rules {
			if r.Check == nil || r.Check() {
				return true
			}
		}
		return false
	})
}
