package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Lower lowercases s.
func Lower(s string) string {
	return strings.ToLower(s)
}

// CollapseSpace replaces every run of whitespace with a single space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SingleLine drops control characters including line breaks.
// Used for values that end up in mail headers.
func SingleLine(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' || r == '\t' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// Email trims, lowercases and removes inner whitespace.
func Email(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}

// Phone keeps digits and the common separators + - ( ) space.
func Phone(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' || r == '-' || r == '(' || r == ')' || r == ' ':
			b.WriteRune(r)
		}
	}
	return CollapseSpace(b.String())
}

// Name strips markup, flattens line breaks and collapses whitespace.
func Name(s string) string {
	return CollapseSpace(SingleLine(StripHTML(s)))
}

// NormalizeNewlines converts CRLF and lone CR to LF.
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
