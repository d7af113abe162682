// Package filters implements the docstring normalization rules and the
// pipeline that chains them.
//
// Every filter takes the docstring as its physical lines, quote markers
// included, and returns a new slice. Filters never modify their input and hold
// no state between calls, so a single instance may be shared by goroutines.
package filters

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Filter rewrites a docstring.
type Filter interface {
	Format(lines []string) []string
}

// FilterFunc adapts an ordinary function to Filter.
type FilterFunc func(lines []string) []string

func (f FilterFunc) Format(lines []string) []string { return f(lines) }

func clone(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}

// capitalize titlecases the first rune of s when it is a lowercase letter.
// Only that rune changes: "ǆ" becomes "ǅ" and "ß", which has no single-rune
// title form, is left alone.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToTitle(r)) + s[size:]
}

// fold returns the caseless form used to match words against word lists.
func fold(s string) string {
	// Casers carry state, so one is built per call.
	return cases.Fold().String(s)
}

func isUpperInitial(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// splitIndent splits a line into its leading spaces and the rest.
func splitIndent(s string) (string, string) {
	body := strings.TrimLeft(s, " ")
	return s[:len(s)-len(body)], body
}
