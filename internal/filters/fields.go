package filters

import (
	"strings"

	"docstyle/internal/docstring"
)

// RemoveUnwantedPrefixes strips punctuation debris in front of a field marker,
// e.g. " ., :param x: y". The cleaned line is moved to the body indentation.
type RemoveUnwantedPrefixes struct{}

func (RemoveUnwantedPrefixes) Format(lines []string) []string {
	doc := docstring.Parse(lines)
	indent, hasIndent := doc.BodyIndent()
	out := clone(lines)

	for i, l := range doc.Lines {
		if l.Kind != docstring.Param || l.Field.Prefix == "" {
			continue
		}
		f := *l.Field
		f.Prefix = ""
		if hasIndent {
			f.Indent = spaces(indent)
		}
		out[i] = f.String()
	}
	return out
}

// NoRepeatedWhitespaces collapses the spaces following a field separator to a
// single one.
type NoRepeatedWhitespaces struct{}

func (NoRepeatedWhitespaces) Format(lines []string) []string {
	doc := docstring.Parse(lines)
	out := clone(lines)

	for i, l := range doc.Lines {
		if l.Kind != docstring.Param {
			continue
		}
		if l.Field.Sep == "" || len(l.Field.PostSep) < 2 {
			continue
		}
		f := *l.Field
		f.PostSep = " "
		out[i] = f.String()
	}
	return out
}

// EnsureColonInParamDescription normalizes the separator after a field name
// to exactly one colon. Colons inside the description are left alone.
type EnsureColonInParamDescription struct{}

func (EnsureColonInParamDescription) Format(lines []string) []string {
	doc := docstring.Parse(lines)
	out := clone(lines)

	for i, l := range doc.Lines {
		if l.Kind != docstring.Param {
			continue
		}
		if l.Field.Sep == ":" && l.Field.PreSep == "" {
			continue
		}
		f := *l.Field
		f.PreSep = ""
		f.Sep = ":"
		if f.PostSep == "" && f.Description != "" {
			f.PostSep = " "
		}
		out[i] = f.String()
	}
	return out
}

// IndentMultilineParamDescription indents continuation lines two spaces deeper
// than the field they belong to.
type IndentMultilineParamDescription struct{}

func (IndentMultilineParamDescription) Format(lines []string) []string {
	doc := docstring.Parse(lines)
	out := clone(lines)

	for _, u := range doc.Fields() {
		want := spaces(len(u.Field.Indent) + 2)
		for _, i := range u.Lines[1:] {
			out[i] = want + strings.TrimLeft(lines[i], " ")
		}
	}
	return out
}
