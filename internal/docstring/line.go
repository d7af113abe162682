package docstring

import (
	"regexp"
	"strings"
)

// Kind classifies a physical docstring line.
type Kind int

const (
	Blank Kind = iota
	QuoteMarker
	Param
	Continuation
	Directive
	DirectiveBody
	FreeText
	// InfoField is any other Sphinx field (":type x:", ":rtype:", ":raises E:").
	// It ends the preceding parameter and is never rewritten.
	InfoField
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case QuoteMarker:
		return "quote_marker"
	case Param:
		return "param"
	case Continuation:
		return "continuation"
	case Directive:
		return "directive"
	case DirectiveBody:
		return "directive_body"
	case FreeText:
		return "free_text"
	case InfoField:
		return "info_field"
	default:
		return "unknown"
	}
}

// Line is a physical line together with its classification.
type Line struct {
	Text   string
	Kind   Kind
	Indent int
	Field  *Field // only set for Param lines
}

var (
	quoteRe = regexp.MustCompile(`^(?i:[rub]{0,2})("""|''')$`)

	// A stray prefix may only hold punctuation and spaces. Quotes and
	// backticks are excluded so markup is never mistaken for debris.
	paramRe  = regexp.MustCompile("^( *)((?:[^\\w\\s\"'`]| )*?)(:param)( +)([^\\s:]+)( *)(:*)( *)(.*)$")
	returnRe = regexp.MustCompile("^( *)((?:[^\\w\\s\"'`]| )*?)(:returns?\\b)()()( *)(:*)( *)(.*)$")

	infoFieldRe = regexp.MustCompile(`^ *:(?:type|rtype|raises?|except|exception|var|ivar|cvar|vartype|keyword|kwtype|meta)\b`)
)

// IndentOf returns the number of leading spaces. Tabs are not expanded.
func IndentOf(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}

// IsBlank reports whether s holds nothing but whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsQuoteMarker reports whether s is an opening or closing triple-quote line.
func IsQuoteMarker(s string) bool {
	return quoteRe.MatchString(strings.TrimSpace(s))
}

// IsInfoField reports whether s starts a Sphinx field other than :param and
// :return.
func IsInfoField(s string) bool {
	return infoFieldRe.MatchString(s)
}

// IsDirective reports whether s opens a reStructuredText directive such as
// ".. note::".
func IsDirective(s string) bool {
	t := strings.TrimSpace(s)
	return strings.HasPrefix(t, ".. ") && strings.Contains(t, "::")
}

// Field is a parsed ":param name: description" or ":return: description" line.
// Concatenating the parts in order rebuilds the original line.
type Field struct {
	Indent      string
	Prefix      string
	Marker      string
	Gap         string
	Name        string
	PreSep      string
	Sep         string
	PostSep     string
	Description string
}

// ParseField parses s as a field line. Lines with no recognizable marker, or a
// :param marker with no name, are reported as not fields.
func ParseField(s string) (*Field, bool) {
	m := paramRe.FindStringSubmatch(s)
	if m == nil {
		m = returnRe.FindStringSubmatch(s)
	}
	if m == nil {
		return nil, false
	}
	return &Field{
		Indent:      m[1],
		Prefix:      m[2],
		Marker:      m[3],
		Gap:         m[4],
		Name:        m[5],
		PreSep:      m[6],
		Sep:         m[7],
		PostSep:     m[8],
		Description: m[9],
	}, true
}

func (f *Field) String() string {
	var b strings.Builder
	b.Grow(len(f.Indent) + len(f.Prefix) + len(f.Marker) + len(f.Name) + len(f.Description) + 8)
	b.WriteString(f.Indent)
	b.WriteString(f.Prefix)
	b.WriteString(f.Marker)
	b.WriteString(f.Gap)
	b.WriteString(f.Name)
	b.WriteString(f.PreSep)
	b.WriteString(f.Sep)
	b.WriteString(f.PostSep)
	b.WriteString(f.Description)
	return b.String()
}

// IsReturn reports whether the field documents a return value.
func (f *Field) IsReturn() bool {
	return strings.HasPrefix(f.Marker, ":return")
}
