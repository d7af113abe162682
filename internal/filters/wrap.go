package filters

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"docstyle/internal/docstring"
)

// DefaultMaxLength is the wrap width used when none is configured.
const DefaultMaxLength = 72

// LineWrapping re-flows every free-text paragraph and every :param/:return
// description (continuation lines included) that has a line wider than
// MaxLength display columns. The words of the whole unit are joined and broken
// greedily at spaces; pieces are emitted at the indentation of the unit's first
// line. A field marker with its name and separator is one unbreakable word.
// Pieces after the first line of a field stay continuationIndent columns short
// of the limit, so they still fit once IndentMultilineParamDescription moves
// them deeper. Quote markers, directives, their bodies and other Sphinx
// fields are never wrapped.
type LineWrapping struct {
	MaxLength int
}

// continuationIndent is how much deeper than its field a continuation line
// ends up.
const continuationIndent = 2

func NewLineWrapping(maxLength int) LineWrapping {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return LineWrapping{MaxLength: maxLength}
}

func (w LineWrapping) Format(lines []string) []string {
	limit := w.MaxLength
	if limit <= 0 {
		limit = DefaultMaxLength
	}

	doc := docstring.Parse(lines)
	units := append(doc.Paragraphs(), doc.Fields()...)

	// Replacement pieces keyed by the unit's first line; the other lines of a
	// re-flowed unit are dropped.
	replaced := make(map[int][]string)
	dropped := make(map[int]bool)
	for _, u := range units {
		if !tooWide(lines, u, limit) {
			continue
		}
		replaced[u.First()] = reflow(lines, u, limit)
		for _, i := range u.Lines[1:] {
			dropped[i] = true
		}
	}

	out := make([]string, 0, len(lines))
	for i := range lines {
		if pieces, ok := replaced[i]; ok {
			out = append(out, pieces...)
			continue
		}
		if !dropped[i] {
			out = append(out, lines[i])
		}
	}
	return out
}

func tooWide(lines []string, u docstring.Unit, limit int) bool {
	for _, i := range u.Lines {
		if runewidth.StringWidth(lines[i]) > limit {
			return true
		}
	}
	return false
}

func reflow(lines []string, u docstring.Unit, limit int) []string {
	indent, body := splitIndent(lines[u.First()])
	var words []string
	rest := limit
	if f := u.Field; f != nil {
		head := strings.TrimRight(f.Prefix+f.Marker+f.Gap+f.Name+f.PreSep+f.Sep, " ")
		words = append(words, head)
		body = f.Description
		rest = max(limit-continuationIndent, 1)
	}
	words = append(words, strings.Fields(body)...)
	for _, i := range u.Lines[1:] {
		words = append(words, strings.Fields(lines[i])...)
	}
	return wrapWords(indent, words, limit, rest)
}

// wrapWords keeps the first piece strictly narrower than limit and the others
// strictly narrower than rest. A single word wider than that is emitted on a
// line of its own.
func wrapWords(indent string, words []string, limit, rest int) []string {
	base := runewidth.StringWidth(indent)

	var pieces []string
	var cur strings.Builder
	width := base
	for _, word := range words {
		ww := runewidth.StringWidth(word)
		if cur.Len() == 0 {
			cur.WriteString(word)
			width = base + ww
			continue
		}
		if width+1+ww < limit {
			cur.WriteByte(' ')
			cur.WriteString(word)
			width += 1 + ww
			continue
		}
		pieces = append(pieces, indent+cur.String())
		cur.Reset()
		cur.WriteString(word)
		width = base + ww
		limit = rest
	}
	if cur.Len() > 0 {
		pieces = append(pieces, indent+cur.String())
	}
	return pieces
}
