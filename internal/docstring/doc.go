// Package docstring classifies the physical lines of a Sphinx-style docstring.
//
// A docstring is handled as the ordered lines between (and including) its
// opening and closing quote markers. Parse tags every line once so filters can
// reason about parameters, continuations and directive blocks without
// re-parsing the text themselves.
package docstring

// Doc is a classified docstring.
type Doc struct {
	Lines []Line
}

// Unit is one logical description: the free-text description paragraph or a
// single field with its continuation lines. Lines holds indices into Doc.Lines
// in order.
type Unit struct {
	Field *Field
	Lines []int
}

// First returns the index of the unit's first physical line.
func (u Unit) First() int { return u.Lines[0] }

// Last returns the index of the unit's last physical line.
func (u Unit) Last() int { return u.Lines[len(u.Lines)-1] }

// Parse classifies lines. The input slice is not retained.
func Parse(lines []string) Doc {
	doc := Doc{Lines: make([]Line, len(lines))}

	// open is the kind given to lines continuing the current field: Continuation
	// under a :param or :return, InfoField under any other field.
	open := Blank
	directiveIndent := -1

	for i, text := range lines {
		l := Line{Text: text, Indent: IndentOf(text)}

		switch {
		case IsBlank(text):
			// Blank lines end a field, but a directive body may resume after one.
			l.Kind = Blank
			open = Blank
		case IsQuoteMarker(text):
			l.Kind = QuoteMarker
			open = Blank
			directiveIndent = -1
		case directiveIndent >= 0 && l.Indent > directiveIndent:
			l.Kind = DirectiveBody
		case IsDirective(text):
			l.Kind = Directive
			open = Blank
			directiveIndent = l.Indent
		default:
			directiveIndent = -1
			if f, ok := ParseField(text); ok {
				l.Kind = Param
				l.Field = f
				open = Continuation
			} else if IsInfoField(text) {
				l.Kind = InfoField
				open = InfoField
			} else if open != Blank {
				l.Kind = open
			} else {
				l.Kind = FreeText
			}
		}
		doc.Lines[i] = l
	}
	return doc
}

// Texts returns the raw line texts.
func (d Doc) Texts() []string {
	out := make([]string, len(d.Lines))
	for i, l := range d.Lines {
		out[i] = l.Text
	}
	return out
}

// FirstField returns the index of the first line of the field list (a
// :param, :return or other Sphinx field), or -1.
func (d Doc) FirstField() int {
	for i, l := range d.Lines {
		if l.Kind == Param || l.Kind == InfoField {
			return i
		}
	}
	return -1
}

// BlockEnd returns the index of the last body line of the directive starting
// at i. Trailing blank lines are not part of the block.
func (d Doc) BlockEnd(i int) int {
	last := i
	for j := i + 1; j < len(d.Lines); j++ {
		switch d.Lines[j].Kind {
		case DirectiveBody:
			last = j
		case Blank:
			continue
		default:
			return last
		}
	}
	return last
}

// Description returns the free-text description paragraph: the first run of
// consecutive free-text lines before the field list. ok is false when the
// docstring has none.
func (d Doc) Description() (Unit, bool) {
	paragraphs := d.Paragraphs()
	if len(paragraphs) == 0 {
		return Unit{}, false
	}
	p := paragraphs[0]
	if first := d.FirstField(); first >= 0 && p.First() > first {
		return Unit{}, false
	}
	return p, true
}

// Paragraphs returns every run of consecutive free-text lines, wherever it
// appears.
func (d Doc) Paragraphs() []Unit {
	var units []Unit
	prev := false
	for i, l := range d.Lines {
		cur := l.Kind == FreeText
		switch {
		case cur && prev:
			n := len(units) - 1
			units[n].Lines = append(units[n].Lines, i)
		case cur:
			units = append(units, Unit{Lines: []int{i}})
		}
		prev = cur
	}
	return units
}

// Fields returns one unit per field line, each with its continuation lines.
func (d Doc) Fields() []Unit {
	var units []Unit
	for i, l := range d.Lines {
		switch l.Kind {
		case Param:
			units = append(units, Unit{Field: l.Field, Lines: []int{i}})
		case Continuation:
			if n := len(units); n > 0 {
				units[n-1].Lines = append(units[n-1].Lines, i)
			}
		}
	}
	return units
}

// Units returns the description paragraph, if any, followed by every field.
func (d Doc) Units() []Unit {
	var units []Unit
	if u, ok := d.Description(); ok {
		units = append(units, u)
	}
	return append(units, d.Fields()...)
}

// BodyIndent guesses the indentation the docstring body is written at: the
// first clean field line, else the description. ok is false when neither
// exists.
func (d Doc) BodyIndent() (indent int, ok bool) {
	for _, l := range d.Lines {
		if l.Kind == Param && l.Field.Prefix == "" {
			return l.Indent, true
		}
	}
	if u, found := d.Description(); found {
		return d.Lines[u.First()].Indent, true
	}
	return 0, false
}
