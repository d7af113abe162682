package filters

import "docstyle/internal/docstring"

// EmptyLineBetweenDescriptionAndParams keeps exactly one blank line between
// the description and the first field line.
type EmptyLineBetweenDescriptionAndParams struct{}

func (EmptyLineBetweenDescriptionAndParams) Format(lines []string) []string {
	doc := docstring.Parse(lines)
	first := doc.FirstField()
	if first < 0 {
		return clone(lines)
	}

	start := first
	for start > 0 && doc.Lines[start-1].Kind == docstring.Blank {
		start--
	}
	// Fields right after the opening quote have no description to separate.
	if start == 0 || doc.Lines[start-1].Kind == docstring.QuoteMarker {
		return clone(lines)
	}
	if first-start == 1 {
		return clone(lines)
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:start]...)
	out = append(out, "")
	return append(out, lines[first:]...)
}

// DoubleDotFilter surrounds directive blocks (".. note::" and friends) with
// blank lines. Existing blank runs are left as they are.
type DoubleDotFilter struct{}

func (DoubleDotFilter) Format(lines []string) []string {
	doc := docstring.Parse(lines)
	out := make([]string, 0, len(lines)+4)

	for i := 0; i < len(lines); i++ {
		if doc.Lines[i].Kind != docstring.Directive {
			out = append(out, lines[i])
			continue
		}

		if n := len(out); n > 0 && isContent(out[n-1]) {
			out = append(out, "")
		}
		end := doc.BlockEnd(i)
		out = append(out, lines[i:end+1]...)
		if end+1 < len(lines) && isContent(lines[end+1]) {
			out = append(out, "")
		}
		i = end
	}
	return out
}

// isContent reports whether s needs a separating blank line next to a
// directive block.
func isContent(s string) bool {
	return !docstring.IsBlank(s) && !docstring.IsQuoteMarker(s)
}
