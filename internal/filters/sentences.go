package filters

import (
	"strings"
	"unicode"

	"docstyle/internal/docstring"
)

// EndOfSentencePunctuation terminates the description paragraph and every
// field description with a period unless it already ends in ".", "?" or "!".
// Only the last physical line of a multi-line description is touched.
type EndOfSentencePunctuation struct{}

func (EndOfSentencePunctuation) Format(lines []string) []string {
	doc := docstring.Parse(lines)
	out := clone(lines)

	for _, u := range doc.Units() {
		last := u.Last()
		if u.Field != nil && last == u.First() && strings.TrimSpace(u.Field.Description) == "" {
			continue
		}
		trimmed := strings.TrimRight(lines[last], " ")
		if docstring.IsBlank(trimmed) || !needsPeriod(trimmed) {
			continue
		}
		out[last] = trimmed + "."
	}
	return out
}

func needsPeriod(s string) bool {
	// "::" introduces a literal block and must stay last.
	if strings.HasSuffix(s, "::") {
		return false
	}
	switch s[len(s)-1] {
	case '.', '?', '!':
		return false
	}
	return true
}

// SentenceCapitalization uppercases the first letter of the description
// paragraph and of every field description.
type SentenceCapitalization struct{}

func (SentenceCapitalization) Format(lines []string) []string {
	doc := docstring.Parse(lines)
	out := clone(lines)

	for _, u := range doc.Units() {
		for n, i := range u.Lines {
			if n == 0 && u.Field != nil {
				if u.Field.Description == "" {
					continue
				}
				f := *u.Field
				f.Description = capitalize(f.Description)
				out[i] = f.String()
				break
			}
			indent, body := splitIndent(lines[i])
			if body == "" {
				continue
			}
			out[i] = indent + capitalize(body)
			break
		}
	}
	return out
}

// ThirdPersonConverter turns a leading base-form verb of the description into
// its third-person form ("use" becomes "uses"). Only the first word of the
// description is considered; field descriptions are never changed.
type ThirdPersonConverter struct {
	blocking map[string]struct{}
	modals   map[string]struct{}
	verbs    map[string]string
}

// NewThirdPersonConverter builds a converter from the given word lists. Words
// are matched after Unicode case folding. The arguments are copied.
func NewThirdPersonConverter(blockingWords, modals []string, verbs map[string]string) *ThirdPersonConverter {
	c := &ThirdPersonConverter{
		blocking: toSet(blockingWords),
		modals:   toSet(modals),
		verbs:    make(map[string]string, len(verbs)),
	}
	for base, third := range verbs {
		c.verbs[fold(base)] = strings.ToLower(third)
	}
	return c
}

func (c *ThirdPersonConverter) Format(lines []string) []string {
	out := clone(lines)
	desc, ok := docstring.Parse(lines).Description()
	if !ok {
		return out
	}

	i := desc.First()
	indent, body := splitIndent(lines[i])
	end := strings.IndexByte(body, ' ')
	if end < 0 {
		end = len(body)
	}
	word := strings.TrimRightFunc(body[:end], unicode.IsPunct)
	lower := fold(word)

	if _, modal := c.modals[lower]; modal {
		return out
	}
	third, ok := c.verbs[lower]
	if !ok || c.blocked(body) {
		return out
	}
	if isUpperInitial(word) {
		third = capitalize(third)
	}
	out[i] = indent + third + body[len(word):]
	return out
}

func (c *ThirdPersonConverter) blocked(text string) bool {
	for _, w := range strings.Fields(text) {
		w = fold(strings.TrimFunc(w, unicode.IsPunct))
		if _, ok := c.blocking[w]; ok {
			return true
		}
	}
	return false
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[fold(w)] = struct{}{}
	}
	return set
}
