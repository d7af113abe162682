package docstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(d Doc) []Kind {
	out := make([]Kind, len(d.Lines))
	for i, l := range d.Lines {
		out[i] = l.Kind
	}
	return out
}

func TestParse_ClassifiesLines(t *testing.T) {
	doc := Parse([]string{
		`   """`,
		"    Description",
		"",
		"    :param param1: description of param1",
		"    :param param2: multiline description ",
		"      of param2",
		"    :return: description of return value",
		`    """`,
	})

	assert.Equal(t, []Kind{QuoteMarker, FreeText, Blank, Param, Param, Continuation, Param, QuoteMarker}, kinds(doc))
	assert.Equal(t, 3, doc.FirstField())
	assert.Equal(t, 4, doc.Lines[1].Indent)
}

func TestParse_DirectiveBlock(t *testing.T) {
	doc := Parse([]string{
		`"""`,
		"    Lorem ipsum.",
		"    .. note::",
		"        Some note",
		"",
		"        Still the note",
		"    Some more text",
		"",
		"    :return: Return value",
		`"""`,
	})

	assert.Equal(t, []Kind{QuoteMarker, FreeText, Directive, DirectiveBody, Blank, DirectiveBody, FreeText, Blank, Param, QuoteMarker}, kinds(doc))
	assert.Equal(t, 5, doc.BlockEnd(2))
}

func TestParse_BlankEndsField(t *testing.T) {
	doc := Parse([]string{
		`"""`,
		"    :param a: first",
		"",
		"    trailing paragraph",
		`"""`,
	})
	assert.Equal(t, FreeText, doc.Lines[3].Kind)
}

func TestParseField(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Field
	}{
		{
			name: "well formed",
			line: "    :param param1: description of param1",
			want: Field{Indent: "    ", Marker: ":param", Gap: " ", Name: "param1", Sep: ":", PostSep: " ", Description: "description of param1"},
		},
		{
			name: "missing colon",
			line: "    :param param1 description of param1",
			want: Field{Indent: "    ", Marker: ":param", Gap: " ", Name: "param1", PreSep: " ", Description: "description of param1"},
		},
		{
			name: "repeated colons",
			line: "    :param param3::: description",
			want: Field{Indent: "    ", Marker: ":param", Gap: " ", Name: "param3", Sep: ":::", PostSep: " ", Description: "description"},
		},
		{
			name: "stray prefix",
			line: " ., :param param1: description",
			want: Field{Indent: " ", Prefix: "., ", Marker: ":param", Gap: " ", Name: "param1", Sep: ":", PostSep: " ", Description: "description"},
		},
		{
			name: "return",
			line: "    :return:   value",
			want: Field{Indent: "    ", Marker: ":return", Sep: ":", PostSep: "   ", Description: "value"},
		},
		{
			name: "inner colon kept in description",
			line: "    :param param2 multiline: description ",
			want: Field{Indent: "    ", Marker: ":param", Gap: " ", Name: "param2", PreSep: " ", Description: "multiline: description "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := ParseField(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.want, *f)
			assert.Equal(t, tt.line, f.String())
		})
	}
}

func TestParseField_Rejects(t *testing.T) {
	for _, line := range []string{
		"    Description",
		"    :param: no name",
		"    see :param x: inline",
		"    :returned value",
		`    """ :param x: y`,
	} {
		_, ok := ParseField(line)
		assert.False(t, ok, line)
	}
}

func TestUnits(t *testing.T) {
	doc := Parse([]string{
		`   """`,
		"    use unlimited option.",
		"   Can do more",
		"",
		"    :param param3: description of param3 ",
		"    spanning 1",
		"    spanning 2",
		"    :return: value",
		`    """`,
	})

	units := doc.Units()
	require.Len(t, units, 3)
	assert.Nil(t, units[0].Field)
	assert.Equal(t, []int{1, 2}, units[0].Lines)
	assert.Equal(t, "param3", units[1].Field.Name)
	assert.Equal(t, []int{4, 5, 6}, units[1].Lines)
	assert.Equal(t, 6, units[1].Last())
	assert.True(t, units[2].Field.IsReturn())
}

func TestBodyIndent(t *testing.T) {
	doc := Parse([]string{`"""`, " ., :param a: b", "      :param c: d", `"""`})
	indent, ok := doc.BodyIndent()
	require.True(t, ok)
	assert.Equal(t, 6, indent)

	_, ok = Parse([]string{`"""`, `"""`}).BodyIndent()
	assert.False(t, ok)
}

func TestIsQuoteMarker(t *testing.T) {
	assert.True(t, IsQuoteMarker(`    """`))
	assert.True(t, IsQuoteMarker(`r"""`))
	assert.True(t, IsQuoteMarker(`'''`))
	assert.False(t, IsQuoteMarker(`"""Description`))
	assert.False(t, IsQuoteMarker(""))
}

func TestParse_EmptyInput(t *testing.T) {
	doc := Parse(nil)
	assert.Empty(t, doc.Lines)
	assert.Equal(t, -1, doc.FirstField())
	assert.Empty(t, doc.Units())
}

func TestDescription_StopsAtFieldList(t *testing.T) {
	doc := Parse([]string{
		`"""`,
		"    :param x: the x",
		"",
		"    use with care, see docs",
		`"""`,
	})

	_, ok := doc.Description()
	assert.False(t, ok)
	require.Len(t, doc.Paragraphs(), 1)
	assert.Equal(t, []int{3}, doc.Paragraphs()[0].Lines)
}

func TestParse_InfoFields(t *testing.T) {
	doc := Parse([]string{
		`"""`,
		"    Description",
		"",
		"    :param x: the x",
		"    :type x: int",
		"    :raises ValueError: when x is negative",
		"        or too large",
		"    :return: the result",
		"    :rtype: int",
		`"""`,
	})

	assert.Equal(t, []Kind{QuoteMarker, FreeText, Blank, Param, InfoField, InfoField, InfoField, Param, InfoField, QuoteMarker}, kinds(doc))

	fields := doc.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, []int{3}, fields[0].Lines)
	assert.Equal(t, []int{7}, fields[1].Lines)
}

func TestFirstField_CountsInfoFields(t *testing.T) {
	doc := Parse([]string{`"""`, "    Description", "    :rtype: int", `"""`})
	assert.Equal(t, 2, doc.FirstField())
}
