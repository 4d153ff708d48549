package json

import (
	"testing"

	pegtl "github.com/TechPenguineer/PEGTL"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidDocuments(t *testing.T) {
	tests := []string{
		`{}`,
		`[]`,
		`0`,
		`""`,
		` 42 `,
		`-12.5e+3`,
		`[1, 2, 3]`,
		`{"a": 1, "b": [true, false, null]}`,
		`"é\n"`,
		`{"nested": {"x": []}}`,
		`[[[]]]`,
		`"surrogate 😀"`,
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			assert.NoError(t, pegtl.RunString(Text, input))
		})
	}
}

func TestRejectedDocuments(t *testing.T) {
	tests := []string{
		``,
		`tru`,
		`01`,
		`+1`,
		`1 2`,
		`{} []`,
		`'single'`,
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			err := pegtl.RunString(Text, input)
			require.Error(t, err)

			var nm *pegtl.NoMatchError
			assert.ErrorAs(t, err, &nm)
		})
	}
}

func TestMalformedDocumentsEscalate(t *testing.T) {
	// Past an opening brace, bracket or quote the grammar is
	// committed: these inputs hard-fail at the offending position
	// instead of reporting no-match at the start.
	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{name: "missing colon", input: `{"a" 1}`, offset: 5},
		{name: "missing value", input: `{"a":}`, offset: 5},
		{name: "trailing comma in array", input: `[1,]`, offset: 3},
		{name: "unterminated string", input: `"abc`, offset: 4},
		{name: "missing closing bracket", input: `[1 2]`, offset: 3},
		{name: "bad escape", input: `"a\q"`, offset: 3},
		{name: "truncated unicode escape", input: `"\u00g9"`, offset: 5},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := pegtl.RunString(Text, test.input)
			require.Error(t, err)

			var perr *pegtl.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, test.offset, perr.Location.Offset)
		})
	}
}

func TestTreeOverNamedRules(t *testing.T) {
	tree := pegtl.NewTreeControl(nil, "object", "array", "string", "number")
	require.NoError(t, pegtl.RunString(Text, `{"a": [1, "x"]}`, pegtl.WithControl(tree)))

	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, "object", root.Name)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "string", root.Children[0].Name)

	array := root.Children[1]
	assert.Equal(t, "array", array.Name)
	require.Len(t, array.Children, 2)
	assert.Equal(t, "number", array.Children[0].Name)
	assert.Equal(t, "string", array.Children[1].Name)
}

func TestValueIsReusable(t *testing.T) {
	// Value can be embedded in a larger grammar without the
	// whole-input requirement Text adds.
	grammar := pegtl.Seq(pegtl.Literal("data="), Value, pegtl.Eof())
	assert.NoError(t, pegtl.RunString(grammar, `data=[1,2]`))
	assert.Error(t, pegtl.RunString(grammar, `data=`))
}
