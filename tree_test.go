package pegtl

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairGrammar matches "name=digits" pairs separated by semicolons.
func pairGrammar() Rule {
	ident := Named("ident").Bind(Plus(RuneRange('a', 'z')))
	number := Named("number").Bind(Plus(RuneRange('0', '9')))
	pair := Named("pair").Bind(Seq(ident, Rune('='), number))
	return Named("line").Bind(Seq(pair, Star(Seq(Rune(';'), pair)), Eof()))
}

func TestTreeControlBuildsTree(t *testing.T) {
	tree := NewTreeControl(nil)
	require.NoError(t, RunString(pairGrammar(), "x=1;yy=23", WithControl(tree)))

	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, "line", root.Name)
	assert.Equal(t, "x=1;yy=23", root.Text)
	require.Len(t, root.Children, 2)

	first := root.Children[0]
	assert.Equal(t, "pair", first.Name)
	assert.Equal(t, "x=1", first.Text)
	require.Len(t, first.Children, 2)
	assert.Equal(t, "ident", first.Children[0].Name)
	assert.Equal(t, "x", first.Children[0].Text)
	assert.Equal(t, "number", first.Children[1].Name)
	assert.Equal(t, "1", first.Children[1].Text)

	second := root.Children[1]
	assert.Equal(t, "yy=23", second.Text)
	assert.Equal(t, 4, second.Span.Start.Offset)
	assert.Equal(t, 9, second.Span.End.Offset)
}

func TestTreeControlDiscardsFailedBranches(t *testing.T) {
	a := Named("a").Bind(Rune('a'))
	grammar := Sor(Seq(a, Rune('x')), Seq(a, Rune('b')))

	tree := NewTreeControl(nil)
	require.NoError(t, RunString(grammar, "ab", WithControl(tree)))

	// The first alternative matched "a" before failing on 'x'; its
	// node must go down with the branch instead of surviving as a
	// sibling of the winning alternative's node.
	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, "a", root.Name)
	assert.Empty(t, root.Children)
}

func TestTreeControlKeepFilter(t *testing.T) {
	tree := NewTreeControl(nil, "number")
	require.NoError(t, RunString(pairGrammar(), "x=1;yy=23", WithControl(tree)))

	// Only numbers are kept, so the two of them end up under a
	// synthetic root.
	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, "root", root.Name)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "1", root.Children[0].Text)
	assert.Equal(t, "23", root.Children[1].Text)
}

func TestTreeControlIgnoresProbes(t *testing.T) {
	number := Named("number").Bind(Plus(RuneRange('0', '9')))
	grammar := Seq(At(number), number)

	tree := NewTreeControl(nil)
	require.NoError(t, RunString(grammar, "42", WithControl(tree)))

	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, "number", root.Name)
	assert.Empty(t, root.Children)
}

func TestTreeControlEmptyOnNoMatch(t *testing.T) {
	tree := NewTreeControl(nil)
	require.Error(t, RunString(pairGrammar(), "123", WithControl(tree)))
	assert.Nil(t, tree.Root())
}

func TestPrintNodeGolden(t *testing.T) {
	tree := NewTreeControl(nil)
	require.NoError(t, RunString(pairGrammar(), "x=1;yy=23", WithControl(tree)))

	g := goldie.New(t)
	g.Assert(t, "pair_tree", []byte(PrintNode(tree.Root())))
}
