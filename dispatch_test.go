package pegtl

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionOrderIsDepthFirstLeftToRight(t *testing.T) {
	var events []string
	record := ActionFunc(func(r Rule, span Span, text string, s *State) error {
		events = append(events, fmt.Sprintf("%s=%s", r.String(), text))
		return nil
	})

	a := Named("a").Bind(Rune('a'))
	b := Named("b").Bind(Rune('b'))
	c := Named("c").Bind(Rune('c'))
	pair := Named("pair").Bind(Seq(b, c))
	root := Named("root").Bind(Seq(a, pair))

	err := RunString(root, "abc", WithAction(record))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"'a'=a",
		"a=a",
		"'b'=b",
		"b=b",
		"'c'=c",
		"c=c",
		"seq=bc",
		"pair=bc",
		"seq=abc",
		"root=abc",
	}, events)
}

func TestActionSpanCoversConsumedInput(t *testing.T) {
	var got Span
	var text string
	record := ActionFunc(func(r Rule, span Span, txt string, s *State) error {
		if _, ok := r.(*NamedRule); ok {
			got = span
			text = txt
		}
		return nil
	})

	word := Named("word").Bind(Plus(RuneRange('a', 'z')))
	err := RunString(Seq(Literal(">> "), word), ">> hello", WithAction(record))
	require.NoError(t, err)

	assert.Equal(t, "hello", text)
	assert.Equal(t, 3, got.Start.Offset)
	assert.Equal(t, 8, got.End.Offset)
	assert.Equal(t, 4, got.Start.Column)
}

func TestActionFailureBecomesHardFailure(t *testing.T) {
	boom := ActionFunc(func(r Rule, span Span, text string, s *State) error {
		if r.String() == "digits" {
			return fmt.Errorf("value out of range")
		}
		return nil
	})

	digits := Named("digits").Bind(Plus(RuneRange('0', '9')))
	grammar := Sor(digits, Literal("fallback"))

	err := RunString(grammar, "123", WithAction(boom))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "value out of range", perr.Message)
	assert.Equal(t, 3, perr.Location.Offset)
}

func TestFailedBranchStillFiresActionsOfItsSuccesses(t *testing.T) {
	// Actions fire as soon as a rule succeeds; a later failure of
	// the enclosing branch does not retract them.  Consumers that
	// need transactional behavior attach a TreeControl instead.
	var events []string
	record := ActionFunc(func(r Rule, span Span, text string, s *State) error {
		if _, ok := r.(*NamedRule); ok {
			events = append(events, r.String())
		}
		return nil
	})

	a := Named("a").Bind(Rune('a'))
	grammar := Sor(Seq(a, Rune('x')), Seq(a, Rune('b')))

	err := RunString(grammar, "ab", WithAction(record))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a"}, events)
}

func TestWithDataThreadsAmbientState(t *testing.T) {
	type tally struct{ runes int }

	count := ActionFunc(func(r Rule, span Span, text string, s *State) error {
		if _, ok := r.(*runeRule); ok {
			s.Data.(*tally).runes++
		}
		return nil
	})

	data := &tally{}
	err := RunString(Star(Rune('a')), "aaa", WithAction(count), WithData(data))
	require.NoError(t, err)
	assert.Equal(t, 3, data.runes)
}

func TestControlDecidesWhetherToInvoke(t *testing.T) {
	// A control can refuse to invoke a rule altogether; here every
	// rule named "skipped" fails without its Match ever running.
	control := &vetoControl{veto: "skipped"}
	skipped := Named("skipped").Bind(Literal("a"))

	err := RunString(Sor(skipped, Literal("a")), "a", WithControl(control))
	require.NoError(t, err)
	assert.Equal(t, 1, control.vetoed)
}

type vetoControl struct {
	DefaultControl
	veto   string
	vetoed int
}

func (c *vetoControl) Match(r Rule, s *State, ap ApplyMode, rw RewindMode) (bool, error) {
	if r.String() == c.veto {
		c.vetoed++
		return false, nil
	}
	return c.DefaultControl.Match(r, s, ap, rw)
}

func TestConcurrentParsesShareRules(t *testing.T) {
	grammar := Plus(Sor(Literal("ab"), Rune('c')))

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- RunString(Seq(grammar, Eof()), "abcabc")
		}()
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}
}
