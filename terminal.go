package pegtl

import (
	"fmt"
	"sort"
	"strings"
)

// Terminal rules.  These are the leaves of every grammar: they have
// no sub-rules and are the only rules that consume input directly.
// Consumption goes through State.take so the furthest-reached
// position stays up to date for end-of-parse reporting.

type successRule struct{}

// Success matches without consuming anything.  It is also what the
// variadic combinator constructors return for an empty rule list.
func Success() Rule { return theSuccess }

var theSuccess Rule = successRule{}

func (successRule) Match(*State, ApplyMode, RewindMode) (bool, error) { return true, nil }
func (successRule) Subs() []Rule                                      { return nil }
func (successRule) String() string                                    { return "success" }

type failureRule struct{}

// Failure never matches and never consumes.
func Failure() Rule { return theFailure }

var theFailure Rule = failureRule{}

func (failureRule) Match(*State, ApplyMode, RewindMode) (bool, error) { return false, nil }
func (failureRule) Subs() []Rule                                      { return nil }
func (failureRule) String() string                                    { return "failure" }

type anyRule struct{}

// Any matches any single rune and fails only at the end of input.
func Any() Rule { return theAny }

var theAny Rule = anyRule{}

func (anyRule) Match(s *State, _ ApplyMode, _ RewindMode) (bool, error) {
	_, size, err := s.Input().Peek()
	if err != nil {
		return false, nil
	}
	s.take(size)
	return true, nil
}

func (anyRule) Subs() []Rule   { return nil }
func (anyRule) String() string { return "." }

type eofRule struct{}

// Eof matches at the end of input, consuming nothing.
func Eof() Rule { return theEof }

var theEof Rule = eofRule{}

func (eofRule) Match(s *State, _ ApplyMode, _ RewindMode) (bool, error) {
	return s.Input().AtEnd(), nil
}

func (eofRule) Subs() []Rule   { return nil }
func (eofRule) String() string { return "eof" }

type runeRule struct {
	r rune
}

// Rune matches exactly the rune r.
func Rune(r rune) Rule { return &runeRule{r: r} }

func (t *runeRule) Match(s *State, _ ApplyMode, _ RewindMode) (bool, error) {
	c, size, err := s.Input().Peek()
	if err != nil || c != t.r {
		return false, nil
	}
	s.take(size)
	return true, nil
}

func (t *runeRule) Subs() []Rule   { return nil }
func (t *runeRule) String() string { return fmt.Sprintf("%q", t.r) }

type runeRangeRule struct {
	lo, hi rune
}

// RuneRange matches any rune between lo and hi, inclusive.
func RuneRange(lo, hi rune) Rule {
	if lo > hi {
		panic("pegtl: RuneRange with lo > hi")
	}
	return &runeRangeRule{lo: lo, hi: hi}
}

func (t *runeRangeRule) Match(s *State, _ ApplyMode, _ RewindMode) (bool, error) {
	c, size, err := s.Input().Peek()
	if err != nil || c < t.lo || c > t.hi {
		return false, nil
	}
	s.take(size)
	return true, nil
}

func (t *runeRangeRule) Subs() []Rule { return nil }

func (t *runeRangeRule) String() string {
	return fmt.Sprintf("%q..%q", t.lo, t.hi)
}

type oneOfRule struct {
	set  map[rune]struct{}
	name string
}

// OneOf matches any single rune from the given set.
func OneOf(runes ...rune) Rule {
	if len(runes) == 0 {
		panic("pegtl: OneOf requires at least one rune")
	}
	set := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		set[r] = struct{}{}
	}
	parts := make([]string, 0, len(set))
	for r := range set {
		parts = append(parts, fmt.Sprintf("%q", r))
	}
	sort.Strings(parts)
	return &oneOfRule{set: set, name: "[" + strings.Join(parts, " ") + "]"}
}

func (t *oneOfRule) Match(s *State, _ ApplyMode, _ RewindMode) (bool, error) {
	c, size, err := s.Input().Peek()
	if err != nil {
		return false, nil
	}
	if _, ok := t.set[c]; !ok {
		return false, nil
	}
	s.take(size)
	return true, nil
}

func (t *oneOfRule) Subs() []Rule   { return nil }
func (t *oneOfRule) String() string { return t.name }

type literalRule struct {
	lit string
}

// Literal matches the exact string lit, rune by rune.
func Literal(lit string) Rule { return &literalRule{lit: lit} }

func (t *literalRule) Match(s *State, _ ApplyMode, rw RewindMode) (bool, error) {
	in := s.Input()
	m := newMarker(in, rw)
	for _, want := range t.lit {
		c, size, err := in.Peek()
		if err != nil || c != want {
			m.rewind()
			return false, nil
		}
		s.take(size)
	}
	return true, nil
}

func (t *literalRule) Subs() []Rule   { return nil }
func (t *literalRule) String() string { return fmt.Sprintf("%q", t.lit) }
