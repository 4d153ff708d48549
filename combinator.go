package pegtl

import "fmt"

// Seq matches every rule in order at the then-current position.  With
// no rules it reduces to Success, with one it is that rule itself.
func Seq(rules ...Rule) Rule {
	switch len(rules) {
	case 0:
		return Success()
	case 1:
		return rules[0]
	default:
		return &seqRule{subs: rules}
	}
}

type seqRule struct {
	subs []Rule
}

func (r *seqRule) Match(s *State, ap ApplyMode, rw RewindMode) (bool, error) {
	m := newMarker(s.Input(), rw)
	next := m.next(rw)
	for _, sub := range r.subs {
		ok, err := s.Match(sub, ap, next)
		if err != nil {
			return false, err
		}
		if !ok {
			m.rewind()
			return false, nil
		}
	}
	return true, nil
}

func (r *seqRule) Subs() []Rule   { return r.subs }
func (r *seqRule) String() string { return "seq" }

// Sor is ordered choice: alternatives are tried strictly in
// declaration order and the first match wins, with no further
// alternatives attempted.  An empty Sor is a grammar definition
// error, so the constructor panics rather than producing a rule that
// can never be evaluated meaningfully.
func Sor(rules ...Rule) Rule {
	switch len(rules) {
	case 0:
		panic("pegtl: Sor requires at least one alternative")
	case 1:
		return rules[0]
	default:
		return &sorRule{subs: rules}
	}
}

type sorRule struct {
	subs []Rule
}

func (r *sorRule) Match(s *State, ap ApplyMode, rw RewindMode) (bool, error) {
	last := len(r.subs) - 1
	for i, sub := range r.subs {
		mode := RewindRequired
		if i == last {
			mode = rw
		}
		ok, err := s.Match(sub, ap, mode)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (r *sorRule) Subs() []Rule   { return r.subs }
func (r *sorRule) String() string { return "sor" }

// Opt matches the given rules as a unit if possible and succeeds
// either way.
func Opt(rules ...Rule) Rule {
	return &optRule{sub: Seq(rules...)}
}

type optRule struct {
	sub Rule
}

func (r *optRule) Match(s *State, ap ApplyMode, _ RewindMode) (bool, error) {
	// The sub-rule restores its own consumption on failure, so the
	// caller's rewind mode is irrelevant here.
	_, err := s.Match(r.sub, ap, RewindRequired)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *optRule) Subs() []Rule   { return []Rule{r.sub} }
func (r *optRule) String() string { return "opt" }

// Star greedily matches the given rules as a unit zero or more times.
// It never backtracks into already-matched repetitions and always
// succeeds.
func Star(rules ...Rule) Rule {
	return &repRule{name: "star", sub: Seq(rules...), min: 0, max: -1}
}

// Plus matches the given rules as a unit one or more times.
func Plus(rules ...Rule) Rule {
	return &repRule{name: "plus", sub: Seq(rules...), min: 1, max: -1}
}

// Rep matches the given rules as a unit exactly n times.
func Rep(n int, rules ...Rule) Rule {
	return &repRule{name: fmt.Sprintf("rep<%d>", n), sub: Seq(rules...), min: n, max: n}
}

// RepMin matches the given rules as a unit at least n times.
func RepMin(n int, rules ...Rule) Rule {
	return &repRule{name: fmt.Sprintf("rep_min<%d>", n), sub: Seq(rules...), min: n, max: -1}
}

// RepMax matches the given rules as a unit at most n times, and fails
// when they would match again past the bound.
func RepMax(n int, rules ...Rule) Rule {
	sub := Seq(rules...)
	return &repRule{
		name:  fmt.Sprintf("rep_max<%d>", n),
		sub:   sub,
		min:   0,
		max:   n,
		guard: NotAt(sub),
	}
}

// RepMinMax matches the given rules as a unit between n and m times
// inclusive, and fails when they would match again past the bound.
func RepMinMax(n, m int, rules ...Rule) Rule {
	if n > m {
		panic("pegtl: RepMinMax with min > max")
	}
	sub := Seq(rules...)
	return &repRule{
		name:  fmt.Sprintf("rep_min_max<%d,%d>", n, m),
		sub:   sub,
		min:   n,
		max:   m,
		guard: NotAt(sub),
	}
}

// repRule is the shared engine behind all repetition shapes.  min is
// the mandatory count, max is the bound (-1 for unbounded), and guard
// is the optional trailing not-at probe of the bounded variants.
type repRule struct {
	name  string
	sub   Rule
	min   int
	max   int
	guard Rule
}

func (r *repRule) Match(s *State, ap ApplyMode, rw RewindMode) (bool, error) {
	m := newMarker(s.Input(), rw)
	next := m.next(rw)
	count := 0
	for r.max < 0 || count < r.max {
		// Mandatory repetitions are covered by this frame's
		// mark; optional extras must restore only themselves.
		mode := next
		if count >= r.min {
			mode = RewindRequired
		}
		ok, err := s.Match(r.sub, ap, mode)
		if err != nil {
			return false, err
		}
		if !ok {
			if count < r.min {
				m.rewind()
				return false, nil
			}
			return true, nil
		}
		count++
	}
	if r.guard != nil {
		ok, err := s.Match(r.guard, ap, next)
		if err != nil {
			return false, err
		}
		if !ok {
			m.rewind()
			return false, nil
		}
	}
	return true, nil
}

func (r *repRule) Subs() []Rule   { return []Rule{r.sub} }
func (r *repRule) String() string { return r.name }
