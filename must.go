package pegtl

import "errors"

// Must matches exactly like the given rules on success.  When one of
// them fails softly it escalates instead: the failure becomes a
// *ParseError built by the Control's Raise, which then unwinds past
// every ordered choice and repetition until a TryCatch boundary or
// the top-level caller.  Variadic Must is sequential composition of
// per-rule Must, so the escalation names the exact rule that failed.
func Must(rules ...Rule) Rule {
	switch len(rules) {
	case 0:
		return Success()
	case 1:
		return &mustRule{sub: rules[0]}
	default:
		wrapped := make([]Rule, len(rules))
		for i, r := range rules {
			wrapped[i] = Must(r)
		}
		return Seq(wrapped...)
	}
}

type mustRule struct {
	sub Rule
}

func (r *mustRule) Match(s *State, ap ApplyMode, _ RewindMode) (bool, error) {
	// The failure path escalates rather than backtracks, so no
	// mark is needed here no matter what the caller holds.
	ok, err := s.Match(r.sub, ap, RewindDontCare)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, s.Raise(r.sub)
	}
	return true, nil
}

func (r *mustRule) Subs() []Rule   { return []Rule{r.sub} }
func (r *mustRule) String() string { return "must" }

// Raise unconditionally escalates, tagged with the given rule for
// diagnostics.  It never matches anything.
func Raise(tag Rule) Rule {
	return &raiseRule{tag: tag}
}

type raiseRule struct {
	tag Rule
}

func (r *raiseRule) Match(s *State, _ ApplyMode, _ RewindMode) (bool, error) {
	return false, s.Raise(r.tag)
}

func (r *raiseRule) Subs() []Rule   { return nil }
func (r *raiseRule) String() string { return "raise" }

// IfMust matches cond as an ordinary soft-failing rule; once cond has
// succeeded the grammar is committed, and any failure among the
// remaining rules is a hard error rather than a backtracking signal.
func IfMust(cond Rule, then ...Rule) Rule {
	return Seq(cond, Must(then...))
}

// IfThenElse matches then after cond succeeded, and otherwise else_.
func IfThenElse(cond, then, else_ Rule) Rule {
	return Sor(Seq(cond, then), Seq(NotAt(cond), else_))
}

// Until consumes the body repeatedly until cond matches, then matches
// cond.  With no body rules it consumes single runes.
func Until(cond Rule, body ...Rule) Rule {
	inner := Seq(body...)
	if len(body) == 0 {
		inner = Any()
	}
	return Seq(Star(NotAt(cond), inner), cond)
}

// List matches one or more items separated by sep.
func List(item, sep Rule) Rule {
	return Seq(item, Star(sep, item))
}

// ListMust is List where every item after a separator must match.
func ListMust(item, sep Rule) Rule {
	return Seq(item, Star(sep, Must(item)))
}

// TryCatch runs the given rules and converts an escalation from
// inside them back into an ordinary soft failure.  It is the
// embedding boundary for grammars that want to recover from hard
// failures at a chosen point.
func TryCatch(rules ...Rule) Rule {
	return &tryCatchRule{sub: Seq(rules...)}
}

type tryCatchRule struct {
	sub Rule
}

func (r *tryCatchRule) Match(s *State, ap ApplyMode, rw RewindMode) (bool, error) {
	m := newMarker(s.Input(), rw)
	ok, err := s.Match(r.sub, ap, m.next(rw))
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			m.rewind()
			return false, nil
		}
		return false, err
	}
	if !ok {
		m.rewind()
		return false, nil
	}
	return true, nil
}

func (r *tryCatchRule) Subs() []Rule   { return []Rule{r.sub} }
func (r *tryCatchRule) String() string { return "try_catch" }
