package pegtl

// ApplyMode selects whether the Action hook fires for a subtree.
// Predicates force SkipAction on the rules they probe, since a
// lookahead must not have observable side effects.
type ApplyMode uint8

const (
	ApplyAction ApplyMode = iota
	SkipAction
)

func (m ApplyMode) String() string {
	if m == SkipAction {
		return "skip"
	}
	return "apply"
}

// RewindMode tells the callee who is responsible for restoring the
// input position should the callee consume and then fail.
//
//   - RewindRequired: the callee must establish its own mark.
//   - RewindActive: an ancestor holds a mark covering this call.
//   - RewindDontCare: nobody will ever need this position back.
//
// The mode is purely a performance axis.  It never changes which
// inputs match, only how much position-saving work is done.
type RewindMode uint8

const (
	RewindRequired RewindMode = iota
	RewindActive
	RewindDontCare
)

func (m RewindMode) String() string {
	switch m {
	case RewindRequired:
		return "required"
	case RewindActive:
		return "active"
	default:
		return "dontcare"
	}
}

// Rule is a single matching strategy.  Rules are immutable and
// stateless; all mutable state lives in the input cursor and in the
// State threaded through every call, so a rule value can be shared by
// any number of concurrent parses.
//
// Match reports a soft failure as (false, nil) and a hard failure as
// a non-nil *ParseError.  A non-nil error dominates the boolean.
// Implementations invoke their sub-rules through State.Match so the
// installed Control wraps every nesting level uniformly.
type Rule interface {
	Match(s *State, ap ApplyMode, rw RewindMode) (bool, error)

	// Subs returns the rule's immediate children in order.  It is
	// empty for terminals and is what generic tooling, like the
	// static analyzer, traverses.
	Subs() []Rule

	String() string
}
