package pegtl

// Action is the observation hook fired after a rule matched, when the
// current apply mode allows it.  It receives the rule identity, the
// consumed span with its text, and the ambient state.  Events arrive
// depth-first, left-to-right, in the order sub-rules were attempted;
// downstream consumers such as tree builders rely on that ordering.
//
// An Action error is treated as a hard failure at the call site.
type Action interface {
	Apply(r Rule, span Span, text string, s *State) error
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func(r Rule, span Span, text string, s *State) error

func (f ActionFunc) Apply(r Rule, span Span, text string, s *State) error {
	return f(r, span, text, s)
}

// Control is the seam every rule invocation flows through.  Given a
// rule and the dispatch axes it decides whether and how to invoke the
// rule's intrinsic match operation, and when to fire the Action.
// Custom controls implement tracing, memoization or tree building by
// decorating the default one; Raise is how Must and Raise build the
// hard-failure error, so a control can also shape diagnostics.
type Control interface {
	Match(r Rule, s *State, ap ApplyMode, rw RewindMode) (bool, error)
	Raise(r Rule, s *State) error
}

// DefaultControl is the transparent pass-through protocol: invoke the
// rule, and on success under ApplyAction fire the Action with the
// consumed span before reporting success to the caller.
type DefaultControl struct{}

// actionSilent marks rules the Action hook must never fire for, the
// lookahead predicates being the only ones: a lookahead has no
// observable effects even about itself.
type actionSilent interface {
	actionSilent()
}

func (DefaultControl) Match(r Rule, s *State, ap ApplyMode, rw RewindMode) (bool, error) {
	if ap != ApplyAction || s.action == nil {
		return r.Match(s, ap, rw)
	}
	if _, silent := r.(actionSilent); silent {
		return r.Match(s, ap, rw)
	}
	start := s.in.Save()
	ok, err := r.Match(s, ap, rw)
	if err != nil || !ok {
		return ok, err
	}
	end := s.in.Save()
	if aerr := s.action.Apply(r, NewSpan(start.Location(), end.Location()), s.in.Slice(start, end), s); aerr != nil {
		return false, &ParseError{
			Rule:     r,
			Location: end.Location(),
			Message:  aerr.Error(),
		}
	}
	return true, nil
}

func (DefaultControl) Raise(r Rule, s *State) error {
	msg := s.messages[r.String()]
	if msg == "" {
		msg = "expected " + r.String()
	}
	return &ParseError{
		Rule:     r,
		Location: s.in.Location(),
		Message:  msg,
	}
}

// State carries everything mutable about one parse: the input cursor,
// the installed hooks, the furthest position reached, and an
// arbitrary Data value for grammar-author bookkeeping.  A State is
// owned exclusively by one match call chain; independent parses over
// separate States may run concurrently since rules themselves are
// immutable.
type State struct {
	in       Input
	control  Control
	action   Action
	messages map[string]string
	farthest Location

	// Data is free for Actions and custom Controls.
	Data any
}

// Option configures a State before a parse starts.
type Option func(*State)

// WithAction installs the Action hook.
func WithAction(a Action) Option {
	return func(s *State) { s.action = a }
}

// WithActionFunc installs a plain function as the Action hook.
func WithActionFunc(f ActionFunc) Option {
	return func(s *State) { s.action = f }
}

// WithControl replaces the default Control.
func WithControl(c Control) Option {
	return func(s *State) { s.control = c }
}

// WithMessages associates rule names with the message an escalation
// from that rule should carry, the way a grammar author labels the
// errors they declared with Must.
func WithMessages(m map[string]string) Option {
	return func(s *State) { s.messages = m }
}

// WithData attaches an ambient state value.
func WithData(d any) Option {
	return func(s *State) { s.Data = d }
}

// NewState builds a parse state over the given input.
func NewState(in Input, opts ...Option) *State {
	s := &State{
		in:       in,
		control:  DefaultControl{},
		farthest: in.Location(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Input returns the cursor this parse runs over.
func (s *State) Input() Input { return s.in }

// Match dispatches one rule invocation through the installed Control.
// Combinators call this for their sub-rules so hooks apply uniformly
// at every nesting level.
func (s *State) Match(r Rule, ap ApplyMode, rw RewindMode) (bool, error) {
	return s.control.Match(r, s, ap, rw)
}

// Raise builds the hard-failure escalation for r at the current
// position through the installed Control.
func (s *State) Raise(r Rule) error {
	return s.control.Raise(r, s)
}

// Farthest returns the furthest position consumption has reached.
func (s *State) Farthest() Location { return s.farthest }

// take consumes n bytes and keeps the furthest-reached position up to
// date for end-of-parse reporting.
func (s *State) take(n int) {
	s.in.Advance(n)
	if loc := s.in.Location(); loc.Offset > s.farthest.Offset {
		s.farthest = loc
	}
}

// Run matches root against the input.  It returns nil when the rule
// matched, a *NoMatchError when the grammar failed softly, and the
// unhandled *ParseError when a Must or Raise escalated all the way
// out.  Matching the rule does not by itself imply the whole input
// was consumed; grammars end with Eof when they want that.
func Run(root Rule, in Input, opts ...Option) error {
	s := NewState(in, opts...)
	ok, err := s.Match(root, ApplyAction, RewindRequired)
	if err != nil {
		return err
	}
	if !ok {
		return &NoMatchError{Location: s.farthest}
	}
	return nil
}

// RunString is Run over an in-memory input.
func RunString(root Rule, input string, opts ...Option) error {
	return Run(root, NewMemInput(input), opts...)
}
