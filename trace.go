package pegtl

import "go.uber.org/zap"

// TraceControl decorates another Control and logs every rule
// invocation: entry position, outcome, and consumed span on success.
// It changes no matching behavior, it only observes.
type TraceControl struct {
	inner Control
	log   *zap.SugaredLogger
	depth int
}

func NewTraceControl(inner Control, log *zap.Logger) *TraceControl {
	if inner == nil {
		inner = DefaultControl{}
	}
	return &TraceControl{inner: inner, log: log.Sugar()}
}

func (c *TraceControl) Match(r Rule, s *State, ap ApplyMode, rw RewindMode) (bool, error) {
	start := s.Input().Location()
	c.log.Debugw("enter",
		"rule", r.String(),
		"pos", start.String(),
		"depth", c.depth,
		"apply", ap.String(),
		"rewind", rw.String(),
	)
	c.depth++
	ok, err := c.inner.Match(r, s, ap, rw)
	c.depth--
	switch {
	case err != nil:
		c.log.Debugw("escalate", "rule", r.String(), "depth", c.depth, "err", err.Error())
	case ok:
		end := s.Input().Location()
		c.log.Debugw("success",
			"rule", r.String(),
			"depth", c.depth,
			"span", NewSpan(start, end).String(),
		)
	default:
		c.log.Debugw("failure", "rule", r.String(), "depth", c.depth, "pos", start.String())
	}
	return ok, err
}

func (c *TraceControl) Raise(r Rule, s *State) error {
	err := c.inner.Raise(r, s)
	c.log.Debugw("raise", "rule", r.String(), "pos", s.Input().Location().String())
	return err
}
