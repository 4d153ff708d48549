package pegtl

// At is the positive lookahead: it succeeds iff the given rules would
// match at the current position.  It consumes nothing, restores the
// cursor after probing regardless of the outcome, and forces
// SkipAction on the probed subtree so a lookahead never has
// observable side effects.
func At(rules ...Rule) Rule {
	return &atRule{sub: Seq(rules...)}
}

type atRule struct {
	sub Rule
}

func (r *atRule) Match(s *State, _ ApplyMode, _ RewindMode) (bool, error) {
	in := s.Input()
	mark := in.Save()
	ok, err := s.Match(r.sub, SkipAction, RewindActive)
	if err != nil {
		return false, err
	}
	in.Restore(mark)
	return ok, nil
}

func (r *atRule) Subs() []Rule   { return []Rule{r.sub} }
func (r *atRule) String() string { return "at" }
func (r *atRule) actionSilent()  {}

// NotAt is the negative lookahead: it succeeds iff the given rules
// would not match at the current position.  Like At it is zero-width
// and action-suppressing.
func NotAt(rules ...Rule) Rule {
	return &notAtRule{sub: Seq(rules...)}
}

type notAtRule struct {
	sub Rule
}

func (r *notAtRule) Match(s *State, _ ApplyMode, _ RewindMode) (bool, error) {
	in := s.Input()
	mark := in.Save()
	ok, err := s.Match(r.sub, SkipAction, RewindActive)
	if err != nil {
		return false, err
	}
	in.Restore(mark)
	return !ok, nil
}

func (r *notAtRule) Subs() []Rule   { return []Rule{r.sub} }
func (r *notAtRule) String() string { return "not_at" }
func (r *notAtRule) actionSilent()  {}
