package pegtl

// NamedRule gives a rule a stable name and, more importantly, the
// indirection recursive grammars need: a Go value cannot refer to
// itself while being built, so a grammar declares Named rules first
// and binds their bodies afterwards.
//
//	value := pegtl.Named("value")
//	value.Bind(pegtl.Sor(number, array))
//	array := pegtl.Seq(pegtl.Rune('['), pegtl.Opt(value), pegtl.Rune(']'))
//
// Named rules are also the identities the message map, the tree
// control and the analyzer report on.
type NamedRule struct {
	name string
	rule Rule
}

func Named(name string) *NamedRule {
	return &NamedRule{name: name}
}

// Bind attaches the rule body.  It returns the NamedRule so a
// definition can be bound in one statement when it is not recursive.
func (r *NamedRule) Bind(rule Rule) *NamedRule {
	r.rule = rule
	return r
}

func (r *NamedRule) Match(s *State, ap ApplyMode, rw RewindMode) (bool, error) {
	if r.rule == nil {
		return false, &ParseError{
			Rule:     r,
			Location: s.Input().Location(),
			Message:  "unbound rule " + r.name,
		}
	}
	return s.Match(r.rule, ap, rw)
}

func (r *NamedRule) Subs() []Rule {
	if r.rule == nil {
		return nil
	}
	return []Rule{r.rule}
}

func (r *NamedRule) String() string { return r.name }
