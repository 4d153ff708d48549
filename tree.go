package pegtl

// Node is one vertex of a parse tree assembled by TreeControl.
type Node struct {
	Name     string
	Span     Span
	Text     string
	Children []*Node
}

// TreeControl decorates another Control and materializes a parse tree
// for a selected set of rule names.  Building happens inside the
// dispatch protocol rather than in an Action so that nodes produced
// inside an alternative that later fails are discarded with the
// frame, never adopted by a sibling.
type TreeControl struct {
	inner  Control
	keep   map[string]bool
	frames [][]*Node
}

// NewTreeControl wraps inner, keeping nodes for the given rule names.
// With no names every NamedRule match produces a node.
func NewTreeControl(inner Control, names ...string) *TreeControl {
	if inner == nil {
		inner = DefaultControl{}
	}
	var keep map[string]bool
	if len(names) > 0 {
		keep = make(map[string]bool, len(names))
		for _, n := range names {
			keep[n] = true
		}
	}
	return &TreeControl{
		inner:  inner,
		keep:   keep,
		frames: make([][]*Node, 1),
	}
}

func (c *TreeControl) wants(r Rule) bool {
	if c.keep == nil {
		_, named := r.(*NamedRule)
		return named
	}
	return c.keep[r.String()]
}

// Match opens a frame for every action-enabled invocation, kept rule
// or not.  Nodes only move up into the parent frame when the rule
// succeeds, so a node built inside an alternative that fails further
// up is discarded together with the failing frame instead of leaking
// into a sibling.
func (c *TreeControl) Match(r Rule, s *State, ap ApplyMode, rw RewindMode) (bool, error) {
	if ap != ApplyAction {
		return c.inner.Match(r, s, ap, rw)
	}
	start := s.Input().Save()
	c.frames = append(c.frames, nil)
	ok, err := c.inner.Match(r, s, ap, rw)
	kids := c.frames[len(c.frames)-1]
	c.frames = c.frames[:len(c.frames)-1]
	if err != nil || !ok {
		return ok, err
	}
	top := len(c.frames) - 1
	if !c.wants(r) {
		c.frames[top] = append(c.frames[top], kids...)
		return true, nil
	}
	end := s.Input().Save()
	node := &Node{
		Name:     r.String(),
		Span:     NewSpan(start.Location(), end.Location()),
		Text:     s.Input().Slice(start, end),
		Children: kids,
	}
	c.frames[top] = append(c.frames[top], node)
	return true, nil
}

func (c *TreeControl) Raise(r Rule, s *State) error {
	return c.inner.Raise(r, s)
}

// Root returns the assembled tree.  When the parse produced several
// top-level nodes they are wrapped under a synthetic root; when it
// produced none the result is nil.
func (c *TreeControl) Root() *Node {
	top := c.frames[0]
	switch len(top) {
	case 0:
		return nil
	case 1:
		return top[0]
	default:
		span := NewSpan(top[0].Span.Start, top[len(top)-1].Span.End)
		return &Node{Name: "root", Span: span, Children: top}
	}
}
