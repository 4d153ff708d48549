package pegtl

import lru "github.com/hashicorp/golang-lru"

type memoKey struct {
	rule Rule
	off  int
}

type memoEntry struct {
	ok  bool
	end Mark
}

// MemoControl decorates another Control with an LRU memo of rule
// outcomes, keyed by rule identity and input offset.  It only applies
// inside action-disabled subtrees, which is where a PEG re-probes the
// same rules at the same positions (lookahead followed by the real
// match); replaying a memoized hit there is safe because the subtree
// had no observable side effects the first time either.
type MemoControl struct {
	inner Control
	cache *lru.Cache
}

func NewMemoControl(inner Control, size int) (*MemoControl, error) {
	if inner == nil {
		inner = DefaultControl{}
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &MemoControl{inner: inner, cache: cache}, nil
}

func (c *MemoControl) Match(r Rule, s *State, ap ApplyMode, rw RewindMode) (bool, error) {
	if ap != SkipAction {
		return c.inner.Match(r, s, ap, rw)
	}
	in := s.Input()
	start := in.Save()
	key := memoKey{rule: r, off: start.Offset()}
	if v, hit := c.cache.Get(key); hit {
		e := v.(memoEntry)
		if e.ok {
			in.Restore(e.end)
		}
		return e.ok, nil
	}
	ok, err := c.inner.Match(r, s, ap, rw)
	if err != nil {
		return ok, err
	}
	end := in.Save()
	// A failure is only cacheable when the position was actually
	// restored; under RewindDontCare it may not have been.
	if ok || end.Offset() == start.Offset() {
		c.cache.Add(key, memoEntry{ok: ok, end: end})
	}
	return ok, nil
}

func (c *MemoControl) Raise(r Rule, s *State) error {
	return c.inner.Raise(r, s)
}
