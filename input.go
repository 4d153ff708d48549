package pegtl

import (
	"io"
	"unicode/utf8"
)

// Mark captures a restorable input position.  Restoring a mark brings
// the cursor back to the exact offset, line and column it was saved
// at, no matter how much was consumed in between.
type Mark struct {
	off  int
	line int
	col  int
}

// Offset returns the byte offset the mark was taken at.
func (m Mark) Offset() int { return m.off }

// Location resolves the mark into a Location.
func (m Mark) Location() Location {
	return Location{Offset: m.off, Line: m.line, Column: m.col}
}

// Input is the cursor contract the matching engine consumes.  The
// engine never depends on how a concrete source represents positions
// beyond these operations.
type Input interface {
	// Peek returns the rune under the cursor and its size in
	// bytes without consuming it.  It returns io.EOF when the
	// input is exhausted.
	Peek() (rune, int, error)

	// Advance moves the cursor forward by n bytes, keeping line
	// and column bookkeeping in sync.
	Advance(n int)

	// Save captures the current position.
	Save() Mark

	// Restore resets the cursor to a previously saved mark.
	Restore(Mark)

	// AtEnd reports whether the whole input has been consumed.
	AtEnd() bool

	// Slice returns the input text between two marks.
	Slice(start, end Mark) string

	// Location resolves the current position.
	Location() Location
}

// MemInput is an in-memory input source over a UTF-8 string.  Line
// and column are tracked eagerly so that Save and Restore are plain
// struct copies.
type MemInput struct {
	data string
	off  int
	line int
	col  int
}

func NewMemInput(data string) *MemInput {
	return &MemInput{data: data, line: 1, col: 1}
}

func (in *MemInput) Peek() (rune, int, error) {
	if in.off >= len(in.data) {
		return 0, 0, io.EOF
	}
	if b := in.data[in.off]; b < utf8.RuneSelf {
		return rune(b), 1, nil
	}
	r, size := utf8.DecodeRuneInString(in.data[in.off:])
	return r, size, nil
}

func (in *MemInput) Advance(n int) {
	end := in.off + n
	if end > len(in.data) {
		end = len(in.data)
	}
	for in.off < end {
		r, size := utf8.DecodeRuneInString(in.data[in.off:])
		if size == 0 {
			break
		}
		in.off += size
		in.col++
		if r == '\n' {
			in.line++
			in.col = 1
		}
	}
}

func (in *MemInput) Save() Mark {
	return Mark{off: in.off, line: in.line, col: in.col}
}

func (in *MemInput) Restore(m Mark) {
	in.off = m.off
	in.line = m.line
	in.col = m.col
}

func (in *MemInput) AtEnd() bool {
	return in.off >= len(in.data)
}

func (in *MemInput) Slice(start, end Mark) string {
	return in.data[start.off:end.off]
}

func (in *MemInput) Location() Location {
	return Location{Offset: in.off, Line: in.line, Column: in.col}
}

// marker implements the mark-rewind discipline.  It arms itself only
// when the caller's rewind mode is RewindRequired; under RewindActive
// an ancestor already holds a mark covering this frame, and under
// RewindDontCare the caller guarantees no rewind will ever be needed.
type marker struct {
	in    Input
	mark  Mark
	armed bool
}

func newMarker(in Input, rw RewindMode) marker {
	if rw == RewindRequired {
		return marker{in: in, mark: in.Save(), armed: true}
	}
	return marker{in: in}
}

// next returns the rewind mode sub-rules of this frame run under.
func (m *marker) next(rw RewindMode) RewindMode {
	if m.armed {
		return RewindActive
	}
	return rw
}

// rewind restores the saved position, when there is one.  Escalation
// paths never call it: a hard failure releases marks, it does not
// backtrack.
func (m *marker) rewind() {
	if m.armed {
		m.in.Restore(m.mark)
	}
}
