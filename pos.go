package pegtl

import "fmt"

// Location is a resolved position within the input.  Offset counts
// bytes from the start of the input, Line and Column are 1-indexed
// and column counts runes.
type Location struct {
	Offset int
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Span covers the stretch of input between two locations.
type Span struct {
	Start Location
	End   Location
}

func NewSpan(start, end Location) Span {
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	if s.Start.Line == s.End.Line && s.Start.Column == s.End.Column {
		return s.Start.String()
	}
	return fmt.Sprintf("%s..%s", s.Start, s.End)
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}
