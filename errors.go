package pegtl

import "fmt"

// ParseError is the hard failure raised by Must and Raise.  Once
// created it propagates past every ordered choice and repetition
// until a TryCatch boundary or the top-level caller receives it;
// ordinary soft-failure recovery never swallows it and never rewinds
// the cursor past it.
type ParseError struct {
	Rule     Rule
	Location Location
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s @ %s", e.Message, e.Location)
}

// NoMatchError reports that the whole grammar failed softly: no rule
// matched and nothing escalated.  Location is the furthest position
// the parse reached before giving up.
type NoMatchError struct {
	Location Location
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("input does not match grammar @ %s", e.Location)
}

// InputError reports that an input source could not be prepared, for
// instance an unreadable file.  It is a category of its own: it
// prevents a parse attempt from starting and is never conflated with
// a soft or hard parse failure.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input %s: %s", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }
