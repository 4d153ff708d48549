package pegtl

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewFileInput loads a file through the given filesystem and returns
// an in-memory input over its contents.  A read failure surfaces as
// an *InputError, the category that prevents a parse attempt from
// starting; it is never confused with a parse failure.
func NewFileInput(fs afero.Fs, path string) (*MemInput, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, &InputError{Path: path, Err: errors.Wrap(err, "reading input")}
	}
	return NewMemInput(string(data)), nil
}

// NewReaderInput drains r into an in-memory input, decoding UTF-16
// inputs and stripping a leading byte order mark when one is present.
func NewReaderInput(r io.Reader) (*MemInput, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(transform.Nop))
	data, err := io.ReadAll(decoded)
	if err != nil {
		return nil, &InputError{Path: "<reader>", Err: errors.Wrap(err, "draining input")}
	}
	return NewMemInput(string(data)), nil
}
