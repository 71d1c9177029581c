package encoding

import (
	"errors"
	"fmt"
)

// Errors returned by encoding operations.
var (
	// ErrForcedEncodingInvalid indicates the data is not valid in the
	// encoding the caller forced.
	ErrForcedEncodingInvalid = errors.New("data is not valid in the forced encoding")

	// ErrUndetectableEncoding indicates no supported charset could decode
	// the data.
	ErrUndetectableEncoding = errors.New("file encoding could not be detected")

	// ErrUnknownCharset indicates a charset name with no registered codec.
	ErrUnknownCharset = errors.New("unknown charset")
)

// ConvertError reports a failed conversion from canonical text to a target
// charset. Offset is the byte position of the first untranslatable character
// in the canonical (UTF-8) text; Context is that character, for display.
type ConvertError struct {
	Charset string
	Offset  int
	Context string
	Err     error
}

// Error implements the error interface.
func (e *ConvertError) Error() string {
	return fmt.Sprintf("cannot convert to %s: untranslatable character %q at byte %d",
		e.Charset, e.Context, e.Offset)
}

// Unwrap returns the underlying transform error.
func (e *ConvertError) Unwrap() error {
	return e.Err
}
