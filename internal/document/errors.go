package document

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDocument indicates a nil or released document.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrNotFound indicates the file does not exist on disk.
	ErrNotFound = errors.New("file not found")

	// ErrBusy indicates a release or reload of a dirty document without
	// the caller having confirmed the discard.
	ErrBusy = errors.New("document has unsaved changes")

	// ErrNoPath indicates a save with no destination path.
	ErrNoPath = errors.New("document has no file path")

	// ErrColouriseActive indicates DelayColourise while a batch is open.
	ErrColouriseActive = errors.New("colourise batch already active")

	// ErrColouriseInactive indicates CommitColourise without a batch.
	ErrColouriseInactive = errors.New("no colourise batch active")
)

// ShortWriteError reports a partial write. Unlike a clean failure before any
// byte was written, the target file may now be corrupt.
type ShortWriteError struct {
	Path     string
	Written  int
	Expected int
	Err      error
}

func (e *ShortWriteError) Error() string {
	return fmt.Sprintf("short write to %s: wrote %d of %d bytes, file may be corrupt",
		e.Path, e.Written, e.Expected)
}

func (e *ShortWriteError) Unwrap() error { return e.Err }
