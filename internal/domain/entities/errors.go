package entities

import (
	"errors"
	"fmt"
)

// SlideFormat is the format every --slide value must follow
const SlideFormat = `Title|line1\nline2`

// Sentinel errors for generation
var (
	ErrMissingSeparator = errors.New("slide must use '" + SlideFormat + "' format")
	ErrWriteOutput      = errors.New("writing output document")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// FormatError reports a slide definition without a title/body separator
type FormatError struct {
	// Raw is the offending value as given by the author
	Raw string

	// Position is the 1-based position among --slide values (0 if unknown)
	Position int
}

// Error implements error
func (e *FormatError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("slide %d %q: %v", e.Position, e.Raw, ErrMissingSeparator)
	}
	return fmt.Sprintf("slide %q: %v", e.Raw, ErrMissingSeparator)
}

// Unwrap allows errors.Is(err, ErrMissingSeparator)
func (e *FormatError) Unwrap() error {
	return ErrMissingSeparator
}

// FilesystemError reports a failure to create or write the output document.
// The underlying OS error is preserved verbatim.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

// Error implements error
func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying OS error
func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrWriteOutput) match any filesystem failure
func (e *FilesystemError) Is(target error) bool {
	return target == ErrWriteOutput
}
