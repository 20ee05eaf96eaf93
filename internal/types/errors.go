package types

import (
	"fmt"

	"github.com/simonhull/photometa/internal/binary"
)

// OutOfBoundsError is returned when attempting to read beyond a file or segment.
type OutOfBoundsError = binary.OutOfBoundsError

// IOError is returned when the image file cannot be opened or read.
type IOError struct {
	Err  error
	Path string
	Op   string
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError is returned when the file signature matches no
// supported image container.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// ContainerFormatError is returned when a recognised container or its EXIF
// segment is structurally invalid.
type ContainerFormatError struct {
	Err    error
	Path   string
	Reason string
	Offset int64
}

func (e *ContainerFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid container at offset %d: %s: %v", e.Path, e.Offset, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: invalid container at offset %d: %s", e.Path, e.Offset, e.Reason)
}

func (e *ContainerFormatError) Unwrap() error {
	return e.Err
}

// Warning represents a non-fatal issue encountered during extraction.
//
// Warnings describe tags that were present but could not be interpreted,
// such as a rational with a zero denominator or a malformed date. The
// affected field is left absent; every other field is still extracted.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "container", "decode", "interpret"

	// Warning message
	Message string

	// Segment offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
