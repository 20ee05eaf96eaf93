// Package registry manages the container readers that locate EXIF segments.
package registry

import (
	"io"

	"github.com/simonhull/photometa/internal/types"
)

// Span locates a byte range inside a file. A zero Length means the
// container carries no EXIF segment.
type Span struct {
	Offset int64
	Length int64
}

// Empty reports whether the span holds no bytes.
func (s Span) Empty() bool {
	return s.Length == 0
}

// SegmentReader locates the raw EXIF segment inside an image container.
type SegmentReader interface {
	// FindSegment returns the location of the TIFF-structured EXIF bytes
	// embedded in the container. The bytes themselves are read by the
	// caller, which may refuse oversized segments first.
	FindSegment(r io.ReaderAt, size int64, path string) (Span, error)
}

// readers maps formats to their segment readers.
var readers = make(map[types.Format]SegmentReader)

// Register registers a segment reader for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, reader SegmentReader) {
	readers[format] = reader
}

// Get returns the segment reader for a given format.
// Returns nil if no reader is registered for the format.
func Get(format types.Format) SegmentReader {
	return readers[format]
}
