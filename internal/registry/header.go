package registry

import "github.com/simonhull/photometa/internal/binary"

// ExifHeader is the identifier that precedes the TIFF structure in JPEG APP1
// segments, and optionally in PNG eXIf and WebP EXIF chunks.
const ExifHeader = "Exif\x00\x00"

// HasExifHeader reports whether the span starts with ExifHeader.
func HasExifHeader(sr *binary.SafeReader, s Span) bool {
	n := int64(len(ExifHeader))
	if s.Length < n {
		return false
	}
	b, err := sr.Bytes(s.Offset, n, "Exif header")
	return err == nil && string(b) == ExifHeader
}

// TrimExifHeader drops a leading ExifHeader from the span, if present.
func TrimExifHeader(sr *binary.SafeReader, s Span) Span {
	if !HasExifHeader(sr, s) {
		return s
	}
	n := int64(len(ExifHeader))
	return Span{Offset: s.Offset + n, Length: s.Length - n}
}
