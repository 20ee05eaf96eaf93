// Package jpeg locates the EXIF APP1 segment inside JPEG files.
package jpeg

import (
	"fmt"
	"io"

	"github.com/simonhull/photometa/internal/binary"
	"github.com/simonhull/photometa/internal/registry"
	"github.com/simonhull/photometa/internal/types"
)

// Marker codes (the byte following 0xFF).
const (
	markerTEM  = 0x01
	markerRST0 = 0xD0
	markerRST7 = 0xD7
	markerSOI  = 0xD8
	markerEOI  = 0xD9
	markerSOS  = 0xDA
	markerAPP1 = 0xE1
)

// reader implements registry.SegmentReader for JPEG files.
type reader struct{}

func init() {
	registry.Register(types.FormatJPEG, &reader{})
}

// FindSegment walks the marker segments that precede the compressed scan and
// returns the payload of the first APP1 segment carrying EXIF data.
func (r *reader) FindSegment(ra io.ReaderAt, size int64, path string) (registry.Span, error) {
	sr := binary.NewSafeReader(ra, size, path)

	offset := int64(2) // after SOI
	for offset < size {
		prefix, err := binary.Read[uint8](sr, offset, "marker prefix")
		if err != nil {
			return registry.Span{}, formatError(path, offset, "failed to read marker", err)
		}
		if prefix != 0xFF {
			return registry.Span{}, formatError(path, offset,
				fmt.Sprintf("expected marker, found byte 0x%02X", prefix), nil)
		}

		// Any number of 0xFF fill bytes may precede the marker code.
		marker := byte(0xFF)
		for marker == 0xFF {
			offset++
			marker, err = binary.Read[uint8](sr, offset, "marker code")
			if err != nil {
				return registry.Span{}, formatError(path, offset, "truncated marker", err)
			}
		}
		offset++

		switch {
		case marker == markerSOS, marker == markerEOI:
			return registry.Span{}, nil
		case marker == markerTEM, marker == markerSOI, marker >= markerRST0 && marker <= markerRST7:
			continue
		case marker == 0x00:
			return registry.Span{}, formatError(path, offset-2, "stuffed byte outside entropy-coded data", nil)
		}

		length, err := binary.Read[uint16](sr, offset, "segment length")
		if err != nil {
			return registry.Span{}, formatError(path, offset, "truncated segment length", err)
		}
		if length < 2 {
			return registry.Span{}, formatError(path, offset,
				fmt.Sprintf("marker 0x%02X declares length %d", marker, length), nil)
		}

		payload := registry.Span{Offset: offset + 2, Length: int64(length) - 2}
		if !sr.InBounds(payload.Offset, payload.Length) {
			return registry.Span{}, formatError(path, offset,
				fmt.Sprintf("marker 0x%02X segment of %d bytes extends past end of file", marker, payload.Length), nil)
		}

		if marker == markerAPP1 && registry.HasExifHeader(sr, payload) {
			return registry.TrimExifHeader(sr, payload), nil
		}

		offset = payload.Offset + payload.Length
	}

	return registry.Span{}, nil
}

func formatError(path string, offset int64, reason string, err error) error {
	return &types.ContainerFormatError{
		Path:   path,
		Offset: offset,
		Reason: reason,
		Err:    err,
	}
}
