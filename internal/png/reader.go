// Package png locates the eXIf chunk inside PNG files.
package png

import (
	"fmt"
	"io"

	"github.com/simonhull/photometa/internal/binary"
	"github.com/simonhull/photometa/internal/registry"
	"github.com/simonhull/photometa/internal/types"
)

const (
	signatureSize   = 8
	chunkHeaderSize = 8 // length + type
	chunkCRCSize    = 4
)

type reader struct{}

func init() {
	registry.Register(types.FormatPNG, &reader{})
}

// FindSegment walks the chunk list up to IEND and returns the data of the
// eXIf chunk. CRCs are not verified.
func (r *reader) FindSegment(ra io.ReaderAt, size int64, path string) (registry.Span, error) {
	sr := binary.NewSafeReader(ra, size, path)

	offset := int64(signatureSize)
	for offset < size {
		length, err := binary.Read[uint32](sr, offset, "chunk length")
		if err != nil {
			return registry.Span{}, formatError(path, offset, "truncated chunk header", err)
		}
		typ, err := sr.Bytes(offset+4, 4, "chunk type")
		if err != nil {
			return registry.Span{}, formatError(path, offset, "truncated chunk header", err)
		}

		data := registry.Span{Offset: offset + chunkHeaderSize, Length: int64(length)}
		if !sr.InBounds(data.Offset, data.Length+chunkCRCSize) {
			return registry.Span{}, formatError(path, offset,
				fmt.Sprintf("%s chunk of %d bytes extends past end of file", typ, length), nil)
		}

		switch string(typ) {
		case "eXIf":
			return registry.TrimExifHeader(sr, data), nil
		case "IEND":
			return registry.Span{}, nil
		}

		offset = data.Offset + data.Length + chunkCRCSize
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
