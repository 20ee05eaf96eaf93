// Package webp locates the EXIF chunk inside WebP files.
package webp

import (
	"fmt"
	"io"

	"github.com/simonhull/photometa/internal/binary"
	"github.com/simonhull/photometa/internal/registry"
	"github.com/simonhull/photometa/internal/types"
)

const (
	riffHeaderSize  = 12 // "RIFF" + size + "WEBP"
	chunkHeaderSize = 8  // FourCC + size
)

type reader struct{}

func init() {
	registry.Register(types.FormatWebP, &reader{})
}

// FindSegment walks the RIFF chunks and returns the data of the EXIF chunk.
// Chunk sizes are little-endian and odd-sized chunks carry one padding byte.
func (r *reader) FindSegment(ra io.ReaderAt, size int64, path string) (registry.Span, error) {
	sr := binary.NewSafeReader(ra, size, path)

	riffSize, err := binary.ReadLE[uint32](sr, 4, "RIFF size")
	if err != nil {
		return registry.Span{}, formatError(path, 4, "truncated RIFF header", err)
	}
	// Trailing bytes after the RIFF payload are not part of the image.
	end := min(size, 8+int64(riffSize))

	offset := int64(riffHeaderSize)
	for offset < end {
		if offset+chunkHeaderSize > end {
			return registry.Span{}, formatError(path, offset, "truncated chunk header", nil)
		}

		fourCC, err := sr.Bytes(offset, 4, "chunk FourCC")
		if err != nil {
			return registry.Span{}, formatError(path, offset, "truncated chunk header", err)
		}
		length, err := binary.ReadLE[uint32](sr, offset+4, "chunk size")
		if err != nil {
			return registry.Span{}, formatError(path, offset, "truncated chunk header", err)
		}

		data := registry.Span{Offset: offset + chunkHeaderSize, Length: int64(length)}
		if data.Length > end-data.Offset {
			return registry.Span{}, formatError(path, offset,
				fmt.Sprintf("%s chunk of %d bytes extends past end of file", fourCC, length), nil)
		}

		if string(fourCC) == "EXIF" {
			return registry.TrimExifHeader(sr, data), nil
		}

		offset = data.Offset + data.Length + data.Length&1
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
