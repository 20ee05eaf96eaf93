package types

import (
	"bytes"
	"io"

	"github.com/simonhull/photometa/internal/binary"
)

// Format represents the detected image container format.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatJPEG represents JPEG/JFIF/EXIF files.
	FormatJPEG
	// FormatTIFF represents TIFF files and TIFF-based raw formats.
	FormatTIFF
	// FormatPNG represents PNG files.
	FormatPNG
	// FormatWebP represents WebP files.
	FormatWebP
)

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "JPEG"
	case FormatTIFF:
		return "TIFF"
	case FormatPNG:
		return "PNG"
	case FormatWebP:
		return "WebP"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatJPEG:
		return []string{".jpg", ".jpeg", ".jpe"}
	case FormatTIFF:
		return []string{".tif", ".tiff", ".dng", ".nef", ".cr2", ".arw"}
	case FormatPNG:
		return []string{".png"}
	case FormatWebP:
		return []string{".webp"}
	default:
		return nil
	}
}

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}
)

// DetectFormat determines the image container by examining magic bytes.
//
// Detection never looks at the file extension. A TIFF header whose magic
// number is written in the opposite byte order to its marker is still
// reported as TIFF so the decoder can reject it as a malformed segment.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	if size < 4 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "file too small",
		}
	}

	sr := binary.NewSafeReader(r, size, path)

	magic := make([]byte, min(size, 12))
	if err := sr.ReadAt(magic, 0, "file magic bytes"); err != nil {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read file header",
		}
	}

	switch {
	case bytes.HasPrefix(magic, jpegMagic):
		return FormatJPEG, nil

	case isTIFFHeader(magic):
		return FormatTIFF, nil

	case len(magic) >= 8 && bytes.Equal(magic[:8], pngMagic):
		return FormatPNG, nil

	// RIFF....WEBP
	case len(magic) >= 12 && string(magic[0:4]) == "RIFF" && string(magic[8:12]) == "WEBP":
		return FormatWebP, nil
	}

	return FormatUnknown, &UnsupportedFormatError{
		Path:   path,
		Reason: "unrecognised file signature",
	}
}

// isTIFFHeader reports whether b starts with a TIFF byte-order marker
// followed by the value 42 in either byte order.
func isTIFFHeader(b []byte) bool {
	if len(b) < 4 {
		return false
	}
	if string(b[0:2]) != "II" && string(b[0:2]) != "MM" {
		return false
	}
	return (b[2] == 0x2A && b[3] == 0x00) || (b[2] == 0x00 && b[3] == 0x2A)
}
