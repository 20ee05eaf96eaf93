package exiftest

import (
	"bytes"

	"github.com/simonhull/photometa/internal/binary"
)

// exifHeader prefixes the TIFF structure inside a JPEG APP1 segment.
const exifHeader = "Exif\x00\x00"

// JPEG wraps an EXIF segment in a minimal JPEG: SOI, APP0 (JFIF), APP1
// (EXIF), SOS with a few bytes of scan data, EOI. A nil segment produces a
// JPEG without an APP1 segment.
func JPEG(segment []byte) []byte {
	buf := &bytes.Buffer{}
	sw := binary.NewSafeWriter(buf)

	_ = sw.WriteBytes([]byte{0xFF, 0xD8})

	jfif := []byte("JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
	writeMarker(sw, 0xE0, jfif)

	if segment != nil {
		writeMarker(sw, 0xE1, append([]byte(exifHeader), segment...))
	}

	sos := []byte{0x01, 0x01, 0x00, 0x00, 0x3F, 0x00}
	writeMarker(sw, 0xDA, sos)
	_ = sw.WriteBytes([]byte{0x12, 0x34, 0x56, 0x78})
	_ = sw.WriteBytes([]byte{0xFF, 0xD9})

	return buf.Bytes()
}

// writeMarker writes a JPEG marker segment with its big-endian length.
func writeMarker(sw *binary.SafeWriter, marker byte, payload []byte) {
	_ = sw.WriteBytes([]byte{0xFF, marker})
	_ = binary.WriteBE(sw, uint16(len(payload)+2))
	_ = sw.WriteBytes(payload)
}

// PNG wraps an EXIF segment in a minimal PNG: signature, IHDR, eXIf, IEND.
// CRC fields are written as zero. A nil segment omits the eXIf chunk.
func PNG(segment []byte) []byte {
	buf := &bytes.Buffer{}
	sw := binary.NewSafeWriter(buf)

	_ = sw.WriteBytes([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'})

	ihdr := []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 2, 0, 0, 0}
	writeChunk(sw, "IHDR", ihdr)
	if segment != nil {
		writeChunk(sw, "eXIf", segment)
	}
	writeChunk(sw, "IEND", nil)

	return buf.Bytes()
}

func writeChunk(sw *binary.SafeWriter, typ string, data []byte) {
	_ = binary.WriteBE(sw, uint32(len(data)))
	_ = sw.WriteString(typ)
	_ = sw.WriteBytes(data)
	_ = binary.WriteBE[uint32](sw, 0)
}

// WebP wraps an EXIF segment in a minimal extended WebP: RIFF header, VP8X,
// EXIF chunk. A nil segment omits the EXIF chunk.
func WebP(segment []byte) []byte {
	body := &bytes.Buffer{}
	bw := binary.NewOrderedWriter(body, binary.LittleEndian)

	_ = bw.WriteString("WEBP")

	vp8x := make([]byte, 10)
	if segment != nil {
		vp8x[0] = 0x08 // EXIF present
	}
	writeRIFFChunk(bw, "VP8X", vp8x)
	if segment != nil {
		writeRIFFChunk(bw, "EXIF", segment)
	}

	buf := &bytes.Buffer{}
	sw := binary.NewOrderedWriter(buf, binary.LittleEndian)
	_ = sw.WriteString("RIFF")
	_ = binary.Write(sw, uint32(body.Len()))
	_ = sw.WriteBytes(body.Bytes())

	return buf.Bytes()
}

func writeRIFFChunk(sw *binary.SafeWriter, fourCC string, data []byte) {
	_ = sw.WriteString(fourCC)
	_ = binary.WriteLE(sw, uint32(len(data)))
	_ = sw.WriteBytes(data)
	_ = sw.Pad(2)
}

// Sample returns the segment used across the package tests: a Canon-style
// camera with the exposure values and GPS position from the reference photo.
func Sample(order binary.Endianness) Segment {
	return Segment{
		Order: order,
		Primary: []Entry{
			ASCII(0x010F, "Canon"),
			ASCII(0x0110, "Canon EOS 5D Mark IV"),
			ASCII(0x0132, "2023:06:15 14:30:45"),
			Short(0x0112, 1),
		},
		Exif: []Entry{
			Rational(0x829A, 1, 200),
			Rational(0x829D, 28, 10),
			Short(0x8827, 400),
			Short(0x9209, 0x0010),
			Rational(0x920A, 50, 1),
			ASCII(0x9003, "2023:06:15 14:30:45"),
		},
		GPS: []Entry{
			ASCII(0x0001, "N"),
			DMS(0x0002, 40, 26, 46),
			ASCII(0x0003, "W"),
			DMS(0x0004, 79, 58, 56),
		},
	}
}
