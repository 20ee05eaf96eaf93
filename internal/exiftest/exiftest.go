// Package exiftest builds synthetic EXIF segments and image containers for tests.
package exiftest

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/simonhull/photometa/internal/binary"
)

// Tag ids used by the builders.
const (
	tagExifIFDPointer    = 0x8769
	tagGPSInfoIFDPointer = 0x8825
)

// Entry is one directory entry before encoding.
type Entry struct {
	ascii []byte
	ints  []uint32
	rats  [][2]uint32
	raw   []byte
	Tag   uint16
	Type  uint16
}

// ASCII returns a type 2 entry holding s followed by a NUL terminator.
func ASCII(tag uint16, s string) Entry {
	return Entry{Tag: tag, Type: 2, ascii: append([]byte(s), 0)}
}

// Short returns a type 3 entry.
func Short(tag uint16, values ...uint16) Entry {
	ints := make([]uint32, len(values))
	for i, v := range values {
		ints[i] = uint32(v)
	}
	return Entry{Tag: tag, Type: 3, ints: ints}
}

// Long returns a type 4 entry.
func Long(tag uint16, values ...uint32) Entry {
	return Entry{Tag: tag, Type: 4, ints: values}
}

// Rational returns a type 5 entry with a single component.
func Rational(tag uint16, num, den uint32) Entry {
	return Entry{Tag: tag, Type: 5, rats: [][2]uint32{{num, den}}}
}

// Rationals returns a type 5 entry with one component per pair.
func Rationals(tag uint16, pairs ...[2]uint32) Entry {
	return Entry{Tag: tag, Type: 5, rats: pairs}
}

// DMS returns a three-component rational entry for whole degrees, minutes
// and seconds.
func DMS(tag uint16, deg, minutes, seconds uint32) Entry {
	return Rationals(tag, [2]uint32{deg, 1}, [2]uint32{minutes, 1}, [2]uint32{seconds, 1})
}

// Undefined returns a type 7 entry holding raw bytes.
func Undefined(tag uint16, data []byte) Entry {
	return Entry{Tag: tag, Type: 7, raw: data}
}

// Count returns the component count written for the entry.
func (e Entry) Count() uint32 {
	switch {
	case e.ascii != nil:
		return uint32(len(e.ascii))
	case e.rats != nil:
		return uint32(len(e.rats))
	case e.raw != nil:
		return uint32(len(e.raw))
	default:
		return uint32(len(e.ints))
	}
}

// encodeData returns the value bytes of the entry in the given order.
func (e Entry) encodeData(order binary.Endianness) []byte {
	buf := &bytes.Buffer{}
	sw := binary.NewOrderedWriter(buf, order)

	switch {
	case e.ascii != nil:
		_ = sw.WriteBytes(e.ascii)
	case e.raw != nil:
		_ = sw.WriteBytes(e.raw)
	case e.rats != nil:
		for _, r := range e.rats {
			_ = binary.Write(sw, r[0])
			_ = binary.Write(sw, r[1])
		}
	case e.Type == 3:
		for _, v := range e.ints {
			_ = binary.Write(sw, uint16(v))
		}
	default:
		for _, v := range e.ints {
			_ = binary.Write(sw, v)
		}
	}

	return buf.Bytes()
}

// Segment describes a TIFF-structured EXIF segment.
type Segment struct {
	Primary []Entry
	Exif    []Entry
	GPS     []Entry
	Order   binary.Endianness
}

// Bytes encodes the segment. Pointer entries for non-empty Exif and GPS
// IFDs are added to the primary IFD automatically.
//
// Layout: header, IFD0 and its data, Exif IFD and its data, GPS IFD and its
// data. Each IFD is followed by a zero next-IFD offset.
func (s Segment) Bytes() []byte {
	primary := slices.Clone(s.Primary)
	if len(s.Exif) > 0 {
		primary = append(primary, Long(tagExifIFDPointer, 0))
	}
	if len(s.GPS) > 0 {
		primary = append(primary, Long(tagGPSInfoIFDPointer, 0))
	}

	ifd0Len := int64(len(encodeIFD(primary, headerSize, s.Order)))
	exifOff := headerSize + ifd0Len
	var exif []byte
	if len(s.Exif) > 0 {
		exif = encodeIFD(s.Exif, exifOff, s.Order)
	}
	gpsOff := exifOff + int64(len(exif))
	var gps []byte
	if len(s.GPS) > 0 {
		gps = encodeIFD(s.GPS, gpsOff, s.Order)
	}

	for i := range primary {
		switch primary[i].Tag {
		case tagExifIFDPointer:
			if len(s.Exif) > 0 {
				primary[i] = Long(tagExifIFDPointer, uint32(exifOff))
			}
		case tagGPSInfoIFDPointer:
			if len(s.GPS) > 0 {
				primary[i] = Long(tagGPSInfoIFDPointer, uint32(gpsOff))
			}
		}
	}

	buf := &bytes.Buffer{}
	sw := binary.NewOrderedWriter(buf, s.Order)
	_ = sw.WriteString(s.Order.String())
	_ = binary.Write[uint16](sw, 42)
	_ = binary.Write[uint32](sw, headerSize)
	_ = sw.WriteBytes(encodeIFD(primary, headerSize, s.Order))
	_ = sw.WriteBytes(exif)
	_ = sw.WriteBytes(gps)

	return buf.Bytes()
}

const headerSize = 8

// encodeIFD encodes entries as an IFD placed at absolute offset start, with
// out-of-line values stored directly after the entry table.
func encodeIFD(entries []Entry, start int64, order binary.Endianness) []byte {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int { return int(a.Tag) - int(b.Tag) })

	table := &bytes.Buffer{}
	data := &bytes.Buffer{}
	tw := binary.NewOrderedWriter(table, order)
	dw := binary.NewOrderedWriter(data, order)

	dataStart := start + 2 + int64(len(sorted))*12 + 4

	_ = binary.Write(tw, uint16(len(sorted)))
	for _, e := range sorted {
		value := e.encodeData(order)

		_ = binary.Write(tw, e.Tag)
		_ = binary.Write(tw, e.Type)
		_ = binary.Write(tw, e.Count())

		if len(value) <= 4 {
			inline := make([]byte, 4)
			copy(inline, value)
			_ = tw.WriteBytes(inline)
			continue
		}

		_ = binary.Write(tw, uint32(dataStart+dw.Offset()))
		_ = dw.WriteBytes(value)
		_ = dw.Pad(2)
	}
	_ = binary.Write[uint32](tw, 0) // next IFD

	return append(table.Bytes(), data.Bytes()...)
}

// WriteFile writes data to a file named name inside a per-test temporary
// directory and returns its path.
func WriteFile(tb testing.TB, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatal(err)
	}
	return path
}
