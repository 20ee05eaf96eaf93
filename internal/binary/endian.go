package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: JPEG and PNG framing, "MM" TIFF/EXIF segments.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: RIFF/WebP chunk sizes, "II" TIFF/EXIF segments.
	LittleEndian
)

// String returns the TIFF byte-order marker for e.
func (e Endianness) String() string {
	if e == LittleEndian {
		return "II"
	}
	return "MM"
}

// ByteOrder returns the encoding/binary byte order matching e.
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// ReadLE reads a numeric value of type T at the given offset using little-endian byte order.
//
// Example:
//
//	chunkSize, err := binary.ReadLE[uint32](sr, offset+4, "RIFF chunk size")
func ReadLE[T Unsigned](sr *SafeReader, off int64, what string) (T, error) {
	return ReadEndian[T](sr, off, what, LittleEndian)
}

// ReadEndian reads a numeric value of type T at the given offset with specified byte order.
//
// This is the low-level function used by Read, ReadLE and Reader.
func ReadEndian[T Unsigned](sr *SafeReader, off int64, what string, endian Endianness) (T, error) {
	var zero T
	buf := make([]byte, sizeOf[T]())
	if err := sr.ReadAt(buf, off, what); err != nil {
		return zero, err
	}
	return decode[T](buf, endian), nil
}

// Decode converts the leading bytes of b into a value of type T.
// b must hold at least as many bytes as T occupies.
func Decode[T Unsigned](b []byte, endian Endianness) T {
	return decode[T](b, endian)
}

func decode[T Unsigned](buf []byte, endian Endianness) T {
	order := endian.ByteOrder()

	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(buf[0])
	case uint16:
		return T(order.Uint16(buf))
	case uint32:
		return T(order.Uint32(buf))
	default:
		return T(order.Uint64(buf))
	}
}

func sizeOf[T Unsigned]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}
