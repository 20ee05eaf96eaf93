package binary

import (
	"io"
)

// SafeWriter wraps io.Writer with position tracking.
type SafeWriter struct {
	w      io.Writer
	offset int64
	order  Endianness
}

// NewSafeWriter creates a new big-endian SafeWriter.
func NewSafeWriter(w io.Writer) *SafeWriter {
	return NewOrderedWriter(w, BigEndian)
}

// NewOrderedWriter creates a SafeWriter whose Write calls use the given byte order.
func NewOrderedWriter(w io.Writer, order Endianness) *SafeWriter {
	return &SafeWriter{
		w:     w,
		order: order,
	}
}

// Offset returns the current position (number of bytes written).
func (sw *SafeWriter) Offset() int64 {
	return sw.offset
}

// WriteBytes writes raw bytes to the underlying writer.
func (sw *SafeWriter) WriteBytes(b []byte) error {
	n, err := sw.w.Write(b)
	sw.offset += int64(n)
	return err
}

// WriteString writes a string as bytes to the underlying writer.
func (sw *SafeWriter) WriteString(s string) error {
	return sw.WriteBytes([]byte(s))
}

// Pad writes zero bytes until the offset is a multiple of align.
func (sw *SafeWriter) Pad(align int64) error {
	for sw.offset%align != 0 {
		if err := sw.WriteBytes([]byte{0}); err != nil {
			return err
		}
	}
	return nil
}

// Write writes a value of type T in the writer's byte order.
func Write[T Unsigned](sw *SafeWriter, val T) error {
	return WriteEndian(sw, val, sw.order)
}

// WriteLE writes a value of type T in little-endian byte order.
func WriteLE[T Unsigned](sw *SafeWriter, val T) error {
	return WriteEndian(sw, val, LittleEndian)
}

// WriteBE writes a value of type T in big-endian byte order.
func WriteBE[T Unsigned](sw *SafeWriter, val T) error {
	return WriteEndian(sw, val, BigEndian)
}

// WriteEndian writes a value of type T with the specified byte order.
func WriteEndian[T Unsigned](sw *SafeWriter, val T, endian Endianness) error {
	buf := make([]byte, sizeOf[T]())
	order := endian.ByteOrder()

	switch len(buf) {
	case 1:
		buf[0] = byte(val)
	case 2:
		order.PutUint16(buf, uint16(val))
	case 4:
		order.PutUint32(buf, uint32(val))
	default:
		order.PutUint64(buf, uint64(val))
	}

	return sw.WriteBytes(buf)
}
