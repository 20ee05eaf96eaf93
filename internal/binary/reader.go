// Package binary provides bounds-checked, byte-order aware reading primitives
// for image containers and EXIF segments.
package binary

import (
	"bytes"
	"fmt"
	"io"
)

// Unsigned is the set of fixed-width integers the readers can decode.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// OutOfBoundsError is returned when a read would leave the readable range.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset < 0 || e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// NewBytesReader creates a SafeReader over an in-memory segment.
func NewBytesReader(b []byte, path string) *SafeReader {
	return NewSafeReader(bytes.NewReader(b), int64(len(b)), path)
}

// Size returns the number of readable bytes.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// InBounds reports whether n bytes starting at off can be read.
func (sr *SafeReader) InBounds(off, n int64) bool {
	return off >= 0 && n >= 0 && off <= sr.size && n <= sr.size-off
}

// ReadAt reads len(b) bytes at the given offset. what names the field for
// error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if !sr.InBounds(off, int64(len(b))) {
		return &OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: len(b),
			Size:   sr.size,
		}
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}

	if n < len(b) {
		return fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d",
			sr.path, what, off, n, len(b))
	}

	return nil
}

// Bytes reads n bytes at the given offset into a new slice.
func (sr *SafeReader) Bytes(off, n int64, what string) ([]byte, error) {
	if !sr.InBounds(off, n) {
		return nil, &OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: int(n),
			Size:   sr.size,
		}
	}
	buf := make([]byte, n)
	if err := sr.ReadAt(buf, off, what); err != nil {
		return nil, err
	}
	return buf, nil
}

// Read reads a big-endian value of type T from the given offset.
//
// Big-endian is the byte order of JPEG marker lengths and PNG chunk headers.
func Read[T Unsigned](sr *SafeReader, off int64, what string) (T, error) {
	return ReadEndian[T](sr, off, what, BigEndian)
}

// Reader provides sequential reading with automatic offset tracking in a
// fixed byte order.
type Reader struct {
	*SafeReader
	offset int64
	order  Endianness
}

// NewOrderedReader creates a Reader that decodes every value in the given
// byte order.
func NewOrderedReader(sr *SafeReader, offset int64, order Endianness) *Reader {
	return &Reader{
		SafeReader: sr,
		offset:     offset,
		order:      order,
	}
}

// ReadValue reads a numeric value and advances the offset.
func ReadValue[T Unsigned](r *Reader, what string) (T, error) {
	val, err := ReadEndian[T](r.SafeReader, r.offset, what, r.order)
	if err != nil {
		var zero T
		return zero, err
	}

	r.offset += int64(sizeOf[T]())
	return val, nil
}

// Offset returns the current offset.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ChainReader allows chaining multiple reads with deferred error checking.
// This avoids repetitive "if err != nil" checks.
type ChainReader struct {
	*Reader
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(r *Reader) *ChainReader {
	return &ChainReader{Reader: r}
}

// ReadChained reads a value with deferred error checking.
// If a previous read failed, returns zero value without attempting read.
func ReadChained[T Unsigned](cr *ChainReader, what string) T {
	if cr.err != nil {
		var zero T
		return zero
	}

	val, err := ReadValue[T](cr.Reader, what)
	if err != nil {
		cr.err = err
		var zero T
		return zero
	}

	return val
}

// Bytes reads n raw bytes, accumulating any error.
func (cr *ChainReader) Bytes(n int, what string) []byte {
	if cr.err != nil {
		return nil
	}

	buf := make([]byte, n)
	if err := cr.SafeReader.ReadAt(buf, cr.offset, what); err != nil {
		cr.err = err
		return nil
	}
	cr.offset += int64(n)
	return buf
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}
