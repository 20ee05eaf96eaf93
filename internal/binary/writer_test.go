package binary

import (
	"bytes"
	"testing"
)

func TestSafeWriter_WriteOrdered(t *testing.T) {
	tests := []struct {
		name  string
		order Endianness
		want  []byte
	}{
		{name: "big-endian", order: BigEndian, want: []byte{0x12, 0x34, 0x56, 0x78}},
		{name: "little-endian", order: LittleEndian, want: []byte{0x78, 0x56, 0x34, 0x12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			sw := NewOrderedWriter(buf, tt.order)

			if err := Write[uint32](sw, 0x12345678); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tt.want) {
				t.Errorf("expected %v, got %v", tt.want, buf.Bytes())
			}
		})
	}
}

func TestSafeWriter_Offset(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	if sw.Offset() != 0 {
		t.Errorf("expected initial offset 0, got %d", sw.Offset())
	}

	steps := []struct {
		write func() error
		want  int64
	}{
		{func() error { return Write[uint8](sw, 0x01) }, 1},
		{func() error { return WriteLE[uint16](sw, 0x0203) }, 3},
		{func() error { return WriteBE[uint32](sw, 0x04050607) }, 7},
		{func() error { return WriteEndian[uint64](sw, 1, LittleEndian) }, 15},
		{func() error { return sw.WriteString("Exif") }, 19},
		{func() error { return sw.Pad(2) }, 20},
	}

	for i, step := range steps {
		if err := step.write(); err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
		if sw.Offset() != step.want {
			t.Errorf("step %d: expected offset %d, got %d", i, step.want, sw.Offset())
		}
	}
}

func TestSafeWriter_RoundTripsThroughReader(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewOrderedWriter(buf, LittleEndian)
	_ = Write[uint16](sw, 0x8769)
	_ = Write[uint32](sw, 26)

	r := NewOrderedReader(NewBytesReader(buf.Bytes(), "segment"), 0, LittleEndian)
	tag, err := ReadValue[uint16](r, "tag")
	if err != nil || tag != 0x8769 {
		t.Errorf("tag = 0x%04x, %v; want 0x8769", tag, err)
	}
	off, err := ReadValue[uint32](r, "offset")
	if err != nil || off != 26 {
		t.Errorf("offset = %d, %v; want 26", off, err)
	}
}
