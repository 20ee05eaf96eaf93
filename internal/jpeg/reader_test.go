package jpeg

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/simonhull/photometa/internal/binary"
	"github.com/simonhull/photometa/internal/exiftest"
	"github.com/simonhull/photometa/internal/registry"
	"github.com/simonhull/photometa/internal/types"
)

func find(t *testing.T, data []byte) (registry.Span, error) {
	t.Helper()
	return (&reader{}).FindSegment(bytes.NewReader(data), int64(len(data)), "test.jpg")
}

// segment builds a raw marker segment.
func segment(marker byte, payload []byte) []byte {
	n := len(payload) + 2
	return append([]byte{0xFF, marker, byte(n >> 8), byte(n)}, payload...)
}

func join(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

var (
	soi = []byte{0xFF, 0xD8}
	eoi = []byte{0xFF, 0xD9}
)

func TestFindSegment_Sample(t *testing.T) {
	want := exiftest.Sample(binary.BigEndian).Bytes()
	data := exiftest.JPEG(want)

	span, err := find(t, data)
	if err != nil {
		t.Fatalf("FindSegment() error = %v", err)
	}

	got := data[span.Offset : span.Offset+span.Length]
	if !bytes.Equal(got, want) {
		t.Errorf("segment = % x, want % x", got, want)
	}
}

func TestFindSegment_NoExif(t *testing.T) {
	span, err := find(t, exiftest.JPEG(nil))
	if err != nil {
		t.Fatalf("FindSegment() error = %v", err)
	}
	if !span.Empty() {
		t.Errorf("FindSegment() = %+v, want empty span", span)
	}
}

func TestFindSegment_Walk(t *testing.T) {
	tiff := []byte("MM\x00\x2A\x00\x00\x00\x08\x00\x00")
	exifPayload := append([]byte(registry.ExifHeader), tiff...)

	tests := []struct {
		name string
		data []byte
		want []byte
	}{
		{
			name: "fill bytes before marker",
			data: join(soi, []byte{0xFF, 0xFF, 0xFF}, segment(markerAPP1, exifPayload), eoi),
			want: tiff,
		},
		{
			name: "XMP APP1 before EXIF APP1",
			data: join(soi,
				segment(markerAPP1, []byte("http://ns.adobe.com/xap/1.0/\x00<x/>")),
				segment(markerAPP1, exifPayload),
				eoi),
			want: tiff,
		},
		{
			name: "standalone markers are skipped",
			data: join(soi, []byte{0xFF, 0xD0, 0xFF, 0x01}, segment(markerAPP1, exifPayload), eoi),
			want: tiff,
		},
		{
			name: "EOI before APP1",
			data: join(soi, eoi, segment(markerAPP1, exifPayload)),
		},
		{
			name: "APP1 after SOS is not scanned",
			data: join(soi, segment(markerSOS, []byte{0x01, 0x01, 0x00, 0x00, 0x3F, 0x00}),
				segment(markerAPP1, exifPayload), eoi),
		},
		{
			name: "APP1 with header only",
			data: join(soi, segment(markerAPP1, []byte(registry.ExifHeader)), eoi),
		},
		{
			name: "SOI only",
			data: soi,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, err := find(t, tt.data)
			if err != nil {
				t.Fatalf("FindSegment() error = %v", err)
			}

			if tt.want == nil {
				if !span.Empty() {
					t.Errorf("FindSegment() = %+v, want empty span", span)
				}
				return
			}

			got := tt.data[span.Offset : span.Offset+span.Length]
			if !bytes.Equal(got, tt.want) {
				t.Errorf("segment = % x, want % x", got, tt.want)
			}
		})
	}
}

func TestFindSegment_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		reason string
	}{
		{
			name:   "length below two",
			data:   join(soi, []byte{0xFF, 0xE1, 0x00, 0x01}),
			reason: "declares length 1",
		},
		{
			name:   "segment past end of file",
			data:   join(soi, []byte{0xFF, 0xE1, 0x10, 0x00, 'E', 'x'}),
			reason: "extends past end of file",
		},
		{
			name:   "garbage where a marker belongs",
			data:   join(soi, []byte{0x12, 0x34}),
			reason: "expected marker",
		},
		{
			name:   "truncated length",
			data:   join(soi, []byte{0xFF, 0xE0, 0x00}),
			reason: "truncated segment length",
		},
		{
			name:   "file ends in fill bytes",
			data:   join(soi, []byte{0xFF, 0xFF}),
			reason: "truncated marker",
		},
		{
			name:   "stuffed zero",
			data:   join(soi, []byte{0xFF, 0x00}),
			reason: "stuffed byte",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := find(t, tt.data)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var formatErr *types.ContainerFormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("expected ContainerFormatError, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("error %q should mention %q", err, tt.reason)
			}
		})
	}
}

func TestRegistered(t *testing.T) {
	if registry.Get(types.FormatJPEG) == nil {
		t.Fatal("JPEG reader is not registered")
	}
}
