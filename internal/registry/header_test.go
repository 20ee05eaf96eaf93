package registry

import (
	"testing"

	"github.com/simonhull/photometa/internal/binary"
)

func TestTrimExifHeader(t *testing.T) {
	data := []byte("xxExif\x00\x00MM\x00*")

	tests := []struct {
		name string
		span Span
		want Span
	}{
		{"with header", Span{Offset: 2, Length: 10}, Span{Offset: 8, Length: 4}},
		{"without header", Span{Offset: 8, Length: 4}, Span{Offset: 8, Length: 4}},
		{"shorter than header", Span{Offset: 2, Length: 3}, Span{Offset: 2, Length: 3}},
		{"header only", Span{Offset: 2, Length: 6}, Span{Offset: 8, Length: 0}},
	}

	sr := binary.NewBytesReader(data, "test")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimExifHeader(sr, tt.span); got != tt.want {
				t.Errorf("TrimExifHeader() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHasExifHeader_OutOfRange(t *testing.T) {
	sr := binary.NewBytesReader([]byte("Exif"), "test")
	if HasExifHeader(sr, Span{Offset: 0, Length: 6}) {
		t.Error("span past end of data should not report a header")
	}
}
