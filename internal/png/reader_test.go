package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	pbinary "github.com/simonhull/photometa/internal/binary"
	"github.com/simonhull/photometa/internal/exiftest"
	"github.com/simonhull/photometa/internal/registry"
	"github.com/simonhull/photometa/internal/types"
)

var signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

func find(t *testing.T, data []byte) (registry.Span, error) {
	t.Helper()
	return (&reader{}).FindSegment(bytes.NewReader(data), int64(len(data)), "test.png")
}

func chunk(typ string, data []byte) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint32(len(data)))
	buf.WriteString(typ)
	buf.Write(data)
	buf.Write([]byte{0, 0, 0, 0})
	return buf.Bytes()
}

func TestFindSegment(t *testing.T) {
	tiff := exiftest.Sample(pbinary.LittleEndian).Bytes()

	tests := []struct {
		name string
		data []byte
		want []byte
	}{
		{
			name: "eXIf chunk",
			data: exiftest.PNG(tiff),
			want: tiff,
		},
		{
			name: "eXIf chunk with Exif prefix",
			data: bytes.Join([][]byte{signature, chunk("IHDR", make([]byte, 13)),
				chunk("eXIf", append([]byte(registry.ExifHeader), tiff...)), chunk("IEND", nil)}, nil),
			want: tiff,
		},
		{
			name: "no eXIf chunk",
			data: exiftest.PNG(nil),
		},
		{
			name: "eXIf after IEND is ignored",
			data: bytes.Join([][]byte{signature, chunk("IEND", nil), chunk("eXIf", tiff)}, nil),
		},
		{
			name: "empty eXIf chunk",
			data: bytes.Join([][]byte{signature, chunk("eXIf", nil), chunk("IEND", nil)}, nil),
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
				t.Errorf("segment mismatch: got %d bytes, want %d", len(got), len(tt.want))
			}
		})
	}
}

func TestFindSegment_Errors(t *testing.T) {
	overrun := chunk("eXIf", []byte("MM\x00*"))
	binary.BigEndian.PutUint32(overrun, 4096)

	tests := []struct {
		name   string
		data   []byte
		reason string
	}{
		{
			name:   "chunk overruns file",
			data:   append(append([]byte{}, signature...), overrun...),
			reason: "extends past end of file",
		},
		{
			name:   "missing CRC",
			data:   append(append([]byte{}, signature...), chunk("IHDR", make([]byte, 13))[:8+13]...),
			reason: "extends past end of file",
		},
		{
			name:   "truncated chunk header",
			data:   append(append([]byte{}, signature...), 0, 0, 0),
			reason: "truncated chunk header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := find(t, tt.data)

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
	if registry.Get(types.FormatPNG) == nil {
		t.Fatal("PNG reader is not registered")
	}
}
