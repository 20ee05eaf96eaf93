package exif

import (
	"errors"
	"slices"
	"testing"

	pbinary "github.com/simonhull/photometa/internal/binary"
	"github.com/simonhull/photometa/internal/exiftest"
)

func TestDirectory_TypedLookupMismatch(t *testing.T) {
	dir := &Directory{}
	dir.set(ExifSpecific, TagFNumber, UnsignedInt(4))

	if _, ok := dir.Rational(ExifSpecific, TagFNumber); ok {
		t.Error("Rational() should report false for an UnsignedInt value")
	}
	if v, ok := dir.Uint(ExifSpecific, TagFNumber); !ok || v != 4 {
		t.Errorf("Uint() = %v, %v; want 4", v, ok)
	}
}

func TestDirectory_NilAndOutOfRange(t *testing.T) {
	var dir *Directory
	if _, ok := dir.Lookup(Primary, TagMake); ok {
		t.Error("nil directory should report absence")
	}
	if dir.Len(GPS) != 0 {
		t.Error("nil directory should be empty")
	}

	dir = &Directory{}
	if _, ok := dir.Lookup(Namespace(7), TagMake); ok {
		t.Error("unknown namespace should report absence")
	}
}

func TestDirectory_AllSorted(t *testing.T) {
	dir, err := Decode(exiftest.Sample(pbinary.LittleEndian).Bytes(), "sample")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	var tags []Tag
	for tag := range dir.All(GPS) {
		tags = append(tags, tag)
	}

	want := []Tag{TagGPSLatitudeRef, TagGPSLatitude, TagGPSLongitudeRef, TagGPSLongitude}
	if !slices.Equal(tags, want) {
		t.Errorf("All(GPS) tags = %v, want %v", tags, want)
	}

	// Early break must be honoured.
	n := 0
	for range dir.All(ExifSpecific) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iteration continued after break: %d", n)
	}
}

func TestRational_Float64(t *testing.T) {
	got, err := Rational{Num: 28, Den: 10}.Float64()
	if err != nil || got != 2.8 {
		t.Errorf("Float64() = %v, %v; want 2.8", got, err)
	}

	if _, err := (Rational{Num: 1, Den: 0}).Float64(); !errors.Is(err, ErrZeroDenominator) {
		t.Errorf("Float64() error = %v, want ErrZeroDenominator", err)
	}
}

func TestByteString_Trimmed(t *testing.T) {
	tests := []struct {
		in   ByteString
		want string
	}{
		{ByteString("Canon\x00"), "Canon"},
		{ByteString("NIKON CORPORATION  \x00\x00"), "NIKON CORPORATION"},
		{ByteString("\x00"), ""},
		{ByteString("  lead"), "  lead"},
	}

	for _, tt := range tests {
		if got := tt.in.Trimmed(); got != tt.want {
			t.Errorf("Trimmed(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTagName(t *testing.T) {
	if got := TagName(ExifSpecific, TagExposureTime); got != "ExposureTime" {
		t.Errorf("TagName() = %q, want ExposureTime", got)
	}
	// GPS tag 0x0002 is not a primary tag.
	if got := TagName(Primary, TagGPSLatitude); got != "" {
		t.Errorf("TagName() = %q for tag outside its namespace, want empty", got)
	}
}
