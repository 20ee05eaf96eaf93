package registry

import (
	"io"
	"testing"

	"github.com/simonhull/photometa/internal/types"
)

// mockReader implements SegmentReader for testing.
type mockReader struct {
	name string
	span Span
}

func (m *mockReader) FindSegment(r io.ReaderAt, size int64, path string) (Span, error) {
	return m.span, nil
}

func TestRegisterAndGet(t *testing.T) {
	// Use a format that's unlikely to conflict with real registrations
	format := types.Format(999)
	Register(format, &mockReader{name: "test", span: Span{Offset: 12, Length: 30}})

	got := Get(format)
	if got == nil {
		t.Fatal("Get() returned nil for registered format")
	}

	span, err := got.FindSegment(nil, 0, "")
	if err != nil {
		t.Fatalf("FindSegment() error = %v", err)
	}
	if span != (Span{Offset: 12, Length: 30}) {
		t.Errorf("FindSegment() = %+v, want {12 30}", span)
	}
}

func TestGet_Unregistered(t *testing.T) {
	if got := Get(types.Format(998)); got != nil {
		t.Errorf("Get() = %v for unregistered format, want nil", got)
	}
}

func TestRegister_Overwrites(t *testing.T) {
	format := types.Format(997)
	Register(format, &mockReader{name: "first"})
	Register(format, &mockReader{name: "second"})

	mr, ok := Get(format).(*mockReader)
	if !ok {
		t.Fatal("Get() returned wrong reader type")
	}
	if mr.name != "second" {
		t.Errorf("reader name = %q, want %q", mr.name, "second")
	}
}

func TestSpan_Empty(t *testing.T) {
	if !(Span{Offset: 40}).Empty() {
		t.Error("zero-length span should be empty")
	}
	if (Span{Length: 1}).Empty() {
		t.Error("one-byte span should not be empty")
	}
}
