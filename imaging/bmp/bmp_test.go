package bmp

import (
	"bytes"
	"testing"
)

func TestWriteHeaderFields(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	}
	var buf bytes.Buffer
	if err := (Writer{}).Write(&buf, 2, 2, pixels); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data := buf.Bytes()
	if data[0] != 'B' || data[1] != 'M' {
		t.Fatalf("missing BM magic, got %q", data[:2])
	}

	rowSize := (2*3 + 3) &^ 3
	wantSize := fileHeaderSize + infoHeaderSize + rowSize*2
	if len(data) != wantSize {
		t.Fatalf("encoded size = %d, want %d", len(data), wantSize)
	}
}

func TestWriteRejectsMismatchedBuffer(t *testing.T) {
	var buf bytes.Buffer
	err := (Writer{}).Write(&buf, 2, 2, []byte{1, 2, 3})
	if err == nil {
		t.Fatalf("expected an error for a mismatched pixel buffer length")
	}
}

func TestWriteRejectsInvalidDimensions(t *testing.T) {
	var buf bytes.Buffer
	if err := (Writer{}).Write(&buf, 0, 2, nil); err == nil {
		t.Fatalf("expected an error for zero width")
	}
}
