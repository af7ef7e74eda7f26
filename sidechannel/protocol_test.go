package sidechannel

import "testing"

func TestMessageRoundTrip(t *testing.T) {
	want := Message{
		Type: MsgSetPixel,
		Pixels: []PixelUpdate{
			{X: 1, Y: 2, R: 10, G: 20, B: 30},
			{X: 3, Y: 4, R: 40, G: 50, B: 60},
		},
	}

	encoded, err := encode(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := decodeMessage(encoded)
	if err != nil {
		t.Fatalf("decodeMessage: %v", err)
	}
	if got.Type != want.Type || len(got.Pixels) != len(want.Pixels) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, want)
	}
	for i := range want.Pixels {
		if got.Pixels[i] != want.Pixels[i] {
			t.Fatalf("pixel %d mismatch: got %+v, want %+v", i, got.Pixels[i], want.Pixels[i])
		}
	}
}

func TestBatchLargeRoundTrip(t *testing.T) {
	inner := []Message{
		{Type: MsgPing},
		{Type: MsgSetPixel, Pixels: []PixelUpdate{{X: 1, Y: 1, R: 1, G: 1, B: 1}}},
	}
	want := Message{Type: MsgBatchLarge, Batch: inner}

	encoded, err := encode(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := decodeMessage(encoded)
	if err != nil {
		t.Fatalf("decodeMessage: %v", err)
	}
	if got.Type != MsgBatchLarge || len(got.Batch) != 2 {
		t.Fatalf("batch round trip mismatch: %+v", got)
	}
	if got.Batch[0].Type != MsgPing || got.Batch[1].Type != MsgSetPixel {
		t.Fatalf("batch contents mismatch: %+v", got.Batch)
	}
}
