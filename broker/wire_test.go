package broker

import "testing"

func TestSceneKeyFormat(t *testing.T) {
	if got := SceneKey(42); got != "turbocow:scene:42" {
		t.Fatalf("SceneKey(42) = %q, want turbocow:scene:42", got)
	}
}

func TestTaskRoundTrip(t *testing.T) {
	want := ProcessPixel{SceneID: 7, X: 10, Y: 20}
	data, err := EncodeTask(want)
	if err != nil {
		t.Fatalf("EncodeTask: %v", err)
	}
	got, err := DecodeTask(data)
	if err != nil {
		t.Fatalf("DecodeTask: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}

func TestPixelRoundTrip(t *testing.T) {
	want := SetPixel{SceneID: 7, X: 1, Y: 2, R: 10, G: 20, B: 30}
	data, err := EncodePixel(want)
	if err != nil {
		t.Fatalf("EncodePixel: %v", err)
	}
	got, err := DecodePixel(data)
	if err != nil {
		t.Fatalf("DecodePixel: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}
