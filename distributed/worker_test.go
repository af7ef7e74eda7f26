package distributed

import (
	"context"
	"testing"
	"time"
)

func TestAdaptTargetDoublesOnFullDrain(t *testing.T) {
	got := adaptTarget(8, 0, 0)
	if got != 16 {
		t.Fatalf("adaptTarget(8,0,0) = %d, want 16", got)
	}
}

func TestAdaptTargetHalvesOnLargeBacklog(t *testing.T) {
	got := adaptTarget(1024, 200, 50)
	if got != 512 {
		t.Fatalf("adaptTarget(1024,200,50) = %d, want 512", got)
	}
}

func TestAdaptTargetStaysWithinBounds(t *testing.T) {
	if got := adaptTarget(minBatchTarget, 0, 0); got < minBatchTarget {
		t.Fatalf("adaptTarget floor violated: got %d", got)
	}
	if got := adaptTarget(maxBatchTarget, 0, 0); got > maxBatchTarget {
		t.Fatalf("adaptTarget ceiling violated: got %d", got)
	}
}

func TestClampByteSaturates(t *testing.T) {
	if clampByte(-1) != 0 {
		t.Fatalf("clampByte(-1) should saturate to 0")
	}
	if clampByte(2) != 255 {
		t.Fatalf("clampByte(2) should saturate to 255")
	}
	if clampByte(1) != 255 {
		t.Fatalf("clampByte(1) should map to 255")
	}
}

// TestFetchSceneAbortsWhenSceneNeverAppears covers spec.md E7: a worker
// whose cached scene id changes to a scene the broker never produces
// gives up rather than retrying forever. Exercised via context
// cancellation rather than exhausting the full 10x1s retry budget, so
// the test stays fast while still covering the abort path.
func TestFetchSceneAbortsWhenSceneNeverAppears(t *testing.T) {
	b := newFakeBroker() // scene:<sid> key is never set
	w := NewWorker(b, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	if _, err := w.fetchScene(ctx, 999); err == nil {
		t.Fatal("expected an error when the scene never appears in the broker")
	}
}
