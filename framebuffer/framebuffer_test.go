package framebuffer

import "testing"

// SetPixel is idempotent: applying the same message twice yields the same
// framebuffer (§8 property 6).
func TestSetPixelIdempotent(t *testing.T) {
	fb := New(4, 4)
	fb.SetPixel(1, 1, 10, 20, 30)
	before := fb.At(1, 1)

	fb.SetPixel(1, 1, 10, 20, 30)
	after := fb.At(1, 1)

	if before != after {
		t.Fatalf("SetPixel not idempotent: %d != %d", before, after)
	}
	if want := pack(10, 20, 30); after != want {
		t.Fatalf("At(1,1) = %d, want %d", after, want)
	}
}

func TestSetPixelOutOfBoundsIgnored(t *testing.T) {
	fb := New(2, 2)
	fb.SetPixel(5, 5, 1, 2, 3)
	if fb.At(5, 5) != 0 {
		t.Fatalf("out-of-bounds write should be ignored")
	}
}

func TestCheckerboard(t *testing.T) {
	fb := New(4, 4)
	fb.Checkerboard(2, 0xFFFFFF, 0x000000)
	if fb.At(0, 0) != 0xFFFFFF {
		t.Fatalf("At(0,0) = %x, want light cell", fb.At(0, 0))
	}
	if fb.At(2, 0) != 0x000000 {
		t.Fatalf("At(2,0) = %x, want dark cell", fb.At(2, 0))
	}
}
