// Package framebuffer implements the shared pixel buffer painted by the
// local driver (also used by streaming_render) and the distributed display.
// SetPixel is idempotent (§5, §8 property 6): writing the same (x,y,color)
// twice is a no-op the second time, tolerating duplicate or redelivered
// messages.
package framebuffer

import "sync/atomic"

// Framebuffer is a flat RGB pixel grid with one writer per pixel allowed
// concurrently (disjoint writes from the local driver's row partitioning,
// or a single multi-producer consumer in the distributed display).
type Framebuffer struct {
	width, height int
	pixels        []uint32 // packed r<<16 | g<<8 | b, atomic per-pixel
}

// New allocates a width x height framebuffer, zero-initialized (black).
func New(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]uint32, width*height),
	}
}

// Width returns the framebuffer's width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer's height in pixels.
func (f *Framebuffer) Height() int { return f.height }

func pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// SetPixel idempotently writes (x,y) to color (r,g,b): re-applying the same
// color is a no-op, and distinct writes still leave the buffer in a
// well-defined, last-writer-wins state.
func (f *Framebuffer) SetPixel(x, y int, r, g, b uint8) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	idx := y*f.width + x
	atomic.StoreUint32(&f.pixels[idx], pack(r, g, b))
}

// At returns the packed r<<16|g<<8|b value at (x,y).
func (f *Framebuffer) At(x, y int) uint32 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return atomic.LoadUint32(&f.pixels[y*f.width+x])
}

// RGBBytes flattens the framebuffer into a row-major, top-down RGB
// triple buffer suitable for an imaging.ImageWriter.
func (f *Framebuffer) RGBBytes() []byte {
	out := make([]byte, f.width*f.height*3)
	for i, packed := range f.pixels {
		out[i*3] = byte(packed >> 16)
		out[i*3+1] = byte(packed >> 8)
		out[i*3+2] = byte(packed)
	}
	return out
}

// Checkerboard fills the framebuffer with a checkerboard pattern of the
// given cell size, used by the distributed display before any pixels have
// streamed in (§4.7).
func (f *Framebuffer) Checkerboard(cellSize int, light, dark uint32) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			cell := (x/cellSize + y/cellSize) % 2
			if cell == 0 {
				f.pixels[y*f.width+x] = light
			} else {
				f.pixels[y*f.width+x] = dark
			}
		}
	}
}
