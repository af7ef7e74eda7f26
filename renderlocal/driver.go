// Package renderlocal implements the row-parallel local multithreaded
// driver (§4.4) and the supplemented single-process render modes that pair
// it with the side-channel socket (basic_push, streaming_render).
package renderlocal

import (
	"github.com/lixenwraith/turbocow/framebuffer"
	"github.com/lixenwraith/turbocow/materials"
	"github.com/lixenwraith/turbocow/rendercore"
	"github.com/lixenwraith/turbocow/scene"
	"golang.org/x/sync/errgroup"
)

// Render partitions the image by rows and renders each row in a separate
// goroutine. Rows write disjoint framebuffer memory, so no synchronization
// beyond the errgroup's own completion barrier is required (§4.4, §5).
// A failing row does not abort its siblings: errgroup.Group captures the
// first error but every goroutine still runs to completion, matching the
// spec's "failure in one row does not abort others."
func Render(s *scene.Scene, fb *framebuffer.Framebuffer) error {
	cam := s.Camera()
	width, height := fb.Width(), fb.Height()

	var g errgroup.Group
	for y := 0; y < height; y++ {
		y := y
		g.Go(func() error {
			return renderRow(s, cam, fb, width, height, y)
		})
	}
	return g.Wait()
}

func renderRow(s *scene.Scene, cam scene.Camera, fb *framebuffer.Framebuffer, width, height, y int) error {
	for x := 0; x < width; x++ {
		ray := rendercore.PrimaryRay(cam, width, height, x, y)
		color := rendercore.RenderRay(ray, s, 0)
		r, g, b := toRGB8(color)
		fb.SetPixel(x, y, r, g, b)
	}
	return nil
}

// toRGB8 converts a 0..1 float color to 0..255 bytes, clamping overflow.
func toRGB8(c materials.RGB) (r, g, b uint8) {
	return clampByte(c.R), clampByte(c.G), clampByte(c.B)
}

func clampByte(v float64) uint8 {
	scaled := v * 255
	switch {
	case scaled <= 0:
		return 0
	case scaled >= 255:
		return 255
	default:
		return uint8(scaled + 0.5)
	}
}
