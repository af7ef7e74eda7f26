package renderlocal

import (
	"github.com/lixenwraith/turbocow/rendercore"
	"github.com/lixenwraith/turbocow/scene"
	"github.com/lixenwraith/turbocow/sidechannel"
)

// RenderPush is the single-process analogue of a distributed worker +
// display: it renders locally and pushes each finished pixel over sock
// instead of through the broker, used by `render --display` once the
// side-channel connect succeeds (§7 RenderError::Socket is the inverse
// direction: a failed side-channel connect falls back to Render
// writing into a plain in-process framebuffer). Grounded on
// original_source/turbocow/src/render/basic_push.rs, adapted from its
// raw best-effort UDP ping-per-pixel to the project's own framed
// SetPixel message.
func RenderPush(s *scene.Scene, sock *sidechannel.Socket) error {
	cam := s.Camera()
	width, height := s.Width, s.Height

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ray := rendercore.PrimaryRay(cam, width, height, x, y)
			color := rendercore.RenderRay(ray, s, 0)
			r, g, b := toRGB8(color)

			msg := sidechannel.Message{
				Type: sidechannel.MsgSetPixel,
				Pixels: []sidechannel.PixelUpdate{
					{X: uint32(x), Y: uint32(y), R: r, G: g, B: b},
				},
			}
			if err := sock.Send(msg, false); err != nil {
				return err
			}
		}
	}

	return sock.Flush()
}
