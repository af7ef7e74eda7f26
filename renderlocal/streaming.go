package renderlocal

import (
	"context"
	"log"

	"github.com/lixenwraith/turbocow/framebuffer"
	"github.com/lixenwraith/turbocow/scene"
	"github.com/lixenwraith/turbocow/sidechannel"
)

// RunStreamingRender starts a side-channel server, waits for a
// MsgStartStreaming request, then repeatedly renders s and streams
// every finished pixel to the client as a guaranteed SetPixel message,
// looping until ctx is cancelled. Grounded on
// original_source/turbocow/src/render/streaming.rs, collapsing its
// render-thread/stream-thread channel pair into a single render-then-
// push cycle per frame, since each call to Render already internalizes
// row-level parallelism.
func RunStreamingRender(ctx context.Context, s *scene.Scene, cfg *sidechannel.Config) error {
	sock, err := sidechannel.StartServer(cfg)
	if err != nil {
		return err
	}
	defer sock.Close()

	msg, _, ok := sock.Recv()
	if !ok {
		return nil
	}
	if msg.Type != sidechannel.MsgStartStreaming {
		log.Printf("streaming_render: unexpected first message type %d, want MsgStartStreaming", msg.Type)
		return nil
	}

	fb := framebuffer.New(s.Width, s.Height)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		log.Printf("streaming_render: rendering frame")
		if err := Render(s, fb); err != nil {
			log.Printf("streaming_render: frame failed: %v", err)
			continue
		}

		if err := streamFrame(sock, fb); err != nil {
			return err
		}
	}
}

func streamFrame(sock *sidechannel.Socket, fb *framebuffer.Framebuffer) error {
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			packed := fb.At(x, y)
			msg := sidechannel.Message{
				Type: sidechannel.MsgSetPixel,
				Pixels: []sidechannel.PixelUpdate{{
					X: uint32(x), Y: uint32(y),
					R: byte(packed >> 16), G: byte(packed >> 8), B: byte(packed),
				}},
			}
			if err := sock.Send(msg, true); err != nil {
				return err
			}
		}
	}
	return sock.Flush()
}
