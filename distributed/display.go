package distributed

import (
	"context"
	"errors"
	"time"

	"github.com/lixenwraith/turbocow/broker"
	"github.com/lixenwraith/turbocow/framebuffer"
	"github.com/lixenwraith/turbocow/internal/xerrors"
)

var errSceneNotFound = errors.New("distributed: no scene stored at the requested id")

const (
	displayTick       = 16 * time.Millisecond
	checkerboardCell  = 40
	checkerboardLight = 0xC0C0C0
	checkerboardDark  = 0x808080
)

// ConnectDisplay fetches scene sid from the broker to learn its render
// resolution and returns a checkerboard-initialized framebuffer ready for
// the display loop (§4.7). The scene id comes from the caller; the
// display does not look up the most recently seeded scene id itself.
func ConnectDisplay(ctx context.Context, b broker.Broker, sid uint64) (*framebuffer.Framebuffer, error) {
	blob, ok, err := b.Get(ctx, broker.SceneKey(sid))
	if err != nil {
		return nil, xerrors.NewBrokerError(err)
	}
	if !ok {
		return nil, xerrors.NewSceneLoadError(errSceneNotFound)
	}

	desc, err := broker.DecodeScene(blob)
	if err != nil {
		return nil, xerrors.NewSceneLoadError(err)
	}

	width, height := desc.RenderOptions.Width, desc.RenderOptions.Height
	if width <= 0 || height <= 0 {
		width, height = defaultResolution, defaultResolution
	}

	fb := framebuffer.New(width, height)
	fb.Checkerboard(checkerboardCell, checkerboardLight, checkerboardDark)
	return fb, nil
}

// RunDisplayLoop drains the pixel queue into fb on a 16ms tick until ctx
// is cancelled (§4.7). The window's present step is the caller's
// responsibility (displaywin.Game ticks its own render independent of
// this drain).
func RunDisplayLoop(ctx context.Context, b broker.Broker, fb *framebuffer.Framebuffer) error {
	ticker := time.NewTicker(displayTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		n, err := b.LLen(ctx, broker.KeyPixels)
		if err != nil {
			return xerrors.NewBrokerError(err)
		}
		if n == 0 {
			continue
		}

		raw, err := b.RPopN(ctx, broker.KeyPixels, int(n))
		if err != nil {
			return xerrors.NewBrokerError(err)
		}
		for _, data := range raw {
			p, err := broker.DecodePixel(data)
			if err != nil {
				continue
			}
			fb.SetPixel(int(p.X), int(p.Y), p.R, p.G, p.B)
		}
	}
}
