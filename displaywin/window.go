// Package displaywin implements the distributed display's window loop
// (§4.7): paints the shared framebuffer, re-presents it every frame,
// and exits on window-close or Escape. Grounded on the teacher's
// ebiten.Game usage pattern (phanxgames-willow's gameShell in
// scene.go), reduced from a full scene graph to a single flat pixel
// blit since the raytracer framebuffer has no retained-mode elements.
package displaywin

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/turbocow/framebuffer"
)

// errWindowClosed signals a clean exit requested by the user (§4.7
// "Exit on window-close or Escape").
var errWindowClosed = errors.New("displaywin: window closed")

// Game implements ebiten.Game, blitting fb's current contents every
// frame. It performs no rendering itself — the framebuffer is the
// single source of truth, written concurrently by the distributed
// display's pixel drain loop (§5 "Display framebuffer: single writer").
type Game struct {
	fb     *framebuffer.Framebuffer
	img    *ebiten.Image
	pixBuf []byte
}

// NewGame constructs a Game that presents fb.
func NewGame(fb *framebuffer.Framebuffer) *Game {
	return &Game{
		fb:  fb,
		img: ebiten.NewImage(fb.Width(), fb.Height()),
	}
}

// Update checks for the exit conditions (§4.7).
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errWindowClosed
	}
	return nil
}

// Draw repacks the framebuffer into the backing ebiten.Image and blits
// it to screen at 1:1 scale.
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.fb.Width(), g.fb.Height()
	if len(g.pixBuf) != w*h*4 {
		g.pixBuf = make([]byte, w*h*4)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			packed := g.fb.At(x, y)
			idx := (y*w + x) * 4
			g.pixBuf[idx] = byte(packed >> 16)
			g.pixBuf[idx+1] = byte(packed >> 8)
			g.pixBuf[idx+2] = byte(packed)
			g.pixBuf[idx+3] = 0xFF
		}
	}
	g.img.WritePixels(g.pixBuf)
	screen.DrawImage(g.img, nil)
}

// Layout fixes the window to the framebuffer's native resolution
// (§4.7 "Open a window of size WxH").
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width(), g.fb.Height()
}

// Run opens the window and blocks until it closes, the user presses
// Escape, or ebiten itself reports an error.
func Run(fb *framebuffer.Framebuffer, title string) error {
	ebiten.SetWindowSize(fb.Width(), fb.Height())
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(false)

	game := NewGame(fb)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errWindowClosed) {
		return err
	}
	return nil
}
