package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lixenwraith/turbocow/framebuffer"
	"github.com/lixenwraith/turbocow/imaging"
	_ "github.com/lixenwraith/turbocow/imaging/bmp"
	"github.com/lixenwraith/turbocow/renderlocal"
	"github.com/lixenwraith/turbocow/scene"
	"github.com/lixenwraith/turbocow/sidechannel"
)

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	source := fs.String("source", "", "path to a .cowscene file (omit for the built-in demo scene)")
	output := fs.String("output", "", "path to save the rendered image (default writer: bmp)")
	display := fs.Bool("display", false, "push finished pixels to a local display process over the side-channel socket")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := loadSceneOrDemo(*source)
	if err != nil {
		return err
	}

	if *display {
		return renderWithDisplay(s, *output)
	}
	return renderLocal(s, *output)
}

func loadSceneOrDemo(source string) (*scene.Scene, error) {
	if source == "" {
		return scene.Demo(), nil
	}
	blob, err := os.ReadFile(source)
	if err != nil {
		return nil, err
	}
	desc, err := scene.DecodeDescription(blob)
	if err != nil {
		return nil, err
	}
	return scene.FromDescription(desc, nil)
}

func renderLocal(s *scene.Scene, output string) error {
	fb := framebuffer.New(s.Width, s.Height)
	if err := renderlocal.Render(s, fb); err != nil {
		return err
	}
	return maybeSave(fb, output)
}

// renderWithDisplay attempts the side-channel push path (§4.8's local
// display variant); a failed connect falls back to the plain local
// driver automatically (§7 RenderError::Socket).
func renderWithDisplay(s *scene.Scene, output string) error {
	cfg := sidechannel.DefaultConfig()
	cfg.Role = sidechannel.RoleClient
	sock, err := sidechannel.StartClient(cfg)
	if err != nil {
		log.Printf("render: side-channel connect failed (%v), falling back to local driver", err)
		return renderLocal(s, output)
	}
	defer sock.Close()

	if err := sock.Send(sidechannelStartStreaming(), true); err != nil {
		return err
	}

	return renderlocal.RenderPush(s, sock)
}

func sidechannelStartStreaming() sidechannel.Message {
	return sidechannel.Message{Type: sidechannel.MsgStartStreaming}
}

func maybeSave(fb *framebuffer.Framebuffer, output string) error {
	if output == "" {
		return nil
	}

	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if ext == "" {
		ext = imaging.DefaultWriterName
	}
	writer, ok := imaging.Writer(ext)
	if !ok {
		return fmt.Errorf("render: no ImageWriter registered for %q", ext)
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	return writer.Write(f, fb.Width(), fb.Height(), fb.RGBBytes())
}
