package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/turbocow/renderlocal"
	"github.com/lixenwraith/turbocow/scene"
	"github.com/lixenwraith/turbocow/sidechannel"
)

func runStreamingRenderCmd(args []string) error {
	fs := flag.NewFlagSet("streaming_render", flag.ExitOnError)
	source := fs.String("source", "", "path to a .cowscene file (omit for the built-in demo scene)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := loadSceneOrDemo(*source)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return renderlocal.RunStreamingRender(ctx, s, sidechannel.DefaultConfig())
}
