package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/turbocow/broker"
	"github.com/lixenwraith/turbocow/displaywin"
	"github.com/lixenwraith/turbocow/distributed"
	"github.com/lixenwraith/turbocow/internal/config"
	"github.com/lixenwraith/turbocow/metrics"
	"github.com/lixenwraith/turbocow/scene"
)

func runDistributed(args []string) error {
	if len(args) == 0 {
		return errors.New("distributed: expected a subcommand (init, status, reset, worker, display)")
	}

	cfg := config.FromEnv()
	ctx := context.Background()

	b, err := broker.NewRedisBroker(cfg.RedisAddress)
	if err != nil {
		return fmt.Errorf("distributed: broker unreachable: %w", err)
	}
	defer b.Close()

	switch args[0] {
	case "init":
		return runDistributedInit(ctx, b, args[1:])
	case "status":
		return runDistributedStatus(ctx, b)
	case "reset":
		return distributed.Reset(ctx, b)
	case "worker":
		return runDistributedWorker(ctx, b, cfg)
	case "display":
		return runDistributedDisplay(ctx, b, args[1:])
	default:
		return fmt.Errorf("distributed: unknown subcommand %q", args[0])
	}
}

func runDistributedInit(ctx context.Context, b broker.Broker, args []string) error {
	fs := flag.NewFlagSet("distributed init", flag.ExitOnError)
	source := fs.String("source", "", "path to a .cowscene file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *source == "" {
		return errSourceRequired
	}
	desc, err := loadDescription(*source)
	if err != nil {
		return err
	}

	sid, err := distributed.Init(ctx, b, desc)
	if err != nil {
		return err
	}

	log.Printf("distributed init: seeded scene id %d", sid)
	fmt.Printf("scene id: %d\n", sid)
	return nil
}

// loadDescription reads a raw SceneDescription blob; the coordinator
// needs the description itself (not a built Scene) so it can store it
// verbatim at scene:<sid> (§4.5 step 1-3).
func loadDescription(source string) (scene.SceneDescription, error) {
	blob, err := os.ReadFile(source)
	if err != nil {
		return scene.SceneDescription{}, err
	}
	return scene.DecodeDescription(blob)
}

var errSourceRequired = errors.New("distributed init: --source is required (the built-in demo scene has no on-disk description to seed)")

func runDistributedStatus(ctx context.Context, b broker.Broker) error {
	st, err := distributed.GetStatus(ctx, b, 0)
	if err != nil {
		return err
	}
	fmt.Printf("active tasks: %d\npending pixels: %d\n", st.ActiveTasks, st.PendingPixels)
	return nil
}

func runDistributedWorker(ctx context.Context, b broker.Broker, cfg config.Config) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var m *metrics.Worker
	if cfg.HasMetrics() {
		m = metrics.NewWorker(cfg.MetricsEndpoint, cfg.MetricsUsername, cfg.MetricsPassword, "turbocow_worker")
		go m.RunFlushLoop(ctx, 10*time.Second)
	}

	w := distributed.NewWorker(b, m)
	return w.Run(ctx)
}

func runDistributedDisplay(ctx context.Context, b broker.Broker, args []string) error {
	fs := flag.NewFlagSet("distributed display", flag.ExitOnError)
	sid := fs.Uint64("scene-id", 0, "scene id to display (as reported by `distributed init`)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *sid == 0 {
		return errors.New("distributed display: --scene-id is required")
	}

	fb, err := distributed.ConnectDisplay(ctx, b, *sid)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		if err := distributed.RunDisplayLoop(ctx, b, fb); err != nil {
			log.Printf("distributed display: drain loop stopped: %v", err)
		}
	}()

	return displaywin.Run(fb, "turbocow distributed display")
}
