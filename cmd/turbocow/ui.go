package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/turbocow/broker"
	"github.com/lixenwraith/turbocow/distributed"
	"github.com/lixenwraith/turbocow/internal/config"
)

// runUI renders a live terminal status dashboard of the distributed
// pipeline (active tasks, approximate completeness, pending pixels),
// polling the broker on a fixed tick. Grounded on the teacher's
// render.TerminalRenderer (screen.SetContent/screen.Show draw loop),
// reduced to plain text status lines since there is no game world to
// paint here.
func runUI(args []string) error {
	cfg := config.FromEnv()
	b, err := broker.NewRedisBroker(cfg.RedisAddress)
	if err != nil {
		return fmt.Errorf("ui: broker unreachable: %w", err)
	}
	defer b.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventCh <- ev
		}
	}()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	var total int64
	for {
		select {
		case ev := <-eventCh:
			switch e := ev.(type) {
			case *tcell.EventKey:
				if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			st, err := distributed.GetStatus(ctx, b, total)
			if err != nil {
				drawStatusLine(screen, 0, fmt.Sprintf("broker error: %v", err), tcell.StyleDefault.Foreground(tcell.ColorRed))
				screen.Show()
				continue
			}
			if total == 0 {
				total = st.ActiveTasks
			}
			drawDashboard(screen, st)
		}
	}
}

func drawDashboard(screen tcell.Screen, st distributed.Status) {
	screen.Clear()
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)

	drawStatusLine(screen, 0, "turbocow distributed status (esc to quit)", tcell.StyleDefault.Bold(true))
	drawStatusLine(screen, 2, fmt.Sprintf("active tasks:    %d", st.ActiveTasks), style)
	drawStatusLine(screen, 3, fmt.Sprintf("pending pixels:  %d", st.PendingPixels), style)
	drawStatusLine(screen, 4, fmt.Sprintf("%% complete:      %.1f%%", st.PercentComplete), style)

	screen.Show()
}

func drawStatusLine(screen tcell.Screen, row int, text string, style tcell.Style) {
	for i, r := range text {
		screen.SetContent(i, row, r, nil, style)
	}
}
