package distributed

import (
	"context"
	"time"

	"github.com/lixenwraith/turbocow/broker"
	"github.com/lixenwraith/turbocow/internal/xerrors"
	"github.com/lixenwraith/turbocow/metrics"
	"github.com/lixenwraith/turbocow/rendercore"
	"github.com/lixenwraith/turbocow/scene"
)

const (
	taskIOTick       = 16 * time.Millisecond
	minBatchTarget   = 8
	maxBatchTarget   = 4096
	sceneFetchRetries = 10
	sceneFetchBackoff = time.Second
)

// Worker runs the two cooperating tasks of §4.6: task-IO (refills an
// inbound channel from the broker, drains an outbound channel to it)
// and render (consumes inbound, produces outbound). Grounded on
// original_source/turbocow/src/distributed/worker.rs's
// "coroutine-like per-worker IO thread" description (§8 design note),
// expressed as two goroutines joined by buffered channels rather than
// an async runtime.
type Worker struct {
	b       broker.Broker
	metrics *metrics.Worker

	inbound  chan broker.ProcessPixel
	outbound chan broker.SetPixel
}

// NewWorker constructs a worker. m may be nil when no metrics endpoint
// is configured (§4.6 "Metrics (optional)").
func NewWorker(b broker.Broker, m *metrics.Worker) *Worker {
	return &Worker{
		b:        b,
		metrics:  m,
		inbound:  make(chan broker.ProcessPixel, maxBatchTarget),
		outbound: make(chan broker.SetPixel, maxBatchTarget),
	}
}

// Run starts the task-IO and render tasks and blocks until ctx is
// cancelled or the render task aborts after exhausting its scene-fetch
// retry budget.
func (w *Worker) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go w.taskIOLoop(ctx)
	go func() { errCh <- w.renderLoop(ctx) }()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// taskIOLoop implements §4.6's "Task-IO task": on each ~16ms tick it
// refills the inbound channel from `tasks` up to an adaptive target in
// [8, 4096], and pipelined-pushes any pending outbound pixels to
// `pixels`.
func (w *Worker) taskIOLoop(ctx context.Context) {
	ticker := time.NewTicker(taskIOTick)
	defer ticker.Stop()

	target := minBatchTarget
	prevLen := 0

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		current := len(w.inbound)
		target = adaptTarget(target, current, prevLen)
		prevLen = current

		if current < target {
			w.refillInbound(ctx, target-current)
		}

		w.drainOutbound(ctx)
	}
}

// adaptTarget applies §4.6's adaptive policy: double on full drain
// (the inbound channel was empty at both the previous and the current
// tick, each measured before that tick's refill), halve when backlog
// exceeds 100 and target is large, else a small decrement when backlog
// exceeds 16.
func adaptTarget(target, current, prevLen int) int {
	switch {
	case prevLen == 0 && current == 0:
		target *= 2
	case current > 100 && target > 512:
		target /= 2
	case current > 16 && target > minBatchTarget:
		target--
	}
	if target < minBatchTarget {
		target = minBatchTarget
	}
	if target > maxBatchTarget {
		target = maxBatchTarget
	}
	return target
}

func (w *Worker) refillInbound(ctx context.Context, n int) {
	raw, err := w.b.RPopN(ctx, broker.KeyTasks, n)
	if err != nil {
		return
	}
	for _, data := range raw {
		t, err := broker.DecodeTask(data)
		if err != nil {
			continue
		}
		select {
		case w.inbound <- t:
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) drainOutbound(ctx context.Context) {
	var pending [][]byte
	for {
		select {
		case p := <-w.outbound:
			encoded, err := broker.EncodePixel(p)
			if err == nil {
				pending = append(pending, encoded)
			}
			continue
		default:
		}
		break
	}
	if len(pending) == 0 {
		return
	}
	_ = w.b.LPush(ctx, broker.KeyPixels, pending...)
}

// renderLoop implements §4.6's "Render task": blocking-waits on
// inbound, rebuilding the cached scene on an sid change with bounded
// retry, then renders the single pixel and enqueues its result.
func (w *Worker) renderLoop(ctx context.Context) error {
	var cachedSID uint64
	var cachedSIDValid bool
	var cachedScene *scene.Scene

	for {
		if w.metrics != nil && len(w.inbound) == 0 {
			w.metrics.WaitingForTask.Inc()
		}

		select {
		case <-ctx.Done():
			return nil
		case task, ok := <-w.inbound:
			if !ok {
				return nil
			}

			if !cachedSIDValid || task.SceneID != cachedSID {
				s, err := w.fetchScene(ctx, task.SceneID)
				if err != nil {
					return err
				}
				cachedScene = s
				cachedSID = task.SceneID
				cachedSIDValid = true
			}

			pixel := w.renderPixel(cachedScene, int(task.X), int(task.Y))
			result := broker.SetPixel{
				SceneID: task.SceneID,
				X:       task.X,
				Y:       task.Y,
				R:       pixel.R,
				G:       pixel.G,
				B:       pixel.B,
			}

			select {
			case w.outbound <- result:
			case <-ctx.Done():
				return nil
			}

			if w.metrics != nil {
				w.metrics.ProcessedPixels.Inc()
			}
		}
	}
}

// fetchScene fetches and decodes scene:<sid>, retrying up to
// sceneFetchRetries times with a 1s backoff on transient broker errors
// or an absent scene key before giving up (§4.6, §7 BrokerError).
func (w *Worker) fetchScene(ctx context.Context, sid uint64) (*scene.Scene, error) {
	var lastErr error
	for attempt := 0; attempt < sceneFetchRetries; attempt++ {
		blob, ok, err := w.b.Get(ctx, broker.SceneKey(sid))
		if err == nil && ok {
			desc, err := broker.DecodeScene(blob)
			if err != nil {
				return nil, xerrors.NewSceneLoadError(err)
			}
			return scene.FromDescription(desc, nil)
		}
		lastErr = err
		if lastErr == nil {
			lastErr = errSceneNotFound
		}
		select {
		case <-time.After(sceneFetchBackoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, xerrors.NewBrokerError(lastErr)
}

type renderedPixel struct {
	R, G, B uint8
}

func (w *Worker) renderPixel(s *scene.Scene, x, y int) renderedPixel {
	cam := s.Camera()
	ray := rendercore.PrimaryRay(cam, s.Width, s.Height, x, y)
	color := rendercore.RenderRay(ray, s, 0)
	return renderedPixel{R: clampByte(color.R), G: clampByte(color.G), B: clampByte(color.B)}
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
