// Package distributed implements the coordinator, worker, and display
// processes of the distributed work pipeline (§4.5-§4.7). The teacher
// repo has no networked subsystem; this package is grounded on
// original_source/turbocow/src/distributed/{runner,coordinator}.rs for
// semantics, expressed with github.com/redis/go-redis/v9 as the broker
// transport and github.com/vmihailenco/msgpack/v5 as the wire codec.
package distributed

import (
	"context"
	"sort"

	"github.com/lixenwraith/turbocow/broker"
	"github.com/lixenwraith/turbocow/internal/xerrors"
	"github.com/lixenwraith/turbocow/scene"
)

// taskPushBatchSize amortizes broker round trips when seeding the task
// queue (§4.5 step 6).
const taskPushBatchSize = 10000

// defaultResolution mirrors scene.FromDescription's fallback, applied
// here independently since the coordinator works from the raw
// description before a Scene exists (§4.5 step 4).
const defaultResolution = 1000

// Init loads desc, stores it under a freshly minted scene id, enumerates
// its pixel tasks in center-out order, and pushes them to the broker
// (§4.5 "init").
func Init(ctx context.Context, b broker.Broker, desc scene.SceneDescription) (sid uint64, err error) {
	blob, err := broker.EncodeScene(desc)
	if err != nil {
		return 0, xerrors.NewSceneLoadError(err)
	}

	next, err := b.Incr(ctx, broker.KeyTaskIDCounter)
	if err != nil {
		return 0, xerrors.NewBrokerError(err)
	}
	sid = uint64(next)

	if err := b.Set(ctx, broker.SceneKey(sid), blob); err != nil {
		return 0, xerrors.NewBrokerError(err)
	}

	width, height := desc.RenderOptions.Width, desc.RenderOptions.Height
	if width <= 0 || height <= 0 {
		width, height = defaultResolution, defaultResolution
	}

	tasks := centerOutTasks(sid, width, height)

	for start := 0; start < len(tasks); start += taskPushBatchSize {
		end := start + taskPushBatchSize
		if end > len(tasks) {
			end = len(tasks)
		}
		batch := make([][]byte, 0, end-start)
		for _, t := range tasks[start:end] {
			encoded, err := broker.EncodeTask(t)
			if err != nil {
				return sid, xerrors.NewSceneLoadError(err)
			}
			batch = append(batch, encoded)
		}
		if err := b.LPush(ctx, broker.KeyTasks, batch...); err != nil {
			return sid, xerrors.NewBrokerError(err)
		}
	}

	return sid, nil
}

// centerOutTasks enumerates every pixel of a width x height image,
// sorted by ascending squared distance from the image center, producing
// the render order a human viewer perceives as emanating from the
// middle of the frame (§4.5 step 5, §8 E6).
func centerOutTasks(sid uint64, width, height int) []broker.ProcessPixel {
	tasks := make([]broker.ProcessPixel, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tasks = append(tasks, broker.ProcessPixel{SceneID: sid, X: uint32(x), Y: uint32(y)})
		}
	}

	cx, cy := float64(width)/2, float64(height)/2
	sort.SliceStable(tasks, func(i, j int) bool {
		return sqDist(tasks[i], cx, cy) < sqDist(tasks[j], cx, cy)
	})
	return tasks
}

func sqDist(t broker.ProcessPixel, cx, cy float64) float64 {
	dx := float64(t.X) - cx
	dy := float64(t.Y) - cy
	return dx*dx + dy*dy
}

// Status reports the pipeline's progress (§4.5 "status").
type Status struct {
	ActiveTasks  int64
	PendingPixels int64
	// PercentComplete is approximate: 100 * (total - active) / total,
	// where total is the seeded task count passed to GetStatus; it is 0
	// when GetStatus is given a total of 0.
	PercentComplete float64
}

// GetStatus reports the active task count and pending pixel count. The
// caller supplies the originally seeded total (learned from its own
// init call or a prior status snapshot) to compute completeness; a
// total of 0 skips the completeness calculation.
func GetStatus(ctx context.Context, b broker.Broker, total int64) (Status, error) {
	active, err := b.LLen(ctx, broker.KeyTasks)
	if err != nil {
		return Status{}, xerrors.NewBrokerError(err)
	}
	pending, err := b.LLen(ctx, broker.KeyPixels)
	if err != nil {
		return Status{}, xerrors.NewBrokerError(err)
	}

	st := Status{ActiveTasks: active, PendingPixels: pending}
	if total > 0 {
		st.PercentComplete = 100 * float64(total-active) / float64(total)
	}
	return st, nil
}

// Reset deletes every broker key under the well-known prefix (§4.5
// "reset"). Idempotent: resetting an already-empty keyspace succeeds.
func Reset(ctx context.Context, b broker.Broker) error {
	if err := b.ScanDeletePrefix(ctx, broker.KeyPrefix); err != nil {
		return xerrors.NewBrokerError(err)
	}
	return nil
}
