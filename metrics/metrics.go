// Package metrics implements the worker's optional metrics counters
// (§4.6 "Metrics (optional)"): processed-pixels and waiting-for-task
// events, flushed periodically to an external Pushgateway-style
// endpoint gated by the presence of METRICS_ENDPOINT. Grounded on
// github.com/prometheus/client_golang, the teacher has no analogous
// component since it never reports external metrics.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Worker holds the two counters a worker process reports.
type Worker struct {
	ProcessedPixels prometheus.Counter
	WaitingForTask  prometheus.Counter

	registry *prometheus.Registry
	pusher   *push.Pusher
}

// NewWorker constructs a fresh registry with the two worker counters
// registered. endpoint, username, and password come from
// internal/config; an empty endpoint means metrics reporting is
// disabled, and callers should not start the flush loop.
func NewWorker(endpoint, username, password, jobName string) *Worker {
	registry := prometheus.NewRegistry()

	w := &Worker{
		ProcessedPixels: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "turbocow_worker_processed_pixels_total",
			Help: "Total pixels rendered by this worker.",
		}),
		WaitingForTask: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "turbocow_worker_waiting_for_task_total",
			Help: "Total times this worker's render task blocked on an empty inbound channel.",
		}),
		registry: registry,
	}
	registry.MustRegister(w.ProcessedPixels, w.WaitingForTask)

	if endpoint != "" {
		pusher := push.New(endpoint, jobName).
			Gatherer(registry).
			Client(&http.Client{Timeout: httpClientTimeout})
		if username != "" {
			pusher = pusher.BasicAuth(username, password)
		}
		w.pusher = pusher
	}

	return w
}

// Enabled reports whether a push endpoint was configured.
func (w *Worker) Enabled() bool { return w.pusher != nil }

// RunFlushLoop periodically pushes the registry to the configured
// endpoint until ctx is cancelled. Callers gate this on Enabled().
func (w *Worker) RunFlushLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_ = w.pusher.Push()
		case <-ctx.Done():
			return
		}
	}
}

// httpClientTimeout bounds a single push attempt so a stalled metrics
// endpoint never blocks the worker's shutdown path.
const httpClientTimeout = 5 * time.Second
