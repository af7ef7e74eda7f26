package metrics

import "testing"

func TestNewWorkerDisabledWithoutEndpoint(t *testing.T) {
	w := NewWorker("", "", "", "turbocow_worker_test")
	if w.Enabled() {
		t.Fatalf("Enabled() = true with no endpoint configured")
	}
}

func TestNewWorkerEnabledWithEndpoint(t *testing.T) {
	w := NewWorker("http://example.invalid", "user", "pass", "turbocow_worker_test")
	if !w.Enabled() {
		t.Fatalf("Enabled() = false with an endpoint configured")
	}
}

func TestCountersIncrement(t *testing.T) {
	w := NewWorker("", "", "", "turbocow_worker_test")
	w.ProcessedPixels.Inc()
	w.ProcessedPixels.Inc()
	w.WaitingForTask.Inc()

	families, err := w.registry.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	counts := map[string]float64{}
	for _, fam := range families {
		counts[fam.GetName()] = fam.GetMetric()[0].GetCounter().GetValue()
	}

	if counts["turbocow_worker_processed_pixels_total"] != 2 {
		t.Fatalf("processed pixels = %v, want 2", counts["turbocow_worker_processed_pixels_total"])
	}
	if counts["turbocow_worker_waiting_for_task_total"] != 1 {
		t.Fatalf("waiting for task = %v, want 1", counts["turbocow_worker_waiting_for_task_total"])
	}
}
