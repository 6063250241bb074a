package estatekit

import (
	"sync"
	"testing"
)

func TestMetricsIncAndSnapshot(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricRequestHTTPError)

	snap := m.Snapshot()
	if snap.Counters[MetricLoginSuccess] != 2 {
		t.Fatalf("login success = %d", snap.Counters[MetricLoginSuccess])
	}
	if snap.Counters[MetricRequestHTTPError] != 1 {
		t.Fatalf("http error = %d", snap.Counters[MetricRequestHTTPError])
	}
	if _, ok := snap.Counters[MetricLogout]; ok {
		t.Fatal("zero counter present in snapshot")
	}
}

func TestMetricsDisabled(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})

	m.Inc(MetricLoginSuccess)

	if m.Enabled() {
		t.Fatal("Enabled() = true")
	}
	if len(m.Snapshot().Counters) != 0 {
		t.Fatal("disabled metrics recorded a count")
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.Inc(MetricLoginSuccess)
	if m.Enabled() {
		t.Fatal("nil Enabled() = true")
	}
	if len(m.Snapshot().Counters) != 0 {
		t.Fatal("nil snapshot not empty")
	}
}

func TestMetricsOutOfRangeID(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Inc(MetricID(10000))
	if len(m.Snapshot().Counters) != 0 {
		t.Fatal("out-of-range id recorded")
	}
}

func TestMetricsConcurrentInc(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	const goroutines = 8
	const perGoroutine = 1000

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				m.Inc(MetricRequestSuccess)
			}
		}()
	}
	wg.Wait()

	if got := m.Snapshot().Counters[MetricRequestSuccess]; got != goroutines*perGoroutine {
		t.Fatalf("count = %d, want %d", got, goroutines*perGoroutine)
	}
}
