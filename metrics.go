package estatekit

import "sync/atomic"

// MetricID defines a public type used by estatekit APIs.
//
// MetricID instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricID uint16

const (
	// MetricLoginSuccess is an exported constant or variable used by the session core.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure is an exported constant or variable used by the session core.
	MetricLoginFailure
	// MetricRegisterSuccess is an exported constant or variable used by the session core.
	MetricRegisterSuccess
	// MetricRegisterFailure is an exported constant or variable used by the session core.
	MetricRegisterFailure
	// MetricLogout is an exported constant or variable used by the session core.
	MetricLogout
	// MetricRefreshSuccess is an exported constant or variable used by the session core.
	MetricRefreshSuccess
	// MetricRefreshFailure is an exported constant or variable used by the session core.
	MetricRefreshFailure
	// MetricRefreshSkipped is an exported constant or variable used by the session core.
	MetricRefreshSkipped
	// MetricSessionRestored is an exported constant or variable used by the session core.
	MetricSessionRestored
	// MetricSessionIntegrityFailure is an exported constant or variable used by the session core.
	MetricSessionIntegrityFailure
	// MetricRequestSuccess is an exported constant or variable used by the session core.
	MetricRequestSuccess
	// MetricRequestHTTPError is an exported constant or variable used by the session core.
	MetricRequestHTTPError
	// MetricRequestNetworkError is an exported constant or variable used by the session core.
	MetricRequestNetworkError
	// MetricResponseWrapped is an exported constant or variable used by the session core.
	MetricResponseWrapped
	metricIDCount
)

const cacheLineSize = 64

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics defines a public type used by estatekit APIs.
//
// Metrics instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]paddedCounter
}

// MetricsSnapshot defines a public type used by estatekit APIs.
//
// MetricsSnapshot instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// NewMetrics describes the newmetrics operation and its observable behavior.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Enabled describes the enabled operation and its observable behavior.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc describes the inc operation and its observable behavior.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Snapshot describes the snapshot operation and its observable behavior.
func (m *Metrics) Snapshot() MetricsSnapshot {
	out := MetricsSnapshot{Counters: make(map[MetricID]uint64, int(metricIDCount))}
	if m == nil || !m.enabled {
		return out
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		if v := atomic.LoadUint64(&m.counters[id].value); v > 0 {
			out.Counters[id] = v
		}
	}
	return out
}
