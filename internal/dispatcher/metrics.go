package dispatcher

import (
	"sort"
	"sync"
	"time"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	actions map[string]*ActionMetrics

	totalDispatches uint64
	totalUnhandled  uint64
	totalErrors     uint64
	totalPanics     uint64
	totalDuration   time.Duration
}

// ActionMetrics holds metrics for a single action.
type ActionMetrics struct {
	Name          string
	DispatchCount uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
	LastDispatch  time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{actions: make(map[string]*ActionMetrics)}
}

// RecordDispatch records one action run.
func (m *Metrics) RecordDispatch(action string, duration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration
	if err != nil {
		m.totalErrors++
	}

	am := m.actions[action]
	if am == nil {
		am = &ActionMetrics{Name: action}
		m.actions[action] = am
	}
	am.DispatchCount++
	am.TotalDuration += duration
	am.LastDispatch = time.Now()
	if duration > am.MaxDuration {
		am.MaxDuration = duration
	}
	if err != nil {
		am.ErrorCount++
	}
}

// RecordUnhandled records a key event with no binding.
func (m *Metrics) RecordUnhandled() {
	m.mu.Lock()
	m.totalUnhandled++
	m.mu.Unlock()
}

// RecordPanic records a panic recovery.
func (m *Metrics) RecordPanic() {
	m.mu.Lock()
	m.totalPanics++
	m.mu.Unlock()
}

// TotalDispatches returns the number of actions run.
func (m *Metrics) TotalDispatches() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDispatches
}

// TotalUnhandled returns the number of unbound key events.
func (m *Metrics) TotalUnhandled() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalUnhandled
}

// TotalErrors returns the number of actions that returned an error.
func (m *Metrics) TotalErrors() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalErrors
}

// TotalPanics returns the number of recovered handler panics.
func (m *Metrics) TotalPanics() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalPanics
}

// AverageDuration returns the mean action run time.
func (m *Metrics) AverageDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.totalDispatches == 0 {
		return 0
	}
	return m.totalDuration / time.Duration(m.totalDispatches)
}

// ActionStats returns a copy of the metrics for one action, or nil.
func (m *Metrics) ActionStats(action string) *ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	am := m.actions[action]
	if am == nil {
		return nil
	}
	c := *am
	return &c
}

// TopActions returns up to n actions ordered by dispatch count.
func (m *Metrics) TopActions(n int) []ActionMetrics {
	m.mu.RLock()
	out := make([]ActionMetrics, 0, len(m.actions))
	for _, am := range m.actions {
		out = append(out, *am)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].DispatchCount != out[j].DispatchCount {
			return out[i].DispatchCount > out[j].DispatchCount
		}
		return out[i].Name < out[j].Name
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = make(map[string]*ActionMetrics)
	m.totalDispatches = 0
	m.totalUnhandled = 0
	m.totalErrors = 0
	m.totalPanics = 0
	m.totalDuration = 0
}
