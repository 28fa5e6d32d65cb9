package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks event loop activity.
type Metrics struct {
	// Frame timing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64

	// Input handling
	keyCount     atomic.Uint64
	keyTotalNs   atomic.Int64
	typedCount   atomic.Uint64
	ignoredCount atomic.Uint64

	// Other backend events
	resizeCount atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records how long one render took.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)

	for {
		old := m.frameMaxNs.Load()
		if ns <= old {
			break
		}
		if m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordKey records a key event and how long it took to process.
func (m *Metrics) RecordKey(duration time.Duration) {
	m.keyCount.Add(1)
	m.keyTotalNs.Add(duration.Nanoseconds())
}

// RecordTyped records a key that reached the text-input field.
func (m *Metrics) RecordTyped() {
	m.typedCount.Add(1)
}

// RecordIgnored records a key nobody handled.
func (m *Metrics) RecordIgnored() {
	m.ignoredCount.Add(1)
}

// RecordResize records a terminal resize.
func (m *Metrics) RecordResize() {
	m.resizeCount.Add(1)
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Frames       uint64
	AvgFrameTime time.Duration
	MaxFrameTime time.Duration
	LastFrame    time.Duration

	Keys       uint64
	AvgKeyTime time.Duration
	Typed      uint64
	Ignored    uint64

	Resizes uint64
	Uptime  time.Duration
}

// Snapshot returns the current values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Frames:       m.frameCount.Load(),
		MaxFrameTime: time.Duration(m.frameMaxNs.Load()),
		LastFrame:    time.Duration(m.lastFrameNs.Load()),
		Keys:         m.keyCount.Load(),
		Typed:        m.typedCount.Load(),
		Ignored:      m.ignoredCount.Load(),
		Resizes:      m.resizeCount.Load(),
		Uptime:       time.Since(m.startTime),
	}
	if s.Frames > 0 {
		s.AvgFrameTime = time.Duration(m.frameTotalNs.Load() / int64(s.Frames))
	}
	if s.Keys > 0 {
		s.AvgKeyTime = time.Duration(m.keyTotalNs.Load() / int64(s.Keys))
	}
	return s
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.frameCount.Store(0)
	m.frameTotalNs.Store(0)
	m.frameMaxNs.Store(0)
	m.lastFrameNs.Store(0)
	m.keyCount.Store(0)
	m.keyTotalNs.Store(0)
	m.typedCount.Store(0)
	m.ignoredCount.Store(0)
	m.resizeCount.Store(0)
	m.startTime = time.Now()
}
