package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()

	m.RecordFrame(2 * time.Millisecond)
	m.RecordFrame(4 * time.Millisecond)
	m.RecordKey(time.Millisecond)
	m.RecordKey(3 * time.Millisecond)
	m.RecordTyped()
	m.RecordIgnored()
	m.RecordResize()

	s := m.Snapshot()
	assert.Equal(t, uint64(2), s.Frames)
	assert.Equal(t, 3*time.Millisecond, s.AvgFrameTime)
	assert.Equal(t, 4*time.Millisecond, s.MaxFrameTime)
	assert.Equal(t, 4*time.Millisecond, s.LastFrame)
	assert.Equal(t, uint64(2), s.Keys)
	assert.Equal(t, 2*time.Millisecond, s.AvgKeyTime)
	assert.Equal(t, uint64(1), s.Typed)
	assert.Equal(t, uint64(1), s.Ignored)
	assert.Equal(t, uint64(1), s.Resizes)
	assert.GreaterOrEqual(t, s.Uptime, time.Duration(0))
}

func TestMetricsReset(t *testing.T) {
	m := NewMetrics()
	m.RecordFrame(time.Millisecond)
	m.RecordKey(time.Millisecond)

	m.Reset()

	s := m.Snapshot()
	assert.Zero(t, s.Frames)
	assert.Zero(t, s.Keys)
	assert.Zero(t, s.AvgFrameTime)
	assert.Zero(t, s.MaxFrameTime)
}
