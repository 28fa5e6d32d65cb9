package macro

import (
	"strings"
	"sync"

	"github.com/dshills/arbor/internal/input/key"
)

// DefaultLimit caps the number of events a recorder keeps.
const DefaultLimit = 100000

// Recorder records key sequences for later replay.
type Recorder struct {
	mu        sync.Mutex
	recording bool
	events    []key.Event
	limit     int
	dropped   int
}

// NewRecorder creates a recorder that keeps at most limit events.
// A non-positive limit uses DefaultLimit.
func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Recorder{limit: limit}
}

// Start begins a new recording, discarding any previous one.
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.recording = true
	r.events = nil
	r.dropped = 0
}

// Stop ends the recording and returns the recorded events.
// Returns nil if not recording.
func (r *Recorder) Stop() []key.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return nil
	}
	r.recording = false
	return r.copyEvents()
}

// IsRecording returns true if currently recording.
func (r *Recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// Record adds a key event to the current recording.
// Does nothing if not recording. Events past the limit are counted as
// dropped.
func (r *Recorder) Record(event key.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return
	}
	if len(r.events) >= r.limit {
		r.dropped++
		return
	}
	r.events = append(r.events, event)
}

// Events returns a copy of the events recorded so far.
func (r *Recorder) Events() []key.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.copyEvents()
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Dropped returns how many events were lost to the limit.
func (r *Recorder) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

func (r *Recorder) copyEvents() []key.Event {
	if len(r.events) == 0 {
		return nil
	}
	out := make([]key.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Format renders events as a key sequence that key.ParseSequence accepts.
func Format(events []key.Event) string {
	parts := make([]string, len(events))
	for i, ev := range events {
		parts[i] = ev.String()
	}
	return strings.Join(parts, " ")
}
