package macro

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/arbor/internal/input/key"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder(0)
	down := key.NewSpecialEvent(key.KeyDown, key.ModNone)
	x := key.NewRuneEvent('x', key.ModNone)

	r.Record(down)
	assert.Equal(t, 0, r.Len(), "not recording")
	assert.Nil(t, r.Stop())

	r.Start()
	assert.True(t, r.IsRecording())
	r.Record(down)
	r.Record(x)
	assert.Equal(t, []key.Event{down, x}, r.Events())

	got := r.Stop()
	assert.False(t, r.IsRecording())
	assert.Equal(t, []key.Event{down, x}, got)

	got[0] = x
	assert.Equal(t, down, r.Events()[0], "returned slice is a copy")

	r.Start()
	assert.Empty(t, r.Events(), "start discards the previous recording")
}

func TestRecorderLimit(t *testing.T) {
	r := NewRecorder(2)
	r.Start()
	for i := 0; i < 5; i++ {
		r.Record(key.NewRuneEvent('a', key.ModNone))
	}

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 3, r.Dropped())
}

func TestFormatParsesBack(t *testing.T) {
	events := []key.Event{
		key.NewSpecialEvent(key.KeyDown, key.ModNone),
		key.NewSpecialEvent(key.KeySpace, key.ModNone),
		key.NewRuneEvent('H', key.ModShift),
		key.NewRuneEvent(',', key.ModNone),
		key.NewRuneEvent(' ', key.ModNone),
		key.NewSpecialEvent(key.KeyEscape, key.ModNone),
		key.NewRuneEvent('q', key.ModCtrl),
	}

	s := Format(events)
	assert.Equal(t, "Down Space H Comma Space Escape Ctrl+q", s)

	parsed, err := key.ParseSequence(s)
	require.NoError(t, err)
	require.Len(t, parsed, len(events))
	for i := range events {
		assert.Equal(t, events[i].Binding(), parsed[i].Binding(), "event %d", i)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.keys")
	var events []key.Event
	for i := 0; i < 40; i++ {
		events = append(events, key.NewRuneEvent(rune('a'+i%26), key.ModNone))
	}
	events = append(events, key.NewSpecialEvent(key.KeyEnter, key.ModNone))

	require.NoError(t, Save(path, events))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, events, loaded)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.keys"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.keys")
	require.NoError(t, os.WriteFile(bad, []byte("# comment\nDown\nDown Bogus\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, key.ErrInvalidSpec)
	assert.ErrorContains(t, err, "bad.keys:3")
}
