package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Left", KeyLeft.String())
	assert.Equal(t, "Space", KeySpace.String())
	assert.Equal(t, "Key(999)", Key(999).String())
	assert.True(t, KeyDown.IsArrowKey())
	assert.False(t, KeyTab.IsArrowKey())
	assert.False(t, KeyRune.IsSpecial())
}

func TestKeyFromName(t *testing.T) {
	assert.Equal(t, KeyEscape, KeyFromName("Esc"))
	assert.Equal(t, KeyEnter, KeyFromName(" return "))
	assert.Equal(t, KeyNone, KeyFromName("hyper"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"Left", NewSpecialEvent(KeyLeft, ModNone)},
		{"enter", NewSpecialEvent(KeyEnter, ModNone)},
		{"Space", NewSpecialEvent(KeySpace, ModNone)},
		{"h", NewRuneEvent('h', ModNone)},
		{"H", NewRuneEvent('H', ModShift)},
		{"+", NewRuneEvent('+', ModNone)},
		{"Ctrl+Q", NewRuneEvent('q', ModCtrl)},
		{"Alt+Left", NewSpecialEvent(KeyLeft, ModAlt)},
		{"<C-q>", NewRuneEvent('q', ModCtrl)},
		{"<CR>", NewSpecialEvent(KeyEnter, ModNone)},
		{"<Esc>", NewSpecialEvent(KeyEscape, ModNone)},
		{"<BS>", NewSpecialEvent(KeyBackspace, ModNone)},
		{"Comma", NewRuneEvent(',', ModNone)},
		{"Ctrl+Plus", NewRuneEvent('+', ModCtrl)},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrEmptySpec)

	_, err = Parse("Hyper+x")
	assert.ErrorIs(t, err, ErrInvalidSpec)

	_, err = Parse("<X-q>")
	assert.ErrorIs(t, err, ErrInvalidSpec)

	_, err = Parse("nosuchkey")
	assert.ErrorIs(t, err, ErrInvalidSpec)

	assert.Panics(t, func() { MustParse("") })
}

func TestParseSequence(t *testing.T) {
	events, err := ParseSequence("Down Right, Space x <Esc>")
	require.NoError(t, err)

	want := []Event{
		NewSpecialEvent(KeyDown, ModNone),
		NewSpecialEvent(KeyRight, ModNone),
		NewSpecialEvent(KeySpace, ModNone),
		NewRuneEvent('x', ModNone),
		NewSpecialEvent(KeyEscape, ModNone),
	}
	assert.Equal(t, want, events)

	events, err = ParseSequence("   ")
	require.NoError(t, err)
	assert.Empty(t, events)

	_, err = ParseSequence("Down Bogus")
	assert.Error(t, err)
}

func TestBindingNormalizes(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want Event
	}{
		{"typed space", NewRuneEvent(' ', ModNone), NewSpecialEvent(KeySpace, ModNone)},
		{"shifted space", NewRuneEvent(' ', ModShift), NewSpecialEvent(KeySpace, ModNone)},
		{"uppercase letter", NewRuneEvent('H', ModShift), NewRuneEvent('H', ModNone)},
		{"ctrl letter", NewRuneEvent('Q', ModCtrl), NewRuneEvent('q', ModCtrl)},
		{"arrow", NewSpecialEvent(KeyLeft, ModNone), NewSpecialEvent(KeyLeft, ModNone)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ev.Binding())
		})
	}

	assert.Equal(t, MustParse("H").Binding(), NewRuneEvent('H', ModShift).Binding())
	assert.Equal(t, MustParse("<C-q>").Binding(), NewRuneEvent('q', ModCtrl).Binding())
}

func TestEventText(t *testing.T) {
	assert.Equal(t, "a", NewRuneEvent('a', ModNone).Text())
	assert.Equal(t, "A", NewRuneEvent('A', ModShift).Text())
	assert.Equal(t, " ", NewRuneEvent(' ', ModNone).Text())
	assert.Equal(t, " ", NewSpecialEvent(KeySpace, ModNone).Text())
	assert.Equal(t, "", NewRuneEvent('a', ModCtrl).Text())
	assert.Equal(t, "", NewSpecialEvent(KeyEnter, ModNone).Text())
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "a", NewRuneEvent('a', ModNone).String())
	assert.Equal(t, "A", NewRuneEvent('A', ModShift).String())
	assert.Equal(t, "Ctrl+q", NewRuneEvent('q', ModCtrl).String())
	assert.Equal(t, "Space", NewRuneEvent(' ', ModNone).String())
	assert.Equal(t, "Tab", NewSpecialEvent(KeyTab, ModNone).String())
}

func TestStringRoundTrips(t *testing.T) {
	events := []Event{
		NewRuneEvent('a', ModNone),
		NewRuneEvent('Z', ModShift),
		NewRuneEvent(',', ModNone),
		NewRuneEvent('+', ModNone),
		NewRuneEvent('q', ModCtrl),
		NewSpecialEvent(KeyEscape, ModNone),
		NewSpecialEvent(KeyLeft, ModAlt),
		NewSpecialEvent(KeySpace, ModNone),
	}
	for _, ev := range events {
		got, err := Parse(ev.String())
		require.NoError(t, err, ev.String())
		assert.Equal(t, ev.Binding(), got.Binding(), ev.String())
	}

	seq, err := ParseSequence("a Comma b")
	require.NoError(t, err)
	assert.Equal(t, []Event{
		NewRuneEvent('a', ModNone),
		NewRuneEvent(',', ModNone),
		NewRuneEvent('b', ModNone),
	}, seq)
}

func TestModifiers(t *testing.T) {
	m := ModCtrl.With(ModAlt)
	assert.True(t, m.HasCtrl())
	assert.True(t, m.HasAlt())
	assert.False(t, m.HasShift())
	assert.Equal(t, "Ctrl+Alt", m.String())
	assert.Equal(t, ModCtrl, m.Without(ModAlt))
	assert.Equal(t, ModMeta, ModifierFromName("cmd"))
	assert.Equal(t, ModNone, ModifierFromName("hyper"))
}
