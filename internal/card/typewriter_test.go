package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain feeds ticks until the typewriter stops asking for more.
func drain(t *testing.T, tw *Typewriter, tick Tick) int {
	t.Helper()
	steps := 0
	for {
		next, ok := tw.Advance(tick)
		steps++
		if !ok {
			return steps
		}
		tick = next
	}
}

func TestTypewriter_RevealsFullMessage(t *testing.T) {
	tw := NewTypewriter("héllo")
	tick, ok := tw.Start()
	require.True(t, ok)
	assert.Equal(t, "h", tw.Text(), "first rune is shown immediately")

	prev := tw.Progress()
	for ok {
		tick, ok = tw.Advance(tick)
		assert.GreaterOrEqual(t, tw.Progress(), prev)
		prev = tw.Progress()
	}
	assert.True(t, tw.Done())
	assert.False(t, tw.Running())
	assert.Equal(t, "héllo", tw.Text())
	assert.Equal(t, 5, tw.Progress())
}

func TestTypewriter_StaleTickIgnored(t *testing.T) {
	tw := NewTypewriter("abcdef")
	first, ok := tw.Start()
	require.True(t, ok)

	second, ok := tw.Advance(first)
	require.True(t, ok)
	assert.Equal(t, "ab", tw.Text())

	// Delivering the same tick twice must not double-advance.
	_, ok = tw.Advance(first)
	assert.False(t, ok)
	assert.Equal(t, "ab", tw.Text())

	_, ok = tw.Advance(second)
	assert.True(t, ok)
	assert.Equal(t, "abc", tw.Text())
}

func TestTypewriter_RestartCancelsPriorRun(t *testing.T) {
	tw := NewTypewriter("abcdef")
	old, _ := tw.Start()
	_, _ = tw.Advance(old)
	progress := tw.Progress()

	fresh, ok := tw.Start()
	require.True(t, ok)
	assert.Equal(t, progress, tw.Progress(), "restart keeps progress")

	_, ok = tw.Advance(old)
	assert.False(t, ok, "tick from cancelled run is dropped")
	assert.Equal(t, progress, tw.Progress())

	steps := drain(t, tw, fresh)
	assert.Equal(t, tw.Len()-progress, steps)
	assert.True(t, tw.Done())
}

func TestTypewriter_StopDropsPendingTick(t *testing.T) {
	tw := NewTypewriter("abc")
	tick, _ := tw.Start()
	tw.Stop()
	_, ok := tw.Advance(tick)
	assert.False(t, ok)
	assert.Equal(t, "a", tw.Text())
	assert.False(t, tw.Done())
}

func TestTypewriter_ForeignTickIgnored(t *testing.T) {
	a := NewTypewriter("abc")
	b := NewTypewriter("xyz")
	tickA, _ := a.Start()
	_, _ = b.Start()

	_, ok := b.Advance(tickA)
	assert.False(t, ok)
	assert.Equal(t, "x", b.Text())
}

func TestTypewriter_ShortMessages(t *testing.T) {
	empty := NewTypewriter("")
	_, ok := empty.Start()
	assert.False(t, ok)
	assert.True(t, empty.Done())

	single := NewTypewriter("!")
	_, ok = single.Start()
	assert.False(t, ok)
	assert.True(t, single.Done())
	assert.Equal(t, "!", single.Text())
}

func TestTypewriter_CompletesOnce(t *testing.T) {
	tw := NewTypewriter("abc")
	tick, ok := tw.Start()
	require.True(t, ok)
	last := tick
	for ok {
		last = tick
		tick, ok = tw.Advance(tick)
	}
	require.True(t, tw.Done())

	_, ok = tw.Advance(last)
	assert.False(t, ok, "ticks after completion are dropped")
	_, ok = tw.Start()
	assert.False(t, ok, "a finished message is not typed again")
	_, ok = tw.Advance(Tick{ID: tw.id, tag: tw.tag})
	assert.False(t, ok)

	assert.True(t, tw.Done())
	assert.False(t, tw.Running())
	assert.Equal(t, tw.Len(), tw.Progress())
	assert.Equal(t, "abc", tw.Text())
}

func TestTypewriter_StartResumesAfterStop(t *testing.T) {
	tw := NewTypewriter("abcd")
	tick, _ := tw.Start()
	_, _ = tw.Advance(tick)
	tw.Stop()
	require.Equal(t, "ab", tw.Text())

	resumed, ok := tw.Start()
	require.True(t, ok)
	assert.Equal(t, "ab", tw.Text(), "resume keeps progress")
	drain(t, tw, resumed)
	assert.Equal(t, "abcd", tw.Text())
	assert.True(t, tw.Done())
}
