package card

import "sync/atomic"

var lastTypewriterID int64

func nextTypewriterID() int {
	return int(atomic.AddInt64(&lastTypewriterID, 1))
}

// Tick identifies one scheduled typing step. A tick only advances the
// typewriter whose run issued it; ticks from cancelled runs are dropped.
type Tick struct {
	ID  int
	tag int
}

// Typewriter reveals a fixed message one rune at a time.
//
// Each run is guarded by a tag. Start and Stop bump the tag, so at most one
// chain of ticks can mutate the buffer at any moment.
type Typewriter struct {
	source  []rune
	pos     int
	id      int
	tag     int
	running bool
	done    bool
}

// NewTypewriter returns an idle typewriter for text.
func NewTypewriter(text string) *Typewriter {
	return &Typewriter{
		source: []rune(text),
		id:     nextTypewriterID(),
	}
}

// Start begins (or resumes) typing and returns the tick to schedule. Any
// earlier run is cancelled first. Progress is never reset. The first rune
// is shown immediately. ok is false when there is nothing left to type.
func (t *Typewriter) Start() (tick Tick, ok bool) {
	t.tag++
	t.running = false
	if t.done {
		return Tick{}, false
	}
	if t.pos == 0 && len(t.source) > 0 {
		t.pos = 1
	}
	if t.pos >= len(t.source) {
		t.finish()
		return Tick{}, false
	}
	t.running = true
	return Tick{ID: t.id, tag: t.tag}, true
}

// Advance applies tick. It appends the next rune and returns the follow-up
// tick while more text remains. Stale or foreign ticks are ignored.
func (t *Typewriter) Advance(tick Tick) (next Tick, ok bool) {
	if !t.running || tick.ID != t.id || tick.tag != t.tag {
		return Tick{}, false
	}
	t.pos++
	if t.pos >= len(t.source) {
		t.finish()
		return Tick{}, false
	}
	t.tag++
	return Tick{ID: t.id, tag: t.tag}, true
}

// Stop cancels the current run. Pending ticks become stale.
func (t *Typewriter) Stop() {
	t.tag++
	t.running = false
}

func (t *Typewriter) finish() {
	t.pos = len(t.source)
	t.running = false
	t.done = true
}

// Text returns the revealed prefix.
func (t *Typewriter) Text() string { return string(t.source[:t.pos]) }

// Source returns the full message.
func (t *Typewriter) Source() string { return string(t.source) }

// Progress returns the number of revealed runes.
func (t *Typewriter) Progress() int { return t.pos }

// Len returns the message length in runes.
func (t *Typewriter) Len() int { return len(t.source) }

func (t *Typewriter) Done() bool    { return t.done }
func (t *Typewriter) Running() bool { return t.running }
