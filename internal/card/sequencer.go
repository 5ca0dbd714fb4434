// Package card implements the view sequencing of the greeting card:
// cover, typed header, gift, cake, messages, gallery and done.
//
// The Sequencer holds no timers itself. Callers schedule the Tick values it
// returns and feed them back through Advance, and they wait out the gift
// delay before calling ShowCake. Every action whose precondition does not
// hold is a no-op that returns false.
package card

// State is a read-only snapshot for the presentation layer.
type State struct {
	Phase       Phase
	Reveal      RevealState
	GiftOpening bool
	Header      string
	TypingDone  bool
	PhotoIndex  int
	PhotoCount  int
}

// Sequencer owns the card state and its transitions.
type Sequencer struct {
	phase    Phase
	reveal   RevealState
	opening  bool
	typer    *Typewriter
	gallery  Gallery
	animator Animator
	observe  func(from, to Phase)
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithAnimator sets the effect sink. Defaults to NopAnimator.
func WithAnimator(a Animator) Option {
	return func(s *Sequencer) {
		if a != nil {
			s.animator = a
		}
	}
}

// WithTransitionHook registers fn to run once per phase change.
func WithTransitionHook(fn func(from, to Phase)) Option {
	return func(s *Sequencer) { s.observe = fn }
}

// New returns a sequencer on the cover, typing header once revealed.
func New(header string, photoCount int, opts ...Option) *Sequencer {
	s := &Sequencer{
		phase:    PhaseCover,
		reveal:   GiftClosed,
		typer:    NewTypewriter(header),
		gallery:  NewGallery(photoCount),
		animator: NopAnimator{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot.
func (s *Sequencer) State() State {
	return State{
		Phase:       s.phase,
		Reveal:      s.reveal,
		GiftOpening: s.opening,
		Header:      s.typer.Text(),
		TypingDone:  s.typer.Done(),
		PhotoIndex:  s.gallery.Index(),
		PhotoCount:  s.gallery.Count(),
	}
}

func (s *Sequencer) Phase() Phase { return s.phase }

// Typewriter exposes the header typewriter for rendering.
func (s *Sequencer) Typewriter() *Typewriter { return s.typer }

// Proceed leaves the cover and starts typing the header. The returned tick
// must be scheduled by the caller; ok is false if no tick is needed.
func (s *Sequencer) Proceed() (tick Tick, ok bool) {
	if s.phase != PhaseCover {
		return Tick{}, false
	}
	s.transition(PhaseReveal)
	return s.typer.Start()
}

// Advance applies a typing tick scheduled earlier.
func (s *Sequencer) Advance(tick Tick) (next Tick, ok bool) {
	if s.phase != PhaseReveal {
		return Tick{}, false
	}
	return s.typer.Advance(tick)
}

// OpenGift fires the fireworks and marks the gift as opening. It returns
// true when the caller should schedule ShowCake after the gift delay.
func (s *Sequencer) OpenGift() bool {
	if s.phase != PhaseReveal || s.reveal != GiftClosed || s.opening || !s.typer.Done() {
		return false
	}
	s.opening = true
	s.animator.Fire(EffectFireworks)
	return true
}

// ShowCake completes the gift opening.
func (s *Sequencer) ShowCake() bool {
	if s.phase != PhaseReveal || !s.opening {
		return false
	}
	s.opening = false
	s.reveal = CakeShown
	return true
}

// CutCake opens the messages.
func (s *Sequencer) CutCake() bool {
	if s.phase != PhaseReveal || s.reveal != CakeShown {
		return false
	}
	s.animator.Fire(EffectPop)
	s.transition(PhaseMessages)
	return true
}

// CloseMessages moves on to the gallery, or straight to done when there
// are no photos to show.
func (s *Sequencer) CloseMessages() bool {
	if s.phase != PhaseMessages {
		return false
	}
	if s.gallery.Empty() {
		s.transition(PhaseDone)
		return true
	}
	s.transition(PhaseGallery)
	return true
}

// CloseGallery ends the card.
func (s *Sequencer) CloseGallery() bool {
	if s.phase != PhaseGallery {
		return false
	}
	s.transition(PhaseDone)
	return true
}

// NextPhoto advances the gallery cursor.
func (s *Sequencer) NextPhoto() bool {
	if s.phase != PhaseGallery {
		return false
	}
	return s.gallery.Next()
}

// PrevPhoto moves the gallery cursor back.
func (s *Sequencer) PrevPhoto() bool {
	if s.phase != PhaseGallery {
		return false
	}
	return s.gallery.Prev()
}

// SetPhotoCount replaces the gallery size after a content reload. If the
// collection becomes empty while the gallery is open, the card is done.
func (s *Sequencer) SetPhotoCount(n int) {
	s.gallery.SetCount(n)
	if s.phase == PhaseGallery && s.gallery.Empty() {
		s.transition(PhaseDone)
	}
}

// SetHeader replaces the message to type. It only applies on the cover;
// once typing has begun the header is fixed.
func (s *Sequencer) SetHeader(text string) bool {
	if s.phase != PhaseCover {
		return false
	}
	s.typer = NewTypewriter(text)
	return true
}

// Teardown cancels the typing run. Ticks delivered afterwards are ignored.
func (s *Sequencer) Teardown() {
	s.typer.Stop()
}

func (s *Sequencer) transition(to Phase) {
	from := s.phase
	if from == to {
		return
	}
	s.phase = to
	if to != PhaseReveal {
		s.typer.Stop()
	}
	if s.observe != nil {
		s.observe(from, to)
	}
}
