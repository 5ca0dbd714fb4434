package card

// Effect names a decorative animation.
type Effect int

const (
	// EffectFireworks plays when the gift is opened.
	EffectFireworks Effect = iota
	// EffectPop plays when the cake is cut.
	EffectPop
)

func (e Effect) String() string {
	switch e {
	case EffectFireworks:
		return "fireworks"
	case EffectPop:
		return "pop"
	default:
		return "unknown"
	}
}

// Animator fires decorative effects. Fire must not block; the Sequencer
// never waits on or inspects the result.
type Animator interface {
	Fire(Effect)
}

// NopAnimator discards every effect.
type NopAnimator struct{}

// Fire implements Animator.
func (NopAnimator) Fire(Effect) {}

// AnimatorFunc adapts a function to Animator.
type AnimatorFunc func(Effect)

// Fire implements Animator.
func (f AnimatorFunc) Fire(e Effect) { f(e) }
