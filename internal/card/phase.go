package card

// Phase is the top-level view state of the card. Exactly one is active.
type Phase int

const (
	PhaseCover Phase = iota
	PhaseReveal
	PhaseMessages
	PhaseGallery
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseCover:
		return "Cover"
	case PhaseReveal:
		return "Reveal"
	case PhaseMessages:
		return "Messages"
	case PhaseGallery:
		return "Gallery"
	case PhaseDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no transition leaves p.
func (p Phase) Terminal() bool {
	return p == PhaseDone
}

// RevealState is the sub-state of PhaseReveal. It only moves from
// GiftClosed to CakeShown.
type RevealState int

const (
	GiftClosed RevealState = iota
	CakeShown
)

func (r RevealState) String() string {
	if r == CakeShown {
		return "CakeShown"
	}
	return "GiftClosed"
}
