// Package ui renders the greeting card with Bubble Tea.
//
// Core pieces:
//   - AppModel: owns the card sequencer and routes messages (Elm-style)
//   - View: one screen per card phase (cover, reveal, messages, gallery, done)
//   - KeybindRegistry: phase-filtered key bindings that emit action messages
//   - Confetti: the decorative animator fired on gift and cake
//
// Views never mutate the sequencer; they send action messages that the
// AppModel applies.
package ui
