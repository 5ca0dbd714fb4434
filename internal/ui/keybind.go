package ui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"greetcard/internal/card"
)

type binding struct {
	cmd    tea.Cmd
	desc   string
	phases []card.Phase // nil/empty = applies to all phases
}

// KeybindRegistry maps keys to commands, optionally per card phase.
// Keys use tea.KeyMsg.String() names: "enter", "esc", "left", "q", "ctrl+c".
type KeybindRegistry struct {
	bindings map[string][]binding
	order    []string // first-bound order, for stable hints
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings: make(map[string][]binding),
	}
}

// Bind registers a key for every phase with no help text.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key for every phase with a hint description.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForPhase(seq, cmd, desc)
}

// BindWithDescForPhase registers a key that only fires in phases.
// With no phases the binding applies everywhere. A later binding for the
// same key and an overlapping phase takes precedence.
func (r *KeybindRegistry) BindWithDescForPhase(seq string, cmd tea.Cmd, desc string, phases ...card.Phase) {
	n := normalizeSeq(seq)
	if _, ok := r.bindings[n]; !ok {
		r.order = append(r.order, n)
	}
	r.bindings[n] = append(r.bindings[n], binding{cmd: cmd, desc: desc, phases: phases})
}

// Lookup returns the command bound to seq in phase, or nil.
func (r *KeybindRegistry) Lookup(seq string, phase card.Phase) tea.Cmd {
	bs := r.bindings[normalizeSeq(seq)]
	for i := len(bs) - 1; i >= 0; i-- {
		if bs[i].appliesTo(phase) {
			return bs[i].cmd
		}
	}
	return nil
}

// Hint is one entry of the help bar: all keys sharing a description.
type Hint struct {
	Keys []string
	Desc string
}

// Hints returns described bindings active in phase, grouping keys that
// share a description. Order follows registration.
func (r *KeybindRegistry) Hints(phase card.Phase) []Hint {
	var out []Hint
	index := make(map[string]int)
	for _, seq := range r.order {
		bs := r.bindings[seq]
		for i := len(bs) - 1; i >= 0; i-- {
			b := bs[i]
			if !b.appliesTo(phase) {
				continue
			}
			if b.cmd == nil || b.desc == "" {
				break
			}
			if j, ok := index[b.desc]; ok {
				out[j].Keys = append(out[j].Keys, displaySeq(seq))
			} else {
				index[b.desc] = len(out)
				out = append(out, Hint{Keys: []string{displaySeq(seq)}, Desc: b.desc})
			}
			break
		}
	}
	return out
}

func (b binding) appliesTo(phase card.Phase) bool {
	return len(b.phases) == 0 || slices.Contains(b.phases, phase)
}

// normalizeSeq converts tea key strings to our canonical format.
// " " and "space" both become "space".
func normalizeSeq(seq string) string {
	s := strings.TrimSpace(seq)
	if s == "" && seq != "" {
		return "space"
	}
	return s
}

// displaySeq shortens key names for the help bar.
func displaySeq(seq string) string {
	switch seq {
	case "left":
		return "←"
	case "right":
		return "→"
	default:
		return seq
	}
}

// KeyHandler dispatches key presses to the registry for the current phase.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler over reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was bound and should not be passed to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, phase card.Phase) (consumed bool, cmd tea.Cmd) {
	if c := h.Registry.Lookup(msg.String(), phase); c != nil {
		return true, c
	}
	return false, nil
}
