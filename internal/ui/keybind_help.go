package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"greetcard/internal/card"
)

// RenderKeybindHelp produces the hint bar for phase.
func RenderKeybindHelp(reg *KeybindRegistry, phase card.Phase) string {
	if reg == nil {
		return ""
	}
	hints := reg.Hints(phase)
	if len(hints) == 0 {
		return ""
	}

	bindings := make([]key.Binding, 0, len(hints))
	for _, h := range hints {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(h.Keys...),
			key.WithHelp(strings.Join(h.Keys, "/"), h.Desc),
		))
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPink)).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))

	return helpModel.ShortHelpView(bindings)
}
