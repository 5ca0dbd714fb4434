package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DoneView is shown once the gallery is closed.
type DoneView struct {
	app *AppModel
}

var _ View = (*DoneView)(nil)

func (v *DoneView) Init() tea.Cmd { return nil }

func (v *DoneView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }

func (v *DoneView) View() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		Styles.CoverTitle.Render("Thank you!"),
		"",
		Styles.Muted.Render(v.app.Card.MessagesTitle),
	)
}
