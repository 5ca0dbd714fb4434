package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"greetcard/internal/card"
)

const giftArt = `   _   _
  ( \ / )
 __\_Y_/__
|    |    |
|____|____|
|    |    |
|____|____|`

const cakeArt = `     i i i
   __|_|_|__
  |~~~~~~~~~|
 _|_________|_
|  ~~~~~~~~~  |
|_____________|`

// RevealView shows the typed header, then the gift, then the cake.
type RevealView struct {
	app *AppModel
}

var _ View = (*RevealView)(nil)

func (v *RevealView) Init() tea.Cmd { return nil }

func (v *RevealView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }

func (v *RevealView) View() string {
	st := v.app.Seq.State()
	c := v.app.Card

	header := st.Header
	if !st.TypingDone {
		header += Styles.Cursor.Render("▌")
	}
	width := clamp(v.app.Width-4, 20, 90)
	parts := []string{Styles.Header.Width(width).Align(lipgloss.Center).Render(header)}

	if !st.TypingDone {
		return lipgloss.JoinVertical(lipgloss.Center, parts...)
	}

	switch st.Reveal {
	case card.GiftClosed:
		label := c.Gift.Label
		if st.GiftOpening {
			label = "Opening…"
		}
		parts = append(parts,
			Styles.Gift.Render(giftArt),
			"",
			Styles.Button.Render(label),
		)
	case card.CakeShown:
		parts = append(parts,
			Styles.CakeCaption.Render(c.Cake.Caption),
			"",
			Styles.Cake.Render(cakeArt),
			"",
			Styles.ButtonGreen.Render("✂  "+c.Cake.Button),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}
