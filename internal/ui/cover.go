package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"greetcard/internal/imagery"
)

// CoverView is the opening page.
type CoverView struct {
	app *AppModel
}

var _ View = (*CoverView)(nil)

func (v *CoverView) Init() tea.Cmd { return nil }

func (v *CoverView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }

func (v *CoverView) View() string {
	c := v.app.Card.Cover
	w, h := v.app.coverImageSize()

	img, ok := v.app.frame(c.ImageURL, w, h)
	if !ok {
		img = imagery.TextPlaceholder(w, h, "loading…")
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		Styles.CoverTitle.Render(c.Title),
		"",
		Styles.CoverFrame.Render(img),
		"",
		Styles.Subtitle.Render(c.Subtitle),
		"",
		Styles.Button.Render(c.Button+"  →"),
	)
}

// coverImageSize returns the cover image box in cells.
func (a *AppModel) coverImageSize() (int, int) {
	w := clamp(a.Width-8, 12, 64)
	h := clamp(a.Height-14, 4, 16)
	return w, h
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
