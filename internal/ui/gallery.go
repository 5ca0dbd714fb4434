package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"greetcard/internal/imagery"
	"greetcard/internal/ui/textutil"
)

// GalleryView is the photo slideshow.
type GalleryView struct {
	app *AppModel
}

var _ View = (*GalleryView)(nil)

func (v *GalleryView) Init() tea.Cmd { return nil }

func (v *GalleryView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }

func (v *GalleryView) View() string {
	c := v.app.Card
	st := v.app.Seq.State()
	if st.PhotoCount == 0 || len(c.Photos) == 0 {
		return Styles.Muted.Render("No photos")
	}
	photo := c.Photos[st.PhotoIndex%len(c.Photos)]

	w, h := v.app.galleryImageSize()
	img, ok := v.app.frame(photo.URL, w, h)
	if !ok {
		img = imagery.TextPlaceholder(w, h, "loading…")
	}
	img = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, img)

	nav := Styles.Hint.Render("‹")
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		nav, " ",
		Styles.GalleryFrame.Render(img),
		" ", Styles.Hint.Render("›"),
	)

	return lipgloss.JoinVertical(lipgloss.Center,
		Styles.GalleryTitle.Render(c.GalleryTitle),
		Styles.Muted.Render(fmt.Sprintf("Slide %d of %d", st.PhotoIndex+1, st.PhotoCount)),
		"",
		row,
		"",
		Styles.Caption.Render(textutil.Truncate(photo.Caption, w)),
	)
}

// galleryImageSize returns the photo box in cells.
func (a *AppModel) galleryImageSize() (int, int) {
	w := clamp(a.Width-10, 12, 120)
	h := clamp(a.Height-12, 4, 40)
	return w, h
}
