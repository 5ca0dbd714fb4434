package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"greetcard/internal/card"
)

// frameKey identifies a rendered image at a given size.
type frameKey struct {
	URL    string
	Width  int
	Height int
}

// typingTickCmd schedules the next header character.
func typingTickCmd(interval time.Duration, tick card.Tick) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return typingTickMsg{tick: tick}
	})
}

// cakeRevealCmd waits out the gift delay.
func cakeRevealCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return cakeRevealMsg{}
	})
}

// loadImageCmd renders url off the update loop.
func (a *AppModel) loadImageCmd(key frameKey, placeholder string) tea.Cmd {
	images := a.Images
	timeout := a.Config.Images.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*timeout)
		defer cancel()
		frame := images.Render(ctx, key.URL, placeholder, key.Width, key.Height)
		return imageLoadedMsg{key: key, frame: frame}
	}
}

// requestImage returns a load command unless the frame is cached or
// already in flight.
func (a *AppModel) requestImage(url, placeholder string, width, height int) tea.Cmd {
	if a.Images == nil || url == "" || width <= 0 || height <= 0 {
		return nil
	}
	key := frameKey{URL: url, Width: width, Height: height}
	if _, ok := a.frames[key]; ok {
		return nil
	}
	if a.pending[key] {
		return nil
	}
	a.pending[key] = true
	return a.loadImageCmd(key, placeholder)
}

// imageCmds requests every image the current phase shows.
func (a *AppModel) imageCmds() tea.Cmd {
	if a.Width == 0 || a.Height == 0 {
		return nil
	}
	c := a.Card
	var cmds []tea.Cmd
	switch a.Seq.Phase() {
	case card.PhaseCover:
		w, h := a.coverImageSize()
		cmds = append(cmds, a.requestImage(c.Cover.ImageURL, c.Placeholders.Image, w, h))
	case card.PhaseMessages:
		for _, m := range c.Messages {
			cmds = append(cmds, a.requestImage(m.AvatarURL, c.Placeholders.Avatar, avatarWidth, avatarHeight))
		}
	case card.PhaseGallery:
		st := a.Seq.State()
		if st.PhotoCount == 0 || len(c.Photos) == 0 {
			break
		}
		w, h := a.galleryImageSize()
		cur := c.Photos[st.PhotoIndex%len(c.Photos)]
		next := c.Photos[(st.PhotoIndex+1)%len(c.Photos)]
		cmds = append(cmds,
			a.requestImage(cur.URL, c.Placeholders.Image, w, h),
			a.requestImage(next.URL, c.Placeholders.Image, w, h),
		)
	}
	return tea.Batch(cmds...)
}

// frame returns the rendered image, if loaded.
func (a *AppModel) frame(url string, width, height int) (string, bool) {
	f, ok := a.frames[frameKey{URL: url, Width: width, Height: height}]
	return f, ok
}
