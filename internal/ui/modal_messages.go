package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"greetcard/internal/imagery"
)

const (
	avatarWidth  = 8
	avatarHeight = 4
)

// MessagesModal lists the thank-you notes in a scrollable box.
// j/k, arrows and page keys scroll; the app closes it.
type MessagesModal struct {
	app      *AppModel
	viewport viewport.Model
	width    int
	height   int
	dirty    bool
}

var _ View = (*MessagesModal)(nil)

// NewMessagesModal creates the modal; content is built on first render.
func NewMessagesModal(app *AppModel) *MessagesModal {
	return &MessagesModal{
		app:      app,
		viewport: viewport.New(0, 0),
		dirty:    true,
	}
}

func (m *MessagesModal) Init() tea.Cmd { return nil }

// Update implements View.
func (m *MessagesModal) Update(msg tea.Msg) (View, tea.Cmd) {
	m.layout()
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// Invalidate forces the notes to be rebuilt, e.g. after avatars load.
func (m *MessagesModal) Invalidate() {
	m.dirty = true
}

// layout resizes the viewport to the window and rebuilds stale content.
func (m *MessagesModal) layout() {
	w := clamp(m.app.Width-8, 30, 100)
	h := clamp(m.app.Height-12, 5, 60)
	if w != m.width || h != m.height {
		m.width, m.height = w, h
		m.viewport.Width = w
		m.viewport.Height = h
		m.dirty = true
	}
	if m.dirty {
		m.viewport.SetContent(m.renderNotes(w))
		m.dirty = false
	}
}

func (m *MessagesModal) renderNotes(width int) string {
	c := m.app.Card
	textWidth := max(10, width-avatarWidth-4)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.app.markdownStyle),
		glamour.WithWordWrap(textWidth),
	)
	if err != nil {
		renderer = nil
	}

	notes := make([]string, 0, len(c.Messages))
	for _, msg := range c.Messages {
		avatar, ok := m.app.frame(msg.AvatarURL, avatarWidth, avatarHeight)
		if !ok {
			avatar = imagery.TextPlaceholder(avatarWidth, avatarHeight, "…")
		}

		body := msg.Text
		if renderer != nil {
			if out, err := renderer.Render(msg.Text); err == nil {
				body = strings.Trim(out, "\n")
			}
		}

		note := lipgloss.JoinHorizontal(lipgloss.Top,
			avatar,
			" ",
			lipgloss.JoinVertical(lipgloss.Left,
				Styles.NoteName.Render(msg.Name),
				body,
			),
		)
		style := Styles.Note
		if msg.Highlight {
			style = Styles.NoteHighlight
		}
		notes = append(notes, style.Render(note))
	}
	return strings.Join(notes, "\n")
}

// View implements View.
func (m *MessagesModal) View() string {
	m.layout()
	c := m.app.Card

	title := lipgloss.JoinHorizontal(lipgloss.Top,
		Styles.ModalTitle.Render(c.MessagesTitle),
		strings.Repeat(" ", max(1, m.width-lipgloss.Width(c.MessagesTitle)-1)),
		Styles.Close.Render("✕"),
	)
	footer := Styles.Button.Render(c.MessagesButton)
	if m.viewport.TotalLineCount() > m.viewport.Height {
		footer = lipgloss.JoinHorizontal(lipgloss.Center,
			footer, "  ",
			Styles.Hint.Render(scrollPercent(m.viewport)),
		)
	}
	return Styles.Modal.Render(lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		m.viewport.View(),
		"",
		footer,
	))
}

func scrollPercent(v viewport.Model) string {
	return fmt.Sprintf("%3.0f%%", v.ScrollPercent()*100)
}
