package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Card palette.
const (
	ColorCover     = "#4338ca" // Indigo - cover background
	ColorGold      = "#fde047" // Yellow - cover title, frames
	ColorPink      = "#ec4899" // Pink - proceed and gift buttons
	ColorInk       = "#3730a3" // Deep indigo - typed header
	ColorGreen     = "#16a34a" // Green - cut the cake
	ColorPurple    = "#7e22ce" // Purple - modal title, highlighted notes
	ColorTeal      = "#0f766e" // Teal - recipient names, notes
	ColorAmber     = "#eab308" // Amber - modal border
	ColorRed       = "#ef4444" // Red - close hints
	ColorMuted     = "241"     // Gray - hints, captions
	ColorLightText = "252"     // Light gray - body text
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	CoverTitle lipgloss.Style // Bold gold
	CoverFrame lipgloss.Style // Gold border around the cover image
	Subtitle   lipgloss.Style // Muted lavender text

	Header lipgloss.Style // Typed message
	Cursor lipgloss.Style // Typing cursor

	Button      lipgloss.Style // Pink pill
	ButtonGreen lipgloss.Style // Green pill
	Gift        lipgloss.Style // Gift box art
	Cake        lipgloss.Style // Cake art
	CakeCaption lipgloss.Style

	Modal         lipgloss.Style // Amber border box
	ModalTitle    lipgloss.Style
	Note          lipgloss.Style // Teal border
	NoteHighlight lipgloss.Style // Purple border
	NoteName      lipgloss.Style

	GalleryFrame lipgloss.Style
	GalleryTitle lipgloss.Style
	Caption      lipgloss.Style

	Hint  lipgloss.Style
	Close lipgloss.Style
	Muted lipgloss.Style
}{
	CoverTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorGold)),
	CoverFrame: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorGold)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#c7d2fe")),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorInk)).
		Padding(1, 2),
	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorInk)).
		Blink(true),
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(ColorPink)).
		Padding(0, 3),
	ButtonGreen: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(ColorGreen)).
		Padding(0, 3),
	Gift: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPink)),
	Cake: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorRed)),
	CakeCaption: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorLightText)),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAmber)).
		Padding(1, 2),
	ModalTitle: lipgloss.NewStyle().
		Bold(true).
		Italic(true).
		Foreground(lipgloss.Color(ColorPurple)),
	Note: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorTeal)).
		PaddingLeft(1).
		MarginBottom(1),
	NoteHighlight: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorPurple)).
		PaddingLeft(1).
		MarginBottom(1),
	NoteName: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorTeal)),
	GalleryFrame: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	GalleryTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorCover)),
	Caption: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Close: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorRed)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
