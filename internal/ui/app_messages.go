package ui

import (
	"greetcard/internal/card"
	"greetcard/internal/content"
	"greetcard/internal/imagery"
)

// ProceedMsg leaves the cover page.
type ProceedMsg struct{}

// RevealActionMsg is the primary action of the reveal phase: open the gift,
// or cut the cake once it is shown.
type RevealActionMsg struct{}

// OpenGiftMsg opens the gift box.
type OpenGiftMsg struct{}

// CutCakeMsg cuts the cake and opens the messages.
type CutCakeMsg struct{}

// CloseMessagesMsg closes the messages modal.
type CloseMessagesMsg struct{}

// CloseGalleryMsg closes the photo gallery.
type CloseGalleryMsg struct{}

// NextPhotoMsg shows the next photo.
type NextPhotoMsg struct{}

// PrevPhotoMsg shows the previous photo.
type PrevPhotoMsg struct{}

// QuitMsg tears the card down and exits.
type QuitMsg struct{}

// ContentReloadedMsg carries a card re-read from disk. Err is set when the
// file could not be loaded; the current card is kept.
type ContentReloadedMsg struct {
	Card *content.Card
	Err  error
}

// typingTickMsg advances the typed header.
type typingTickMsg struct {
	tick card.Tick
}

// cakeRevealMsg fires after the gift delay.
type cakeRevealMsg struct{}

// imageLoadedMsg delivers a rendered image frame.
type imageLoadedMsg struct {
	key   frameKey
	frame imagery.Frame
}
