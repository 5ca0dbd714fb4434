// Package content holds the static text and imagery of a card and loads it
// from YAML.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Fallback placeholders used when a card file leaves them blank.
const (
	DefaultImagePlaceholder  = "https://placehold.co/800x600/png?text=Please+Insert+Your+Photo"
	DefaultAvatarPlaceholder = "https://placehold.co/40x40/png?text=?"
)

// ErrEmptyHeader is returned for a card without a header message.
var ErrEmptyHeader = errors.New("header message is empty")

// Card is everything the card displays.
type Card struct {
	Cover          Cover        `yaml:"cover"`
	Header         string       `yaml:"header"`
	Gift           Gift         `yaml:"gift"`
	Cake           Cake         `yaml:"cake"`
	MessagesTitle  string       `yaml:"messages_title"`
	MessagesButton string       `yaml:"messages_button"`
	Messages       []Message    `yaml:"messages"`
	GalleryTitle   string       `yaml:"gallery_title"`
	Photos         []Photo      `yaml:"photos"`
	Placeholders   Placeholders `yaml:"placeholders"`
}

type Cover struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	ImageURL string `yaml:"image_url"`
	Button   string `yaml:"button"`
}

type Gift struct {
	Label string `yaml:"label"`
}

type Cake struct {
	Caption string `yaml:"caption"`
	Button  string `yaml:"button"`
}

// Message is one personalized thank-you note.
type Message struct {
	Key       string `yaml:"key"`
	Name      string `yaml:"name"`
	AvatarURL string `yaml:"avatar_url"`
	Text      string `yaml:"text"`
	// Highlight marks notes rendered with the accent background.
	Highlight bool `yaml:"highlight"`
}

type Photo struct {
	URL     string `yaml:"url"`
	Caption string `yaml:"caption"`
}

// Placeholders are substituted when an image fails to load.
type Placeholders struct {
	Image  string `yaml:"image"`
	Avatar string `yaml:"avatar"`
}

// DefaultYAML returns the built-in card source.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Default returns the built-in card.
func Default() *Card {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("content: built-in card is invalid: %v", err))
	}
	return c
}

// Load reads and validates a card file.
func Load(path string) (*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read card %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("card %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a card, fills defaults and validates it.
func Parse(data []byte) (*Card, error) {
	var c Card
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the card can be shown.
func (c *Card) Validate() error {
	if strings.TrimSpace(c.Header) == "" {
		return ErrEmptyHeader
	}
	seen := make(map[string]bool, len(c.Messages))
	for i, m := range c.Messages {
		if m.Key == "" {
			return fmt.Errorf("message %d: missing key", i)
		}
		if seen[m.Key] {
			return fmt.Errorf("message %d: duplicate key %q", i, m.Key)
		}
		seen[m.Key] = true
	}
	for i, p := range c.Photos {
		if p.URL == "" {
			return fmt.Errorf("photo %d: missing url", i)
		}
	}
	return nil
}

func (c *Card) applyDefaults() {
	if c.Placeholders.Image == "" {
		c.Placeholders.Image = DefaultImagePlaceholder
	}
	if c.Placeholders.Avatar == "" {
		c.Placeholders.Avatar = DefaultAvatarPlaceholder
	}
	if c.Cover.ImageURL == "" {
		c.Cover.ImageURL = c.Placeholders.Image
	}
	if c.Cover.Button == "" {
		c.Cover.Button = "Proceed to Message"
	}
	if c.Gift.Label == "" {
		c.Gift.Label = "Reveal your gift!"
	}
	if c.Cake.Button == "" {
		c.Cake.Button = "Cut the Cake!"
	}
	if c.MessagesTitle == "" {
		c.MessagesTitle = "Heartfelt Thanks"
	}
	if c.MessagesButton == "" {
		c.MessagesButton = "View Photos"
	}
	if c.GalleryTitle == "" {
		c.GalleryTitle = "Memories"
	}
	for i := range c.Messages {
		m := &c.Messages[i]
		if m.Name == "" {
			m.Name = DisplayName(m.Key)
		}
		if m.AvatarURL == "" {
			m.AvatarURL = c.Placeholders.Avatar
		}
	}
}

// DisplayName turns a message key into a name by capitalizing it.
func DisplayName(key string) string {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError {
		return key
	}
	return string(unicode.ToUpper(r)) + key[size:]
}
