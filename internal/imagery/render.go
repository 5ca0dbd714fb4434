package imagery

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// halfBlock paints the top pixel as foreground and the bottom pixel as
// background, giving two square-ish pixels per terminal cell.
const halfBlock = "▀"

// HalfBlocks scales img to fit within width columns and height rows,
// keeping its aspect ratio, and renders it as coloured half-block cells.
func HalfBlocks(img image.Image, width, height int) string {
	if img == nil || width <= 0 || height <= 0 {
		return ""
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}
	dw, dh := fit(b.Dx(), b.Dy(), width, height*2)
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	var sb strings.Builder
	for y := 0; y < dh; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < dw; x++ {
			top := dst.RGBAAt(x, y)
			bottom := top
			if y+1 < dh {
				bottom = dst.RGBAAt(x, y+1)
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(top))).
				Background(lipgloss.Color(hex(bottom))).
				Render(halfBlock))
		}
	}
	return sb.String()
}

// fit scales w×h into maxW×maxH, where maxH is even. The height is
// rounded up to an even number of pixels so every cell gets a bottom half.
func fit(w, h, maxW, maxH int) (int, int) {
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	dw := max(1, int(math.Round(float64(w)*scale)))
	dh := max(2, int(math.Round(float64(h)*scale)))
	if dh%2 == 1 {
		dh++
	}
	return min(dw, maxW), min(dh, maxH)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// TextPlaceholder renders a bordered width×height box with label centred.
func TextPlaceholder(width, height int, label string) string {
	if width < 4 || height < 3 {
		return label
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Foreground(lipgloss.Color("241")).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)
}
