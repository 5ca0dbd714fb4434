package ui

import (
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"greetcard/internal/card"
)

const (
	fireworksDuration = 3 * time.Second
	popDuration       = 750 * time.Millisecond
	confettiInterval  = 250 * time.Millisecond

	// Particles per frame at the start of a burst.
	fireworksParticles = 50
	popParticles       = 100
)

var (
	confettiGlyphs = []string{"✦", "✧", "*", "•", "+", "·"}
	confettiColors = []string{"#f472b6", "#facc15", "#34d399", "#60a5fa", "#a78bfa", "#fb923c"}
)

type particle struct {
	x, y  float64 // normalized to [0, 1)
	glyph string
	color string
}

// confettiFrameMsg redraws the particles.
type confettiFrameMsg struct {
	seq int
}

// Confetti is the card's card.Animator. Fire only records the burst; the
// AppModel calls Start afterwards to begin the frame ticks.
type Confetti struct {
	now      func() time.Time
	rng      *rand.Rand
	interval time.Duration

	started   time.Time
	until     time.Time
	particles int  // particles per frame at start of burst
	fade      bool // fewer particles as the burst ends
	twoSided  bool // spawn from the left and right like fireworks

	ticking bool
	seq     int
	current []particle
}

var _ card.Animator = (*Confetti)(nil)

// NewConfetti creates an idle animator.
func NewConfetti() *Confetti {
	return &Confetti{
		now:      time.Now,
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
		interval: confettiInterval,
	}
}

// Fire implements card.Animator.
func (c *Confetti) Fire(e card.Effect) {
	now := c.now()
	c.started = now
	switch e {
	case card.EffectFireworks:
		c.until = now.Add(fireworksDuration)
		c.particles = fireworksParticles
		c.fade = true
		c.twoSided = true
	case card.EffectPop:
		c.until = now.Add(popDuration)
		c.particles = popParticles
		c.fade = false
		c.twoSided = false
	default:
		return
	}
	c.spawn()
}

// Active reports whether a burst is on screen.
func (c *Confetti) Active() bool {
	return c.now().Before(c.until)
}

// Start begins frame ticks if a burst is active and none are running.
func (c *Confetti) Start() tea.Cmd {
	if !c.Active() || c.ticking {
		return nil
	}
	c.ticking = true
	return c.nextFrame()
}

// Update handles a frame tick.
func (c *Confetti) Update(msg confettiFrameMsg) tea.Cmd {
	if msg.seq != c.seq {
		return nil
	}
	if !c.Active() {
		c.ticking = false
		c.current = nil
		return nil
	}
	c.spawn()
	return c.nextFrame()
}

func (c *Confetti) nextFrame() tea.Cmd {
	c.seq++
	seq := c.seq
	return tea.Tick(c.interval, func(time.Time) tea.Msg {
		return confettiFrameMsg{seq: seq}
	})
}

// count returns the particles for this frame, shrinking towards the end of
// a fading burst.
func (c *Confetti) count() int {
	if !c.fade {
		return c.particles
	}
	total := c.until.Sub(c.started)
	left := c.until.Sub(c.now())
	if total <= 0 || left <= 0 {
		return 0
	}
	return int(float64(c.particles) * float64(left) / float64(total))
}

func (c *Confetti) spawn() {
	n := c.count()
	c.current = c.current[:0]
	for i := 0; i < n; i++ {
		var x float64
		switch {
		case c.twoSided && i%2 == 0:
			x = 0.1 + c.rng.Float64()*0.2
		case c.twoSided:
			x = 0.7 + c.rng.Float64()*0.2
		default:
			x = 0.3 + c.rng.Float64()*0.4
		}
		c.current = append(c.current, particle{
			x:     x,
			y:     c.rng.Float64(),
			glyph: confettiGlyphs[c.rng.IntN(len(confettiGlyphs))],
			color: confettiColors[c.rng.IntN(len(confettiColors))],
		})
	}
}

// View renders the particles into a width×rows band. Empty when idle.
func (c *Confetti) View(width, rows int) string {
	if !c.Active() || width <= 0 || rows <= 0 {
		return ""
	}
	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, width)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}
	for _, p := range c.current {
		x := min(int(p.x*float64(width)), width-1)
		y := min(int(p.y*float64(rows)), rows-1)
		grid[y][x] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.color)).Render(p.glyph)
	}
	lines := make([]string, rows)
	for i, row := range grid {
		lines[i] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}
