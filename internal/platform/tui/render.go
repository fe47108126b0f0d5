package tui

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Sprite runes.
const (
	HeroChar     = '█'
	SpikeChar    = '▲'
	PlatformChar = '▀'
	GroundChar   = '═'
	HeartChar    = '♥'
)

// Animation frames, indexed by the simulation's frame counters.
var (
	heroLegFrames = []rune{'╱', '│', '╲', '│'}
	coinFrames    = []rune{'●', '◐', '│', '◑', '●', 'o'}
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// projection maps world units onto the cells below the HUD.
type projection struct {
	sx, sy float64
	top    int
}

func newProjection(dst *core.Screen, cfg config.RunnerConfig) projection {
	rows := dst.Height() - hudRows
	return projection{
		sx:  float64(dst.Width()) / cfg.Viewport.Width,
		sy:  float64(rows) / cfg.Viewport.Height,
		top: hudRows,
	}
}

// rect returns the cells covered by a box, at least one cell in each axis.
func (p projection) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * p.sx))
	y0 := int(math.Floor(b.Y * p.sy))
	x1 := int(math.Ceil(b.Right() * p.sx))
	y1 := int(math.Ceil(b.Bottom() * p.sy))
	return core.NewRect(x0, y0+p.top, max(1, x1-x0), max(1, y1-y0))
}

func (p projection) row(y float64) int {
	return int(math.Floor(y*p.sy)) + p.top
}

// drawWorld draws the playfield: ground, platform, coins, spikes and hero.
func drawWorld(dst *core.Screen, sim *runner.Simulation) {
	cfg := sim.Config()
	w := sim.World()
	proj := newProjection(dst, cfg)

	groundRow := proj.row(cfg.Physics.GroundY + cfg.Hero.Height)
	for x := range dst.Width() {
		dst.SetColored(x, groundRow, GroundChar, core.ColorGround)
	}

	// Platforms render at the hero's standing line.
	if p := w.Platform; p != nil {
		r := proj.rect(core.NewBox(p.X, p.Y+cfg.Hero.Height, p.W, p.H))
		dst.DrawRectColored(core.NewRect(r.X, r.Y, r.W, 1), PlatformChar, core.ColorPlatform)
	}

	coin := coinFrames[sim.CoinFrame()%len(coinFrames)]
	for _, c := range w.Coins {
		r := proj.rect(c.Box)
		cx, cy := r.Center()
		dst.SetColored(cx, cy, coin, core.ColorCoin)
	}

	for _, s := range w.Spikes {
		r := proj.rect(s.Box)
		dst.DrawRectColored(core.NewRect(r.X, r.Bottom()-1, r.W, 1), SpikeChar, core.ColorSpike)
	}

	hero := proj.rect(w.Hero.Box())
	dst.DrawRectColored(hero, HeroChar, core.ColorHero)
	if hero.H > 1 {
		legs := '╱'
		if w.Hero.OnGround {
			legs = heroLegFrames[sim.HeroFrame()%len(heroLegFrames)]
		}
		for x := hero.X; x < hero.Right(); x++ {
			dst.SetColored(x, hero.Bottom()-1, legs, core.ColorHeroLegs)
		}
	}
}

// drawHUD draws the status line: score, lives, best and distance.
func drawHUD(dst *core.Screen, sim *runner.Simulation, best int) {
	w := sim.World()
	cfg := sim.Config()

	x := 1
	text := fmt.Sprintf("Score: %d  ", w.Score)
	dst.DrawTextColored(x, 0, text, core.ColorHUD)
	x += utf8.RuneCountInString(text)

	for i := range cfg.Gameplay.Lives {
		c := core.ColorLifeLost
		if i < w.Lives {
			c = core.ColorLife
		}
		dst.SetColored(x, 0, HeartChar, c)
		x++
	}

	rest := fmt.Sprintf("  Best: %d  Dist: %.0f", max(best, w.Score), sim.Stats().Distance(cfg.Physics.ScrollSpeed))
	dst.DrawTextColored(x, 0, rest, core.ColorHUDDetail)
}
