package desktop

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

var (
	skyColor      = color.RGBA{18, 18, 32, 255}
	groundColor   = color.RGBA{70, 52, 38, 255}
	heroColor     = color.RGBA{80, 200, 120, 255}
	coinColor     = color.RGBA{250, 204, 21, 255}
	spikeColor    = color.RGBA{230, 57, 70, 255}
	platformColor = color.RGBA{140, 140, 160, 255}
	panelColor    = color.RGBA{0, 0, 0, 200}
)

// coinSquash is the horizontal scale per coin frame, giving a spin.
var coinSquash = []float32{1, 0.7, 0.2, 0.7, 1, 0.85}

// drawWorld draws the playfield in world units.
func drawWorld(screen *ebiten.Image, snap runner.Snapshot, cfg config.RunnerConfig) {
	screen.Fill(skyColor)

	vw, vh := float32(cfg.Viewport.Width), float32(cfg.Viewport.Height)
	heroH := cfg.Hero.Height
	groundTop := float32(cfg.Physics.GroundY + heroH)
	vector.FillRect(screen, 0, groundTop, vw, vh-groundTop, groundColor, false)

	// Platforms share the hero's standing line.
	if p := snap.Platform; p != nil {
		vector.FillRect(screen, float32(p.X), float32(p.Y+heroH), float32(p.W), float32(p.H), platformColor, false)
	}

	squash := coinSquash[snap.CoinFrame%len(coinSquash)]
	for _, c := range snap.Coins {
		w := float32(c.W) * squash
		x := float32(c.CenterX()) - w/2
		vector.FillRect(screen, x, float32(c.Y), w, float32(c.H), coinColor, true)
	}

	for _, s := range snap.Spikes {
		drawSpike(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H))
	}

	// Bob the hero with the run cycle while grounded.
	bob := float32(0)
	if snap.OnGround && snap.HeroFrame%2 == 1 {
		bob = 2
	}
	vector.FillRect(screen, float32(snap.HeroX), float32(snap.HeroY)+bob,
		float32(cfg.Hero.Width), float32(heroH)-bob, heroColor, false)
}

// whitePixel is the source texture for solid triangles, created on first draw.
var whitePixel *ebiten.Image

// drawSpike fills a triangle pointing up inside the box.
func drawSpike(screen *ebiten.Image, x, y, w, h float32) {
	r, g, b, a := spikeColor.RGBA()
	cr, cg, cb, ca := float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff

	vs := []ebiten.Vertex{
		{DstX: x, DstY: y + h},
		{DstX: x + w/2, DstY: y},
		{DstX: x + w, DstY: y + h},
	}
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0.5, 0.5
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = cr, cg, cb, ca
	}
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	screen.DrawTriangles(vs, []uint16{0, 1, 2}, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawHUD prints score, lives and best score in the corner.
func drawHUD(screen *ebiten.Image, snap runner.Snapshot, best int) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Lives: %s  Best: %d",
		snap.Score, strings.Repeat("<3 ", max(snap.Lives, 0)), max(best, snap.Score)), 10, 10)
}

// drawPanel draws a dark panel with text lines in the middle of the screen.
func drawPanel(screen *ebiten.Image, lines ...string) {
	const lineH, charW = 16, 6
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	pw := float32(width*charW + 40)
	ph := float32(len(lines)*lineH + 30)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	px := (float32(sw) - pw) / 2
	py := (float32(sh) - ph) / 2

	vector.FillRect(screen, px, py, pw, ph, panelColor, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, int(px)+20, int(py)+15+i*lineH)
	}
}
