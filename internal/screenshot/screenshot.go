// Package screenshot captures the current runner frame to disk, as the
// terminal text the player sees and as a PNG drawn in world units.
package screenshot

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Palette used for PNG frames.
var (
	skyColor      = color.RGBA{18, 18, 32, 255}
	groundColor   = color.RGBA{70, 52, 38, 255}
	heroColor     = color.RGBA{80, 200, 120, 255}
	coinColor     = color.RGBA{250, 204, 21, 255}
	spikeColor    = color.RGBA{230, 57, 70, 255}
	platformColor = color.RGBA{140, 140, 160, 255}
	textColor     = color.White
)

// DefaultDir returns ~/.arcade/screenshots.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: cannot find home directory: %w", err)
	}
	return filepath.Join(home, ".arcade", "screenshots"), nil
}

// Render draws the snapshot into a new image the size of the viewport.
func Render(snap runner.Snapshot, cfg config.RunnerConfig) *gg.Context {
	w, h := int(cfg.Viewport.Width), int(cfg.Viewport.Height)
	dc := gg.NewContext(w, h)

	dc.SetColor(skyColor)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	// Ground starts at the hero's feet.
	groundTop := cfg.Physics.GroundY + cfg.Hero.Height
	dc.SetColor(groundColor)
	dc.DrawRectangle(0, groundTop, float64(w), float64(h)-groundTop)
	dc.Fill()

	// Platforms are drawn at the hero's standing line.
	if p := snap.Platform; p != nil {
		dc.SetColor(platformColor)
		dc.DrawRectangle(p.X, p.Y+cfg.Hero.Height, p.W, p.H)
		dc.Fill()
	}

	dc.SetColor(coinColor)
	for _, c := range snap.Coins {
		dc.DrawCircle(c.CenterX(), c.Y+c.H/2, c.W/2)
		dc.Fill()
	}

	dc.SetColor(spikeColor)
	for _, s := range snap.Spikes {
		dc.MoveTo(s.X, s.Bottom())
		dc.LineTo(s.CenterX(), s.Y)
		dc.LineTo(s.Right(), s.Bottom())
		dc.ClosePath()
		dc.Fill()
	}

	dc.SetColor(heroColor)
	dc.DrawRectangle(snap.HeroX, snap.HeroY, cfg.Hero.Width, cfg.Hero.Height)
	dc.Fill()

	dc.SetColor(textColor)
	dc.DrawString(fmt.Sprintf("Score: %d  Lives: %d  %s", snap.Score, snap.Lives, snap.State), 10, 20)

	return dc
}

// WritePNG encodes the rendered snapshot as PNG.
func WritePNG(w io.Writer, snap runner.Snapshot, cfg config.RunnerConfig) error {
	if err := Render(snap, cfg).EncodePNG(w); err != nil {
		return fmt.Errorf("screenshot: encode png: %w", err)
	}
	return nil
}

// Paths holds the files written by Save.
type Paths struct {
	Text string
	PNG  string
}

// Save writes <prefix>_<timestamp>.txt holding frame and a matching .png of
// the snapshot into dir, creating it if needed.
func Save(dir, prefix, frame string, snap runner.Snapshot, cfg config.RunnerConfig, now time.Time) (Paths, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("screenshot: cannot create %s: %w", dir, err)
	}

	base := filepath.Join(dir, fmt.Sprintf("%s_%s", prefix, now.Format("20060102_150405")))
	paths := Paths{Text: base + ".txt", PNG: base + ".png"}

	if err := os.WriteFile(paths.Text, []byte(frame), 0o600); err != nil {
		return Paths{}, fmt.Errorf("screenshot: write text: %w", err)
	}

	f, err := os.OpenFile(paths.PNG, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return Paths{}, fmt.Errorf("screenshot: create png: %w", err)
	}
	if err := WritePNG(f, snap, cfg); err != nil {
		f.Close()
		return Paths{}, err
	}
	if err := f.Close(); err != nil {
		return Paths{}, fmt.Errorf("screenshot: close png: %w", err)
	}

	return paths, nil
}
