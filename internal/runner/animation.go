package runner

import "github.com/vovakirdan/tui-runner/internal/config"

// Clock advances the hero and coin sprite frames independently.
type Clock struct {
	heroFrames   int
	heroDuration float64
	coinFrames   int
	coinDuration float64

	heroFrame int
	heroTimer float64
	coinFrame int
	coinTimer float64
}

// NewClock creates a clock at frame zero for both animations.
func NewClock(cfg config.AnimationConfig) *Clock {
	return &Clock{
		heroFrames:   cfg.HeroFrames,
		heroDuration: cfg.HeroFrameDuration,
		coinFrames:   cfg.CoinFrames,
		coinDuration: cfg.CoinFrameDuration,
	}
}

// Advance accumulates dt and steps each animation as many frames as fit.
func (c *Clock) Advance(dt float64) {
	c.heroFrame, c.heroTimer = step(c.heroFrame, c.heroTimer+dt, c.heroDuration, c.heroFrames)
	c.coinFrame, c.coinTimer = step(c.coinFrame, c.coinTimer+dt, c.coinDuration, c.coinFrames)
}

func step(frame int, timer, duration float64, frames int) (int, float64) {
	if duration <= 0 || frames <= 0 {
		return frame, timer
	}
	for timer >= duration {
		timer -= duration
		frame = (frame + 1) % frames
	}
	return frame, timer
}

// HeroFrame returns the current hero frame index.
func (c *Clock) HeroFrame() int { return c.heroFrame }

// CoinFrame returns the current coin frame index.
func (c *Clock) CoinFrame() int { return c.coinFrame }

// Reset rewinds both animations to frame zero.
func (c *Clock) Reset() {
	c.heroFrame, c.heroTimer = 0, 0
	c.coinFrame, c.coinTimer = 0, 0
}
