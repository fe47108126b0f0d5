package core

import "time"

// RuntimeConfig contains host-level settings for one session.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 picks one from the clock
}

// WithDefaults fills unset fields: an 80x24 screen, 60 ticks per second
// and a time-based seed.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = 80
	}
	if c.ScreenH <= 0 {
		c.ScreenH = 24
	}
	if c.TickRate <= 0 {
		c.TickRate = 60
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}
