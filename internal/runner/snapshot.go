package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Snapshot is a flat copy of the simulation state for screenshots,
// logging and determinism testing.
type Snapshot struct {
	Tick      int
	State     string
	Score     int
	Lives     int
	HelpOpen  bool
	HeroX     float64
	HeroY     float64
	HeroVY    float64
	OnGround  bool
	JumpsLeft int
	HeroFrame int
	CoinFrame int

	Coins    []core.Box
	Spikes   []core.Box
	Platform *core.Box // nil when no platform is active
}

// Snapshot returns a copy of the current state.
func (s *Simulation) Snapshot() Snapshot {
	w := s.world
	snap := Snapshot{
		Tick:      s.stats.Ticks,
		State:     s.machine.State().String(),
		Score:     w.Score,
		Lives:     w.Lives,
		HelpOpen:  s.machine.HelpOpen(),
		HeroX:     w.Hero.X,
		HeroY:     w.Hero.Y,
		HeroVY:    w.Hero.VY,
		OnGround:  w.Hero.OnGround,
		JumpsLeft: w.Hero.JumpsLeft,
		HeroFrame: s.clock.HeroFrame(),
		CoinFrame: s.clock.CoinFrame(),
		Coins:     make([]core.Box, len(w.Coins)),
		Spikes:    make([]core.Box, len(w.Spikes)),
	}
	for i, c := range w.Coins {
		snap.Coins[i] = c.Box
	}
	for i, sp := range w.Spikes {
		snap.Spikes[i] = sp.Box
	}
	if w.Platform != nil {
		b := w.Platform.Box
		snap.Platform = &b
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- tick count is never negative
	h = h*31 + hashString(snap.State)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + hashBool(snap.HelpOpen)
	h = h*31 + math.Float64bits(snap.HeroX)
	h = h*31 + math.Float64bits(snap.HeroY)
	h = h*31 + math.Float64bits(snap.HeroVY)
	h = h*31 + hashBool(snap.OnGround)
	h = h*31 + uint64(snap.JumpsLeft) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HeroFrame) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CoinFrame) //#nosec G115 -- hash computation

	h = h*31 + uint64(len(snap.Coins))
	for _, b := range snap.Coins {
		h = hashBox(h, b)
	}
	h = h*31 + uint64(len(snap.Spikes))
	for _, b := range snap.Spikes {
		h = hashBox(h, b)
	}
	if snap.Platform != nil {
		h = hashBox(h*31+1, *snap.Platform)
	}
	return h
}

func hashBox(h uint64, b core.Box) uint64 {
	h = h*31 + math.Float64bits(b.X)
	h = h*31 + math.Float64bits(b.Y)
	h = h*31 + math.Float64bits(b.W)
	h = h*31 + math.Float64bits(b.H)
	return h
}

func hashBool(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func hashString(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}
