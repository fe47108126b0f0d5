// Package runner implements the simulation core of a side-scrolling endless
// runner: hero physics, procedural spawning of coins, spikes and platforms,
// collision scoring, animation timing, and the session state machine.
//
// The package performs no I/O. Hosts drive it through Simulation.Tick and the
// session commands, then read the World and the events returned by each tick.
package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Hero is the player-controlled character.
type Hero struct {
	X, Y      float64 // Top-left corner in world units
	W, H      float64 // Size
	VY        float64 // Vertical velocity (negative = up)
	OnGround  bool    // Landed on ground or platform during the last tick
	JumpsLeft int     // Remaining jumps before the next landing
}

// Box returns the hero's collision box.
func (h Hero) Box() core.Box {
	return core.NewBox(h.X, h.Y, h.W, h.H)
}

// Coin is a collectible worth one point.
type Coin struct {
	core.Box
}

// Spike is a hazard that costs one life on contact.
type Spike struct {
	core.Box
}

// Platform is a floating ledge the hero can land on.
type Platform struct {
	core.Box
}

// World holds everything the simulation mutates during a tick.
type World struct {
	Score    int
	Lives    int
	Hero     Hero
	Coins    []Coin
	Spikes   []Spike
	Platform *Platform // nil when no platform is active
}

// newWorld creates a world in its session-start pose.
func newWorld(cfg config.RunnerConfig) *World {
	w := &World{}
	w.reset(cfg)
	return w
}

// reset restores the session-start pose.
func (w *World) reset(cfg config.RunnerConfig) {
	w.Score = 0
	w.Lives = cfg.Gameplay.Lives
	w.Hero = spawnHero(cfg)
	w.Coins = make([]Coin, 0, 16)
	w.Spikes = make([]Spike, 0, 8)
	w.Platform = nil
}

// spawnHero returns the hero standing on the ground at its spawn point.
func spawnHero(cfg config.RunnerConfig) Hero {
	return Hero{
		X:         cfg.Hero.SpawnX,
		Y:         cfg.Physics.GroundY,
		W:         cfg.Hero.Width,
		H:         cfg.Hero.Height,
		OnGround:  true,
		JumpsLeft: cfg.Hero.MaxJumps,
	}
}

// survivors returns a new slice holding the items keep accepts, in order.
// keep may have side effects; the input slice is never modified.
func survivors[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
