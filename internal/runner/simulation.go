package runner

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Stats accumulates per-session counters.
type Stats struct {
	Ticks     int
	Elapsed   float64 // Seconds of play, excluding pauses
	Jumps     int
	Coins     int
	Hits      int
	Platforms int
}

// Distance returns how far the world has scrolled this session.
func (s Stats) Distance(scrollSpeed float64) float64 {
	return s.Elapsed * scrollSpeed
}

func (s *Stats) record(dt float64, events []Event) {
	s.Ticks++
	s.Elapsed += dt
	for _, e := range events {
		switch e.Kind {
		case EventJump:
			s.Jumps++
		case EventCoin:
			s.Coins++
		case EventHit:
			s.Hits++
		case EventPlatformSpawned:
			s.Platforms++
		}
	}
}

// Simulation owns one runner session: the world, every component that
// mutates it, and the session state machine. It is not safe for
// concurrent use.
type Simulation struct {
	cfg config.RunnerConfig

	world    *World
	input    *InputState
	physics  *Physics
	spawner  *Spawner
	resolver *Resolver
	clock    *Clock
	machine  *Machine
	stats    Stats
}

// New creates a simulation in the menu state. A nil rng is replaced by a
// time-seeded source.
func New(cfg config.RunnerConfig, rng RandomSource) *Simulation {
	if rng == nil {
		rng = NewRandomSource(time.Now().UnixNano())
	}
	return &Simulation{
		cfg:      cfg,
		world:    newWorld(cfg),
		input:    NewInputState(),
		physics:  NewPhysics(cfg),
		spawner:  NewSpawner(cfg, rng),
		resolver: NewResolver(),
		clock:    NewClock(cfg.Animation),
		machine:  NewMachine(),
	}
}

// reset re-initializes everything a new session starts from.
func (s *Simulation) reset() {
	s.world.reset(s.cfg)
	s.spawner.Reset()
	s.resolver.Reset()
	s.clock.Reset()
	s.input.Reset()
	s.stats = Stats{}
}

// Tick advances the simulation by dt seconds with the actions held in frame
// and returns the events emitted, in order. Outside of play it only tracks
// input edges for the pause and restart actions.
func (s *Simulation) Tick(dt float64, frame core.InputFrame) []Event {
	if math.IsNaN(dt) {
		dt = 0
	}
	dt = core.ClampF(dt, 0, s.cfg.Physics.MaxDT)

	s.input.Update(frame)
	defer s.input.Latch()

	if s.input.Pressed(core.ActionPause) {
		s.machine.TogglePause()
	}
	if s.input.Pressed(core.ActionRestart) {
		s.Restart()
	}
	if !s.machine.CanTick() {
		return nil
	}

	_, events := s.physics.Advance(&s.world.Hero, s.world.Platform, s.input, dt)
	events = append(events, s.spawner.Tick(s.world, dt)...)

	res := s.resolver.Resolve(s.world)
	events = append(events, res.Events...)
	if res.GameOver {
		s.machine.GameOver()
	}

	s.clock.Advance(dt)
	s.stats.record(dt, events)
	return events
}

// Start begins a session from the menu with a fresh world.
func (s *Simulation) Start() bool {
	if !s.machine.Start() {
		return false
	}
	s.reset()
	return true
}

// Restart begins a new session with a fresh world. Ignored in the menu.
func (s *Simulation) Restart() bool {
	if !s.machine.Restart() {
		return false
	}
	s.reset()
	return true
}

// TogglePause switches between playing and paused.
func (s *Simulation) TogglePause() bool { return s.machine.TogglePause() }

// ReturnToMenu leaves the session. The world is kept until the next Start.
func (s *Simulation) ReturnToMenu() bool { return s.machine.ReturnToMenu() }

// OpenHelp opens the help overlay and pauses play.
func (s *Simulation) OpenHelp() bool { return s.machine.OpenHelp() }

// CloseHelp closes the help overlay and resumes paused play.
func (s *Simulation) CloseHelp() bool { return s.machine.CloseHelp() }

// World returns the live world. Callers must treat it as read-only.
func (s *Simulation) World() *World { return s.world }

// State returns the session state.
func (s *Simulation) State() State { return s.machine.State() }

// HelpOpen reports whether the help overlay is open.
func (s *Simulation) HelpOpen() bool { return s.machine.HelpOpen() }

// HeroFrame returns the hero animation frame.
func (s *Simulation) HeroFrame() int { return s.clock.HeroFrame() }

// CoinFrame returns the coin animation frame.
func (s *Simulation) CoinFrame() int { return s.clock.CoinFrame() }

// Stats returns the counters for the current session.
func (s *Simulation) Stats() Stats { return s.stats }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.RunnerConfig { return s.cfg }
