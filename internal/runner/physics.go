package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Physics advances the hero: horizontal movement, jumps, gravity, and
// landing on the ground or the active platform.
type Physics struct {
	cfg config.RunnerConfig
}

// NewPhysics creates a physics engine for the given configuration.
func NewPhysics(cfg config.RunnerConfig) *Physics {
	return &Physics{cfg: cfg}
}

// Advance moves the hero by one tick of dt seconds. It reports whether the
// hero landed this tick and returns the jump event, if any.
func (p *Physics) Advance(hero *Hero, platform *Platform, in *InputState, dt float64) (bool, []Event) {
	phys := p.cfg.Physics
	var events []Event

	hero.X += in.Axis() * phys.MoveSpeed * dt
	hero.X = core.ClampF(hero.X, 0, p.cfg.Viewport.Width-hero.W)

	if in.Pressed(core.ActionJump) && hero.JumpsLeft > 0 {
		hero.VY = phys.JumpVelocity
		hero.OnGround = false
		hero.JumpsLeft--
		events = append(events, Event{Kind: EventJump, X: hero.X, Y: hero.Y})
	}

	hero.VY += phys.Gravity * dt
	hero.Y += hero.VY * dt

	// Platform landing uses the pre-clamp bottom edge and velocity.
	bottom := hero.Y + hero.H
	falling := hero.VY >= 0

	landed := false
	if hero.Y >= phys.GroundY {
		hero.Y = phys.GroundY
		hero.VY = 0
		landed = true
	}

	if platform != nil && falling && p.onPlatform(hero, platform, bottom) {
		hero.Y = platform.Y
		hero.VY = 0
		landed = true
	}

	hero.OnGround = landed
	if landed {
		hero.JumpsLeft = p.cfg.Hero.MaxJumps
	}
	return landed, events
}

// onPlatform reports whether a hero with the given bottom edge is within
// landing tolerance of the platform's standing line.
func (p *Physics) onPlatform(hero *Hero, platform *Platform, bottom float64) bool {
	if hero.X+hero.W <= platform.X || hero.X >= platform.Right() {
		return false
	}
	top := platform.Y + hero.H
	tol := p.cfg.Physics.LandingTolerance
	return bottom >= top-tol && bottom <= top+tol
}
