package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

const dt60 = 1.0 / 60

// physicsRig drives Physics directly with an InputState, latching after
// every step the way Simulation.Tick does.
type physicsRig struct {
	phys     *Physics
	in       *InputState
	hero     Hero
	platform *Platform
}

func newPhysicsRig() *physicsRig {
	cfg := testConfig()
	return &physicsRig{
		phys: NewPhysics(cfg),
		in:   NewInputState(),
		hero: spawnHero(cfg),
	}
}

func (r *physicsRig) step(actions ...core.Action) (bool, []Event) {
	r.in.Update(frame(actions...))
	landed, events := r.phys.Advance(&r.hero, r.platform, r.in, dt60)
	r.in.Latch()
	return landed, events
}

func TestHeroRestsOnGround(t *testing.T) {
	r := newPhysicsRig()

	for i := range 600 {
		landed, events := r.step()
		if !landed || !r.hero.OnGround {
			t.Fatalf("tick %d: hero should be grounded", i)
		}
		if r.hero.Y != 300 || r.hero.VY != 0 {
			t.Fatalf("tick %d: drift y=%v vy=%v", i, r.hero.Y, r.hero.VY)
		}
		if r.hero.JumpsLeft != 2 {
			t.Fatalf("tick %d: jumpsLeft = %d, want 2", i, r.hero.JumpsLeft)
		}
		if len(events) != 0 {
			t.Fatalf("tick %d: unexpected events %v", i, events)
		}
	}
}

func TestDoubleJumpThenRejected(t *testing.T) {
	r := newPhysicsRig()
	jumps := 0

	count := func(events []Event) {
		for _, e := range events {
			if e.Kind == EventJump {
				jumps++
			}
		}
	}

	_, ev := r.step(core.ActionJump)
	count(ev)
	if r.hero.JumpsLeft != 1 {
		t.Fatalf("after first jump jumpsLeft = %d, want 1", r.hero.JumpsLeft)
	}

	// Holding jump is not a new press.
	_, ev = r.step(core.ActionJump)
	count(ev)
	if r.hero.JumpsLeft != 1 {
		t.Fatalf("held jump consumed a jump: jumpsLeft = %d", r.hero.JumpsLeft)
	}

	_, ev = r.step()
	count(ev)
	_, ev = r.step(core.ActionJump)
	count(ev)
	if r.hero.JumpsLeft != 0 {
		t.Fatalf("after second jump jumpsLeft = %d, want 0", r.hero.JumpsLeft)
	}
	if r.hero.VY >= 0 {
		t.Errorf("second jump should move hero up, vy = %v", r.hero.VY)
	}

	_, ev = r.step()
	count(ev)
	vyBefore := r.hero.VY
	_, ev = r.step(core.ActionJump)
	count(ev)
	if r.hero.JumpsLeft != 0 {
		t.Errorf("third jump accepted: jumpsLeft = %d", r.hero.JumpsLeft)
	}
	if !approx(r.hero.VY, vyBefore+900*dt60) {
		t.Errorf("third jump changed velocity: vy = %v, want %v", r.hero.VY, vyBefore+900*dt60)
	}
	if jumps != 2 {
		t.Errorf("jump events = %d, want 2", jumps)
	}
}

func TestLandingRestoresJumps(t *testing.T) {
	r := newPhysicsRig()
	r.step(core.ActionJump)

	for i := range 300 {
		landed, _ := r.step()
		if r.hero.JumpsLeft < 0 || r.hero.JumpsLeft > 2 {
			t.Fatalf("tick %d: jumpsLeft out of range: %d", i, r.hero.JumpsLeft)
		}
		if r.hero.Y > 300 {
			t.Fatalf("tick %d: hero below ground: y=%v", i, r.hero.Y)
		}
		if landed {
			if r.hero.JumpsLeft != 2 {
				t.Errorf("landing should restore jumps, got %d", r.hero.JumpsLeft)
			}
			if r.hero.Y != 300 {
				t.Errorf("landed at y=%v, want 300", r.hero.Y)
			}
			return
		}
		if r.hero.JumpsLeft != 1 {
			t.Fatalf("tick %d: airborne jumpsLeft = %d, want 1", i, r.hero.JumpsLeft)
		}
	}
	t.Fatal("hero never landed")
}

func TestHorizontalMovementClamped(t *testing.T) {
	r := newPhysicsRig()

	r.step(core.ActionRight)
	if !approx(r.hero.X, 50+220*dt60) {
		t.Errorf("x after one right step = %v", r.hero.X)
	}

	for range 300 {
		r.step(core.ActionLeft)
	}
	if r.hero.X != 0 {
		t.Errorf("x should clamp to 0, got %v", r.hero.X)
	}

	for range 600 {
		r.step(core.ActionRight)
	}
	if r.hero.X != 760 {
		t.Errorf("x should clamp to 760, got %v", r.hero.X)
	}

	before := r.hero.X
	r.step(core.ActionLeft, core.ActionRight)
	if r.hero.X != before {
		t.Errorf("opposite keys should cancel, x moved %v -> %v", before, r.hero.X)
	}
}

func TestPlatformLanding(t *testing.T) {
	tests := []struct {
		name      string
		platformX float64
		y, vy     float64
		wantLand  bool
	}{
		{"falling onto platform", 0, 195, 100, true},
		{"rising through platform", 0, 199, -200, false},
		{"beside platform", 300, 195, 100, false},
		{"far above platform", 0, 150, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newPhysicsRig()
			r.platform = &Platform{Box: core.NewBox(tt.platformX, 200, 200, 20)}
			r.hero.Y = tt.y
			r.hero.VY = tt.vy
			r.hero.OnGround = false
			r.hero.JumpsLeft = 0

			landed, _ := r.step()
			if landed != tt.wantLand {
				t.Fatalf("landed = %v, want %v (y=%v vy=%v)", landed, tt.wantLand, r.hero.Y, r.hero.VY)
			}
			if landed {
				if r.hero.Y != 200 || r.hero.VY != 0 {
					t.Errorf("landed pose y=%v vy=%v, want 200/0", r.hero.Y, r.hero.VY)
				}
				if r.hero.JumpsLeft != 2 {
					t.Errorf("jumpsLeft = %d, want 2", r.hero.JumpsLeft)
				}
			} else if r.hero.OnGround {
				t.Error("hero should be airborne")
			}
		})
	}
}

func TestStandingOnPlatform(t *testing.T) {
	r := newPhysicsRig()
	r.platform = &Platform{Box: core.NewBox(0, 200, 200, 20)}
	r.hero.Y = 200
	r.hero.VY = 0

	for i := range 120 {
		landed, _ := r.step()
		if !landed || r.hero.Y != 200 {
			t.Fatalf("tick %d: hero slipped off platform: y=%v", i, r.hero.Y)
		}
	}
}
