package desktop

import (
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

func newTestGame(t *testing.T, store *storage.Store) *Game {
	t.Helper()
	return NewGame(Options{
		Runner: config.DefaultRunnerConfig(),
		Seed:   1,
		Store:  store,
		Player: "tester",
		Mute:   true,
	})
}

func TestHeldFrame(t *testing.T) {
	tests := []struct {
		name    string
		pressed []ebiten.Key
		want    []core.Action
	}{
		{"nothing", nil, nil},
		{"arrow left", []ebiten.Key{ebiten.KeyArrowLeft}, []core.Action{core.ActionLeft}},
		{"wasd", []ebiten.Key{ebiten.KeyD, ebiten.KeyW}, []core.Action{core.ActionRight, core.ActionJump}},
		{"space and pause", []ebiten.Key{ebiten.KeySpace, ebiten.KeyP}, []core.Action{core.ActionJump, core.ActionPause}},
		{"restart", []ebiten.Key{ebiten.KeyR}, []core.Action{core.ActionRestart}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			down := make(map[ebiten.Key]bool)
			for _, k := range tt.pressed {
				down[k] = true
			}
			f := heldFrame(func(k ebiten.Key) bool { return down[k] })

			for _, a := range tt.want {
				if !f.Has(a) {
					t.Errorf("%v should be held", a)
				}
			}
			if got := len(f.Actions); got != len(tt.want) {
				t.Errorf("held %d actions, want %d", got, len(tt.want))
			}
		})
	}
}

func TestBeepPCM(t *testing.T) {
	tn := tone{freq: 440, dur: 0.1}
	pcm := beepPCM(tn, 8000)

	if got, want := len(pcm), 800*4; got != want {
		t.Fatalf("len = %d, want %d", got, want)
	}
	// sin(0) starts silent.
	if pcm[0] != 0 || pcm[1] != 0 {
		t.Errorf("first sample = %d,%d, want silence", pcm[0], pcm[1])
	}
	// Left and right channels match.
	for i := 0; i < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("sample %d differs between channels", i/4)
		}
	}
}

func TestCueTonesCoverCues(t *testing.T) {
	for _, kind := range []runner.EventKind{runner.EventJump, runner.EventCoin, runner.EventHit, runner.EventGameOver} {
		if _, ok := cueTones[kind]; !ok {
			t.Errorf("no tone for %v", kind)
		}
	}
}

func TestStepCommands(t *testing.T) {
	g := newTestGame(t, nil)
	idle := core.NewInputFrame()

	g.step(idle, cmdNone)
	if got := g.Simulation().State(); got != runner.StateMenu {
		t.Fatalf("state = %v, want menu", got)
	}

	g.step(idle, cmdStart)
	if got := g.Simulation().State(); got != runner.StatePlaying {
		t.Fatalf("state = %v, want playing", got)
	}

	g.step(idle, cmdHelp)
	if !g.Simulation().HelpOpen() || g.Simulation().State() != runner.StatePaused {
		t.Fatal("help should open and pause")
	}
	g.step(idle, cmdHelp)
	if g.Simulation().HelpOpen() || g.Simulation().State() != runner.StatePlaying {
		t.Fatal("help should close and resume")
	}

	// Menu is ignored while playing.
	g.step(idle, cmdMenu)
	if got := g.Simulation().State(); got != runner.StatePlaying {
		t.Fatalf("state = %v, want playing", got)
	}

	g.step(core.NewInputFrame(core.ActionPause), cmdNone)
	g.step(idle, cmdMenu)
	if got := g.Simulation().State(); got != runner.StateMenu {
		t.Errorf("state = %v, want menu", got)
	}
}

func TestStepAdvancesFixedDT(t *testing.T) {
	g := newTestGame(t, nil)
	g.step(core.NewInputFrame(), cmdStart)

	stats := g.Simulation().Stats()
	if stats.Ticks != 1 {
		t.Fatalf("ticks = %d, want 1", stats.Ticks)
	}
	if want := 1.0 / 60; stats.Elapsed != want {
		t.Errorf("elapsed = %v, want %v", stats.Elapsed, want)
	}
}

func TestMenuListsTopScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	for _, s := range []int{4, 11} {
		if _, err := store.SaveRun(storage.Run{Player: "ann", Score: s}); err != nil {
			t.Fatal(err)
		}
	}

	g := newTestGame(t, store)
	if g.best != 11 {
		t.Errorf("best = %d, want 11", g.best)
	}
	lines := g.menuLines()
	if got := lines[len(lines)-2]; got != "1. ann             11" {
		t.Errorf("first score line = %q", got)
	}
}
