// Package desktop hosts the runner simulation in an Ebiten window with
// real key state and synthesized sound cues.
package desktop

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/metrics"
	"github.com/vovakirdan/tui-runner/internal/platform"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// menuScores is how many top runs the menu lists.
const menuScores = 5

// Options configures the desktop window.
type Options struct {
	Runner config.RunnerConfig
	Seed   int64 // 0 uses the current time
	TPS    int   // Ticks per second, default 60
	Scale  float64

	Store  *storage.Store
	Logger *log.Logger
	Player string
	Mute   bool
}

// command is a one-shot request from a key press.
type command int

const (
	cmdNone command = iota
	cmdStart
	cmdHelp
	cmdMenu
)

// Game implements ebiten.Game around one simulation.
type Game struct {
	sim      *runner.Simulation
	opts     Options
	logger   *log.Logger
	recorder platform.Recorder
	sounds   *sounds
	dt       float64
	best     int
	top      []storage.Run
}

// NewGame creates a game in the menu state. Sound is attached by Run.
func NewGame(opts Options) *Game {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Player == "" {
		opts.Player = "local"
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("player", opts.Player, "host", "desktop")

	g := &Game{
		sim:    runner.New(opts.Runner, runner.NewRandomSource(opts.Seed)),
		opts:   opts,
		logger: logger,
		recorder: platform.Recorder{
			Store:  opts.Store,
			Logger: logger,
			Player: opts.Player,
			Host:   "desktop",
		},
		dt: 1 / float64(opts.TPS),
	}
	g.refreshScores()
	return g
}

// Update polls the keyboard and advances the simulation one tick.
func (g *Game) Update() error {
	if anyKey(quitKeys, inpututil.IsKeyJustPressed) {
		return ebiten.Termination
	}

	cmd := cmdNone
	switch {
	case anyKey(helpKeys, inpututil.IsKeyJustPressed):
		cmd = cmdHelp
	case anyKey(startKeys, inpututil.IsKeyJustPressed):
		cmd = cmdStart
	case anyKey(menuKeys, inpututil.IsKeyJustPressed):
		cmd = cmdMenu
	}

	g.step(heldFrame(ebiten.IsKeyPressed), cmd)
	return nil
}

// step applies cmd, then ticks the simulation with frame.
func (g *Game) step(frame core.InputFrame, cmd command) []runner.Event {
	switch cmd {
	case cmdHelp:
		if g.sim.HelpOpen() {
			g.sim.CloseHelp()
		} else {
			g.sim.OpenHelp()
		}
	case cmdStart:
		if g.sim.Start() {
			g.logger.Debug("Run started")
		}
	case cmdMenu:
		if g.sim.State() == runner.StatePaused || g.sim.State() == runner.StateGameOver {
			g.sim.ReturnToMenu()
			g.refreshScores()
		}
	}

	start := time.Now()
	events := g.sim.Tick(g.dt, frame)
	metrics.RecordTick(time.Since(start))
	metrics.RecordEvents(events)
	g.sounds.play(events)

	for _, e := range events {
		if e.Kind == runner.EventGameOver {
			if run, saved := g.recorder.Finish(g.sim); saved && run.Score > g.best {
				g.best = run.Score
			}
		}
	}
	return events
}

// refreshScores reloads the best score and the menu leaderboard.
func (g *Game) refreshScores() {
	g.best = g.recorder.Best()
	if g.opts.Store == nil {
		return
	}
	top, err := g.opts.Store.TopRuns(menuScores)
	if err != nil {
		g.logger.Warn("Could not load scores", "err", err)
		return
	}
	g.top = top
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() { metrics.RecordRender(time.Since(start)) }()

	snap := g.sim.Snapshot()
	drawWorld(screen, snap, g.opts.Runner)
	drawHUD(screen, snap, g.best)

	if g.sim.HelpOpen() {
		drawPanel(screen, helpLines()...)
		return
	}

	switch g.sim.State() {
	case runner.StateMenu:
		drawPanel(screen, g.menuLines()...)
	case runner.StatePaused:
		drawPanel(screen, "PAUSED", "", "P to resume  B for menu")
	case runner.StateGameOver:
		drawPanel(screen, "GAME OVER", "", fmt.Sprintf("Score: %d", snap.Score), "R to restart  B for menu")
	}
}

func (g *Game) menuLines() []string {
	lines := []string{"COIN RUNNER", "", "Enter to start  H for help  Esc to quit"}
	if len(g.top) > 0 {
		lines = append(lines, "", "HIGH SCORES")
		for i, r := range g.top {
			lines = append(lines, fmt.Sprintf("%d. %-12s %5d", i+1, r.Player, r.Score))
		}
	}
	return lines
}

func helpLines() []string {
	return []string{
		"HOW TO PLAY",
		"",
		"Collect coins, avoid spikes.",
		"Land on platforms to rest.",
		"",
		"Left/Right or A/D   move",
		"Space/Up/W          jump (twice for double jump)",
		"P                   pause",
		"R                   restart",
		"B                   back to menu",
		"H/F1                close help",
	}
}

// Layout keeps the logical screen at the viewport size.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.opts.Runner.Viewport.Width), int(g.opts.Runner.Viewport.Height)
}

// Simulation exposes the hosted simulation.
func (g *Game) Simulation() *runner.Simulation {
	return g.sim
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g := NewGame(opts)

	if !g.opts.Mute {
		s, err := newSounds(audio.NewContext(sampleRate))
		if err != nil {
			g.logger.Warn("Sound disabled", "err", err)
		} else {
			g.sounds = s
		}
	}

	vp := g.opts.Runner.Viewport
	ebiten.SetWindowTitle("Coin Runner")
	ebiten.SetWindowSize(int(vp.Width*g.opts.Scale), int(vp.Height*g.opts.Scale))
	ebiten.SetTPS(g.opts.TPS)

	metrics.SessionOpened("desktop")
	defer metrics.SessionClosed()

	g.logger.Info("Window opened", "tps", g.opts.TPS)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
