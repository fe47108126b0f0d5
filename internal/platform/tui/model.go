package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/metrics"
	"github.com/vovakirdan/tui-runner/internal/platform"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/screenshot"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Options configures a game session.
type Options struct {
	Runner  config.RunnerConfig
	Runtime core.RuntimeConfig

	// Store persists finished runs. Nil disables persistence.
	Store *storage.Store

	// Logger receives session logs. Nil discards them.
	Logger *log.Logger

	Player string // Recorded with each run
	Host   string // "tui" or "ssh"

	// HoldWindow overrides DefaultHoldWindow.
	HoldWindow time.Duration

	// ScreenshotDir overrides ~/.arcade/screenshots.
	ScreenshotDir string
}

// GameModel is the Bubble Tea model hosting one runner simulation.
type GameModel struct {
	sim        *runner.Simulation
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	held       *HeldKeys
	scoreboard *ScoreboardModel
	recorder   platform.Recorder
	best       int
	lastTick   time.Time
	quitting   bool
}

// NewGameModel creates a game model in the menu state.
func NewGameModel(opts Options) GameModel {
	opts.Runtime = opts.Runtime.WithDefaults()
	if opts.Player == "" {
		opts.Player = "local"
	}
	if opts.Host == "" {
		opts.Host = "tui"
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = true

	m := GameModel{
		sim:    runner.New(opts.Runner, runner.NewRandomSource(opts.Runtime.Seed)),
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:   opts,
		logger: logger.With("player", opts.Player, "host", opts.Host),
		keys:   DefaultKeyMap(),
		help:   h,
		held:   NewHeldKeys(opts.HoldWindow),
	}
	m.recorder = platform.Recorder{
		Store:  opts.Store,
		Logger: m.logger,
		Player: opts.Player,
		Host:   opts.Host,
	}
	m.best = m.loadBest()
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		if m.sim.HelpOpen() {
			m.sim.CloseHelp()
		} else {
			m.sim.OpenHelp()
		}
		m.held.Release()
		return m, nil
	}

	switch m.sim.State() {
	case runner.StateMenu:
		switch {
		case key.Matches(msg, m.keys.Start), key.Matches(msg, m.keys.Jump):
			if m.sim.Start() {
				m.held.Release()
				m.logger.Debug("Run started")
			}
		case key.Matches(msg, m.keys.Scores):
			sb := NewScoreboardModel(m.opts.Store, m.screen.Width(), m.screen.Height(), false).WithPlayer(m.opts.Player)
			m.scoreboard = &sb
		}
		return m, nil

	case runner.StatePaused, runner.StateGameOver:
		if key.Matches(msg, m.keys.Menu) {
			m.sim.ReturnToMenu()
			m.held.Release()
			m.best = m.loadBest()
			m.logger.Debug("Returned to menu")
			return m, nil
		}
	}

	m.held.Press(m.keys.SimAction(msg), time.Now())
	return m, nil
}

// handleResize processes window resize events. The simulation runs in
// world units, so only the screen buffer changes.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick advances the simulation by the wall time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.opts.Runtime.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	before := m.sim.State()
	start := time.Now()
	events := m.sim.Tick(dt, m.held.Frame(now))
	metrics.RecordTick(time.Since(start))
	metrics.RecordEvents(events)

	for _, e := range events {
		if e.Kind == runner.EventGameOver {
			m.finishRun()
		}
	}
	if after := m.sim.State(); after != before {
		m.logger.Debug("State changed", "from", before, "to", after)
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// finishRun records a finished run. It runs once per session, driven by
// the simulation's single game-over event.
func (m *GameModel) finishRun() {
	run, saved := m.recorder.Finish(m.sim)
	if saved && run.Score > m.best {
		m.best = run.Score
	}
}

func (m GameModel) loadBest() int {
	return m.recorder.Best()
}

// updateScoreboard forwards a message to the open scoreboard.
func (m GameModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		m.scoreboard = nil
		return m, cmd
	}
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// saveScreenshot writes the current frame as text and PNG. Failures are
// logged and play continues.
func (m *GameModel) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		var err error
		if dir, err = screenshot.DefaultDir(); err != nil {
			m.logger.Warn("Screenshot skipped", "err", err)
			return
		}
	}

	m.renderFrame()
	paths, err := screenshot.Save(dir, "runner", m.screen.String(), m.sim.Snapshot(), m.sim.Config(), time.Now())
	if err != nil {
		m.logger.Warn("Screenshot failed", "err", err)
		return
	}
	m.logger.Info("Screenshot saved", "text", paths.Text, "png", paths.PNG)
}

// Simulation exposes the hosted simulation for inspection.
func (m GameModel) Simulation() *runner.Simulation {
	return m.sim
}

// IsQuitting returns true if the user requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	if opts.Host == "" {
		opts.Host = "tui"
	}
	metrics.SessionOpened(opts.Host)
	defer metrics.SessionClosed()

	p := tea.NewProgram(
		NewGameModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
