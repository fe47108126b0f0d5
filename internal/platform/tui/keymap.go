package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after the
// terminal last reported it. Key auto-repeat refreshes it.
const DefaultHoldWindow = 120 * time.Millisecond

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Start      key.Binding
	Menu       key.Binding
	Help       key.Binding
	Scores     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Pause, k.Restart, k.Menu},
		{k.Start, k.Scores, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default game key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "jump (twice for double jump)"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Menu: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "back to menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "esc"),
			key.WithHelp("?/esc", "toggle help"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "high scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SimAction maps a key to the simulation action it drives, if any.
func (k KeyMap) SimAction(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// isTap reports whether an action acts on its rising edge only.
func isTap(a core.Action) bool {
	switch a {
	case core.ActionJump, core.ActionPause, core.ActionRestart:
		return true
	}
	return false
}

// HeldKeys turns the key presses a terminal reports into per-tick held
// sets. Movement actions stay held for a window after each press. Tap
// actions are held for exactly one tick, so every separate press that is
// followed by a released tick produces a new rising edge.
type HeldKeys struct {
	window time.Duration
	until  map[core.Action]time.Time
	taps   map[core.Action]bool
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window: window,
		until:  make(map[core.Action]time.Time),
		taps:   make(map[core.Action]bool),
	}
}

// Press records a key press at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if isTap(a) {
		h.taps[a] = true
		return
	}
	h.until[a] = now.Add(h.window)
}

// Frame returns the actions held at now and consumes pending taps.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, exp := range h.until {
		if now.Before(exp) {
			f.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	for a := range h.taps {
		f.Set(a)
		delete(h.taps, a)
	}
	return f
}

// Release drops every held and pending action.
func (h *HeldKeys) Release() {
	clear(h.until)
	clear(h.taps)
}
