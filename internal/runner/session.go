package runner

// State is the session state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Machine is the session state machine. Every command reports whether it
// changed anything; commands that are invalid in the current state are
// ignored.
type Machine struct {
	state    State
	helpOpen bool
}

// NewMachine creates a machine in the menu state.
func NewMachine() *Machine {
	return &Machine{state: StateMenu}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// HelpOpen reports whether the help overlay is open.
func (m *Machine) HelpOpen() bool { return m.helpOpen }

// CanTick reports whether the simulation should advance.
func (m *Machine) CanTick() bool { return m.state == StatePlaying }

// Start begins a session from the menu.
func (m *Machine) Start() bool {
	if m.state != StateMenu {
		return false
	}
	m.enterPlay()
	return true
}

// Restart begins a new session from any in-session state.
func (m *Machine) Restart() bool {
	if m.state == StateMenu {
		return false
	}
	m.enterPlay()
	return true
}

// enterPlay starts play, paused if help is still open.
func (m *Machine) enterPlay() {
	m.state = StatePlaying
	if m.helpOpen {
		m.state = StatePaused
	}
}

// TogglePause switches between playing and paused.
func (m *Machine) TogglePause() bool {
	switch m.state {
	case StatePlaying:
		m.state = StatePaused
	case StatePaused:
		m.state = StatePlaying
	default:
		return false
	}
	return true
}

// OpenHelp opens the help overlay, pausing play.
func (m *Machine) OpenHelp() bool {
	if m.helpOpen {
		return false
	}
	m.helpOpen = true
	if m.state == StatePlaying {
		m.state = StatePaused
	}
	return true
}

// CloseHelp closes the help overlay, resuming a paused session.
func (m *Machine) CloseHelp() bool {
	if !m.helpOpen {
		return false
	}
	m.helpOpen = false
	if m.state == StatePaused {
		m.state = StatePlaying
	}
	return true
}

// GameOver ends the running session.
func (m *Machine) GameOver() bool {
	if m.state != StatePlaying && m.state != StatePaused {
		return false
	}
	m.state = StateGameOver
	return true
}

// ReturnToMenu leaves the session.
func (m *Machine) ReturnToMenu() bool {
	if m.state == StateMenu {
		return false
	}
	m.state = StateMenu
	return true
}
