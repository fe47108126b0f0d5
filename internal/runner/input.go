package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// InputState tracks the held actions for the current and previous tick so
// that edge-triggered actions (jump, pause, restart) fire once per press.
type InputState struct {
	current  core.InputFrame
	previous core.InputFrame
}

// NewInputState creates an input state with nothing held.
func NewInputState() *InputState {
	return &InputState{
		current:  core.NewInputFrame(),
		previous: core.NewInputFrame(),
	}
}

// Update records the actions held during this tick.
func (s *InputState) Update(frame core.InputFrame) {
	s.current = frame.Clone()
}

// Held reports whether the action is held this tick.
func (s *InputState) Held(a core.Action) bool {
	return s.current.Has(a)
}

// Pressed reports a rising edge: held this tick but not the previous one.
func (s *InputState) Pressed(a core.Action) bool {
	return s.current.Has(a) && !s.previous.Has(a)
}

// Axis returns -1, 0 or 1 from the left/right actions.
func (s *InputState) Axis() float64 {
	axis := 0.0
	if s.Held(core.ActionRight) {
		axis++
	}
	if s.Held(core.ActionLeft) {
		axis--
	}
	return axis
}

// Latch ends the tick: the current frame becomes the previous one.
func (s *InputState) Latch() {
	s.previous = s.current
}

// Reset forgets the previous frame, so any action held on the next tick
// counts as freshly pressed.
func (s *InputState) Reset() {
	s.previous = core.NewInputFrame()
}
