package runner

import "testing"

func TestMachineTransitions(t *testing.T) {
	type cmd func(*Machine) bool
	var (
		start   cmd = (*Machine).Start
		pause   cmd = (*Machine).TogglePause
		restart cmd = (*Machine).Restart
		over    cmd = (*Machine).GameOver
		menu    cmd = (*Machine).ReturnToMenu
		open    cmd = (*Machine).OpenHelp
		closeH  cmd = (*Machine).CloseHelp
	)

	tests := []struct {
		name      string
		setup     []cmd
		cmd       cmd
		want      bool
		wantState State
	}{
		{"start from menu", nil, start, true, StatePlaying},
		{"start while playing", []cmd{start}, start, false, StatePlaying},
		{"pause in menu", nil, pause, false, StateMenu},
		{"pause while playing", []cmd{start}, pause, true, StatePaused},
		{"unpause", []cmd{start, pause}, pause, true, StatePlaying},
		{"pause at game over", []cmd{start, over}, pause, false, StateGameOver},
		{"restart in menu", nil, restart, false, StateMenu},
		{"restart while playing", []cmd{start}, restart, true, StatePlaying},
		{"restart while paused", []cmd{start, pause}, restart, true, StatePlaying},
		{"restart at game over", []cmd{start, over}, restart, true, StatePlaying},
		{"game over in menu", nil, over, false, StateMenu},
		{"game over while paused", []cmd{start, pause}, over, true, StateGameOver},
		{"game over twice", []cmd{start, over}, over, false, StateGameOver},
		{"menu from game over", []cmd{start, over}, menu, true, StateMenu},
		{"menu from menu", nil, menu, false, StateMenu},
		{"help pauses play", []cmd{start}, open, true, StatePaused},
		{"help in menu", nil, open, true, StateMenu},
		{"help twice", []cmd{open}, open, false, StateMenu},
		{"close help resumes", []cmd{start, open}, closeH, true, StatePlaying},
		{"close help at game over", []cmd{start, over, open}, closeH, true, StateGameOver},
		{"close help not open", []cmd{start}, closeH, false, StatePlaying},
		{"start with help open", []cmd{open}, start, true, StatePaused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			for _, c := range tt.setup {
				c(m)
			}
			if got := tt.cmd(m); got != tt.want {
				t.Errorf("command returned %v, want %v", got, tt.want)
			}
			if m.State() != tt.wantState {
				t.Errorf("state = %v, want %v", m.State(), tt.wantState)
			}
			if m.CanTick() != (m.State() == StatePlaying) {
				t.Errorf("CanTick = %v in state %v", m.CanTick(), m.State())
			}
		})
	}
}

func TestHelpTracking(t *testing.T) {
	m := NewMachine()
	m.Start()
	m.OpenHelp()
	if !m.HelpOpen() {
		t.Fatal("help should be open")
	}
	// Unpausing with help open is allowed.
	if !m.TogglePause() || m.State() != StatePlaying {
		t.Errorf("toggle with help open: state = %v", m.State())
	}
	m.CloseHelp()
	if m.HelpOpen() || m.State() != StatePlaying {
		t.Errorf("after close: help=%v state=%v", m.HelpOpen(), m.State())
	}
}
