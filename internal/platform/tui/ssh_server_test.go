package tui

import (
	"net"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestRemoteIP(t *testing.T) {
	tests := []struct {
		name string
		addr net.Addr
		want string
	}{
		{"ipv4", &net.TCPAddr{IP: net.ParseIP("10.0.0.7"), Port: 51000}, "10.0.0.7"},
		{"ipv6", &net.TCPAddr{IP: net.ParseIP("::1"), Port: 22}, "::1"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := remoteIP(tt.addr); got != tt.want {
				t.Errorf("remoteIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSessionOptions(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HoldWindow = 80 * time.Millisecond
	s := &SSHServer{config: cfg}

	opts := s.sessionOptions("alice", 100, 30)

	if opts.Player != "alice" || opts.Host != "ssh" {
		t.Errorf("player/host = %q/%q", opts.Player, opts.Host)
	}
	if opts.Runtime.ScreenW != 100 || opts.Runtime.ScreenH != 30 || opts.Runtime.TickRate != 60 {
		t.Errorf("runtime = %+v", opts.Runtime)
	}
	if opts.Runtime.Seed == 0 {
		t.Error("each session should get a seed")
	}
	if opts.HoldWindow != 80*time.Millisecond {
		t.Errorf("hold window = %v", opts.HoldWindow)
	}
	if opts.Runner != config.DefaultRunnerConfig() {
		t.Error("sessions should play with the server's runner config")
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" || cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Limiter != nil {
		t.Error("rate limiting is opt-in")
	}
}
