package platform

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

func newRecorder(t *testing.T) Recorder {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return Recorder{Store: store, Player: "ann", Host: "desktop"}
}

func TestRecorderFinish(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		wantSaved bool
	}{
		{"scored run is saved", 9, true},
		{"empty run is skipped", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecorder(t)
			sim := runner.New(config.DefaultRunnerConfig(), runner.NewRandomSource(1))
			sim.Start()
			sim.World().Score = tt.score

			run, saved := r.Finish(sim)
			if saved != tt.wantSaved {
				t.Fatalf("saved = %v, want %v", saved, tt.wantSaved)
			}
			if run.Player != "ann" || run.Host != "desktop" || run.Score != tt.score {
				t.Errorf("run = %+v", run)
			}
			if saved && run.ID == 0 {
				t.Error("saved run should carry its ID")
			}
			if got := r.Best(); got != tt.score {
				t.Errorf("Best() = %d, want %d", got, tt.score)
			}
		})
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	r := Recorder{}
	sim := runner.New(config.DefaultRunnerConfig(), runner.NewRandomSource(1))
	sim.World().Score = 3

	if _, saved := r.Finish(sim); saved {
		t.Error("nothing should be saved without a store")
	}
	if got := r.Best(); got != 0 {
		t.Errorf("Best() = %d, want 0", got)
	}
}
