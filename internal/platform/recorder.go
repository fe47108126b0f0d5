// Package platform holds what the terminal and desktop hosts share.
package platform

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/metrics"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Recorder turns finished sessions into stored runs.
type Recorder struct {
	Store  *storage.Store // Nil disables persistence
	Logger *log.Logger
	Player string
	Host   string
}

func (r Recorder) logger() *log.Logger {
	if r.Logger == nil {
		return log.New(io.Discard)
	}
	return r.Logger
}

// Finish logs and records the session that just ended. Runs that scored
// nothing are not stored. It reports whether the run was saved.
func (r Recorder) Finish(sim *runner.Simulation) (storage.Run, bool) {
	w := sim.World()
	stats := sim.Stats()
	played := time.Duration(stats.Elapsed * float64(time.Second))

	run := storage.Run{
		Player:   r.Player,
		Host:     r.Host,
		Score:    w.Score,
		Coins:    stats.Coins,
		Jumps:    stats.Jumps,
		Hits:     stats.Hits,
		Distance: stats.Distance(sim.Config().Physics.ScrollSpeed),
		Duration: played,
	}

	logger := r.logger()
	logger.Info("Game over", "score", run.Score, "coins", run.Coins, "hits", run.Hits, "played", played.Round(time.Millisecond))
	metrics.RecordRun(run.Score, played)

	if run.Score <= 0 || r.Store == nil {
		return run, false
	}

	id, err := r.Store.SaveRun(run)
	metrics.RecordScoreSave(err)
	if err != nil {
		logger.Error("Could not save score", "err", err)
		return run, false
	}
	run.ID = id
	logger.Debug("Score saved", "id", id, "score", run.Score)
	return run, true
}

// Best returns the stored high score, or 0 when unavailable.
func (r Recorder) Best() int {
	if r.Store == nil {
		return 0
	}
	best, err := r.Store.HighScore()
	if err != nil {
		r.logger().Warn("Could not load high score", "err", err)
		return 0
	}
	return best
}
