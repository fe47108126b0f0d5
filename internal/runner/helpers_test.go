package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// stubSource is a scripted RandomSource: Range always returns the point at
// frac within the range, Chance defers to chance (false when nil).
type stubSource struct {
	frac   float64
	chance func(p float64) bool
}

func (s stubSource) Range(min, max float64) float64 {
	return min + s.frac*(max-min)
}

func (s stubSource) Chance(p float64) bool {
	if s.chance == nil {
		return false
	}
	return s.chance(p)
}

func always(float64) bool { return true }

func never(float64) bool { return false }

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func frame(actions ...core.Action) core.InputFrame {
	return core.NewInputFrame(actions...)
}

func testConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}
