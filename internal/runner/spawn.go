package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Spawner generates coins, spikes and platforms off the right edge of the
// viewport, scrolls everything left, and culls what has left the screen.
type Spawner struct {
	cfg config.RunnerConfig
	rng RandomSource

	coinTimer     float64
	coinInterval  float64
	spikeTimer    float64
	spikeInterval float64
}

// NewSpawner creates a spawner with freshly drawn intervals.
func NewSpawner(cfg config.RunnerConfig, rng RandomSource) *Spawner {
	s := &Spawner{cfg: cfg, rng: rng}
	s.Reset()
	return s
}

// Reset zeroes both timers and draws new intervals.
func (s *Spawner) Reset() {
	s.coinTimer = 0
	s.spikeTimer = 0
	s.coinInterval = s.rng.Range(s.cfg.Coins.MinInterval, s.cfg.Coins.MaxInterval)
	s.spikeInterval = s.rng.Range(s.cfg.Spikes.MinInterval, s.cfg.Spikes.MaxInterval)
}

// Tick runs one spawn step: coin timer, spike timer, platform roll, then
// scrolling and culling. It returns one event per spawned entity.
func (s *Spawner) Tick(w *World, dt float64) []Event {
	var events []Event

	s.coinTimer += dt
	if s.coinTimer >= s.coinInterval {
		s.coinTimer -= s.coinInterval
		s.coinInterval = s.rng.Range(s.cfg.Coins.MinInterval, s.cfg.Coins.MaxInterval)
		events = append(events, s.spawnCoin(w))
	}

	s.spikeTimer += dt
	if s.spikeTimer >= s.spikeInterval {
		s.spikeTimer -= s.spikeInterval
		s.spikeInterval = s.rng.Range(s.cfg.Spikes.MinInterval, s.cfg.Spikes.MaxInterval)
		events = append(events, s.spawnGroundSpike(w))
	}

	if w.Platform == nil && s.rng.Chance(s.cfg.Platforms.Chance) {
		events = append(events, s.spawnPlatform(w)...)
	}

	s.scroll(w, dt)
	s.cull(w)
	return events
}

func (s *Spawner) spawnCoin(w *World) Event {
	x := s.cfg.SpawnX()
	var y float64
	if p := w.Platform; p != nil && x >= p.X && x <= p.Right() {
		y = s.coinYAround(p)
	} else {
		y = s.openFieldY()
	}
	w.Coins = append(w.Coins, Coin{Box: core.NewBox(x, y, s.cfg.Coins.Width, s.cfg.Coins.Height)})
	return Event{Kind: EventCoinSpawned, X: x, Y: y}
}

// ceiling is the highest coin position: two full jumps above the ground.
func (s *Spawner) ceiling() float64 {
	return s.cfg.Physics.GroundY - 2*s.cfg.Physics.MaxJumpHeight
}

func (s *Spawner) openFieldY() float64 {
	return s.rng.Range(s.ceiling(), s.cfg.Physics.GroundY)
}

// coinYAround picks a coin height that stays clear of the band the hero
// occupies while standing on the platform.
func (s *Spawner) coinYAround(p *Platform) float64 {
	ceiling := s.ceiling()
	floor := s.cfg.Physics.GroundY
	margin := s.cfg.Coins.BandMargin

	safeTop := math.Max(ceiling, p.Y-margin)
	safeBottom := math.Min(floor, p.Y+s.cfg.Hero.Height+margin)
	hasAbove := safeTop > ceiling
	hasBelow := safeBottom < floor

	switch {
	case hasAbove && hasBelow:
		if s.rng.Chance(0.5) {
			return s.rng.Range(ceiling, safeTop)
		}
		return s.rng.Range(safeBottom, floor)
	case hasAbove:
		return s.rng.Range(ceiling, safeTop)
	case hasBelow:
		return s.rng.Range(safeBottom, floor)
	default:
		return s.openFieldY()
	}
}

func (s *Spawner) spawnGroundSpike(w *World) Event {
	x := s.cfg.SpawnX()
	y := s.cfg.Physics.GroundY + s.cfg.Hero.Height - s.cfg.Spikes.Height
	w.Spikes = append(w.Spikes, Spike{Box: core.NewBox(x, y, s.cfg.Spikes.Width, s.cfg.Spikes.Height)})
	return Event{Kind: EventSpikeSpawned, X: x, Y: y}
}

// spawnPlatform places a platform and its companion spike, centered on it.
func (s *Spawner) spawnPlatform(w *World) []Event {
	pc := s.cfg.Platforms
	x := s.cfg.SpawnX()
	y := s.rng.Range(s.cfg.MinPlatformY(), s.cfg.MaxPlatformY())
	p := &Platform{Box: core.NewBox(x, y, pc.Width, pc.Height)}
	w.Platform = p

	sw, sh := s.cfg.Spikes.Width, s.cfg.Spikes.Height
	sx := p.CenterX() - sw/2
	sy := p.Y + s.cfg.Hero.Height - sh
	w.Spikes = append(w.Spikes, Spike{Box: core.NewBox(sx, sy, sw, sh)})

	return []Event{
		{Kind: EventPlatformSpawned, X: x, Y: y},
		{Kind: EventSpikeSpawned, X: sx, Y: sy},
	}
}

func (s *Spawner) scroll(w *World, dt float64) {
	d := s.cfg.Physics.ScrollSpeed * dt
	for i := range w.Coins {
		w.Coins[i].X -= d
	}
	for i := range w.Spikes {
		w.Spikes[i].X -= d
	}
	if w.Platform != nil {
		w.Platform.X -= d
	}
}

// cull drops everything whose right edge has passed x = 0.
func (s *Spawner) cull(w *World) {
	w.Coins = survivors(w.Coins, func(c Coin) bool { return c.Right() >= 0 })
	w.Spikes = survivors(w.Spikes, func(sp Spike) bool { return sp.Right() >= 0 })
	if w.Platform != nil && w.Platform.Right() < 0 {
		w.Platform = nil
	}
}
