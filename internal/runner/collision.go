package runner

// Resolution summarizes what the collision pass changed.
type Resolution struct {
	ScoreDelta int
	LivesDelta int
	GameOver   bool
	Events     []Event
}

// Resolver applies hero contacts with coins and spikes, and raises the
// game-over signal at most once per session.
type Resolver struct {
	gameOverFired bool
}

// NewResolver creates a resolver for a fresh session.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Reset re-arms the game-over signal.
func (r *Resolver) Reset() {
	r.gameOverFired = false
}

// Resolve collects overlapped coins, applies spike hits while lives remain,
// and checks for game over.
func (r *Resolver) Resolve(w *World) Resolution {
	var res Resolution
	hero := w.Hero.Box()

	w.Coins = survivors(w.Coins, func(c Coin) bool {
		if !hero.Overlaps(c.Box) {
			return true
		}
		w.Score++
		res.ScoreDelta++
		res.Events = append(res.Events, Event{Kind: EventCoin, X: c.X, Y: c.Y})
		return false
	})

	// Once lives reach zero, remaining spikes stay and contact is a no-op.
	w.Spikes = survivors(w.Spikes, func(s Spike) bool {
		if w.Lives <= 0 || !hero.Overlaps(s.Box) {
			return true
		}
		w.Lives--
		res.LivesDelta--
		res.Events = append(res.Events, Event{Kind: EventHit, X: s.X, Y: s.Y})
		return false
	})

	if w.Lives <= 0 && !r.gameOverFired {
		w.Lives = 0
		r.gameOverFired = true
		res.GameOver = true
		res.Events = append(res.Events, Event{Kind: EventGameOver, X: w.Hero.X, Y: w.Hero.Y})
	}
	return res
}
