// Package ratelimit provides per-client token-bucket limiting keyed by IP.
// It guards SSH session creation and the metrics HTTP endpoint.
package ratelimit

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Config configures the per-key limiter.
type Config struct {
	PerSecond       float64       // Tokens refilled per second per key
	Burst           int           // Maximum burst size
	CleanupInterval time.Duration // How often stale keys are dropped
}

// DefaultConfig allows a burst of 3 new sessions per IP, then one every 2s.
func DefaultConfig() Config {
	return Config{
		PerSecond:       0.5,
		Burst:           3,
		CleanupInterval: 5 * time.Minute,
	}
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// Limiter keeps one token bucket per key. It is safe for concurrent use.
type Limiter struct {
	limiters sync.Map // map[string]*entry
	cfg      Config
	stop     chan struct{}
	stopOnce sync.Once

	allowed  atomic.Uint64
	rejected atomic.Uint64
}

// New creates a limiter and starts its cleanup loop. Call Stop when done.
func New(cfg Config) *Limiter {
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = DefaultConfig().CleanupInterval
	}
	l := &Limiter{
		cfg:  cfg,
		stop: make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Stop ends the cleanup loop. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
}

func (l *Limiter) get(key string, now time.Time) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		e := v.(*entry)
		e.lastSeen.Store(now.UnixNano())
		return e.limiter
	}

	e := &entry{limiter: rate.NewLimiter(rate.Limit(l.cfg.PerSecond), l.cfg.Burst)}
	e.lastSeen.Store(now.UnixNano())
	actual, _ := l.limiters.LoadOrStore(key, e)
	return actual.(*entry).limiter
}

// Allow reports whether an event for key may happen now.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()
	if l.get(key, now).AllowN(now, 1) {
		l.allowed.Add(1)
		return true
	}
	l.rejected.Add(1)
	return false
}

// Stats returns how many events were allowed and rejected so far.
func (l *Limiter) Stats() (allowed, rejected uint64) {
	return l.allowed.Load(), l.rejected.Load()
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	n := 0
	l.limiters.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case now := <-ticker.C:
			l.cleanup(now)
		}
	}
}

// cleanup drops keys not seen for two cleanup intervals.
func (l *Limiter) cleanup(now time.Time) {
	cutoff := now.Add(-2 * l.cfg.CleanupInterval).UnixNano()
	l.limiters.Range(func(key, value any) bool {
		if value.(*entry).lastSeen.Load() < cutoff {
			l.limiters.Delete(key)
		}
		return true
	})
}
