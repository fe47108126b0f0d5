package runner

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventNone EventKind = iota

	// Audio cues
	EventJump
	EventCoin
	EventHit
	EventGameOver

	// Spawn notifications
	EventCoinSpawned
	EventSpikeSpawned
	EventPlatformSpawned
)

// String returns the event name used in logs and metrics labels.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventCoin:
		return "coin"
	case EventHit:
		return "hit"
	case EventGameOver:
		return "gameover"
	case EventCoinSpawned:
		return "coin_spawned"
	case EventSpikeSpawned:
		return "spike_spawned"
	case EventPlatformSpawned:
		return "platform_spawned"
	default:
		return "none"
	}
}

// Event is emitted by a tick for the host to consume.
// X and Y give the world position where it happened.
type Event struct {
	Kind EventKind
	X, Y float64
}

// IsCue reports whether the event should trigger an audio cue.
func (e Event) IsCue() bool {
	switch e.Kind {
	case EventJump, EventCoin, EventHit, EventGameOver:
		return true
	}
	return false
}
