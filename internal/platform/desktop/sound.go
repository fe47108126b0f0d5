package desktop

import (
	"bytes"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/tui-runner/internal/runner"
)

const sampleRate = 44100

// tone is a synthesized cue sound.
type tone struct {
	freq float64 // Hz
	dur  float64 // Seconds
}

// cueTones maps audio cues to their tones.
var cueTones = map[runner.EventKind]tone{
	runner.EventJump:     {freq: 660, dur: 0.06},
	runner.EventCoin:     {freq: 1320, dur: 0.05},
	runner.EventHit:      {freq: 220, dur: 0.15},
	runner.EventGameOver: {freq: 110, dur: 0.4},
}

// beepPCM synthesizes a sine beep as 16-bit little endian stereo PCM with
// a short linear fade out to avoid clicks.
func beepPCM(t tone, rate int) []byte {
	n := int(float64(rate) * t.dur)
	pcm := make([]byte, n*4)
	const amp = 0.3
	fade := n / 10
	for i := 0; i < n; i++ {
		v := math.Sin(2 * math.Pi * t.freq * float64(i) / float64(rate))
		if left := n - i; fade > 0 && left < fade {
			v *= float64(left) / float64(fade)
		}
		s := int16(v * amp * math.MaxInt16)
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return pcm
}

// sounds plays cue beeps. The zero value is silent.
type sounds struct {
	players map[runner.EventKind]*audio.Player
}

func newSounds(ctx *audio.Context) (*sounds, error) {
	s := &sounds{players: make(map[runner.EventKind]*audio.Player, len(cueTones))}
	for kind, t := range cueTones {
		p, err := ctx.NewPlayer(bytes.NewReader(beepPCM(t, sampleRate)))
		if err != nil {
			return nil, err
		}
		s.players[kind] = p
	}
	return s, nil
}

// play starts the beep for every cue in events.
func (s *sounds) play(events []runner.Event) {
	if s == nil {
		return
	}
	for _, e := range events {
		if !e.IsCue() {
			continue
		}
		p, ok := s.players[e.Kind]
		if !ok {
			continue
		}
		_ = p.Rewind()
		p.Play()
	}
}
