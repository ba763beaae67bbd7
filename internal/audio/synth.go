package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/bsgelman/Marble-Madness-Game/internal/core/event"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	position int
	duration int
	wave     Wave
	rate     beep.SampleRate
}

func newOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{freq: freq, duration: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}
		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = rand.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps a streamer in over attack and out over its last release
// samples.
type envelope struct {
	s        beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{s: s, total: rate.N(d), attack: rate.N(attack), release: rate.N(release)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release {
			vol = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

// recipes maps each cue to a short note sequence.
var recipes = map[event.Sound][]note{
	event.SoundPlayerFire:    {{880, 40 * time.Millisecond, WaveSquare}, {660, 40 * time.Millisecond, WaveSquare}},
	event.SoundEnemyFire:     {{330, 50 * time.Millisecond, WaveSaw}, {220, 50 * time.Millisecond, WaveSaw}},
	event.SoundPlayerImpact:  {{0, 90 * time.Millisecond, WaveNoise}, {110, 60 * time.Millisecond, WaveSquare}},
	event.SoundRobotImpact:   {{0, 60 * time.Millisecond, WaveNoise}},
	event.SoundRobotDie:      {{440, 60 * time.Millisecond, WaveSaw}, {220, 80 * time.Millisecond, WaveSaw}, {0, 120 * time.Millisecond, WaveNoise}},
	event.SoundRobotBorn:     {{220, 60 * time.Millisecond, WaveSine}, {330, 60 * time.Millisecond, WaveSine}, {440, 60 * time.Millisecond, WaveSine}},
	event.SoundGotGoodie:     {{1046.5, 60 * time.Millisecond, WaveSine}, {1568, 90 * time.Millisecond, WaveSine}},
	event.SoundThiefMunch:    {{180, 40 * time.Millisecond, WaveSquare}, {150, 40 * time.Millisecond, WaveSquare}, {180, 40 * time.Millisecond, WaveSquare}},
	event.SoundPlayerDie:     {{392, 150 * time.Millisecond, WaveSquare}, {311, 150 * time.Millisecond, WaveSquare}, {196, 300 * time.Millisecond, WaveSquare}},
	event.SoundRevealExit:    {{523.25, 80 * time.Millisecond, WaveSine}, {659.25, 80 * time.Millisecond, WaveSine}, {783.99, 160 * time.Millisecond, WaveSine}},
	event.SoundFinishedLevel: {{523.25, 100 * time.Millisecond, WaveSquare}, {659.25, 100 * time.Millisecond, WaveSquare}, {783.99, 100 * time.Millisecond, WaveSquare}, {1046.5, 250 * time.Millisecond, WaveSquare}},
}

// Synth builds the streamer for s, or nil if s has no recipe. volume is a
// base-2 exponent as in effects.Volume; 0 leaves the level unchanged.
func Synth(s event.Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := recipes[s]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := newOscillator(n.freq, n.dur, n.wave, rate)
		parts = append(parts, newEnvelope(osc, n.dur, 5*time.Millisecond, n.dur/3, rate))
	}
	// keep headroom; several cues can overlap in one tick
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: volume - 1}
}

// Duration returns the length of s's recipe.
func Duration(s event.Sound) time.Duration {
	var d time.Duration
	for _, n := range recipes[s] {
		d += n.dur
	}
	return d
}
