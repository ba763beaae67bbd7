// Package audio synthesizes the game's sound cues and plays them through
// the system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/bsgelman/Marble-Madness-Game/internal/config"
	"github.com/bsgelman/Marble-Madness-Game/internal/core/event"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// Player plays sound cues. A Player whose speaker could not be opened is
// silent but otherwise usable.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	live   bool
	log    *zap.Logger
}

// NewPlayer opens the speaker when cfg.Enabled is set. A missing audio
// device is logged and yields a silent player, not an error.
func NewPlayer(cfg config.AudioConfig, log *zap.Logger) *Player {
	p := &Player{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		log:    log,
	}
	if !cfg.Enabled {
		log.Info("audio disabled")
		return p
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		log.Warn("audio unavailable, continuing silently", zap.Error(err))
		return p
	}
	speaker.Play(p.mixer)
	p.live = true
	return p
}

// Play queues s on the mixer.
func (p *Player) Play(s event.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.live {
		return
	}
	st := Synth(s, p.rate, p.volume)
	if st == nil {
		p.log.Debug("no sound for cue", zap.Stringer("sound", s))
		return
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// Live reports whether sounds reach a device.
func (p *Player) Live() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.live
}

// Close silences the mixer and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.live {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.live = false
}
