package system

import (
	"time"

	"github.com/bsgelman/Marble-Madness-Game/internal/core/event"
	coresys "github.com/bsgelman/Marble-Madness-Game/internal/core/system"
	"go.uber.org/zap"
)

// OutcomeSystem checks for the player's death and for level completion.
// Phase 3 (PostUpdate).
type OutcomeSystem struct {
	deps *Deps
}

func NewOutcomeSystem(deps *Deps) *OutcomeSystem {
	return &OutcomeSystem{deps: deps}
}

func (s *OutcomeSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *OutcomeSystem) Update(_ time.Duration) {
	d := s.deps
	d.Result = Continue
	ws := d.World
	p := ws.Player()

	if !p.Alive {
		d.Board.Lives--
		d.sound(event.SoundPlayerDie)
		d.Result = PlayerDied
		d.Log.Info("player died",
			zap.Int("level", d.Board.Level), zap.Int("lives", d.Board.Lives), zap.Int("score", d.Board.Score))
		return
	}

	if ws.Crystals() > 0 {
		return
	}
	if ws.RevealExit() {
		d.sound(event.SoundRevealExit)
	}
	e := ws.Exit()
	if e == nil || !e.Visible || e.X != p.X || e.Y != p.Y {
		return
	}
	d.sound(event.SoundFinishedLevel)
	d.Board.Score += d.ClearBonus + d.Board.Bonus
	d.Result = LevelFinished
	d.Log.Info("level finished",
		zap.Int("level", d.Board.Level), zap.Int("bonus", d.Board.Bonus), zap.Int("score", d.Board.Score))
}

// OutputSystem delivers the sound cues and notifications raised this tick.
// Phase 4 (Output).
type OutputSystem struct {
	bus *event.Bus
}

func NewOutputSystem(bus *event.Bus) *OutputSystem {
	return &OutputSystem{bus: bus}
}

func (s *OutputSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *OutputSystem) Update(_ time.Duration) {
	s.bus.Flush()
}
