package system

import (
	"fmt"
	"time"

	coresys "github.com/bsgelman/Marble-Madness-Game/internal/core/system"
)

// StatusText formats the one-line status display.
func StatusText(score, level, lives, health, ammo, bonus int) string {
	return fmt.Sprintf("Score: %07d  Level: %02d  Lives: %2d  Health: %3d%%  Ammo: %3d  Bonus: %4d",
		score, level, lives, health, ammo, bonus)
}

// StatusSystem refreshes the status line before anyone acts.
// Phase 1 (PreUpdate).
type StatusSystem struct {
	deps *Deps
}

func NewStatusSystem(deps *Deps) *StatusSystem {
	return &StatusSystem{deps: deps}
}

func (s *StatusSystem) Phase() coresys.Phase { return coresys.PhasePreUpdate }

func (s *StatusSystem) Update(_ time.Duration) {
	if s.deps.Status == nil {
		return
	}
	b, ws := s.deps.Board, s.deps.World
	s.deps.Status.SetStatus(StatusText(
		b.Score, b.Level, b.Lives,
		ws.PlayerHealth().Percent(), ws.PlayerState().Ammo, b.Bonus,
	))
}
