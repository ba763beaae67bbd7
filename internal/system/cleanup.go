package system

import (
	"time"

	coresys "github.com/bsgelman/Marble-Madness-Game/internal/core/system"
)

// CleanupSystem sweeps the actors killed this tick. It does nothing once
// the level is over. Phase 5 (Cleanup).
type CleanupSystem struct {
	deps *Deps
}

func NewCleanupSystem(deps *Deps) *CleanupSystem {
	return &CleanupSystem{deps: deps}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	if s.deps.Result != Continue {
		return
	}
	s.deps.World.Sweep()
}

// BonusSystem decays the level bonus by one point per tick, floored at 0.
// Phase 5 (Cleanup), after CleanupSystem.
type BonusSystem struct {
	deps *Deps
}

func NewBonusSystem(deps *Deps) *BonusSystem {
	return &BonusSystem{deps: deps}
}

func (s *BonusSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *BonusSystem) Update(_ time.Duration) {
	if s.deps.Result != Continue {
		return
	}
	if s.deps.Board.Bonus > 0 {
		s.deps.Board.Bonus--
	}
}
