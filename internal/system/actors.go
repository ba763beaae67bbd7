package system

import (
	"time"

	coresys "github.com/bsgelman/Marble-Madness-Game/internal/core/system"
)

// PlayerSystem runs the player's behavior. Phase 2 (Update), registered
// ahead of ActorSystem.
type PlayerSystem struct {
	deps *Deps
}

func NewPlayerSystem(deps *Deps) *PlayerSystem {
	return &PlayerSystem{deps: deps}
}

func (s *PlayerSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *PlayerSystem) Update(_ time.Duration) {
	stepPlayer(s.deps, s.deps.World.Player())
}

// ActorSystem steps every other live actor in creation order. Actors
// spawned during the walk are appended and reached in the same pass; peas
// skip their first activation. Phase 2 (Update).
type ActorSystem struct {
	deps *Deps
}

func NewActorSystem(deps *Deps) *ActorSystem {
	return &ActorSystem{deps: deps}
}

func (s *ActorSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *ActorSystem) Update(_ time.Duration) {
	ws := s.deps.World
	pid := ws.PlayerID()
	for i := 0; i < ws.Len(); i++ {
		a := ws.At(i)
		if a == nil || !a.Alive || a.ID == pid {
			continue
		}
		stepActor(s.deps, a)
	}
}
