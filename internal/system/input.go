package system

import (
	"time"

	coresys "github.com/bsgelman/Marble-Madness-Game/internal/core/system"
)

// InputSystem polls the input surface for at most one command.
// Phase 0 (Input).
type InputSystem struct {
	deps *Deps
}

func NewInputSystem(deps *Deps) *InputSystem {
	return &InputSystem{deps: deps}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(_ time.Duration) {
	s.deps.Pending, s.deps.HasPending = CmdNone, false
	if s.deps.Input == nil {
		return
	}
	if cmd, ok := s.deps.Input.Poll(); ok && cmd != CmdNone {
		s.deps.Pending, s.deps.HasPending = cmd, true
	}
}
