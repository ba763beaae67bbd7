package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // 0: poll the user's command
	PhasePreUpdate               // 1: refresh status text
	PhaseUpdate                  // 2: player then every other actor steps
	PhasePostUpdate              // 3: death, exit reveal, level completion
	PhaseOutput                  // 4: deliver sound cues and notifications
	PhaseCleanup                 // 5: sweep dead actors, decay bonus
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhasePreUpdate:
		return "pre-update"
	case PhaseUpdate:
		return "update"
	case PhasePostUpdate:
		return "post-update"
	case PhaseOutput:
		return "output"
	case PhaseCleanup:
		return "cleanup"
	}
	return "unknown"
}

// System is the interface every simulation system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
