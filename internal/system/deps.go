package system

import (
	"github.com/bsgelman/Marble-Madness-Game/internal/core/event"
	"github.com/bsgelman/Marble-Madness-Game/internal/world"
	"go.uber.org/zap"
)

// Result is what one tick tells the caller.
type Result int

const (
	Continue Result = iota
	PlayerDied
	LevelFinished
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case PlayerDied:
		return "player-died"
	case LevelFinished:
		return "level-finished"
	}
	return "unknown"
}

// Scoreboard is the bookkeeping that outlives a level.
type Scoreboard struct {
	Score int
	Lives int
	Level int
	Bonus int // decays by one per tick, floor 0
}

// Rand is the random source behaviors draw from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Deps bundles everything the systems share. World is replaced on every
// level load; systems hold the *Deps, never the State itself.
type Deps struct {
	World  *world.State
	Bus    *event.Bus
	Board  *Scoreboard
	Rand   Rand
	Input  InputSource
	Status Presenter
	Log    *zap.Logger

	// Per level.
	RobotInterval int
	ClearBonus    int

	// Per tick.
	Pending    Command
	HasPending bool
	Result     Result
}

func (d *Deps) sound(s event.Sound) {
	event.Emit(d.Bus, event.SoundCue{Sound: s})
}

// shuffle returns the four facings in random order (Fisher-Yates).
func shuffle(r Rand) [4]world.Direction {
	dirs := world.Directions
	for i := len(dirs) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}
