package event

import "github.com/bsgelman/Marble-Madness-Game/internal/core/ecs"

// Sound names a sound cue the presentation layer can play.
type Sound int

const (
	SoundNone Sound = iota
	SoundPlayerFire
	SoundEnemyFire
	SoundPlayerImpact
	SoundRobotImpact
	SoundRobotDie
	SoundRobotBorn
	SoundGotGoodie
	SoundThiefMunch
	SoundPlayerDie
	SoundRevealExit
	SoundFinishedLevel
)

var soundNames = [...]string{
	SoundNone:          "none",
	SoundPlayerFire:    "player-fire",
	SoundEnemyFire:     "enemy-fire",
	SoundPlayerImpact:  "player-hit",
	SoundRobotImpact:   "robot-hit",
	SoundRobotDie:      "robot-destroyed",
	SoundRobotBorn:     "robot-spawned",
	SoundGotGoodie:     "item-pickup",
	SoundThiefMunch:    "thief-munch",
	SoundPlayerDie:     "player-death",
	SoundRevealExit:    "exit-revealed",
	SoundFinishedLevel: "level-finished",
}

func (s Sound) String() string {
	if s >= 0 && int(s) < len(soundNames) {
		return soundNames[s]
	}
	return "unknown"
}

// Sounds lists every playable cue, in declaration order.
func Sounds() []Sound {
	out := make([]Sound, 0, len(soundNames)-1)
	for s := SoundPlayerFire; int(s) < len(soundNames); s++ {
		out = append(out, s)
	}
	return out
}

// SoundCue asks the presentation layer to play a sound.
type SoundCue struct {
	Sound Sound
}

// RobotDestroyed is raised when a robot's hit points reach zero.
type RobotDestroyed struct {
	EntityID ecs.EntityID
	Kind     string
	X, Y     int
	Score    int
}

// GoodieStolen is raised when a thief picks up a goodie.
type GoodieStolen struct {
	Thief  ecs.EntityID
	Goodie ecs.EntityID
	X, Y   int
}

// ThiefSpawned is raised when a factory produces a thief.
type ThiefSpawned struct {
	Factory ecs.EntityID
	Thief   ecs.EntityID
	Kind    string
}
