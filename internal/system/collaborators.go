package system

import "github.com/bsgelman/Marble-Madness-Game/internal/core/event"

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . InputSource,Presenter,SoundPlayer

// Command is one discrete user action.
type Command uint8

const (
	CmdNone Command = iota
	CmdQuit
	CmdFire
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
)

func (c Command) String() string {
	switch c {
	case CmdQuit:
		return "quit"
	case CmdFire:
		return "fire"
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	}
	return "none"
}

// InputSource yields at most one pending command per call. ok is false
// when the user has not pressed anything.
type InputSource interface {
	Poll() (cmd Command, ok bool)
}

// Presenter shows the status line.
type Presenter interface {
	SetStatus(text string)
}

// SoundPlayer plays a sound cue.
type SoundPlayer interface {
	Play(s event.Sound)
}
