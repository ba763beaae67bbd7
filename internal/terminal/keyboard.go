package terminal

import (
	"context"
	"errors"

	"github.com/bsgelman/Marble-Madness-Game/internal/system"
	"github.com/gdamore/tcell/v2"
)

// ErrInterrupted is returned by Keyboard.Run when the user presses Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

// Command maps a key press to a game command.
func Command(ev *tcell.EventKey) (system.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return system.CmdUp, true
	case tcell.KeyDown:
		return system.CmdDown, true
	case tcell.KeyLeft:
		return system.CmdLeft, true
	case tcell.KeyRight:
		return system.CmdRight, true
	case tcell.KeyEscape:
		return system.CmdQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return system.CmdFire, true
		case 'w', 'k', '8':
			return system.CmdUp, true
		case 's', 'j', '2':
			return system.CmdDown, true
		case 'a', 'h', '4':
			return system.CmdLeft, true
		case 'd', 'l', '6':
			return system.CmdRight, true
		case 'q':
			return system.CmdQuit, true
		}
	}
	return system.CmdNone, false
}

// Keyboard turns terminal key events into queued commands. Poll is safe to
// call from the game loop while Run reads events on another goroutine.
type Keyboard struct {
	screen tcell.Screen
	cmds   chan system.Command
}

func NewKeyboard(s tcell.Screen) *Keyboard {
	return &Keyboard{screen: s, cmds: make(chan system.Command, 8)}
}

// Poll returns the oldest queued command without blocking.
func (k *Keyboard) Poll() (system.Command, bool) {
	select {
	case c := <-k.cmds:
		return c, true
	default:
		return system.CmdNone, false
	}
}

// Run reads events until ctx is done, the screen is finalized or the user
// presses Ctrl-C. Commands typed faster than the game consumes them are
// dropped once the queue is full.
func (k *Keyboard) Run(ctx context.Context) error {
	for {
		ev := k.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			if _, resized := ev.(*tcell.EventResize); resized {
				k.screen.Sync()
			}
			continue
		}
		if key.Key() == tcell.KeyCtrlC {
			return ErrInterrupted
		}
		cmd, ok := Command(key)
		if !ok {
			continue
		}
		select {
		case k.cmds <- cmd:
		default:
		}
	}
}
