package system

import (
	"testing"

	"github.com/bsgelman/Marble-Madness-Game/internal/core/event"
	coresys "github.com/bsgelman/Marble-Madness-Game/internal/core/system"
	"github.com/bsgelman/Marble-Madness-Game/internal/world"
	"go.uber.org/zap/zaptest"
)

// seqRand replays vals; once exhausted it returns n-1, which never wins a
// 1-in-n roll.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	if r.i >= len(r.vals) {
		return n - 1
	}
	v := r.vals[r.i]
	r.i++
	return v % n
}

type zeroRand struct{}

func (zeroRand) IntN(int) int { return 0 }

// scriptInput hands out one queued command per Poll.
type scriptInput struct {
	cmds []Command
}

func (s *scriptInput) Poll() (Command, bool) {
	if len(s.cmds) == 0 {
		return CmdNone, false
	}
	c := s.cmds[0]
	s.cmds = s.cmds[1:]
	return c, true
}

func (s *scriptInput) push(c ...Command) { s.cmds = append(s.cmds, c...) }

type statusRecorder struct{ last string }

func (r *statusRecorder) SetStatus(text string) { r.last = text }

type harness struct {
	t      *testing.T
	deps   *Deps
	runner *coresys.Runner
	input  *scriptInput
	status *statusRecorder
	sounds []event.Sound
}

func newHarness(t *testing.T, ws *world.State) *harness {
	t.Helper()
	h := &harness{t: t, input: &scriptInput{}, status: &statusRecorder{}}
	h.deps = &Deps{
		World:         ws,
		Bus:           event.NewBus(),
		Board:         &Scoreboard{Lives: 3, Bonus: 1000},
		Rand:          &seqRand{},
		Input:         h.input,
		Status:        h.status,
		Log:           zaptest.NewLogger(t),
		RobotInterval: 3,
		ClearBonus:    2000,
	}
	event.Subscribe(h.deps.Bus, func(c event.SoundCue) { h.sounds = append(h.sounds, c.Sound) })
	h.runner = coresys.NewRunner()
	RegisterAll(h.runner, h.deps)
	return h
}

func (h *harness) tick() Result {
	h.sounds = h.sounds[:0]
	h.runner.Tick(0)
	return h.deps.Result
}

func (h *harness) heard(s event.Sound) bool {
	for _, got := range h.sounds {
		if got == s {
			return true
		}
	}
	return false
}

func count(ws *world.State, k world.Kind) int {
	n := 0
	ws.Each(func(a *world.Actor) {
		if a.Kind == k {
			n++
		}
	})
	return n
}

func find(ws *world.State, k world.Kind) *world.Actor {
	var out *world.Actor
	ws.Each(func(a *world.Actor) {
		if out == nil && a.Kind == k {
			out = a
		}
	})
	return out
}
