// Package game is the world controller: it loads levels, owns the
// scoreboard and drives one simulation tick at a time.
package game

import (
	"fmt"
	"time"

	"github.com/bsgelman/Marble-Madness-Game/internal/core/event"
	coresys "github.com/bsgelman/Marble-Madness-Game/internal/core/system"
	"github.com/bsgelman/Marble-Madness-Game/internal/data"
	"github.com/bsgelman/Marble-Madness-Game/internal/level"
	"github.com/bsgelman/Marble-Madness-Game/internal/system"
	"github.com/bsgelman/Marble-Madness-Game/internal/world"
	"go.uber.org/zap"
)

// Rules supplies the difficulty numbers for a level. *scripting.Engine and
// scripting.Rules both satisfy it.
type Rules interface {
	RobotTickInterval(level int) int
	LevelStartBonus(level int) int
	LevelClearBonus(level int) int
}

// LevelSource loads the placement grid of a level.
type LevelSource interface {
	Load(n int) (*level.Grid, error)
}

type Options struct {
	Levels LevelSource
	Actors *data.ActorTable
	Rules  Rules
	Rand   system.Rand
	Input  system.InputSource
	Status system.Presenter
	Sounds system.SoundPlayer // optional
	Lives  int
	Log    *zap.Logger
}

// Controller runs the simulation for one player session.
type Controller struct {
	opts   Options
	deps   *system.Deps
	runner *coresys.Runner
	board  system.Scoreboard
	loaded bool
	over   system.Result
}

func NewController(opts Options) *Controller {
	if opts.Actors == nil {
		opts.Actors = data.DefaultActorTable()
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	c := &Controller{
		opts:   opts,
		runner: coresys.NewRunner(),
		board:  system.Scoreboard{Lives: opts.Lives},
	}
	c.deps = &system.Deps{
		Bus:    event.NewBus(),
		Board:  &c.board,
		Rand:   opts.Rand,
		Input:  opts.Input,
		Status: opts.Status,
		Log:    opts.Log,
	}
	c.subscribe()
	system.RegisterAll(c.runner, c.deps)
	return c
}

func (c *Controller) subscribe() {
	bus, log := c.deps.Bus, c.opts.Log
	if c.opts.Sounds != nil {
		event.Subscribe(bus, func(e event.SoundCue) { c.opts.Sounds.Play(e.Sound) })
	}
	event.Subscribe(bus, func(e event.RobotDestroyed) {
		log.Debug("robot destroyed",
			zap.String("kind", e.Kind), zap.Int("x", e.X), zap.Int("y", e.Y), zap.Int("score", e.Score))
	})
	event.Subscribe(bus, func(e event.GoodieStolen) {
		log.Debug("goodie stolen", zap.Int("x", e.X), zap.Int("y", e.Y))
	})
	event.Subscribe(bus, func(e event.ThiefSpawned) {
		log.Debug("thief spawned", zap.String("kind", e.Kind))
	})
}

// LoadLevel builds level n. On failure the previous level stays unloaded
// and Tick must not be called.
func (c *Controller) LoadLevel(n int) error {
	c.loaded = false
	c.deps.Bus.Discard()
	g, err := c.opts.Levels.Load(n)
	if err != nil {
		return fmt.Errorf("load level %d: %w", n, err)
	}
	ws, err := world.Build(g, c.opts.Actors)
	if err != nil {
		return fmt.Errorf("load level %d: %w", n, err)
	}
	c.board.Level = n
	c.board.Bonus = c.opts.Rules.LevelStartBonus(n)
	c.deps.World = ws
	c.deps.RobotInterval = c.opts.Rules.RobotTickInterval(n)
	c.deps.ClearBonus = c.opts.Rules.LevelClearBonus(n)
	c.deps.Result = system.Continue
	c.over = system.Continue
	c.loaded = true
	c.opts.Log.Info("level loaded",
		zap.Int("level", n),
		zap.Int("crystals", ws.Crystals()),
		zap.Int("actors", ws.Len()),
		zap.Int("robot_interval", c.deps.RobotInterval),
	)
	return nil
}

// Tick advances the level by one step. Once a tick reports PlayerDied or
// LevelFinished, later calls repeat that result until the next LoadLevel.
func (c *Controller) Tick(dt time.Duration) system.Result {
	if !c.loaded {
		panic("game: Tick before a successful LoadLevel")
	}
	if c.over != system.Continue {
		return c.over
	}
	c.runner.Tick(dt)
	c.over = c.deps.Result
	return c.over
}

// Board returns a copy of the scoreboard.
func (c *Controller) Board() system.Scoreboard { return c.board }

// World returns the current level's state, nil before the first load.
func (c *Controller) World() *world.State { return c.deps.World }

// Lives reports the remaining lives.
func (c *Controller) Lives() int { return c.board.Lives }
