package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsgelman/Marble-Madness-Game/internal/game"
	"github.com/bsgelman/Marble-Madness-Game/internal/level"
	"github.com/bsgelman/Marble-Madness-Game/internal/system"
	"go.uber.org/zap"
)

// SessionResult is how a game ended.
type SessionResult int

const (
	Quit SessionResult = iota
	Lost
	Won
)

func (r SessionResult) String() string {
	switch r {
	case Lost:
		return "lost"
	case Won:
		return "won"
	}
	return "quit"
}

// Outcome is the final state of a game.
type Outcome struct {
	Result SessionResult
	Board  system.Scoreboard
}

func (o Outcome) Banner() string {
	switch o.Result {
	case Won:
		return "You won!"
	case Lost:
		return "Game over"
	}
	return "Bye"
}

// play drives ctrl from startLevel until the player runs out of lives,
// clears the last level or ctx ends. draw runs after every tick.
func play(ctx context.Context, ctrl *game.Controller, startLevel int, ticks <-chan time.Time,
	dt time.Duration, draw func(), log *zap.Logger) (Outcome, error) {
	n := startLevel
	if err := ctrl.LoadLevel(n); err != nil {
		if errors.Is(err, level.ErrNoMoreLevels) {
			return Outcome{Result: Won, Board: ctrl.Board()}, nil
		}
		return Outcome{}, err
	}
	draw()

	for {
		select {
		case <-ctx.Done():
			return Outcome{Result: Quit, Board: ctrl.Board()}, nil
		case <-ticks:
		}

		switch ctrl.Tick(dt) {
		case system.PlayerDied:
			if ctrl.Lives() <= 0 {
				draw()
				return Outcome{Result: Lost, Board: ctrl.Board()}, nil
			}
			if err := ctrl.LoadLevel(n); err != nil {
				return Outcome{}, fmt.Errorf("restart level %d: %w", n, err)
			}
		case system.LevelFinished:
			n++
			err := ctrl.LoadLevel(n)
			if errors.Is(err, level.ErrNoMoreLevels) || errors.Is(err, level.ErrNotFound) {
				log.Info("no further level", zap.Int("level", n), zap.Error(err))
				return Outcome{Result: Won, Board: ctrl.Board()}, nil
			}
			if err != nil {
				return Outcome{}, err
			}
		}
		draw()
	}
}
