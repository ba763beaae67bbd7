package world

import (
	"fmt"

	"github.com/bsgelman/Marble-Madness-Game/internal/data"
	"github.com/bsgelman/Marble-Madness-Game/internal/level"
)

// Build turns a parsed level grid into live actors. The player is created
// before anything else.
func Build(g *level.Grid, table *data.ActorTable) (*State, error) {
	px, py, found := -1, -1, false
	g.Each(func(x, y int, c level.Code) {
		if c == level.Player {
			px, py, found = x, y, true
		}
	})
	if !found {
		return nil, fmt.Errorf("build level: %w", level.ErrMalformed)
	}
	s := NewState(g.Width, g.Height, table, px, py)

	var err error
	g.Each(func(x, y int, c level.Code) {
		if err != nil {
			return
		}
		switch c {
		case level.Player:
		case level.Exit:
			s.AddExit(x, y)
		case level.Crystal:
			s.AddCrystal(x, y)
		case level.Wall:
			s.AddWall(x, y)
		case level.Marble:
			s.AddMarble(x, y)
		case level.Pit:
			s.AddPit(x, y)
		case level.HorizRageBot:
			s.AddRageBot(x, y, Right)
		case level.VertRageBot:
			s.AddRageBot(x, y, Down)
		case level.ThiefBotFactory:
			s.AddFactory(KindRegularThiefBot, x, y)
		case level.MeanThiefFactory:
			s.AddFactory(KindMeanThiefBot, x, y)
		case level.ExtraLife:
			s.AddGoodie(KindExtraLife, x, y)
		case level.RestoreHealth:
			s.AddGoodie(KindRestoreHealth, x, y)
		case level.Ammo:
			s.AddGoodie(KindAmmo, x, y)
		default:
			err = fmt.Errorf("build level: code %q at (%d,%d): %w", c, x, y, level.ErrMalformed)
		}
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}
