package system

import (
	"testing"

	"github.com/bsgelman/Marble-Madness-Game/internal/core/event"
	"github.com/bsgelman/Marble-Madness-Game/internal/world"
)

func TestPlayerFire_SpawnsStillPea(t *testing.T) {
	ws := world.NewState(15, 15, nil, 5, 5)
	h := newHarness(t, ws)
	h.input.push(CmdFire)

	if r := h.tick(); r != Continue {
		t.Fatalf("result = %s", r)
	}
	pea := find(ws, world.KindPea)
	if pea == nil {
		t.Fatal("no pea spawned")
	}
	if pea.X != 6 || pea.Y != 5 || pea.Dir != world.Right {
		t.Errorf("pea = (%d,%d) %s, want (6,5) right", pea.X, pea.Y, pea.Dir)
	}
	if ws.PlayerState().Ammo != 19 {
		t.Errorf("ammo = %d, want 19", ws.PlayerState().Ammo)
	}
	if p := ws.Player(); p.X != 5 || p.Y != 5 {
		t.Errorf("player moved to (%d,%d)", p.X, p.Y)
	}
	if !h.heard(event.SoundPlayerFire) {
		t.Errorf("sounds = %v, want player-fire", h.sounds)
	}

	h.tick()
	if pea.X != 7 {
		t.Errorf("pea x after second tick = %d, want 7", pea.X)
	}
}

func TestPlayerFire_NoAmmo(t *testing.T) {
	ws := world.NewState(15, 15, nil, 5, 5)
	ws.PlayerState().Ammo = 0
	h := newHarness(t, ws)
	h.input.push(CmdFire)
	h.tick()
	if count(ws, world.KindPea) != 0 {
		t.Error("pea fired without ammo")
	}
	if h.heard(event.SoundPlayerFire) {
		t.Error("fire sound without ammo")
	}
}

func TestPea_TravelsUntilWall(t *testing.T) {
	ws := world.NewState(15, 15, nil, 1, 1)
	wall := ws.AddWall(5, 2)
	peaID := ws.AddPea(2, 2, world.Right)
	h := newHarness(t, ws)

	pea, _ := ws.Actor(peaID)
	h.tick() // fresh
	if pea.X != 2 {
		t.Fatalf("fresh pea moved to %d", pea.X)
	}
	h.tick()
	if pea.X != 3 {
		t.Errorf("x = %d, want 3", pea.X)
	}
	h.tick()
	if pea.X != 4 {
		t.Errorf("x = %d, want 4", pea.X)
	}
	h.tick() // moves onto the wall and dies
	if _, ok := ws.Actor(peaID); ok {
		t.Error("pea survived hitting the wall")
	}
	if _, ok := ws.Actor(wall); !ok {
		t.Error("wall destroyed by a pea")
	}
}

func TestPea_DiesLeavingGrid(t *testing.T) {
	ws := world.NewState(5, 5, nil, 0, 0)
	peaID := ws.AddPea(4, 3, world.Right)
	h := newHarness(t, ws)
	h.tick()
	h.tick()
	if _, ok := ws.Actor(peaID); ok {
		t.Error("pea still alive after leaving the grid")
	}
}

func TestPea_DamagesPlayerAndRobot(t *testing.T) {
	ws := world.NewState(15, 15, nil, 3, 3)
	ws.AddPea(2, 3, world.Right)
	botID := ws.AddRageBot(8, 8, world.Left)
	ws.AddPea(7, 8, world.Right)
	h := newHarness(t, ws)
	h.deps.RobotInterval = 100

	h.tick()
	h.tick()
	if hp := ws.PlayerHealth().HP; hp != 18 {
		t.Errorf("player hp = %d, want 18", hp)
	}
	if !h.heard(event.SoundPlayerImpact) || !h.heard(event.SoundRobotImpact) {
		t.Errorf("sounds = %v", h.sounds)
	}
	hp, _ := ws.Health(botID)
	if hp.HP != 8 {
		t.Errorf("robot hp = %d, want 8", hp.HP)
	}
}

func TestRobotKilled_RemovedAndScored(t *testing.T) {
	ws := world.NewState(15, 15, nil, 1, 1)
	botID := ws.AddRageBot(8, 8, world.Left)
	hp, _ := ws.Health(botID)
	hp.HP = 2
	ws.AddPea(7, 8, world.Right)
	h := newHarness(t, ws)
	h.deps.RobotInterval = 100

	h.tick()
	bot, _ := ws.Actor(botID)
	h.tick()
	if _, ok := ws.Actor(botID); ok {
		t.Fatal("dead robot not swept")
	}
	if h.deps.Board.Score != 100 {
		t.Errorf("score = %d, want 100", h.deps.Board.Score)
	}
	if !h.heard(event.SoundRobotDie) {
		t.Errorf("sounds = %v, want robot-destroyed", h.sounds)
	}
	if bot.Alive {
		t.Error("robot record still alive")
	}
	for i := 0; i < 5; i++ {
		h.tick()
	}
	if count(ws, world.KindPea) != 0 {
		t.Error("swept robot kept acting")
	}
}

func TestRageBot_ReversesAtWall(t *testing.T) {
	ws := world.NewState(15, 15, nil, 10, 10)
	ws.AddWall(3, 2)
	botID := ws.AddRageBot(2, 2, world.Right)
	h := newHarness(t, ws)

	bot, _ := ws.Actor(botID)
	h.tick()
	h.tick()
	if bot.Dir != world.Right {
		t.Fatal("robot acted before its interval")
	}
	h.tick()
	if bot.Dir != world.Left {
		t.Errorf("dir = %s, want left", bot.Dir)
	}
	if bot.X != 2 || bot.Y != 2 {
		t.Errorf("robot moved to (%d,%d)", bot.X, bot.Y)
	}
	h.tick()
	if bot.Dir != world.Left || bot.X != 2 {
		t.Errorf("robot acted off-interval: %+v", bot)
	}
	h.tick()
	h.tick()
	if bot.X != 1 || bot.Dir != world.Left {
		t.Errorf("robot = (%d,%d) %s, want (1,2) left", bot.X, bot.Y, bot.Dir)
	}
}

func TestRageBot_FiresOnClearShot(t *testing.T) {
	ws := world.NewState(15, 15, nil, 6, 2)
	botID := ws.AddRageBot(2, 2, world.Right)
	h := newHarness(t, ws)
	h.deps.RobotInterval = 1

	h.tick()
	bot, _ := ws.Actor(botID)
	if bot.X != 2 {
		t.Error("robot moved instead of firing")
	}
	pea := find(ws, world.KindPea)
	if pea == nil || pea.X != 3 || pea.Y != 2 {
		t.Fatalf("pea = %+v, want at (3,2)", pea)
	}
	if !h.heard(event.SoundEnemyFire) {
		t.Errorf("sounds = %v", h.sounds)
	}
}

func TestShotIsClear(t *testing.T) {
	ws := world.NewState(15, 15, nil, 6, 2)
	ws.AddPit(4, 2)
	ws.AddCrystal(5, 2)
	bot := world.Actor{Kind: world.KindRageBot, X: 2, Y: 2, Dir: world.Right}
	h := newHarness(t, ws)
	if !shotIsClear(h.deps, &bot) {
		t.Error("pit and crystal should not block the shot")
	}
	ws.AddMarble(3, 2)
	if shotIsClear(h.deps, &bot) {
		t.Error("marble should block the shot")
	}
	bot.Dir = world.Left
	if shotIsClear(h.deps, &bot) {
		t.Error("shot away from the player is not clear")
	}
}

func TestRegularThief_NeverShoots(t *testing.T) {
	ws := world.NewState(15, 15, nil, 6, 2)
	ws.AddWall(2, 3)
	ws.AddWall(2, 1)
	ws.AddWall(1, 2)
	ws.AddThief(world.KindRegularThiefBot, 2, 2, 1)
	h := newHarness(t, ws)
	h.deps.RobotInterval = 1
	h.tick()
	if count(ws, world.KindPea) != 0 {
		t.Error("regular thief fired")
	}
}

func TestPush_MarbleIntoPit(t *testing.T) {
	ws := world.NewState(15, 15, nil, 1, 1)
	marble := ws.AddMarble(2, 1)
	pit := ws.AddPit(3, 1)
	h := newHarness(t, ws)

	h.input.push(CmdRight)
	h.tick()
	if p := ws.Player(); p.X != 2 {
		t.Fatalf("player x = %d, want 2", p.X)
	}
	if _, ok := ws.Actor(marble); ok {
		t.Error("marble survived the pit")
	}
	if _, ok := ws.Actor(pit); ok {
		t.Error("pit survived the marble")
	}
	h.input.push(CmdRight)
	h.tick()
	if p := ws.Player(); p.X != 3 {
		t.Errorf("player x = %d, want 3 on the filled pit", p.X)
	}
}

func TestPush_Blocked(t *testing.T) {
	ws := world.NewState(15, 15, nil, 1, 1)
	marbleID := ws.AddMarble(2, 1)
	ws.AddWall(3, 1)
	h := newHarness(t, ws)
	h.input.push(CmdRight)
	h.tick()
	marble, _ := ws.Actor(marbleID)
	if p := ws.Player(); p.X != 1 || p.Dir != world.Right {
		t.Errorf("player = %+v, want turned right in place", p)
	}
	if marble.X != 2 {
		t.Errorf("marble x = %d, want 2", marble.X)
	}
}

func TestPush_OntoGridEdge(t *testing.T) {
	ws := world.NewState(4, 4, nil, 1, 1)
	marbleID := ws.AddMarble(2, 1)
	h := newHarness(t, ws)
	h.input.push(CmdRight, CmdRight)
	h.tick()
	h.tick()
	if p := ws.Player(); p.X != 2 {
		t.Errorf("player x = %d, want 2", p.X)
	}
	marble, _ := ws.Actor(marbleID)
	if marble.X != 3 {
		t.Errorf("marble x = %d, want 3 (edge)", marble.X)
	}
}

func TestRobotCannotPush(t *testing.T) {
	ws := world.NewState(15, 15, nil, 10, 10)
	ws.AddMarble(3, 2)
	botID := ws.AddRageBot(2, 2, world.Right)
	h := newHarness(t, ws)
	h.deps.RobotInterval = 1
	h.tick()
	bot, _ := ws.Actor(botID)
	if bot.X != 2 || bot.Dir != world.Left {
		t.Errorf("robot = %+v, want reversed in place", bot)
	}
}

func TestThief_StealsAndRestoresGoodie(t *testing.T) {
	ws := world.NewState(15, 15, nil, 10, 10)
	goodieID := ws.AddGoodie(world.KindAmmo, 2, 2)
	thiefID := ws.AddThief(world.KindRegularThiefBot, 2, 2, 3)
	h := newHarness(t, ws)
	h.deps.RobotInterval = 1
	h.deps.Rand = &seqRand{vals: []int{0}}

	h.tick()
	th, _ := ws.Thief(thiefID)
	if th.Carrying != goodieID {
		t.Fatalf("thief carries %v, want the goodie", th.Carrying)
	}
	g, _ := ws.Actor(goodieID)
	if g.Visible {
		t.Error("stolen goodie visible")
	}
	if !h.heard(event.SoundThiefMunch) {
		t.Errorf("sounds = %v", h.sounds)
	}

	h.tick() // walks right
	thief, _ := ws.Actor(thiefID)
	if thief.X != 3 {
		t.Fatalf("thief x = %d, want 3", thief.X)
	}

	damage(h.deps, thief, 5)
	if thief.Alive {
		t.Fatal("thief survived")
	}
	if !g.Visible || g.X != 3 || g.Y != 2 {
		t.Errorf("goodie = %+v, want visible at (3,2)", g)
	}
	if gs, _ := ws.Goodie(goodieID); gs.Stolen {
		t.Error("goodie still stolen")
	}
	if h.deps.Board.Score != 10 {
		t.Errorf("score = %d, want 10", h.deps.Board.Score)
	}
}

func TestThief_PicksNewDirectionWhenBlocked(t *testing.T) {
	ws := world.NewState(15, 15, nil, 10, 10)
	ws.AddWall(6, 5)
	thiefID := ws.AddThief(world.KindRegularThiefBot, 5, 5, 2)
	h := newHarness(t, ws)
	h.deps.RobotInterval = 1
	// steps 1+2, shuffle keeps up, down, left, right
	h.deps.Rand = &seqRand{vals: []int{2, 3, 2, 1}}

	h.tick()
	thief, _ := ws.Actor(thiefID)
	th, _ := ws.Thief(thiefID)
	if thief.X != 5 || thief.Y != 6 || thief.Dir != world.Up {
		t.Errorf("thief = (%d,%d) %s, want (5,6) up", thief.X, thief.Y, thief.Dir)
	}
	if th.StepsLeft != 2 {
		t.Errorf("steps left = %d, want 2", th.StepsLeft)
	}
}

func TestThief_BoxedInFacesFirstTried(t *testing.T) {
	ws := world.NewState(15, 15, nil, 10, 10)
	ws.AddWall(6, 5)
	ws.AddWall(4, 5)
	ws.AddWall(5, 6)
	ws.AddWall(5, 4)
	thiefID := ws.AddThief(world.KindRegularThiefBot, 5, 5, 0)
	h := newHarness(t, ws)
	h.deps.RobotInterval = 1
	h.deps.Rand = zeroRand{}

	h.tick()
	thief, _ := ws.Actor(thiefID)
	if thief.X != 5 || thief.Y != 5 {
		t.Errorf("boxed thief moved to (%d,%d)", thief.X, thief.Y)
	}
	// zero rolls turn [up down left right] into [down left right up]
	if thief.Dir != world.Down {
		t.Errorf("dir = %s, want down", thief.Dir)
	}
}

func TestFactory_CensusCap(t *testing.T) {
	ws := world.NewState(15, 15, nil, 14, 14)
	ws.AddFactory(world.KindRegularThiefBot, 5, 5)
	ws.AddThief(world.KindRegularThiefBot, 2, 2, 1)
	ws.AddThief(world.KindMeanThiefBot, 8, 8, 1)
	ws.AddThief(world.KindRegularThiefBot, 5, 7, 1)
	h := newHarness(t, ws)
	h.deps.RobotInterval = 1000
	h.deps.Rand = zeroRand{}

	for i := 0; i < 20; i++ {
		h.tick()
	}
	if n := count(ws, world.KindRegularThiefBot) + count(ws, world.KindMeanThiefBot); n != 3 {
		t.Errorf("thieves = %d, want 3", n)
	}
}

func TestFactory_Spawns(t *testing.T) {
	ws := world.NewState(15, 15, nil, 14, 14)
	ws.AddFactory(world.KindMeanThiefBot, 5, 5)
	h := newHarness(t, ws)
	h.deps.RobotInterval = 1000
	h.deps.Rand = &seqRand{vals: []int{0, 2}}

	h.tick()
	thief := find(ws, world.KindMeanThiefBot)
	if thief == nil {
		t.Fatal("factory did not spawn")
	}
	if thief.X != 5 || thief.Y != 5 || thief.Dir != world.Right {
		t.Errorf("thief = %+v, want on the factory facing right", thief)
	}
	if th, _ := ws.Thief(thief.ID); th.StepsLeft != 3 {
		t.Errorf("steps = %d, want 3", th.StepsLeft)
	}
	if !h.heard(event.SoundRobotBorn) {
		t.Errorf("sounds = %v", h.sounds)
	}

	// the new thief stands on the factory tile
	h.deps.Rand = zeroRand{}
	h.tick()
	if n := count(ws, world.KindMeanThiefBot); n != 1 {
		t.Errorf("thieves = %d, want 1 while the tile is occupied", n)
	}
}

func TestGoodies(t *testing.T) {
	cases := []struct {
		kind  world.Kind
		score int
		check func(*harness) bool
	}{
		{world.KindExtraLife, 1000, func(h *harness) bool { return h.deps.Board.Lives == 4 }},
		{world.KindAmmo, 100, func(h *harness) bool { return h.deps.World.PlayerState().Ammo == 40 }},
		{world.KindRestoreHealth, 500, func(h *harness) bool { return h.deps.World.PlayerHealth().HP == 20 }},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			ws := world.NewState(15, 15, nil, 1, 1)
			ws.PlayerHealth().HP = 4
			ws.AddGoodie(tc.kind, 2, 1)
			h := newHarness(t, ws)
			h.input.push(CmdRight)
			h.tick()
			if h.deps.Board.Score != tc.score {
				t.Errorf("score = %d, want %d", h.deps.Board.Score, tc.score)
			}
			if !tc.check(h) {
				t.Error("effect not applied")
			}
			if count(ws, tc.kind) != 0 {
				t.Error("goodie not consumed")
			}
			if !h.heard(event.SoundGotGoodie) {
				t.Errorf("sounds = %v", h.sounds)
			}
		})
	}
}

func TestStolenGoodieIgnoredByPlayer(t *testing.T) {
	ws := world.NewState(15, 15, nil, 1, 1)
	g := ws.AddGoodie(world.KindExtraLife, 2, 1)
	ws.SetStolen(g, true)
	h := newHarness(t, ws)
	h.input.push(CmdRight)
	h.tick()
	if h.deps.Board.Lives != 3 || h.deps.Board.Score != 0 {
		t.Errorf("stolen goodie collected: %+v", *h.deps.Board)
	}
}

func TestMarbleDestroyedByPeas(t *testing.T) {
	ws := world.NewState(15, 15, nil, 1, 1)
	marbleID := ws.AddMarble(5, 5)
	hp, _ := ws.Health(marbleID)
	hp.HP = 2
	ws.AddPea(4, 5, world.Right)
	h := newHarness(t, ws)
	h.tick()
	h.tick()
	if _, ok := ws.Actor(marbleID); ok {
		t.Error("marble survived")
	}
}
