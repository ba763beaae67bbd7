package system

import (
	"github.com/bsgelman/Marble-Madness-Game/internal/core/event"
	"github.com/bsgelman/Marble-Madness-Game/internal/world"
	"go.uber.org/zap"
)

// moveIfPossible steps a one tile in its facing. When the player walks into
// a marble it shoves the marble one tile further first. It reports whether
// a moved.
func moveIfPossible(d *Deps, a *world.Actor) bool {
	ws := d.World
	nx, ny := a.Ahead()
	if !ws.InBounds(nx, ny) {
		return false
	}
	if ws.BlocksMovement(nx, ny) {
		if a.Kind != world.KindPlayer {
			return false
		}
		m, ok := ws.PushableAt(nx, ny)
		if !ok || !pushedBy(d, m, a.Dir) {
			return false
		}
	}
	a.X, a.Y = nx, ny
	return true
}

// pushedBy relocates a marble one tile in dir if the tile beyond accepts it.
func pushedBy(d *Deps, m *world.Actor, dir world.Direction) bool {
	dx, dy := dir.Delta()
	bx, by := m.X+dx, m.Y+dy
	if !d.World.InBounds(bx, by) || !d.World.MarbleCanOccupy(bx, by) {
		return false
	}
	m.X, m.Y = bx, by
	return true
}

// shotIsClear traces from the tile ahead of a and reports whether the
// first thing the shot reaches is the player.
func shotIsClear(d *Deps, a *world.Actor) bool {
	ws := d.World
	p := ws.Player()
	dx, dy := a.Dir.Delta()
	if dx == 0 && dy == 0 {
		return false
	}
	for x, y := a.X+dx, a.Y+dy; ws.InBounds(x, y); x, y = x+dx, y+dy {
		if p.Alive && x == p.X && y == p.Y {
			return true
		}
		if ws.BlocksProjectile(x, y) {
			return false
		}
	}
	return false
}

// fire spawns a pea ahead of a. The player always fires and pays one ammo;
// a robot fires only along a clear shot.
func fire(d *Deps, a *world.Actor) bool {
	ws := d.World
	if a.Kind == world.KindPlayer {
		ws.PlayerState().Ammo--
		d.sound(event.SoundPlayerFire)
	} else {
		if !shotIsClear(d, a) {
			return false
		}
		d.sound(event.SoundEnemyFire)
	}
	if x, y := a.Ahead(); ws.InBounds(x, y) {
		ws.AddPea(x, y, a.Dir)
	}
	return true
}

// damage applies amount hit points of damage to a destroyable actor.
func damage(d *Deps, a *world.Actor, amount int) {
	ws := d.World
	h, ok := ws.Health(a.ID)
	if !ok || !a.Alive {
		return
	}
	h.HP -= amount
	switch {
	case a.Kind == world.KindPlayer:
		d.sound(event.SoundPlayerImpact)
		if h.HP <= 0 {
			ws.Kill(a.ID)
		}
	case a.Kind.IsRobot():
		d.sound(event.SoundRobotImpact)
		if h.HP <= 0 {
			robotDestroyed(d, a)
		}
	default:
		if h.HP <= 0 {
			ws.Kill(a.ID)
		}
	}
}

func robotDestroyed(d *Deps, a *world.Actor) {
	ws := d.World
	if t, ok := ws.Thief(a.ID); ok && !t.Carrying.IsZero() {
		if g, ok := ws.Actor(t.Carrying); ok {
			g.X, g.Y = a.X, a.Y
			ws.SetStolen(g.ID, false)
		}
		t.Carrying = 0
	}
	score := 0
	if r, ok := ws.Robot(a.ID); ok {
		score = r.Score
	}
	d.Board.Score += score
	ws.Kill(a.ID)
	d.sound(event.SoundRobotDie)
	event.Emit(d.Bus, event.RobotDestroyed{EntityID: a.ID, Kind: a.Kind.String(), X: a.X, Y: a.Y, Score: score})
}

// stepPlayer consumes the command polled this tick, if any.
func stepPlayer(d *Deps, p *world.Actor) {
	if !p.Alive || !d.HasPending {
		return
	}
	cmd := d.Pending
	d.HasPending = false
	switch cmd {
	case CmdQuit:
		d.World.Kill(p.ID)
	case CmdFire:
		if d.World.PlayerState().Ammo > 0 {
			fire(d, p)
		}
	case CmdUp, CmdDown, CmdLeft, CmdRight:
		p.Dir = commandDirection(cmd)
		moveIfPossible(d, p)
	}
}

func commandDirection(c Command) world.Direction {
	switch c {
	case CmdUp:
		return world.Up
	case CmdDown:
		return world.Down
	case CmdLeft:
		return world.Left
	case CmdRight:
		return world.Right
	}
	return world.None
}

// robotReady advances a robot's tick counter and reports whether it acts
// this tick.
func robotReady(d *Deps, r *world.Robot) bool {
	r.Ticks++
	if r.Ticks < d.RobotInterval {
		return false
	}
	r.Ticks = 0
	return true
}

func stepRobot(d *Deps, a *world.Actor) {
	r, ok := d.World.Robot(a.ID)
	if !ok || !robotReady(d, r) {
		return
	}
	if r.Shoots && fire(d, a) {
		return
	}
	if a.Kind == world.KindRageBot {
		if !moveIfPossible(d, a) {
			a.Dir = a.Dir.Reverse()
		}
		return
	}
	stepThief(d, a)
}

func stepThief(d *Deps, a *world.Actor) {
	ws := d.World
	t, ok := ws.Thief(a.ID)
	if !ok {
		return
	}
	if t.Carrying.IsZero() {
		if g, ok := ws.StealableAt(a.X, a.Y); ok && d.Rand.IntN(10) == 0 {
			ws.SetStolen(g.ID, true)
			t.Carrying = g.ID
			d.sound(event.SoundThiefMunch)
			event.Emit(d.Bus, event.GoodieStolen{Thief: a.ID, Goodie: g.ID, X: a.X, Y: a.Y})
			return
		}
	}
	if t.StepsLeft > 0 && moveIfPossible(d, a) {
		t.StepsLeft--
		return
	}

	t.StepsLeft = 1 + d.Rand.IntN(6)
	dirs := shuffle(d.Rand)
	for _, dir := range dirs {
		dx, dy := dir.Delta()
		x, y := a.X+dx, a.Y+dy
		if !ws.InBounds(x, y) || ws.BlocksMovement(x, y) {
			continue
		}
		a.Dir = dir
		if moveIfPossible(d, a) {
			t.StepsLeft--
			return
		}
	}
	a.Dir = dirs[0]
}

func stepFactory(d *Deps, a *world.Actor) {
	ws := d.World
	f, ok := ws.Factory(a.ID)
	if !ok {
		return
	}
	if ws.CensusNear(a.X, a.Y, 3) >= 3 || ws.CensusAt(a.X, a.Y) {
		return
	}
	if d.Rand.IntN(50) != 0 {
		return
	}
	id := ws.AddThief(f.Product, a.X, a.Y, 1+d.Rand.IntN(6))
	d.sound(event.SoundRobotBorn)
	event.Emit(d.Bus, event.ThiefSpawned{Factory: a.ID, Thief: id, Kind: f.Product.String()})
}

func stepPea(d *Deps, a *world.Actor) {
	p, ok := d.World.Projectile(a.ID)
	if !ok {
		return
	}
	if p.Fresh {
		p.Fresh = false
		return
	}
	if peaHit(d, a, p) {
		return
	}
	a.X, a.Y = a.Ahead()
	if !d.World.InBounds(a.X, a.Y) {
		d.World.Kill(a.ID)
		return
	}
	peaHit(d, a, p)
}

// peaHit damages whatever stops the pea on its tile and kills the pea.
func peaHit(d *Deps, a *world.Actor, p *world.Projectile) bool {
	ws := d.World
	if !ws.BlocksProjectile(a.X, a.Y) {
		return false
	}
	if target, ok := ws.DestroyableAt(a.X, a.Y); ok {
		damage(d, target, p.Damage)
	}
	ws.Kill(a.ID)
	return true
}

func playerOn(d *Deps, a *world.Actor) bool {
	p := d.World.Player()
	return p.Alive && p.X == a.X && p.Y == a.Y
}

func stepCrystal(d *Deps, a *world.Actor) {
	if !playerOn(d, a) {
		return
	}
	d.Board.Score += d.World.Template(world.KindCrystal).Score
	d.World.Kill(a.ID)
	d.sound(event.SoundGotGoodie)
}

func stepGoodie(d *Deps, a *world.Actor) {
	ws := d.World
	g, ok := ws.Goodie(a.ID)
	if !ok || g.Stolen || !playerOn(d, a) {
		return
	}
	d.Board.Score += g.Score
	switch a.Kind {
	case world.KindExtraLife:
		d.Board.Lives += g.Amount
	case world.KindRestoreHealth:
		h := ws.PlayerHealth()
		h.HP = h.Max
	case world.KindAmmo:
		ws.PlayerState().Ammo += g.Amount
	}
	ws.Kill(a.ID)
	d.sound(event.SoundGotGoodie)
	d.Log.Debug("goodie collected", zap.String("kind", a.Kind.String()), zap.Int("score", d.Board.Score))
}

func stepPit(d *Deps, a *world.Actor) {
	m, ok := d.World.SwallowableAt(a.X, a.Y)
	if !ok {
		return
	}
	d.World.Kill(m.ID)
	d.World.Kill(a.ID)
}

// stepActor runs one tick of autonomous behavior for a non-player actor.
func stepActor(d *Deps, a *world.Actor) {
	switch {
	case a.Kind.IsRobot():
		stepRobot(d, a)
	case a.Kind.IsGoodie():
		stepGoodie(d, a)
	case a.Kind == world.KindThiefBotFactory:
		stepFactory(d, a)
	case a.Kind == world.KindPea:
		stepPea(d, a)
	case a.Kind == world.KindCrystal:
		stepCrystal(d, a)
	case a.Kind == world.KindPit:
		stepPit(d, a)
	}
}
