// Package world holds the actors of one level and answers what occupies a
// tile. Accessed only from the game loop goroutine, so there are no locks.
package world

import (
	"github.com/bsgelman/Marble-Madness-Game/internal/core/ecs"
	"github.com/bsgelman/Marble-Madness-Game/internal/data"
)

// State is the live actor collection of one level. The player is created
// first and is never swept, so Player always returns a valid record.
type State struct {
	ecs    *ecs.World
	width  int
	height int
	table  *data.ActorTable

	actors      *ecs.Store[Actor]
	health      *ecs.Store[Health]
	robots      *ecs.Store[Robot]
	thieves     *ecs.Store[Thief]
	goodies     *ecs.Store[Goodie]
	factories   *ecs.Store[Factory]
	projectiles *ecs.Store[Projectile]

	player      ecs.EntityID
	playerState PlayerState
	exit        ecs.EntityID
	crystals    int
}

// NewState creates an empty width x height level with the player at (px,py)
// facing right.
func NewState(width, height int, table *data.ActorTable, px, py int) *State {
	if table == nil {
		table = data.DefaultActorTable()
	}
	s := &State{
		ecs:         ecs.NewWorld(),
		width:       width,
		height:      height,
		table:       table,
		actors:      ecs.NewStore[Actor](),
		health:      ecs.NewStore[Health](),
		robots:      ecs.NewStore[Robot](),
		thieves:     ecs.NewStore[Thief](),
		goodies:     ecs.NewStore[Goodie](),
		factories:   ecs.NewStore[Factory](),
		projectiles: ecs.NewStore[Projectile](),
	}
	s.ecs.Track(s.actors, s.health, s.robots, s.thieves, s.goodies, s.factories, s.projectiles)

	tpl := s.template(KindPlayer)
	s.player = s.spawn(KindPlayer, px, py, Right)
	s.health.Set(s.player, &Health{HP: tpl.HitPoints, Max: tpl.HitPoints})
	s.playerState = PlayerState{Ammo: tpl.Ammo}
	return s
}

func (s *State) template(k Kind) data.ActorTemplate {
	if t := s.table.Get(k.String()); t != nil {
		return *t
	}
	return data.ActorTemplate{Kind: k.String()}
}

// Template returns the static numbers for kind k.
func (s *State) Template(k Kind) data.ActorTemplate { return s.template(k) }

func (s *State) spawn(k Kind, x, y int, dir Direction) ecs.EntityID {
	id := s.ecs.CreateEntity()
	s.actors.Set(id, &Actor{
		ID:      id,
		Kind:    k,
		X:       x,
		Y:       y,
		Dir:     dir,
		Alive:   true,
		Visible: !k.Has(InvisibleAtFirst),
	})
	return id
}

func (s *State) Width() int  { return s.width }
func (s *State) Height() int { return s.height }

// InBounds reports whether (x,y) lies on the grid.
func (s *State) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// PlayerID returns the player's handle.
func (s *State) PlayerID() ecs.EntityID { return s.player }

// Player returns the player's actor record.
func (s *State) Player() *Actor {
	a, _ := s.actors.Get(s.player)
	return a
}

// PlayerHealth returns the player's hit points.
func (s *State) PlayerHealth() *Health {
	h, _ := s.health.Get(s.player)
	return h
}

// PlayerState returns the player's ammunition record.
func (s *State) PlayerState() *PlayerState { return &s.playerState }

// Len is the number of actors in iteration order, including ones spawned
// this tick.
func (s *State) Len() int { return s.ecs.Len() }

// At returns the i-th actor in creation order.
func (s *State) At(i int) *Actor {
	a, _ := s.actors.Get(s.ecs.At(i))
	return a
}

// Actor looks up a live or not-yet-swept actor.
func (s *State) Actor(id ecs.EntityID) (*Actor, bool) { return s.actors.Get(id) }

func (s *State) Health(id ecs.EntityID) (*Health, bool)         { return s.health.Get(id) }
func (s *State) Robot(id ecs.EntityID) (*Robot, bool)           { return s.robots.Get(id) }
func (s *State) Thief(id ecs.EntityID) (*Thief, bool)           { return s.thieves.Get(id) }
func (s *State) Goodie(id ecs.EntityID) (*Goodie, bool)         { return s.goodies.Get(id) }
func (s *State) Factory(id ecs.EntityID) (*Factory, bool)       { return s.factories.Get(id) }
func (s *State) Projectile(id ecs.EntityID) (*Projectile, bool) { return s.projectiles.Get(id) }

// Crystals is the number of crystals still on the level.
func (s *State) Crystals() int { return s.crystals }

// Exit returns the exit's actor record, nil if the level has none.
func (s *State) Exit() *Actor {
	if s.exit.IsZero() {
		return nil
	}
	a, _ := s.actors.Get(s.exit)
	return a
}

// RevealExit makes the exit visible. It reports whether the exit was hidden.
func (s *State) RevealExit() bool {
	e := s.Exit()
	if e == nil || e.Visible {
		return false
	}
	e.Visible = true
	return true
}

// Kill marks an actor dead. Killing a dead actor is a no-op. Everything but
// the player is removed at the next Sweep.
func (s *State) Kill(id ecs.EntityID) {
	a, ok := s.actors.Get(id)
	if !ok || !a.Alive {
		return
	}
	a.Alive = false
	if a.Kind == KindCrystal {
		s.crystals--
	}
	if id != s.player {
		s.ecs.MarkForDestruction(id)
	}
}

// Sweep removes every actor killed since the last sweep.
func (s *State) Sweep() int {
	return s.ecs.FlushDestroyQueue()
}

// SetStolen flips a goodie between its stolen (hidden) and normal states.
func (s *State) SetStolen(id ecs.EntityID, stolen bool) {
	g, ok := s.goodies.Get(id)
	if !ok {
		return
	}
	g.Stolen = stolen
	if a, ok := s.actors.Get(id); ok {
		a.Visible = !stolen
	}
}

func (s *State) AddWall(x, y int) ecs.EntityID { return s.spawn(KindWall, x, y, None) }
func (s *State) AddPit(x, y int) ecs.EntityID  { return s.spawn(KindPit, x, y, None) }

func (s *State) AddMarble(x, y int) ecs.EntityID {
	id := s.spawn(KindMarble, x, y, None)
	hp := s.template(KindMarble).HitPoints
	s.health.Set(id, &Health{HP: hp, Max: hp})
	return id
}

func (s *State) AddExit(x, y int) ecs.EntityID {
	id := s.spawn(KindExit, x, y, None)
	s.exit = id
	return id
}

func (s *State) AddCrystal(x, y int) ecs.EntityID {
	s.crystals++
	return s.spawn(KindCrystal, x, y, None)
}

// AddGoodie places an ExtraLife, RestoreHealth or Ammo goodie.
func (s *State) AddGoodie(k Kind, x, y int) ecs.EntityID {
	id := s.spawn(k, x, y, None)
	tpl := s.template(k)
	s.goodies.Set(id, &Goodie{Score: tpl.Score, Amount: tpl.Amount})
	return id
}

func (s *State) addRobot(k Kind, x, y int, dir Direction) ecs.EntityID {
	id := s.spawn(k, x, y, dir)
	tpl := s.template(k)
	s.health.Set(id, &Health{HP: tpl.HitPoints, Max: tpl.HitPoints})
	s.robots.Set(id, &Robot{Score: tpl.Score, Shoots: tpl.Shoots})
	return id
}

func (s *State) AddRageBot(x, y int, dir Direction) ecs.EntityID {
	return s.addRobot(KindRageBot, x, y, dir)
}

// AddThief places a thief robot facing right with the given step budget.
func (s *State) AddThief(k Kind, x, y, steps int) ecs.EntityID {
	id := s.addRobot(k, x, y, Right)
	s.thieves.Set(id, &Thief{StepsLeft: steps})
	return id
}

func (s *State) AddFactory(product Kind, x, y int) ecs.EntityID {
	id := s.spawn(KindThiefBotFactory, x, y, None)
	s.factories.Set(id, &Factory{Product: product})
	return id
}

// AddPea places a fresh pea; it will not move during the current tick.
func (s *State) AddPea(x, y int, dir Direction) ecs.EntityID {
	id := s.spawn(KindPea, x, y, dir)
	s.projectiles.Set(id, &Projectile{Damage: s.template(KindPea).Damage, Fresh: true})
	return id
}
