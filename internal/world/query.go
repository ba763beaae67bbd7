package world

import "github.com/bsgelman/Marble-Madness-Game/internal/core/ecs"

// Spatial queries. All of them scan the live actors in creation order and
// look at the player first; dead actors awaiting the sweep are ignored.

func (s *State) firstAt(x, y int, match func(*Actor) bool) (*Actor, bool) {
	if p := s.Player(); p.Alive && p.X == x && p.Y == y && match(p) {
		return p, true
	}
	for i, n := 0, s.ecs.Len(); i < n; i++ {
		id := s.ecs.At(i)
		if id == s.player {
			continue
		}
		a, ok := s.actors.Get(id)
		if !ok || !a.Alive || a.X != x || a.Y != y {
			continue
		}
		if match(a) {
			return a, true
		}
	}
	return nil, false
}

// BlocksMovement reports whether an actor at (x,y) refuses to share its
// tile with an agent.
func (s *State) BlocksMovement(x, y int) bool {
	_, ok := s.firstAt(x, y, func(a *Actor) bool {
		return !a.Kind.Has(CanColocate)
	})
	return ok
}

// BlocksProjectile reports whether a pea stops at (x,y): the player, or an
// actor that is neither agent-colocatable nor marble-passable.
func (s *State) BlocksProjectile(x, y int) bool {
	_, ok := s.firstAt(x, y, func(a *Actor) bool {
		return !a.Kind.Has(CanColocate) && !a.Kind.Has(MarblePassable)
	})
	return ok
}

// DestroyableAt returns the actor a pea landing on (x,y) damages.
func (s *State) DestroyableAt(x, y int) (*Actor, bool) {
	return s.firstAt(x, y, func(a *Actor) bool { return a.Kind.Has(Destroyable) })
}

// PushableAt returns the marble at (x,y), if any.
func (s *State) PushableAt(x, y int) (*Actor, bool) {
	return s.firstAt(x, y, func(a *Actor) bool { return a.Kind.Has(Pushable) })
}

// SwallowableAt returns the actor a pit at (x,y) consumes.
func (s *State) SwallowableAt(x, y int) (*Actor, bool) {
	return s.firstAt(x, y, func(a *Actor) bool { return a.Kind.Has(Swallowable) })
}

// StealableAt returns an unstolen goodie at (x,y).
func (s *State) StealableAt(x, y int) (*Actor, bool) {
	return s.firstAt(x, y, func(a *Actor) bool {
		if !a.Kind.Has(Stealable) {
			return false
		}
		g, ok := s.goodies.Get(a.ID)
		return ok && !g.Stolen
	})
}

// MarbleCanOccupy reports whether a marble may be pushed onto (x,y). Any
// actor there must be marble-passable, or a hidden stolen goodie.
func (s *State) MarbleCanOccupy(x, y int) bool {
	_, blocked := s.firstAt(x, y, func(a *Actor) bool {
		if a.Kind.Has(MarblePassable) {
			return false
		}
		if a.Kind.Has(Stealable) && !a.Visible {
			return false
		}
		return true
	})
	return !blocked
}

// CensusNear counts census actors within the inclusive square of radius r
// around (x,y).
func (s *State) CensusNear(x, y, r int) int {
	return ecs.Count2(s.actors, s.thieves, func(_ ecs.EntityID, a *Actor, _ *Thief) bool {
		return a.Alive && a.Kind.Has(CountsInCensus) &&
			a.X >= x-r && a.X <= x+r && a.Y >= y-r && a.Y <= y+r
	})
}

// CensusAt reports whether a census actor stands on (x,y).
func (s *State) CensusAt(x, y int) bool {
	_, ok := s.firstAt(x, y, func(a *Actor) bool { return a.Kind.Has(CountsInCensus) })
	return ok
}

// Each visits every live actor in creation order.
func (s *State) Each(fn func(*Actor)) {
	for i, n := 0, s.ecs.Len(); i < n; i++ {
		if a, ok := s.actors.Get(s.ecs.At(i)); ok && a.Alive {
			fn(a)
		}
	}
}
