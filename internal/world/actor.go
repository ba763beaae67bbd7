package world

import "github.com/bsgelman/Marble-Madness-Game/internal/core/ecs"

// Actor is the record every entity carries.
type Actor struct {
	ID      ecs.EntityID
	Kind    Kind
	X, Y    int
	Dir     Direction
	Alive   bool
	Visible bool
}

// Ahead returns the tile one step in the actor's facing.
func (a *Actor) Ahead() (int, int) {
	dx, dy := a.Dir.Delta()
	return a.X + dx, a.Y + dy
}

// Health is carried by the player, robots and marbles.
type Health struct {
	HP  int
	Max int
}

// Percent returns HP as a percentage of Max.
func (h *Health) Percent() int {
	if h.Max <= 0 {
		return 0
	}
	return h.HP * 100 / h.Max
}

// PlayerState holds the player's ammunition.
type PlayerState struct {
	Ammo int
}

// Robot is the state shared by every robot variant.
type Robot struct {
	Score  int
	Ticks  int  // counts up to the action threshold
	Shoots bool // requires a clear shot before firing
}

// Thief is the extra state of a thief robot.
type Thief struct {
	StepsLeft int
	Carrying  ecs.EntityID // stolen goodie, zero when empty-handed
}

// Goodie is carried by ExtraLife, RestoreHealth and Ammo.
type Goodie struct {
	Score  int
	Amount int
	Stolen bool
}

// Factory spawns thieves of Product.
type Factory struct {
	Product Kind
}

// Projectile is a pea in flight.
type Projectile struct {
	Damage int
	Fresh  bool // created this tick; skips its first activation
}
