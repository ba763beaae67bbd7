package world

// Kind is the variant tag of an actor.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindRageBot
	KindRegularThiefBot
	KindMeanThiefBot
	KindThiefBotFactory
	KindPea
	KindExit
	KindWall
	KindMarble
	KindPit
	KindCrystal
	KindExtraLife
	KindRestoreHealth
	KindAmmo
)

// Capability is one tile-interaction flag.
type Capability uint16

const (
	CanColocate      Capability = 1 << iota // agents may share the tile
	Destroyable                             // takes damage from peas
	Swallowable                             // consumed by a pit
	InvisibleAtFirst                        // hidden until revealed
	Pushable                                // the player can shove it
	MarblePassable                          // a marble may be pushed onto it
	CountsInCensus                          // limits factory spawning
	Stealable                               // thieves can carry it off
)

type kindInfo struct {
	name string
	caps Capability
}

var kinds = [...]kindInfo{
	KindPlayer:          {"player", Destroyable},
	KindRageBot:         {"ragebot", Destroyable},
	KindRegularThiefBot: {"regular_thiefbot", Destroyable | CountsInCensus},
	KindMeanThiefBot:    {"mean_thiefbot", Destroyable | CountsInCensus},
	KindThiefBotFactory: {"thiefbot_factory", 0},
	KindPea:             {"pea", CanColocate},
	KindExit:            {"exit", CanColocate | InvisibleAtFirst},
	KindWall:            {"wall", 0},
	KindMarble:          {"marble", Destroyable | Swallowable | Pushable},
	KindPit:             {"pit", MarblePassable},
	KindCrystal:         {"crystal", CanColocate},
	KindExtraLife:       {"extra_life", CanColocate | Stealable},
	KindRestoreHealth:   {"restore_health", CanColocate | Stealable},
	KindAmmo:            {"ammo", CanColocate | Stealable},
}

func (k Kind) valid() bool { return k > 0 && int(k) < len(kinds) }

// String returns the kind's table name, as used by the actor templates.
func (k Kind) String() string {
	if !k.valid() {
		return "unknown"
	}
	return kinds[k].name
}

// Has reports whether actors of kind k carry capability c.
func (k Kind) Has(c Capability) bool {
	return k.valid() && kinds[k].caps&c != 0
}

func (k Kind) IsRobot() bool {
	return k == KindRageBot || k == KindRegularThiefBot || k == KindMeanThiefBot
}

func (k Kind) IsThief() bool {
	return k == KindRegularThiefBot || k == KindMeanThiefBot
}

func (k Kind) IsGoodie() bool {
	return k == KindExtraLife || k == KindRestoreHealth || k == KindAmmo
}

// Direction is an actor's facing.
type Direction uint8

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the four facings in a fixed order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the one-tile offset for d. Up increases y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Reverse returns the opposite facing.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
