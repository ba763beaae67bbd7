package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ActorTemplate holds the static numbers for one actor kind.
type ActorTemplate struct {
	Kind      string `yaml:"kind"`
	HitPoints int    `yaml:"hit_points"`
	Score     int    `yaml:"score"`  // awarded on kill or pickup
	Shoots    bool   `yaml:"shoots"` // robots only
	Ammo      int    `yaml:"ammo"`   // player: starting ammo
	Damage    int    `yaml:"damage"` // pea: damage per hit
	Amount    int    `yaml:"amount"` // goodie: lives or ammo granted
}

type actorListFile struct {
	Actors []ActorTemplate `yaml:"actors"`
}

// ActorTable holds actor templates indexed by kind name.
type ActorTable struct {
	templates map[string]*ActorTemplate
}

var defaultActors = []ActorTemplate{
	{Kind: "player", HitPoints: 20, Ammo: 20},
	{Kind: "ragebot", HitPoints: 10, Score: 100, Shoots: true},
	{Kind: "regular_thiefbot", HitPoints: 5, Score: 10},
	{Kind: "mean_thiefbot", HitPoints: 8, Score: 20, Shoots: true},
	{Kind: "marble", HitPoints: 10},
	{Kind: "pea", Damage: 2},
	{Kind: "crystal", Score: 50},
	{Kind: "extra_life", Score: 1000, Amount: 1},
	{Kind: "restore_health", Score: 500},
	{Kind: "ammo", Score: 100, Amount: 20},
}

// DefaultActorTable returns the built-in templates.
func DefaultActorTable() *ActorTable {
	t := &ActorTable{templates: make(map[string]*ActorTemplate, len(defaultActors))}
	for i := range defaultActors {
		a := defaultActors[i]
		t.templates[a.Kind] = &a
	}
	return t
}

// LoadActorTable loads actor templates from a YAML file. Kinds the file
// does not mention keep their built-in values.
func LoadActorTable(path string) (*ActorTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read actor_table: %w", err)
	}
	var f actorListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse actor_table: %w", err)
	}
	t := DefaultActorTable()
	for i := range f.Actors {
		a := &f.Actors[i]
		if a.Kind == "" {
			return nil, fmt.Errorf("parse actor_table: entry %d has no kind", i)
		}
		t.templates[a.Kind] = a
	}
	return t, nil
}

// Get returns the template for kind, or nil if not found.
func (t *ActorTable) Get(kind string) *ActorTemplate {
	return t.templates[kind]
}

// Count returns the number of loaded templates.
func (t *ActorTable) Count() int {
	return len(t.templates)
}
