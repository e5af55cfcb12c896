package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpawnEntry defines where and how many mobs of a species to place.
type SpawnEntry struct {
	Species string  `yaml:"species"`
	Rarity  string  `yaml:"rarity,omitempty"` // empty: species default
	Count   int     `yaml:"count"`
	X       float32 `yaml:"x"`
	Y       float32 `yaml:"y"`
	RandomX float32 `yaml:"randomx"`
	RandomY float32 `yaml:"randomy"`
	Heading float32 `yaml:"heading"` // radians
	// Owner is the index into the player list for companions. Omitted for
	// wild mobs.
	Owner *int `yaml:"owner,omitempty"`
	// Nest binds companions to a fixed anchor instead of their owner.
	Nest *Point `yaml:"nest,omitempty"`
}

// Point is a bare world position.
type Point struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// PlayerEntry places a player-like target.
type PlayerEntry struct {
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Radius float32 `yaml:"radius"`
	Health float32 `yaml:"health"`
}

// SpawnList is the content of a spawn file.
type SpawnList struct {
	Players []PlayerEntry `yaml:"players"`
	Spawns  []SpawnEntry  `yaml:"spawns"`
}

// LoadSpawnList loads spawn entries from a YAML file.
func LoadSpawnList(path string) (*SpawnList, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spawn list: %w", err)
	}
	return ParseSpawnList(raw)
}

// ParseSpawnList decodes a spawn list and checks owner references.
func ParseSpawnList(raw []byte) (*SpawnList, error) {
	var l SpawnList
	if err := yaml.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("parse spawn list: %w", err)
	}
	for i := range l.Players {
		p := &l.Players[i]
		if p.Radius <= 0 {
			p.Radius = 25
		}
		if p.Health <= 0 {
			p.Health = 100
		}
	}
	for i := range l.Spawns {
		s := &l.Spawns[i]
		if s.Species == "" {
			return nil, fmt.Errorf("spawn #%d: missing species", i)
		}
		if s.Count <= 0 {
			s.Count = 1
		}
		if s.Owner != nil && (*s.Owner < 0 || *s.Owner >= len(l.Players)) {
			return nil, fmt.Errorf("spawn #%d: owner %d out of range (%d players)", i, *s.Owner, len(l.Players))
		}
		if s.Nest != nil && s.Owner == nil {
			return nil, fmt.Errorf("spawn #%d: nest requires an owner", i)
		}
	}
	return &l, nil
}
