package world

import (
	"github.com/arenasim/server/internal/component"
	"github.com/arenasim/server/internal/core/ecs"
	"github.com/arenasim/server/internal/vmath"
)

// MobSpec describes a mob to place into an arena.
type MobSpec struct {
	Species    string
	Rarity     component.Rarity
	Type       component.AIType
	AggroRange float32
	Radius     float32
	Position   vmath.Vector
	Angle      float32
	Arena      ecs.EntityID
	Team       component.Team
	Owner      ecs.EntityID
	Nest       ecs.EntityID
}

// SpawnArena creates an arena entity around maze.
func (s *Simulation) SpawnArena(name string, maze *Maze) ecs.EntityID {
	id := s.ecs.CreateEntity()
	s.arenas.Set(id, &Arena{Name: name, Maze: maze})
	return id
}

// SpawnMob creates a mob with AI, physical, relations and mob records.
// Mobs start idle with an expired countdown so they pick a heading on
// their first tick.
func (s *Simulation) SpawnMob(spec MobSpec) ecs.EntityID {
	id := s.ecs.CreateEntity()
	team := spec.Team
	if team == component.TeamNone {
		team = component.TeamMobs
	}
	s.ai.Set(id, &component.AI{
		ParentID:   id,
		State:      component.StateIdle,
		Type:       spec.Type,
		AggroRange: spec.AggroRange,
	})
	s.physical.Set(id, &component.Physical{
		Position:     spec.Position,
		Angle:        spec.Angle,
		BearingAngle: spec.Angle,
		Radius:       spec.Radius,
		Arena:        spec.Arena,
	})
	s.relations.Set(id, &component.Relations{Team: team, Owner: spec.Owner, Nest: spec.Nest})
	s.mobs.Set(id, &component.Mob{Species: spec.Species, Rarity: spec.Rarity})
	return id
}

// SpawnPlayer creates a player-like entity: physical, relations and vitals,
// no AI.
func (s *Simulation) SpawnPlayer(arena ecs.EntityID, pos vmath.Vector, radius, health float32) ecs.EntityID {
	id := s.ecs.CreateEntity()
	s.physical.Set(id, &component.Physical{Position: pos, Radius: radius, Arena: arena})
	s.relations.Set(id, &component.Relations{Team: component.TeamFlowers})
	s.vitals.Set(id, &component.Vitals{Health: health, MaxHealth: health})
	return id
}

// SetVitals attaches or replaces an entity's vitals.
func (s *Simulation) SetVitals(id ecs.EntityID, v component.Vitals) {
	s.vitals.Set(id, &v)
}

// SpawnNest creates a stationary anchor that mobs can be bound to.
func (s *Simulation) SpawnNest(arena ecs.EntityID, pos vmath.Vector) ecs.EntityID {
	id := s.ecs.CreateEntity()
	s.physical.Set(id, &component.Physical{Position: pos, Arena: arena})
	return id
}
