package world

import (
	"math"

	"github.com/arenasim/server/internal/component"
	"github.com/arenasim/server/internal/core/ecs"
	"github.com/arenasim/server/internal/vmath"
)

// Simulation owns the entity pool and every component store touched by mob
// behaviour. Accessed only from the game loop goroutine, so no locks.
// Pointers returned by the accessors are valid for the current tick only.
type Simulation struct {
	ecs *ecs.World

	ai        *ecs.PtrComponentStore[component.AI]
	physical  *ecs.PtrComponentStore[component.Physical]
	relations *ecs.PtrComponentStore[component.Relations]
	mobs      *ecs.PtrComponentStore[component.Mob]
	vitals    *ecs.PtrComponentStore[component.Vitals]
	arenas    *ecs.PtrComponentStore[Arena]

	aoi *AOIGrid
}

func NewSimulation() *Simulation {
	s := &Simulation{
		ecs:       ecs.NewWorld(),
		ai:        ecs.NewPtrComponentStore[component.AI](),
		physical:  ecs.NewPtrComponentStore[component.Physical](),
		relations: ecs.NewPtrComponentStore[component.Relations](),
		mobs:      ecs.NewPtrComponentStore[component.Mob](),
		vitals:    ecs.NewPtrComponentStore[component.Vitals](),
		arenas:    ecs.NewPtrComponentStore[Arena](),
	}
	reg := s.ecs.Registry()
	reg.Register(s.ai)
	reg.Register(s.physical)
	reg.Register(s.relations)
	reg.Register(s.mobs)
	reg.Register(s.vitals)
	reg.Register(s.arenas)
	return s
}

// ECS exposes the underlying world for the cleanup system.
func (s *Simulation) ECS() *ecs.World { return s.ecs }

// Alive reports whether the handle still names a live entity. Null is never alive.
func (s *Simulation) Alive(id ecs.EntityID) bool { return s.ecs.Alive(id) }

// RequestDeletion queues id for removal between ticks. Idempotent.
func (s *Simulation) RequestDeletion(id ecs.EntityID) { s.ecs.MarkForDestruction(id) }

// Len returns the number of live entities.
func (s *Simulation) Len() int { return s.ecs.Pool().Len() }

func (s *Simulation) AI(id ecs.EntityID) (*component.AI, bool) { return s.ai.Get(id) }

func (s *Simulation) Physical(id ecs.EntityID) (*component.Physical, bool) {
	return s.physical.Get(id)
}

func (s *Simulation) Relations(id ecs.EntityID) (*component.Relations, bool) {
	return s.relations.Get(id)
}

func (s *Simulation) Mob(id ecs.EntityID) (*component.Mob, bool) { return s.mobs.Get(id) }

func (s *Simulation) Vitals(id ecs.EntityID) (*component.Vitals, bool) { return s.vitals.Get(id) }

func (s *Simulation) Arena(id ecs.EntityID) (*Arena, bool) { return s.arenas.Get(id) }

// MobIDs returns a snapshot of every entity carrying an AI record.
func (s *Simulation) MobIDs() []ecs.EntityID { return s.ai.IDs() }

// EachAI visits every AI record in store order.
func (s *Simulation) EachAI(fn func(ecs.EntityID, *component.AI)) { s.ai.Each(fn) }

// EachPhysical visits every physical record in store order.
func (s *Simulation) EachPhysical(fn func(ecs.EntityID, *component.Physical)) {
	s.physical.Each(fn)
}

// EnableAOI switches enemy searches to a bucketed index of the given cell
// size. The index must be refreshed with ReindexAOI after positions change.
func (s *Simulation) EnableAOI(cellSize float32) {
	s.aoi = NewAOIGrid(cellSize)
	s.ReindexAOI()
}

// ReindexAOI rebuilds the proximity index from current positions.
func (s *Simulation) ReindexAOI() {
	if s.aoi == nil {
		return
	}
	s.aoi.Reset()
	ecs.Each2(s.relations, s.physical, func(id ecs.EntityID, _ *component.Relations, p *component.Physical) {
		s.aoi.Add(id, p.Arena, p.Position)
	})
}

// EnemyFilter narrows candidates beyond team and range checks.
type EnemyFilter func(id ecs.EntityID, p *component.Physical) bool

// NearestEnemy returns the closest live entity on another team, in the same
// arena, within maxRange of self and accepted by filter (nil accepts all).
// Returns ecs.Null when nothing qualifies. Ties go to the first candidate
// visited.
func (s *Simulation) NearestEnemy(self ecs.EntityID, maxRange float32, filter EnemyFilter) ecs.EntityID {
	selfPhys, ok := s.physical.Get(self)
	if !ok {
		return ecs.Null
	}
	selfRel, ok := s.relations.Get(self)
	if !ok {
		return ecs.Null
	}

	best := ecs.Null
	bestDist := float32(math.MaxFloat32)
	rangeSq := maxRange * maxRange

	consider := func(id ecs.EntityID) {
		if id == self || !s.ecs.Alive(id) || s.ecs.PendingDestruction(id) {
			return
		}
		rel, ok := s.relations.Get(id)
		if !ok || rel.Team == selfRel.Team {
			return
		}
		p, ok := s.physical.Get(id)
		if !ok || p.Arena != selfPhys.Arena {
			return
		}
		if v, ok := s.vitals.Get(id); ok && v.Dead() {
			return
		}
		d := vmath.DistanceSq(p.Position, selfPhys.Position)
		if d > rangeSq || d >= bestDist {
			return
		}
		if filter != nil && !filter(id, p) {
			return
		}
		best, bestDist = id, d
	}

	if s.aoi != nil {
		s.aoi.Query(selfPhys.Arena, selfPhys.Position, maxRange, consider)
	} else {
		s.relations.Each(func(id ecs.EntityID, _ *component.Relations) { consider(id) })
	}
	return best
}
