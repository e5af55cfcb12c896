package ai

import (
	"github.com/arenasim/server/internal/component"
	"github.com/arenasim/server/internal/core/ecs"
	"github.com/arenasim/server/internal/vmath"
	"github.com/arenasim/server/internal/world"
)

// TickReturnToOwner keeps a companion near its nest or owner. It returns
// true when it consumed the tick: the mob was queued for deletion or is
// steering home.
//
// Companions whose owner is gone or dead, or that strayed past the leash,
// are deleted rather than recalled. Stunned or passive companions are
// otherwise left alone.
func (e *Engine) TickReturnToOwner(id ecs.EntityID) bool {
	a, p, ok := e.records(id)
	if !ok {
		return false
	}
	rel, ok := e.sim.Relations(id)
	if !ok {
		return false
	}
	delta, dropped := e.dropIfUnbound(id, rel, p)
	if dropped {
		return true
	}
	if a.Type <= component.AIPassive || p.StunTicks > 0 {
		return false
	}

	returning := a.State == component.StateReturningToOwner
	switch {
	case returning && delta.MagnitudeCmp(releaseDistance+p.Radius) == 1:
		e.steerHome(a, p, delta)
		return true
	case delta.MagnitudeCmp(recallDistance+p.Radius) == 1:
		e.setState(a, component.StateReturningToOwner)
		e.steerHome(a, p, delta)
		return true
	case returning:
		e.resetIdle(a)
	}
	return false
}

// dropIfUnbound queues a companion for deletion when its owner is gone or
// dead, it has no anchor, or it strayed past the leash. Stun and temperament
// do not matter here. It returns the offset to the anchor when the companion
// stays.
func (e *Engine) dropIfUnbound(id ecs.EntityID, rel *component.Relations, p *component.Physical) (vmath.Vector, bool) {
	if !e.ownerValid(rel.Owner) {
		e.requestDeletion(id, "owner lost")
		return vmath.Vector{}, true
	}
	anchor, ok := e.anchorOf(rel)
	if !ok {
		e.requestDeletion(id, "anchor lost")
		return vmath.Vector{}, true
	}
	delta := anchor.Position.Sub(p.Position)
	if delta.MagnitudeCmp(leashDistance) == 1 {
		e.requestDeletion(id, "leash")
		return vmath.Vector{}, true
	}
	return delta, false
}

func (e *Engine) ownerValid(owner ecs.EntityID) bool {
	if !e.sim.Alive(owner) {
		return false
	}
	if v, ok := e.sim.Vitals(owner); ok && v.Dead() {
		return false
	}
	return true
}

// steerHome pushes toward delta at homing speed and drops any target.
func (e *Engine) steerHome(a *component.AI, p *component.Physical, delta vmath.Vector) {
	accel := delta.WithMagnitude(e.tuning.BaseSpeed * homingSpeedFactor)
	p.AddAcceleration(accel)
	p.SetAngle(accel.Theta())
	a.Target = ecs.Null
}

// TickReturnToHigherZone walks high-rarity mobs out of terrain too easy for
// them. While returning it steers to a.ReturnPos until within the mob's
// radius; otherwise it looks for a safe macro-cell next to the mob.
func (e *Engine) TickReturnToHigherZone(id ecs.EntityID) {
	a, p, ok := e.records(id)
	if !ok {
		return
	}
	if a.State == component.StateReturningToHigherZone {
		delta := a.ReturnPos.Sub(p.Position)
		if delta.MagnitudeCmp(p.Radius) == 1 {
			e.steerHome(a, p, delta)
		} else {
			e.resetIdle(a)
		}
		return
	}

	mob, ok := e.sim.Mob(id)
	if !ok || mob.Rarity < component.RarityUltimate {
		return
	}
	arena, ok := e.sim.Arena(p.Arena)
	if !ok || arena.Maze == nil {
		return
	}
	if pos, found := findHigherZone(arena.Maze, p.Position); found {
		a.ReturnPos = pos
		e.setState(a, component.StateReturningToHigherZone)
	}
}

// findHigherZone scans the 3×3 macro-cells (2×2 grid cells each) around pos
// for one whose representative cell is hard enough. Cells that are already
// hard, off-maze or exempt never trigger a search.
func findHigherZone(m *world.Maze, pos vmath.Vector) (vmath.Vector, bool) {
	gx, gy := m.CellAt(pos)
	cell := m.Grid(gx, gy)
	if cell.Difficulty >= safeDifficulty || cell.Value == 0 || cell.Value&world.ValueExempt != 0 {
		return vmath.Vector{}, false
	}
	for i := int32(-1); i <= 1; i++ {
		for j := int32(-1); j <= 1; j++ {
			x := (gx/2+i)*2 + 1
			y := (gy/2+j)*2 + 1
			if !m.InBounds(x, y) {
				continue
			}
			if m.Grid(x, y).Difficulty < safeDifficulty {
				continue
			}
			return m.Origin(x, y), true
		}
	}
	return vmath.Vector{}, false
}
