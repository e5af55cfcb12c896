package ai

import (
	"go.uber.org/zap"

	"github.com/arenasim/server/internal/component"
	"github.com/arenasim/server/internal/core/ecs"
	"github.com/arenasim/server/internal/core/event"
	"github.com/arenasim/server/internal/vmath"
)

// HasNewTarget makes sure a.Target is either a live entity or ecs.Null and
// reports whether an idle mob just gained a target this tick.
//
// A mob that has lost its target outside idle is forced back to idle with a
// [25,49] countdown.
func (e *Engine) HasNewTarget(a *component.AI) bool {
	if !e.sim.Alive(a.Target) {
		a.Target = e.findTarget(a)
	}
	if e.sim.Alive(a.Target) {
		if !IsPassive(a) {
			return false
		}
		a.TicksUntilNextAction = acquireDelay
		event.Emit(e.bus, event.TargetAcquired{Entity: a.ParentID, Target: a.Target})
		e.log.Debug("mob acquired target",
			zap.Uint64("entity", uint64(a.ParentID)),
			zap.Uint64("target", uint64(a.Target)),
		)
		return true
	}
	if !IsPassive(a) {
		a.Target = ecs.Null
		e.resetIdle(a)
	}
	return false
}

// findTarget searches for the nearest enemy. Wild mobs take anything in
// aggro range; companions only take enemies near their nest or owner.
func (e *Engine) findTarget(a *component.AI) ecs.EntityID {
	rel, ok := e.sim.Relations(a.ParentID)
	if !ok {
		return ecs.Null
	}
	if rel.Team == component.TeamMobs {
		return e.sim.NearestEnemy(a.ParentID, a.AggroRange, nil)
	}
	anchor, ok := e.anchorOf(rel)
	if !ok {
		return ecs.Null
	}
	center := anchor.Position
	return e.sim.NearestEnemy(a.ParentID, a.AggroRange, func(_ ecs.EntityID, p *component.Physical) bool {
		return vmath.DistanceSq(p.Position, center) < ownerTargetRadius*ownerTargetRadius
	})
}

// IsPassive reports whether the mob is in one of the wandering states.
func IsPassive(a *component.AI) bool {
	return a.State == component.StateIdle || a.State == component.StateIdleMoving
}

// ShouldAggro decides whether a wandering mob turns hostile this tick.
// Neutral mobs only react to a target set by provocation; aggressive mobs
// search on their own; passive mobs never do.
func (e *Engine) ShouldAggro(a *component.AI) bool {
	switch a.Type {
	case component.AINeutral:
		return e.sim.Alive(a.Target) && IsPassive(a)
	case component.AIAggro:
		return e.HasNewTarget(a)
	}
	return false
}
