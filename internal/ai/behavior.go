package ai

import (
	"fmt"
	"sort"

	"github.com/arenasim/server/internal/component"
	"github.com/arenasim/server/internal/core/ecs"
)

// Behavior is one species' full tick, built from the engine primitives.
type Behavior interface {
	Tick(e *Engine, id ecs.EntityID)
}

// Default homes, aggroes, then wanders in straight lines or chases its target.
type Default struct {
	Speed float32
}

func (b Default) Tick(e *Engine, id ecs.EntityID) {
	a, ok := e.prelude(id)
	if !ok {
		return
	}
	switch a.State {
	case component.StateIdle:
		e.TickIdle(id)
	case component.StateIdleMoving:
		e.TickIdleMoveDefault(id)
	case component.StateAttacking:
		e.chase(id, b.Speed, 0)
	}
}

// Weaver wanders on a sinusoid instead of a straight line.
type Weaver struct {
	Speed float32
}

func (b Weaver) Tick(e *Engine, id ecs.EntityID) {
	a, ok := e.prelude(id)
	if !ok {
		return
	}
	switch a.State {
	case component.StateIdle:
		e.TickIdle(id)
	case component.StateIdleMoving:
		// weave first: the phase reads the countdown the transition resets
		e.TickIdleMoveSinusoid(id, b.Speed)
		e.finishIdleMove(a)
	case component.StateAttacking:
		e.chase(id, b.Speed, 0)
	}
}

// Interceptor chases the lead point of its target instead of its position.
type Interceptor struct {
	Speed           float32
	ProjectileSpeed float32
}

func (b Interceptor) Tick(e *Engine, id ecs.EntityID) {
	a, ok := e.prelude(id)
	if !ok {
		return
	}
	switch a.State {
	case component.StateIdle:
		e.TickIdle(id)
	case component.StateIdleMoving:
		e.TickIdleMoveDefault(id)
	case component.StateAttacking:
		e.chase(id, b.Speed, b.ProjectileSpeed)
	}
}

// prelude runs the shared front half of every variant: homing, stun and
// aggro. It returns the AI record when the variant should still pick a
// locomotion routine.
func (e *Engine) prelude(id ecs.EntityID) (*component.AI, bool) {
	a, p, ok := e.records(id)
	if !ok {
		return nil, false
	}
	if e.homing(id, a) {
		return nil, false
	}
	if p.StunTicks > 0 {
		return nil, false
	}
	if e.ShouldAggro(a) {
		e.setState(a, component.StateAttacking)
		a.TicksUntilNextAction = acquireDelay
	}
	return a, true
}

// homing runs whichever homing machine applies and reports whether it owns
// the tick.
func (e *Engine) homing(id ecs.EntityID, a *component.AI) bool {
	rel, ok := e.sim.Relations(id)
	if ok && !rel.Owner.IsNull() {
		if e.TickReturnToOwner(id) {
			return true
		}
		return a.State == component.StateReturningToOwner
	}
	e.TickReturnToHigherZone(id)
	return a.State == component.StateReturningToHigherZone
}

// chase accelerates toward the target, leading it when projectileSpeed is
// set. A lost target drops the mob back to idle.
func (e *Engine) chase(id ecs.EntityID, speed, projectileSpeed float32) {
	a, p, ok := e.records(id)
	if !ok {
		return
	}
	var tp *component.Physical
	if e.sim.Alive(a.Target) {
		tp, ok = e.sim.Physical(a.Target)
	}
	if tp == nil || !ok {
		a.Target = ecs.Null
		e.resetIdle(a)
		return
	}
	delta := tp.Position.Sub(p.Position)
	if projectileSpeed > 0 {
		delta = Predict(delta, tp.Velocity, projectileSpeed)
	}
	if delta.IsZero() {
		return
	}
	accel := delta.WithMagnitude(speed)
	p.AddAcceleration(accel)
	p.SetAngle(accel.Theta())
}

// Params configures a variant built by name.
type Params struct {
	Speed           float32
	ProjectileSpeed float32
	Script          MobScript
}

var variants = map[string]func(Params) Behavior{
	"default":     func(p Params) Behavior { return Default{Speed: p.Speed} },
	"weaver":      func(p Params) Behavior { return Weaver{Speed: p.Speed} },
	"interceptor": func(p Params) Behavior { return Interceptor{Speed: p.Speed, ProjectileSpeed: p.ProjectileSpeed} },
	"scripted": func(p Params) Behavior {
		return Scripted{Script: p.Script, Fallback: Default{Speed: p.Speed}, Speed: p.Speed}
	},
}

// NewBehavior builds the named variant.
func NewBehavior(name string, p Params) (Behavior, error) {
	build, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("unknown behavior %q", name)
	}
	if name == "scripted" && p.Script == nil {
		return nil, fmt.Errorf("behavior %q needs a script engine", name)
	}
	return build(p), nil
}

// VariantNames lists the known variant names, sorted.
func VariantNames() []string {
	out := make([]string, 0, len(variants))
	for n := range variants {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
