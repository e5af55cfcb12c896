package ai

import (
	"go.uber.org/zap"

	"github.com/arenasim/server/internal/component"
	"github.com/arenasim/server/internal/core/ecs"
	"github.com/arenasim/server/internal/scripting"
)

// MobScript decides the step order of a scripted species.
type MobScript interface {
	RunMobAI(ctx scripting.MobContext) ([]string, error)
}

// Step names understood by Scripted.
const (
	StepReturnToOwner = "return_to_owner"
	StepHigherZone    = "higher_zone"
	StepAggro         = "aggro"
	StepChase         = "chase"
	StepIdle          = "idle"
	StepIdleMove      = "idle_move"
	StepSinusoid      = "sinusoid"
	StepStop          = "stop"
)

// Scripted asks a Lua script which primitives to run, in order. Homing steps
// end the sequence when they own the tick; at most one locomotion step runs.
// A failing script falls back to Fallback for that tick. Companion deletion
// checks run before the script is consulted, so no script can skip them.
type Scripted struct {
	Script   MobScript
	Fallback Behavior
	Speed    float32
}

func (b Scripted) Tick(e *Engine, id ecs.EntityID) {
	a, p, ok := e.records(id)
	if !ok {
		return
	}
	if rel, ok := e.sim.Relations(id); ok && !rel.Owner.IsNull() {
		if _, dropped := e.dropIfUnbound(id, rel, p); dropped {
			return
		}
	}
	steps, err := b.Script.RunMobAI(e.scriptContext(id, a, p))
	if err != nil {
		e.log.Warn("mob script failed, using fallback",
			zap.Uint64("entity", uint64(id)),
			zap.Error(err),
		)
		if b.Fallback != nil {
			b.Fallback.Tick(e, id)
		}
		return
	}
	for _, step := range steps {
		if !e.runStep(id, a, step, b.Speed) {
			return
		}
	}
}

func (e *Engine) scriptContext(id ecs.EntityID, a *component.AI, p *component.Physical) scripting.MobContext {
	ctx := scripting.MobContext{
		State:       a.State.String(),
		Type:        a.Type.String(),
		Ticks:       a.TicksUntilNextAction,
		TargetAlive: e.sim.Alive(a.Target),
		Stunned:     p.StunTicks > 0,
	}
	if rel, ok := e.sim.Relations(id); ok {
		ctx.Summoned = !rel.Owner.IsNull()
	}
	if mob, ok := e.sim.Mob(id); ok {
		ctx.Species = mob.Species
		ctx.Rarity = int(mob.Rarity)
	}
	return ctx
}

// runStep executes one named step and reports whether the sequence goes on.
func (e *Engine) runStep(id ecs.EntityID, a *component.AI, step string, speed float32) bool {
	switch step {
	case StepReturnToOwner:
		rel, ok := e.sim.Relations(id)
		if !ok || rel.Owner.IsNull() {
			return true
		}
		return !e.TickReturnToOwner(id) && a.State != component.StateReturningToOwner
	case StepHigherZone:
		e.TickReturnToHigherZone(id)
		return a.State != component.StateReturningToHigherZone
	case StepAggro:
		if e.ShouldAggro(a) {
			e.setState(a, component.StateAttacking)
			a.TicksUntilNextAction = acquireDelay
		}
		return true
	case StepChase:
		if a.State != component.StateAttacking {
			return true
		}
		e.chase(id, speed, 0)
		return false
	case StepIdle:
		if a.State != component.StateIdle {
			return true
		}
		e.TickIdle(id)
		return false
	case StepIdleMove:
		if a.State != component.StateIdleMoving {
			return true
		}
		e.TickIdleMoveDefault(id)
		return false
	case StepSinusoid:
		if a.State != component.StateIdleMoving {
			return true
		}
		e.TickIdleMoveSinusoid(id, speed)
		e.finishIdleMove(a)
		return false
	case StepStop:
		return false
	}
	e.log.Warn("unknown mob script step", zap.String("step", step))
	return true
}
