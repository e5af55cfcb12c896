package ai

import (
	"math"

	"github.com/arenasim/server/internal/component"
	"github.com/arenasim/server/internal/core/ecs"
	"github.com/arenasim/server/internal/vmath"
)

// TickIdle waits out the countdown, then starts an idle walk on a heading
// jittered by up to ±π/2. The bearing is pinned to the new heading.
func (e *Engine) TickIdle(id ecs.EntityID) {
	a, p, ok := e.records(id)
	if !ok || a.TicksUntilNextAction > 0 {
		return
	}
	a.TicksUntilNextAction = e.rng.Intn(33) + 25
	e.setState(a, component.StateIdleMoving)
	p.SetAngle(p.Angle + (e.rng.Float32()-0.5)*math.Pi)
	p.BearingAngle = p.Angle
}

// TickIdleMoveDefault drifts straight along the heading and returns to idle
// when the countdown runs out. The impulse is applied on the transition
// tick as well.
func (e *Engine) TickIdleMoveDefault(id ecs.EntityID) {
	a, p, ok := e.records(id)
	if !ok {
		return
	}
	e.finishIdleMove(a)
	p.AddAcceleration(vmath.FromPolar(1, p.Angle))
}

// finishIdleMove ends an expired idle walk with a [12,49] pause.
func (e *Engine) finishIdleMove(a *component.AI) bool {
	if a.TicksUntilNextAction > 0 {
		return false
	}
	a.TicksUntilNextAction = e.rng.Intn(38) + 12
	e.setState(a, component.StateIdle)
	return true
}

// TickIdleMoveSinusoid weaves around the bearing. The phase comes straight
// from the countdown, so the weave restarts whenever the countdown is reset.
// State and countdown are left to the caller.
func (e *Engine) TickIdleMoveSinusoid(id ecs.EntityID, speed float32) {
	a, p, ok := e.records(id)
	if !ok {
		return
	}
	add := float32(math.Sin(float64(a.TicksUntilNextAction)*sinusoidFrequency)) * sinusoidAmplitude
	p.SetAngle(p.BearingAngle + add)
	p.AddAcceleration(vmath.FromPolar(speed, p.Angle))
}
