package ai

import (
	"math"
	"testing"

	"github.com/arenasim/server/internal/component"
	"github.com/arenasim/server/internal/vmath"
	"github.com/arenasim/server/internal/world"
	"github.com/stretchr/testify/assert"
)

func TestPredict(t *testing.T) {
	offset := vmath.New(30, 40)
	vel := vmath.New(2, -1)

	assert.Equal(t, offset, Predict(offset, vel, 0))

	got := Predict(offset, vel, 10)
	assert.InDelta(t, 30+2*5, got.X, 1e-5)
	assert.InDelta(t, 40-1*5, got.Y, 1e-5)

	assert.Equal(t, offset, Predict(offset, vmath.Vector{}, 3))
}

func TestTickIdle_StartsWalk(t *testing.T) {
	f := newFixture(t, nil)
	id, a, p := f.mob(t, world.MobSpec{Angle: 1})

	for i := 0; i < 200; i++ {
		a.State = component.StateIdle
		a.TicksUntilNextAction = 0
		before := p.Angle

		f.eng.TickIdle(id)

		assert.Equal(t, component.StateIdleMoving, a.State)
		assert.GreaterOrEqual(t, a.TicksUntilNextAction, 25)
		assert.LessOrEqual(t, a.TicksUntilNextAction, 57)
		assert.LessOrEqual(t, math.Abs(float64(p.Angle-before)), math.Pi/2+1e-6)
		assert.Equal(t, p.Angle, p.BearingAngle)
	}
}

func TestTickIdle_WaitsForCountdown(t *testing.T) {
	f := newFixture(t, nil)
	id, a, p := f.mob(t, world.MobSpec{Angle: 0.3})
	a.TicksUntilNextAction = 4

	f.eng.TickIdle(id)

	assert.Equal(t, component.StateIdle, a.State)
	assert.Equal(t, 4, a.TicksUntilNextAction)
	assert.Equal(t, float32(0.3), p.Angle)
}

func TestTickIdle_ExactJitter(t *testing.T) {
	rng := &stubRand{ints: []int{7}, floats: []float32{0.75}}
	f := newFixture(t, rng)
	id, a, p := f.mob(t, world.MobSpec{Angle: 0})

	f.eng.TickIdle(id)

	assert.Equal(t, 32, a.TicksUntilNextAction)
	assert.InDelta(t, math.Pi/4, p.Angle, 1e-6)
}

func TestTickIdleMoveDefault(t *testing.T) {
	rng := &stubRand{ints: []int{37}}
	f := newFixture(t, rng)
	id, a, p := f.mob(t, world.MobSpec{Angle: math.Pi / 2})
	a.State = component.StateIdleMoving
	a.TicksUntilNextAction = 3

	f.eng.TickIdleMoveDefault(id)
	assert.Equal(t, component.StateIdleMoving, a.State)
	assert.InDelta(t, 0, p.Acceleration.X, 1e-6)
	assert.InDelta(t, 1, p.Acceleration.Y, 1e-6)

	a.TicksUntilNextAction = 0
	f.eng.TickIdleMoveDefault(id)
	assert.Equal(t, component.StateIdle, a.State)
	assert.Equal(t, 49, a.TicksUntilNextAction)
	assert.InDelta(t, 2, p.Acceleration.Y, 1e-6, "impulse applies on the transition tick")
}

func TestTickIdleMoveDefault_PauseRange(t *testing.T) {
	f := newFixture(t, nil)
	id, a, _ := f.mob(t, world.MobSpec{})
	for i := 0; i < 200; i++ {
		a.State = component.StateIdleMoving
		a.TicksUntilNextAction = 0
		f.eng.TickIdleMoveDefault(id)
		assert.GreaterOrEqual(t, a.TicksUntilNextAction, 12)
		assert.LessOrEqual(t, a.TicksUntilNextAction, 49)
	}
}

func TestTickIdleMoveSinusoid(t *testing.T) {
	f := newFixture(t, nil)
	id, a, p := f.mob(t, world.MobSpec{})
	a.State = component.StateIdleMoving
	p.BearingAngle = 1.0

	for _, ticks := range []int{40, 17, 3, 0} {
		a.TicksUntilNextAction = ticks
		p.Acceleration = vmath.Vector{}

		f.eng.TickIdleMoveSinusoid(id, 2.5)

		want := 1.0 + math.Sin(float64(ticks)*0.2)*0.75
		assert.InDelta(t, want, p.Angle, 1e-5, "ticks=%d", ticks)
		assert.InDelta(t, 2.5, p.Acceleration.Magnitude(), 1e-5)
		assert.InDelta(t, float64(p.Angle), float64(p.Acceleration.Theta()), 1e-5)
		assert.Equal(t, component.StateIdleMoving, a.State, "state is left to the caller")
		assert.Equal(t, ticks, a.TicksUntilNextAction)
		assert.Equal(t, float32(1.0), p.BearingAngle)
	}
}
