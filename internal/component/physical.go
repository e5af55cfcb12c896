package component

import (
	"github.com/arenasim/server/internal/core/ecs"
	"github.com/arenasim/server/internal/vmath"
)

// Physical is shared with motion integration. AI code only adds impulses to
// Acceleration and rewrites the heading.
type Physical struct {
	Position     vmath.Vector
	Velocity     vmath.Vector
	Acceleration vmath.Vector
	Angle        float32
	BearingAngle float32 // stable reference for oscillating headings
	StunTicks    int
	Radius       float32
	Arena        ecs.EntityID
}

// AddAcceleration accumulates an impulse for the next integration step.
func (p *Physical) AddAcceleration(v vmath.Vector) {
	p.Acceleration = p.Acceleration.Add(v)
}

func (p *Physical) SetAngle(a float32) {
	p.Angle = a
}
