package system

import (
	"time"

	"github.com/arenasim/server/internal/component"
	"github.com/arenasim/server/internal/core/ecs"
	coresys "github.com/arenasim/server/internal/core/system"
	"github.com/arenasim/server/internal/vmath"
	"github.com/arenasim/server/internal/world"
)

// MotionSystem is the minimal integrator behind the AI: accelerations
// gathered this tick feed velocity, friction bleeds it, and positions are
// kept inside their arena. Phase 2 (PostUpdate).
type MotionSystem struct {
	sim      *world.Simulation
	friction float32
}

func NewMotionSystem(sim *world.Simulation, friction float32) *MotionSystem {
	return &MotionSystem{sim: sim, friction: friction}
}

func (s *MotionSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *MotionSystem) Update(_ time.Duration) {
	s.sim.EachPhysical(func(_ ecs.EntityID, p *component.Physical) {
		p.Velocity = p.Velocity.Add(p.Acceleration).Scale(s.friction)
		p.Position = p.Position.Add(p.Velocity)
		p.Acceleration = vmath.Vector{}
		if arena, ok := s.sim.Arena(p.Arena); ok && arena.Maze != nil {
			size := arena.Maze.WorldSize()
			p.Position.X = vmath.Clamp(p.Position.X, 0, size)
			p.Position.Y = vmath.Clamp(p.Position.Y, 0, size)
		}
	})
	s.sim.ReindexAOI()
}
