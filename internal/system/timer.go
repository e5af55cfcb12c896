package system

import (
	"time"

	"github.com/arenasim/server/internal/component"
	"github.com/arenasim/server/internal/core/ecs"
	coresys "github.com/arenasim/server/internal/core/system"
	"github.com/arenasim/server/internal/world"
)

// ActionTimerSystem counts down AI action timers and stuns, one per tick,
// stopping at zero.
type ActionTimerSystem struct {
	sim *world.Simulation
}

func NewActionTimerSystem(sim *world.Simulation) *ActionTimerSystem {
	return &ActionTimerSystem{sim: sim}
}

func (s *ActionTimerSystem) Phase() coresys.Phase { return coresys.PhasePreUpdate }

func (s *ActionTimerSystem) Update(_ time.Duration) {
	s.sim.EachAI(func(_ ecs.EntityID, a *component.AI) {
		if a.TicksUntilNextAction > 0 {
			a.TicksUntilNextAction--
		}
	})
	s.sim.EachPhysical(func(_ ecs.EntityID, p *component.Physical) {
		if p.StunTicks > 0 {
			p.StunTicks--
		}
	})
}
