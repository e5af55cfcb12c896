// Package ai advances mob behaviour one entity at a time: target acquisition,
// aggro policy, idle wandering and the two homing state machines. Species
// variants in behavior.go compose these primitives into a full tick.
package ai

import (
	"go.uber.org/zap"

	"github.com/arenasim/server/internal/component"
	"github.com/arenasim/server/internal/core/ecs"
	"github.com/arenasim/server/internal/core/event"
	"github.com/arenasim/server/internal/world"
)

// Rand is the random source the engine draws from. *math/rand.Rand
// satisfies it; tests inject a seeded or scripted source.
type Rand interface {
	Intn(n int) int
	Float32() float32
}

// Tuning holds the engine-wide numbers that are not per species.
type Tuning struct {
	BaseSpeed float32 // player movement speed; homing steers at 1.2x this
}

// DefaultTuning matches the stock player speed.
func DefaultTuning() Tuning {
	return Tuning{BaseSpeed: 4}
}

const (
	acquireDelay = 25 // countdown after locking a target

	ownerTargetRadius = 1000 // companions only pick targets this close to their anchor
	leashDistance     = 5000
	recallDistance    = 1000
	releaseDistance   = 250
	homingSpeedFactor = 1.2

	safeDifficulty = 48

	sinusoidFrequency = 0.2
	sinusoidAmplitude = 0.75
)

// Engine is the per-tick mob decision step. It mutates the simulation's
// records in place and never blocks. Not safe for concurrent use.
type Engine struct {
	sim    *world.Simulation
	rng    Rand
	tuning Tuning
	bus    *event.Bus
	log    *zap.Logger
}

// NewEngine wires the engine to its collaborators. bus and log may be nil.
func NewEngine(sim *world.Simulation, rng Rand, tuning Tuning, bus *event.Bus, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{sim: sim, rng: rng, tuning: tuning, bus: bus, log: log}
}

// Simulation returns the world the engine operates on.
func (e *Engine) Simulation() *world.Simulation { return e.sim }

func (e *Engine) setState(a *component.AI, to component.AIState) {
	if a.State == to {
		return
	}
	from := a.State
	a.State = to
	event.Emit(e.bus, event.StateChanged{Entity: a.ParentID, From: uint8(from), To: uint8(to)})
	if ce := e.log.Check(zap.DebugLevel, "mob state changed"); ce != nil {
		ce.Write(
			zap.Uint64("entity", uint64(a.ParentID)),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
		)
	}
}

// resetIdle drops into idle with a fresh [25,49] countdown.
func (e *Engine) resetIdle(a *component.AI) {
	e.setState(a, component.StateIdle)
	a.TicksUntilNextAction = e.rng.Intn(25) + 25
}

func (e *Engine) requestDeletion(id ecs.EntityID, reason string) {
	e.sim.RequestDeletion(id)
	event.Emit(e.bus, event.DeletionRequested{Entity: id, Reason: reason})
	e.log.Debug("mob deletion requested",
		zap.Uint64("entity", uint64(id)),
		zap.String("reason", reason),
	)
}

func (e *Engine) records(id ecs.EntityID) (*component.AI, *component.Physical, bool) {
	a, ok := e.sim.AI(id)
	if !ok {
		return nil, nil, false
	}
	p, ok := e.sim.Physical(id)
	if !ok {
		return nil, nil, false
	}
	return a, p, true
}

// anchorOf returns the physical record a mob is bound to: its nest while the
// nest lives, otherwise its owner.
func (e *Engine) anchorOf(rel *component.Relations) (*component.Physical, bool) {
	id := rel.Nest
	if !e.sim.Alive(id) {
		id = rel.Owner
	}
	if !e.sim.Alive(id) {
		return nil, false
	}
	return e.sim.Physical(id)
}

// Provoke points a mob at its attacker. Neutral mobs rely on this to turn
// aggressive; dead attackers are ignored.
func (e *Engine) Provoke(id, attacker ecs.EntityID) {
	a, ok := e.sim.AI(id)
	if !ok || !e.sim.Alive(attacker) {
		return
	}
	a.Target = attacker
}
